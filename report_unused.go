package main

import (
	"flag"
)

func runUnused(args []string) error {
	fs := flag.NewFlagSet("unused", flag.ExitOnError)
	common := addCommonFlags(fs)
	format := fs.String("format", formatText, "Output format: text, json, yaml")
	fs.Parse(args)

	if err := checkFormat(*format); err != nil {
		return err
	}
	ws, err := common.open()
	if err != nil {
		return err
	}
	return reportUnused(ws, *format)
}

// reportUnused lists registered keys whose constant is never used in sources.
func reportUnused(ws *workspace, format string) error {
	consts, refs, err := ws.keyReferences()
	if err != nil {
		return err
	}

	var unused []string
	for _, c := range consts {
		if _, found := refs[c.Value]; !found {
			unused = append(unused, c.Value)
		}
	}
	return outputStrings(unused, format, "unused keys")
}
