package main

import (
	"flag"
	"fmt"
	"os"
)

func runReferences(args []string) error {
	fs := flag.NewFlagSet("references", flag.ExitOnError)
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
	return reportReferences(ws, *format)
}

func reportReferences(ws *workspace, format string) error {
	consts, refs, err := ws.keyReferences()
	if err != nil {
		return err
	}

	if format != formatText {
		return encode(os.Stdout, format, refs)
	}

	for _, c := range consts {
		locations := refs[c.Value]
		if len(locations) == 0 {
			continue
		}
		fmt.Printf("%s (Lang::%s):\n", c.Value, c.Name)
		for _, loc := range locations {
			fmt.Printf("  %s:%d\n", loc.File, loc.Line)
		}
	}
	return nil
}
