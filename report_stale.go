package main

import (
	"flag"
	"fmt"
)

func runStale(args []string) error {
	fs := flag.NewFlagSet("stale", flag.ExitOnError)
	common := addCommonFlags(fs)
	locale := fs.String("locale", "", "Target locale (required)")
	format := fs.String("format", formatText, "Output format: text, json, yaml")
	fs.Parse(args)

	if *locale == "" {
		return fmt.Errorf("--locale is required")
	}
	if err := checkFormat(*format); err != nil {
		return err
	}

	ws, err := common.open()
	if err != nil {
		return err
	}
	return reportStale(ws, *locale, *format)
}

func reportStale(ws *workspace, locale, format string) error {
	ref, err := ws.loadReference()
	if err != nil {
		return err
	}
	lf, err := loadLangFile(ws.langPath(locale))
	if err != nil {
		return err
	}
	return outputStrings(staleKeys(ref.Values, lf.Values), format, "stale keys in "+locale)
}

// staleKeys returns the sorted keys of values that the reference lacks.
func staleKeys(refValues, values map[string]string) []string {
	var stale []string
	for _, k := range sortedKeys(values) {
		if _, found := refValues[k]; !found {
			stale = append(stale, k)
		}
	}
	return stale
}
