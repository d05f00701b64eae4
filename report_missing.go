package main

import (
	"flag"
	"fmt"
)

func runMissing(args []string) error {
	fs := flag.NewFlagSet("missing", flag.ExitOnError)
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
	return reportMissing(ws, *locale, *format)
}

// reportMissing lists registered keys absent from a locale, in registry order.
func reportMissing(ws *workspace, locale, format string) error {
	ref, err := ws.loadReference()
	if err != nil {
		return err
	}
	keys, err := ws.loadKeys(ref)
	if err != nil {
		return err
	}
	lf, err := loadLangFile(ws.langPath(locale))
	if err != nil {
		return err
	}

	report := checkLocale(locale, keys, ref.Lines, ref.Values, lf.Values)
	var missing []string
	for _, f := range report.Missing {
		missing = append(missing, f.Key)
	}
	return outputStrings(missing, format, "missing keys in "+locale)
}
