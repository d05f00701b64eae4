package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
)

func runSummary(args []string) error {
	fs := flag.NewFlagSet("summary", flag.ExitOnError)
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
	return reportSummary(context.Background(), ws, *format, os.Stdout)
}

// summaryRow counts the findings of one locale.
type summaryRow struct {
	Locale       string `json:"locale" yaml:"locale"`
	Missing      int    `json:"missing" yaml:"missing"`
	BadFormat    int    `json:"badFormat" yaml:"badFormat"`
	Untranslated int    `json:"untranslated" yaml:"untranslated"`
	Stale        int    `json:"stale" yaml:"stale"`
}

func (r summaryRow) clean() bool {
	return r.Missing+r.BadFormat+r.Untranslated+r.Stale == 0
}

// reportSummary prints one line of counts per locale. It is informational
// and does not fail when locales need work.
func reportSummary(ctx context.Context, ws *workspace, format string, w io.Writer) error {
	run, err := ws.checkLocales(ctx, nil)
	if err != nil {
		return err
	}

	rows := make([]summaryRow, 0, len(run.results))
	for _, res := range run.results {
		rows = append(rows, summaryRow{
			Locale:       res.report.Locale,
			Missing:      len(res.report.Missing),
			BadFormat:    len(res.report.BadFormat),
			Untranslated: len(res.report.Untranslated),
			Stale:        len(staleKeys(run.ref.Values, res.file.Values)),
		})
	}

	if format != formatText {
		return encode(w, format, rows)
	}

	if len(rows) == 0 {
		fmt.Fprintln(w, "No locales found.")
		return nil
	}

	fmt.Fprintf(w, "  %-20s %8s %11s %15s %6s\n", "locale", "missing", "bad format", "not translated", "stale")
	for _, r := range rows {
		status := "OK"
		if !r.clean() {
			status = "TODO"
		}
		fmt.Fprintf(w, "  %-20s %8d %11d %15d %6d  %s\n", r.Locale, r.Missing, r.BadFormat, r.Untranslated, r.Stale, status)
	}
	return nil
}
