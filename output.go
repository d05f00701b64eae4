package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

// noLine stands in for a line number that could not be resolved.
const noLine = "?"

func checkFormat(format string) error {
	switch format {
	case formatText, formatJSON, formatYAML:
		return nil
	}
	return fmt.Errorf("%w %q: must be %s, %s or %s", ErrUnknownFormat, format, formatText, formatJSON, formatYAML)
}

// encode writes v as JSON or YAML.
func encode(w io.Writer, format string, v any) error {
	switch format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	}
	return checkFormat(format)
}

// outputStrings prints a list of strings in text, JSON or YAML format.
func outputStrings(items []string, format, label string) error {
	if format != formatText {
		if items == nil {
			items = []string{}
		}
		return encode(os.Stdout, format, items)
	}

	if len(items) == 0 {
		fmt.Printf("No %s found.\n", label)
		return nil
	}

	fmt.Printf("Found %d %s:\n", len(items), label)
	for _, item := range items {
		fmt.Printf("  %s\n", item)
	}
	return nil
}

// writeReports renders locale reports. The text form prints, per locale, a
// "## LOCALE" header followed by one "=> Label: ..." block per category.
func writeReports(w io.Writer, reports []localeReport, format string) error {
	if format != formatText {
		if reports == nil {
			reports = []localeReport{}
		}
		return encode(w, format, reports)
	}
	for i := range reports {
		writeReportText(w, &reports[i])
	}
	_, err := fmt.Fprintln(w)
	return err
}

func writeReportText(w io.Writer, r *localeReport) {
	// Casers keep state, so each report gets its own.
	fmt.Fprintf(w, "\n## %s\n", cases.Upper(language.Und).String(r.Locale))
	for _, s := range r.sections() {
		fmt.Fprintf(w, "=> %s: ", s.cat.label())
		if len(s.findings) == 0 {
			fmt.Fprintln(w, "N/A")
			continue
		}
		fmt.Fprintln(w, len(s.findings))
		for _, f := range s.findings {
			fmt.Fprintf(w, "  %s (line %s)\n", f.Key, formatLine(f.Line))
		}
	}
}

func formatLine(line *int) string {
	if line == nil {
		return noLine
	}
	return strconv.Itoa(*line)
}
