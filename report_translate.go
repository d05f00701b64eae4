package main

import (
	"flag"
	"fmt"
	"os"
)

func runTranslate(args []string) error {
	fs := flag.NewFlagSet("translate", flag.ExitOnError)
	common := addCommonFlags(fs)
	locale := fs.String("locale", "", "Target locale (required)")
	format := fs.String("format", formatText, "Output format: text, json, yaml")
	batch := fs.Int("batch", 0, "Batch number (1-indexed); requires --batches")
	batches := fs.Int("batches", 0, "Total number of batches")
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
	return reportTranslate(ws, *locale, *format, *batch, *batches)
}

// translatePair is a key with the reference value a translator works from.
type translatePair struct {
	Key   string `json:"key" yaml:"key"`
	Value string `json:"value" yaml:"value"`
}

// reportTranslate outputs key=value pairs, with reference values, for keys
// that are missing from a locale or still carry an untranslated placeholder.
// Nothing is written to the locale file.
func reportTranslate(ws *workspace, locale, format string, batch, batches int) error {
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
	pending := make(map[string]bool, len(report.Missing)+len(report.Untranslated))
	for _, f := range report.Missing {
		pending[f.Key] = true
	}
	for _, f := range report.Untranslated {
		pending[f.Key] = true
	}

	// Registry order, so batches are stable between runs.
	pairs := []translatePair{}
	for _, k := range keys {
		if pending[k] {
			pairs = append(pairs, translatePair{k, ref.Values[k]})
		}
	}

	if pairs, err = sliceBatch(pairs, batch, batches); err != nil {
		return err
	}

	if format != formatText {
		return encode(os.Stdout, format, pairs)
	}

	if len(pairs) == 0 {
		fmt.Printf("No keys to translate in %s.\n", locale)
		return nil
	}

	label := fmt.Sprintf("Found %d keys to translate in %s", len(pairs), locale)
	if batches > 0 {
		label += fmt.Sprintf(" (batch %d of %d)", batch, batches)
	}
	fmt.Printf("%s:\n\n", label)
	for _, p := range pairs {
		fmt.Printf("%s=%s\n", p.Key, p.Value)
	}
	return nil
}

// sliceBatch returns the batch-th of batches roughly equal slices. A zero
// batches value returns pairs unchanged.
func sliceBatch(pairs []translatePair, batch, batches int) ([]translatePair, error) {
	if batches <= 0 {
		return pairs, nil
	}
	if batch < 1 || batch > batches {
		return nil, fmt.Errorf("--batch must be between 1 and %d", batches)
	}
	total := len(pairs)
	size := (total + batches - 1) / batches
	start := (batch - 1) * size
	end := start + size
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}
	return pairs[start:end], nil
}
