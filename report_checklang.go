package main

import (
	"context"
	"flag"
	"io"
	"log/slog"
	"os"
	"strings"

	"golang.org/x/sync/errgroup"
)

func runCheckLang(args []string) error {
	fs := flag.NewFlagSet("checklang", flag.ExitOnError)
	common := addCommonFlags(fs)
	locale := fs.String("locale", "", "Comma-separated locales to check (default: all)")
	format := fs.String("format", formatText, "Output format: text, json, yaml")
	fs.Parse(args)

	if err := checkFormat(*format); err != nil {
		return err
	}
	ws, err := common.open()
	if err != nil {
		return err
	}
	return reportCheckLang(context.Background(), ws, splitLocales(*locale), *format, os.Stdout)
}

// reportCheckLang compares every locale against the reference and prints
// one report per locale that could be loaded.
func reportCheckLang(ctx context.Context, ws *workspace, only []string, format string, w io.Writer) error {
	run, err := ws.checkLocales(ctx, only)
	if err != nil {
		return err
	}
	reports := make([]localeReport, 0, len(run.results))
	for _, r := range run.results {
		reports = append(reports, r.report)
	}
	return writeReports(w, reports, format)
}

// checkRun holds the shared inputs and per-locale results of one run.
type checkRun struct {
	ref     *langFile
	keys    []string
	results []localeResult
}

type localeResult struct {
	report localeReport
	file   *langFile
}

// checkLocales loads the reference and key registry, then loads and checks
// each locale concurrently. Locales whose file cannot be loaded are skipped.
// Results keep the order of the locale list.
func (w *workspace) checkLocales(ctx context.Context, only []string) (*checkRun, error) {
	ref, err := w.loadReference()
	if err != nil {
		return nil, err
	}
	keys, err := w.loadKeys(ref)
	if err != nil {
		return nil, err
	}

	locales := only
	if len(locales) == 0 {
		if locales, err = w.locales(); err != nil {
			return nil, err
		}
	}

	c := newChecker(keys, ref.Lines, ref.Values)
	slots := make([]*localeResult, len(locales))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(w.cfg.Workers)
	for i, locale := range locales {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			lf, err := loadLangFile(w.langPath(locale))
			if err != nil {
				w.logger.Debug("skipping locale", slog.String("locale", locale), slog.Any("error", err))
				return nil
			}
			slots[i] = &localeResult{report: c.check(locale, lf.Values), file: lf}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	run := &checkRun{ref: ref, keys: keys}
	for _, r := range slots {
		if r != nil {
			run.results = append(run.results, *r)
		}
	}
	w.logger.Debug("locales checked", slog.Int("requested", len(locales)), slog.Int("checked", len(run.results)))
	return run, nil
}

// splitLocales parses a comma-separated locale list.
func splitLocales(s string) []string {
	var locales []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			locales = append(locales, part)
		}
	}
	return locales
}
