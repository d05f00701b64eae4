package main

import "strings"

// placeholderMarker is the positional argument marker counted in values.
const placeholderMarker = "%s"

// untranslatedPrefix marks a value copied from the reference but not yet
// translated.
const untranslatedPrefix = "#"

// category classifies a finding.
type category string

const (
	categoryMissing      category = "missing"
	categoryBadFormat    category = "bad-format"
	categoryUntranslated category = "untranslated"
)

// label is the heading used in text reports.
func (c category) label() string {
	switch c {
	case categoryMissing:
		return "Missing"
	case categoryBadFormat:
		return "Bad format"
	case categoryUntranslated:
		return "Not translated"
	}
	return string(c)
}

// finding is one discrepancy for a key. Line is the 1-based line of the key
// in the reference file, or nil when the key has no line there.
type finding struct {
	Category category `json:"category" yaml:"category"`
	Key      string   `json:"key" yaml:"key"`
	Line     *int     `json:"line" yaml:"line"`
}

// localeReport groups the findings for one locale. Each list follows the
// key registry order.
type localeReport struct {
	Locale       string    `json:"locale" yaml:"locale"`
	Missing      []finding `json:"missing" yaml:"missing"`
	BadFormat    []finding `json:"badFormat" yaml:"badFormat"`
	Untranslated []finding `json:"untranslated" yaml:"untranslated"`
}

// section is one category of a report.
type section struct {
	cat      category
	findings []finding
}

// sections returns the finding lists in report order.
func (r localeReport) sections() []section {
	return []section{
		{categoryMissing, r.Missing},
		{categoryBadFormat, r.BadFormat},
		{categoryUntranslated, r.Untranslated},
	}
}

// count returns the total number of findings.
func (r localeReport) count() int {
	return len(r.Missing) + len(r.BadFormat) + len(r.Untranslated)
}

func (r localeReport) empty() bool {
	return r.count() == 0
}

// checker compares locales against a fixed reference. It only reads its
// fields after construction, so one checker may serve many goroutines.
type checker struct {
	keys      []string
	refValues map[string]string
	lineIndex map[string]int
}

// newChecker indexes the reference lines once. The first line whose key part
// equals a key wins.
func newChecker(keys, refLines []string, refValues map[string]string) *checker {
	index := make(map[string]int, len(refLines))
	for i, line := range refLines {
		key, ok := lineKey(line)
		if !ok {
			continue
		}
		if _, seen := index[key]; !seen {
			index[key] = i + 1
		}
	}
	return &checker{keys: keys, refValues: refValues, lineIndex: index}
}

// line resolves the reference line of key, or nil.
func (c *checker) line(key string) *int {
	n, ok := c.lineIndex[key]
	if !ok {
		return nil
	}
	return &n
}

// check classifies every registered key for one locale.
func (c *checker) check(locale string, values map[string]string) localeReport {
	report := localeReport{
		Locale:       locale,
		Missing:      []finding{},
		BadFormat:    []finding{},
		Untranslated: []finding{},
	}
	for _, key := range c.keys {
		value, present := values[key]
		if !present {
			report.Missing = append(report.Missing, c.finding(categoryMissing, key))
			continue
		}
		if refValue, ok := c.refValues[key]; ok {
			if strings.Count(refValue, placeholderMarker) != strings.Count(value, placeholderMarker) {
				report.BadFormat = append(report.BadFormat, c.finding(categoryBadFormat, key))
			}
		}
		if strings.HasPrefix(value, untranslatedPrefix) {
			report.Untranslated = append(report.Untranslated, c.finding(categoryUntranslated, key))
		}
	}
	return report
}

func (c *checker) finding(cat category, key string) finding {
	return finding{Category: cat, Key: key, Line: c.line(key)}
}

// checkLocale runs a one-off comparison of values against the reference.
func checkLocale(locale string, keys, refLines []string, refValues, values map[string]string) localeReport {
	return newChecker(keys, refLines, refValues).check(locale, values)
}
