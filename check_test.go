package main

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func findingKeys(findings []finding) []string {
	keys := []string{}
	for _, f := range findings {
		keys = append(keys, f.Key)
	}
	return keys
}

func TestCheckGreetingScenarios(t *testing.T) {
	refLines := []string{"GREETING=Hello %s"}
	refValues := map[string]string{"GREETING": "Hello %s"}
	keys := []string{"GREETING"}

	tests := []struct {
		name             string
		values           map[string]string
		wantMissing      []string
		wantBadFormat    []string
		wantUntranslated []string
	}{
		{
			name:             "missing key",
			values:           map[string]string{},
			wantMissing:      []string{"GREETING"},
			wantBadFormat:    []string{},
			wantUntranslated: []string{},
		},
		{
			name:             "placeholder dropped",
			values:           map[string]string{"GREETING": "Bonjour"},
			wantMissing:      []string{},
			wantBadFormat:    []string{"GREETING"},
			wantUntranslated: []string{},
		},
		{
			name:             "untranslated with matching placeholders",
			values:           map[string]string{"GREETING": "#Bonjour %s"},
			wantMissing:      []string{},
			wantBadFormat:    []string{},
			wantUntranslated: []string{"GREETING"},
		},
		{
			name:             "translated",
			values:           map[string]string{"GREETING": "Bonjour %s"},
			wantMissing:      []string{},
			wantBadFormat:    []string{},
			wantUntranslated: []string{},
		},
		{
			name:             "untranslated and bad format",
			values:           map[string]string{"GREETING": "#Bonjour"},
			wantMissing:      []string{},
			wantBadFormat:    []string{"GREETING"},
			wantUntranslated: []string{"GREETING"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := checkLocale("french", keys, refLines, refValues, tc.values)
			assert.Equal(t, "french", r.Locale)
			assert.Equal(t, tc.wantMissing, findingKeys(r.Missing))
			assert.Equal(t, tc.wantBadFormat, findingKeys(r.BadFormat))
			assert.Equal(t, tc.wantUntranslated, findingKeys(r.Untranslated))
		})
	}
}

func TestCheckFollowsKeyOrder(t *testing.T) {
	keys := []string{"ZETA", "ALPHA", "MU"}
	refLines := []string{"ALPHA=a", "MU=m", "ZETA=z"}
	refValues := map[string]string{"ALPHA": "a", "MU": "m", "ZETA": "z"}

	r := checkLocale("german", keys, refLines, refValues, map[string]string{})

	assert.Equal(t, []string{"ZETA", "ALPHA", "MU"}, findingKeys(r.Missing))
	require.Len(t, r.Missing, 3)
	assert.Equal(t, 3, *r.Missing[0].Line)
	assert.Equal(t, 1, *r.Missing[1].Line)
	assert.Equal(t, 2, *r.Missing[2].Line)
	for _, f := range r.Missing {
		assert.Equal(t, categoryMissing, f.Category)
	}
}

func TestCheckMissingExcludesOtherCategories(t *testing.T) {
	keys := []string{"A", "B"}
	refValues := map[string]string{"A": "%s", "B": "#x"}
	r := checkLocale("x", keys, []string{"A=%s", "B=#x"}, refValues, map[string]string{"B": "#y"})

	assert.Equal(t, []string{"A"}, findingKeys(r.Missing))
	assert.NotContains(t, findingKeys(r.BadFormat), "A")
	assert.NotContains(t, findingKeys(r.Untranslated), "A")
	assert.Equal(t, []string{"B"}, findingKeys(r.Untranslated))
}

func TestCheckPlaceholderCounts(t *testing.T) {
	tests := []struct {
		ref, value string
		mismatch   bool
	}{
		{"%s and %s", "%s et %s", false},
		{"%s and %s", "%s", true},
		{"no marker", "%s", true},
		{"100%", "100 %", false},
		{"%s%s", "%s %s", false},
		{"%d items", "%d éléments", false},
	}

	for _, tc := range tests {
		t.Run(tc.ref+"→"+tc.value, func(t *testing.T) {
			r := checkLocale("x", []string{"K"}, []string{"K=" + tc.ref},
				map[string]string{"K": tc.ref}, map[string]string{"K": tc.value})
			assert.Equal(t, tc.mismatch, len(r.BadFormat) == 1)
		})
	}
}

func TestCheckKeyAbsentFromReference(t *testing.T) {
	// Registered but not in the reference: no format comparison possible.
	keys := []string{"ONLY_LOCALE"}
	r := checkLocale("x", keys, []string{"OTHER=1"}, map[string]string{"OTHER": "1"},
		map[string]string{"ONLY_LOCALE": "%s"})

	assert.True(t, r.empty())

	r = checkLocale("x", keys, []string{"OTHER=1"}, map[string]string{"OTHER": "1"}, map[string]string{})
	require.Len(t, r.Missing, 1)
	assert.Nil(t, r.Missing[0].Line)
}

func TestCheckerLineResolution(t *testing.T) {
	lines := []string{
		"; comment",
		"  GREETING  = Hello %s",
		"GREETING=duplicate",
		"NOEQUALS",
		"",
		"A=b=c",
		"=orphan",
	}
	c := newChecker(nil, lines, nil)

	tests := []struct {
		key  string
		want *int
	}{
		{"GREETING", intPtr(2)},
		{"A", intPtr(6)},
		{"NOEQUALS", nil},
		{"b", nil},
		{"greeting", nil},
		{"", intPtr(7)},
	}
	for _, tc := range tests {
		t.Run(tc.key, func(t *testing.T) {
			assert.Equal(t, tc.want, c.line(tc.key))
		})
	}
}

func TestCheckIsPure(t *testing.T) {
	keys := []string{"A", "B", "C"}
	refLines := []string{"A=%s", "B=b", "C=c"}
	refValues := map[string]string{"A": "%s", "B": "b", "C": "c"}
	values := map[string]string{"A": "x", "B": "#b"}

	c := newChecker(keys, refLines, refValues)
	first := c.check("fr", values)
	second := c.check("fr", values)

	assert.Equal(t, first, second)
	assert.Equal(t, []string{"A", "B", "C"}, keys)
	assert.Equal(t, []string{"A=%s", "B=b", "C=c"}, refLines)
	assert.Equal(t, map[string]string{"A": "x", "B": "#b"}, values)
	assert.Equal(t, 3, first.count())
}

func TestCheckerConcurrentLocales(t *testing.T) {
	keys := []string{"A", "B"}
	c := newChecker(keys, []string{"A=%s", "B=b"}, map[string]string{"A": "%s", "B": "b"})

	locales := map[string]map[string]string{
		"fr": {"A": "%s", "B": "b"},
		"de": {"A": "x"},
		"es": {"A": "#%s", "B": "b"},
	}
	want := make(map[string]localeReport, len(locales))
	for name, values := range locales {
		want[name] = c.check(name, values)
	}

	var wg sync.WaitGroup
	got := make(map[string]localeReport, len(locales))
	var mu sync.Mutex
	for name, values := range locales {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r := c.check(name, values)
			mu.Lock()
			got[name] = r
			mu.Unlock()
		}()
	}
	wg.Wait()

	assert.Equal(t, want, got)
	assert.True(t, got["fr"].empty())
}

func TestCategoryLabels(t *testing.T) {
	assert.Equal(t, "Missing", categoryMissing.label())
	assert.Equal(t, "Bad format", categoryBadFormat.label())
	assert.Equal(t, "Not translated", categoryUntranslated.label())
}

func intPtr(n int) *int {
	return &n
}
