package main

import (
	"fmt"
	"os"
	"sort"
	"strings"
)

// langFile is a parsed language file. Lines keeps the raw text for line
// lookups; Values is the flat key=value mapping; Keys lists the keys in the
// order they first appear.
type langFile struct {
	Lines  []string
	Values map[string]string
	Keys   []string
}

// loadLangFile reads and parses a language file.
func loadLangFile(path string) (*langFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	lf, err := parseLang(string(data))
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return lf, nil
}

// parseLang parses INI-style key=value content. Comment lines (";" or "#"),
// section headers and lines without "=" are skipped. A double-quoted value
// is unquoted; an unterminated quote makes the whole file unparsable. An
// inline ";" comment after an unquoted value is dropped.
func parseLang(content string) (*langFile, error) {
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	// A trailing newline does not start another line.
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}

	lf := &langFile{
		Lines:  lines,
		Values: make(map[string]string),
	}
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || trimmed[0] == ';' || trimmed[0] == '#' || trimmed[0] == '[' {
			continue
		}
		key, value, ok := strings.Cut(trimmed, "=")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		if key == "" {
			return nil, fmt.Errorf("%w: line %d: empty key", ErrUnparsable, i+1)
		}
		value, err := unquoteValue(strings.TrimSpace(value))
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %w", ErrUnparsable, i+1, err)
		}
		if _, seen := lf.Values[key]; !seen {
			lf.Keys = append(lf.Keys, key)
		}
		lf.Values[key] = value
	}
	return lf, nil
}

// unquoteValue unquotes a double-quoted value. Unquoted values end at the
// first ";", which starts an inline comment.
func unquoteValue(s string) (string, error) {
	if s == "" || s[0] != '"' {
		if i := strings.IndexByte(s, ';'); i >= 0 {
			s = strings.TrimSpace(s[:i])
		}
		return s, nil
	}
	end := strings.LastIndexByte(s, '"')
	if end == 0 {
		return "", fmt.Errorf("unterminated quoted value %s", s)
	}
	return s[1:end], nil
}

// lineKey returns the key part of a raw line: the text before the first
// "=", trimmed. Lines without "=" have no key.
func lineKey(line string) (string, bool) {
	key, _, ok := strings.Cut(line, "=")
	if !ok {
		return "", false
	}
	return strings.TrimSpace(key), true
}

// sortedKeys returns sorted keys of a string map.
func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
