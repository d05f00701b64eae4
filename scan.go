package main

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// keyReference records where a registry constant is used.
type keyReference struct {
	File string `json:"file" yaml:"file"`
	Line int    `json:"line" yaml:"line"`
}

// Patterns for uses of a registry constant.
var (
	// Lang::MENU_ABOUT, anywhere in the sources.
	langRefPattern = regexp.MustCompile(`\bLang::([A-Z][A-Z0-9_]*)\b`)
	// self::MENU_ABOUT or static::MENU_ABOUT; only the registry class itself
	// resolves these to its own constants.
	selfRefPattern = regexp.MustCompile(`\b(?:self|static)::([A-Z][A-Z0-9_]*)\b`)
)

// scanSourceFiles walks the source tree and returns file paths matching
// the given extensions.
func scanSourceFiles(root string, exts []string) ([]string, error) {
	var files []string
	extSet := make(map[string]bool, len(exts))
	for _, e := range exts {
		extSet[e] = true
	}
	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		name := d.Name()
		if d.IsDir() {
			if name == "node_modules" || name == ".git" || name == "vendor" || name == "tmp" {
				return filepath.SkipDir
			}
			return nil
		}
		if extSet[filepath.Ext(name)] {
			files = append(files, path)
		}
		return nil
	})
	return files, err
}

// findKeyReferences scans PHP sources under srcDir for uses of registry
// constants. The result is keyed by translation key; the registry file's
// own declarations do not count as uses.
func findKeyReferences(root, srcDir, registry string, consts []registryConstant) (map[string][]keyReference, error) {
	files, err := scanSourceFiles(srcDir, []string{".php"})
	if err != nil {
		return nil, err
	}

	byName := make(map[string]string, len(consts))
	for _, c := range consts {
		byName[c.Name] = c.Value
	}

	refs := make(map[string][]keyReference)
	for _, file := range files {
		data, err := os.ReadFile(file)
		if err != nil {
			continue
		}
		relPath, _ := filepath.Rel(root, file)
		isRegistry := file == registry
		patterns := []*regexp.Regexp{langRefPattern}
		if isRegistry {
			patterns = append(patterns, selfRefPattern)
		}
		for i, line := range strings.Split(string(data), "\n") {
			if isRegistry && registryConstPattern.MatchString(line) {
				continue
			}
			var matches [][]string
			for _, pat := range patterns {
				matches = append(matches, pat.FindAllStringSubmatch(line, -1)...)
			}
			for _, m := range matches {
				key, ok := byName[m[1]]
				if !ok {
					continue
				}
				refs[key] = append(refs[key], keyReference{File: relPath, Line: i + 1})
			}
		}
	}
	return refs, nil
}

// loadRegistry reads the key constants from the PHP registry class.
func (w *workspace) loadRegistry() (string, []registryConstant, error) {
	path := w.resolve(w.cfg.KeysFile)
	if !strings.EqualFold(filepath.Ext(path), ".php") {
		return "", nil, fmt.Errorf("source references need a PHP key registry, got %s", path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", nil, err
	}
	consts, err := parseRegistryConstants(data)
	if err != nil {
		return "", nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if len(consts) == 0 {
		return "", nil, fmt.Errorf("%w in %s", ErrNoKeys, path)
	}
	return path, consts, nil
}

// keyReferences scans the configured source directory.
func (w *workspace) keyReferences() ([]registryConstant, map[string][]keyReference, error) {
	registry, consts, err := w.loadRegistry()
	if err != nil {
		return nil, nil, err
	}
	refs, err := findKeyReferences(w.root, w.resolve(w.cfg.SourceDir), registry, consts)
	if err != nil {
		return nil, nil, err
	}
	return consts, refs, nil
}
