package main

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// registryConstPattern matches a key constant declared in the Lang class,
// e.g. `const ALL_RUNNING_HOVER = 'allRunningHover';`.
var registryConstPattern = regexp.MustCompile(`^\s*(?:public\s+)?const\s+([A-Z][A-Z0-9_]*)\s*=\s*['"]([^'"]+)['"]\s*;`)

// keySetParsers maps a registry file extension to its parser. Unknown
// extensions are read as plain text, one key per line.
var keySetParsers = map[string]func([]byte) ([]string, error){
	".php":  parsePHPKeys,
	".yaml": parseYAMLKeys,
	".yml":  parseYAMLKeys,
	".toml": parseTOMLKeys,
}

// loadKeySet loads the ordered list of registered translation keys.
func loadKeySet(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	parse, ok := keySetParsers[strings.ToLower(filepath.Ext(path))]
	if !ok {
		parse = parseTextKeys
	}
	keys, err := parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	keys = dedupeKeys(keys)
	if len(keys) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoKeys, path)
	}
	return keys, nil
}

// registryConstant is a key constant found in the registry class.
type registryConstant struct {
	Name  string
	Value string
}

func parseRegistryConstants(data []byte) ([]registryConstant, error) {
	var consts []registryConstant
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		if m := registryConstPattern.FindStringSubmatch(scanner.Text()); m != nil {
			consts = append(consts, registryConstant{Name: m[1], Value: m[2]})
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading registry: %w", err)
	}
	return consts, nil
}

func parsePHPKeys(data []byte) ([]string, error) {
	consts, err := parseRegistryConstants(data)
	if err != nil {
		return nil, err
	}
	var keys []string
	for _, c := range consts {
		keys = append(keys, c.Value)
	}
	return keys, nil
}

// parseYAMLKeys accepts either a bare sequence or a mapping with a "keys"
// sequence.
func parseYAMLKeys(data []byte) ([]string, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, nil
	}
	node := doc.Content[0]
	if node.Kind == yaml.MappingNode {
		var wrapped struct {
			Keys []string `yaml:"keys"`
		}
		if err := node.Decode(&wrapped); err != nil {
			return nil, err
		}
		return wrapped.Keys, nil
	}
	var keys []string
	if err := node.Decode(&keys); err != nil {
		return nil, err
	}
	return keys, nil
}

func parseTOMLKeys(data []byte) ([]string, error) {
	var doc struct {
		Keys []string `toml:"keys"`
	}
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return doc.Keys, nil
}

func parseTextKeys(data []byte) ([]string, error) {
	var keys []string
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		key := strings.TrimSpace(scanner.Text())
		if key == "" || strings.HasPrefix(key, "#") {
			continue
		}
		keys = append(keys, key)
	}
	return keys, scanner.Err()
}

// dedupeKeys drops empty and repeated keys, keeping first occurrences.
func dedupeKeys(keys []string) []string {
	seen := make(map[string]bool, len(keys))
	out := keys[:0:0]
	for _, k := range keys {
		k = strings.TrimSpace(k)
		if k == "" || seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, k)
	}
	return out
}
