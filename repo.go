package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// workspace ties the effective configuration to a resolved repository root.
type workspace struct {
	cfg    *Config
	root   string
	logger *slog.Logger
}

func newWorkspace(cfg *Config, root string, logger *slog.Logger) *workspace {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &workspace{cfg: cfg, root: root, logger: logger}
}

// commonFlags are accepted by every subcommand.
type commonFlags struct {
	config   *string
	root     *string
	logLevel *string
}

func addCommonFlags(fs *flag.FlagSet) *commonFlags {
	return &commonFlags{
		config:   fs.String("config", "", "Path to a TOML config file (default .langcheck.toml if present)"),
		root:     fs.String("root", "", "Repository root (default: search upward for core/langs)"),
		logLevel: fs.String("log-level", "", "Log level: debug, info, warn, error"),
	}
}

// open loads the configuration, applies flag overrides and resolves the
// repository root.
func (c *commonFlags) open() (*workspace, error) {
	cfg, err := loadConfig(*c.config)
	if err != nil {
		return nil, err
	}
	if *c.root != "" {
		cfg.Root = *c.root
	}
	if *c.logLevel != "" {
		cfg.LogLevel = *c.logLevel
	}

	logger, err := newLogger(os.Stderr, cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return nil, err
	}

	root := cfg.Root
	if root == "" {
		if root, err = repoRoot(cfg.LangsDir); err != nil {
			return nil, err
		}
	}
	root, err = filepath.Abs(root)
	if err != nil {
		return nil, err
	}
	logger.Debug("workspace resolved", slog.String("root", root), slog.String("reference", cfg.Reference))
	return newWorkspace(cfg, root, logger), nil
}

// repoRoot returns the repository root by walking up from the current
// directory looking for the languages directory.
func repoRoot(langsDir string) (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}
	for {
		if info, err := os.Stat(filepath.Join(dir, langsDir)); err == nil && info.IsDir() {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", ErrRootNotFound
		}
		dir = parent
	}
}

// resolve returns p unchanged when absolute, otherwise relative to the root.
func (w *workspace) resolve(p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(w.root, p)
}

func (w *workspace) langsDir() string {
	return w.resolve(w.cfg.LangsDir)
}

// langPath returns the absolute path to a locale's language file.
func (w *workspace) langPath(locale string) string {
	return filepath.Join(w.langsDir(), locale+w.cfg.Extension)
}

// locales lists the candidate locales in the languages directory, excluding
// the reference locale.
func (w *workspace) locales() ([]string, error) {
	return listLocales(w.langsDir(), w.cfg.Extension, w.cfg.Reference)
}

func listLocales(dir, ext, reference string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", dir, err)
	}
	var locales []string
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, ext) {
			continue
		}
		locale := strings.TrimSuffix(name, ext)
		if locale == "" || locale == reference {
			continue
		}
		locales = append(locales, locale)
	}
	sort.Strings(locales)
	return locales, nil
}

// loadReference loads the reference language file. Any failure is fatal to
// the run since there is nothing to compare against.
func (w *workspace) loadReference() (*langFile, error) {
	ref, err := loadLangFile(w.langPath(w.cfg.Reference))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReferenceMissing, err)
	}
	return ref, nil
}

// loadKeys loads the key registry, falling back to the reference file's own
// key order when the registry file does not exist.
func (w *workspace) loadKeys(ref *langFile) ([]string, error) {
	path := w.resolve(w.cfg.KeysFile)
	if _, err := os.Stat(path); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("reading key registry: %w", err)
		}
		w.logger.Warn("key registry not found, using reference keys", slog.String("path", path))
		if len(ref.Keys) == 0 {
			return nil, ErrNoKeys
		}
		return ref.Keys, nil
	}
	keys, err := loadKeySet(path)
	if err != nil {
		return nil, err
	}
	w.logger.Debug("key registry loaded", slog.String("path", path), slog.Int("keys", len(keys)))
	return keys, nil
}
