package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
)

const (
	defaultConfigFile = ".langcheck.toml"
	envPrefix         = "LANGCHECK_"
)

// Config describes where the language files live and how the tool logs.
// Values are layered: built-in defaults, then the TOML project file, then
// LANGCHECK_* environment variables, then command-line flags.
type Config struct {
	Root      string `toml:"root" env:"ROOT"`
	LangsDir  string `toml:"langs_dir" env:"LANGS_DIR"`
	Reference string `toml:"reference" env:"REFERENCE"`
	Extension string `toml:"extension" env:"EXTENSION"`
	KeysFile  string `toml:"keys_file" env:"KEYS_FILE"`
	SourceDir string `toml:"source_dir" env:"SOURCE_DIR"`
	Workers   int    `toml:"workers" env:"WORKERS"`
	LogLevel  string `toml:"log_level" env:"LOG_LEVEL"`
	LogFormat string `toml:"log_format" env:"LOG_FORMAT"`
}

func defaultConfig() Config {
	return Config{
		LangsDir:  "core/langs",
		Reference: "english",
		Extension: ".lng",
		KeysFile:  "core/classes/class.lang.php",
		SourceDir: "core",
		Workers:   4,
		LogLevel:  "info",
		LogFormat: string(logFormatText),
	}
}

// loadConfig builds the effective configuration. An empty path means the
// optional .langcheck.toml in the current directory; an explicit path must
// exist.
func loadConfig(path string) (*Config, error) {
	// .env is optional; variables may come from the environment directly.
	_ = godotenv.Load()

	cfg := defaultConfig()

	explicit := path != ""
	if !explicit {
		path = defaultConfigFile
	}
	if err := cfg.readFile(path); err != nil {
		if explicit || !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}

	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: envPrefix}); err != nil {
		return nil, errors.Join(ErrInvalidConfig, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) readFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	dec := toml.NewDecoder(f).DisallowUnknownFields()
	if err := dec.Decode(c); err != nil {
		return errors.Join(ErrInvalidConfig, fmt.Errorf("parsing %s: %w", path, err))
	}
	return nil
}

func (c *Config) validate() error {
	if strings.TrimSpace(c.LangsDir) == "" {
		return fmt.Errorf("%w: langs_dir must not be empty", ErrInvalidConfig)
	}
	if strings.TrimSpace(c.Reference) == "" {
		return fmt.Errorf("%w: reference must not be empty", ErrInvalidConfig)
	}
	if !strings.HasPrefix(c.Extension, ".") || len(c.Extension) < 2 {
		return fmt.Errorf("%w: extension %q must start with a dot", ErrInvalidConfig, c.Extension)
	}
	if c.Workers < 1 {
		return fmt.Errorf("%w: workers must be at least 1, got %d", ErrInvalidConfig, c.Workers)
	}
	if _, err := parseLogLevel(c.LogLevel); err != nil {
		return errors.Join(ErrInvalidConfig, err)
	}
	switch logFormat(c.LogFormat) {
	case logFormatText, logFormatJSON:
	default:
		return fmt.Errorf("%w: log_format must be %q or %q, got %q", ErrInvalidConfig, logFormatText, logFormatJSON, c.LogFormat)
	}
	return nil
}
