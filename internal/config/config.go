package config

import (
	"bytes"
	_ "embed"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"

	qerrors "github.com/samuel7776/monkeytype/core/errors"
)

//go:embed sample_config.toml
var sampleConfig string

// Source configures where book documents are downloaded from.
type Source struct {
	BaseURL        string `toml:"base_url"`
	UserAgent      string `toml:"user_agent"`
	TimeoutSeconds int    `toml:"timeout_seconds"`
}

// Catalog points at an optional YAML reference catalog. Empty means the
// built-in catalog.
type Catalog struct {
	Path string `toml:"path"`
}

// Output controls where and how the dataset is written.
type Output struct {
	Root     string `toml:"root"`
	Path     string `toml:"path"`
	Language string `toml:"language"`
	XZ       bool   `toml:"xz"`
	SQLite   string `toml:"sqlite"`
}

// Logging contains configuration for log output.
type Logging struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// Config encapsulates all configuration values for quotegen.
type Config struct {
	Source  Source  `toml:"source"`
	Catalog Catalog `toml:"catalog"`
	Output  Output  `toml:"output"`
	Logging Logging `toml:"logging"`
}

// Load locates, parses and normalizes a configuration file.
// It returns the config, the path that was consulted, and whether that file
// existed. A missing file is not an error; defaults are used instead.
//
// Load does not validate: callers layer flags on top, then call Validate.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		data, err := os.ReadFile(resolvedPath)
		if err != nil {
			return nil, "", false, qerrors.NewIO("read config", resolvedPath, err)
		}
		decoder := toml.NewDecoder(bytes.NewReader(data))
		decoder.DisallowUnknownFields()
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, qerrors.NewParse("config", resolvedPath, err.Error(), err)
		}
	}

	cfg.normalize()
	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path == "" {
		path = ProjectConfigName
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", false, qerrors.NewIO("resolve path", path, err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return abs, false, nil
		}
		return "", false, qerrors.NewIO("stat config", abs, err)
	}
	if info.IsDir() {
		return "", false, qerrors.NewValidation("config", abs, "is a directory")
	}
	return abs, true, nil
}

// Timeout returns the per-request HTTP timeout.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.Source.TimeoutSeconds) * time.Second
}

// DatasetPath returns the JSON output path, resolved against Output.Root
// unless it is already absolute.
func (c *Config) DatasetPath() string {
	return c.resolve(c.Output.Path)
}

// SQLitePath returns the resolved SQLite export path, or "" when disabled.
func (c *Config) SQLitePath() string {
	if c.Output.SQLite == "" {
		return ""
	}
	return c.resolve(c.Output.SQLite)
}

func (c *Config) resolve(p string) string {
	if filepath.IsAbs(p) {
		return filepath.Clean(p)
	}
	return filepath.Join(c.Output.Root, p)
}

// Encode renders the effective configuration as TOML.
func (c *Config) Encode() ([]byte, error) {
	return toml.Marshal(c)
}

// CreateSample writes a sample configuration file to the specified location.
// An existing file is never overwritten.
func CreateSample(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return qerrors.NewIO("create config directory", dir, err)
		}
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return qerrors.NewIO("create sample config", path, err)
	}
	if _, err := f.WriteString(sampleConfig); err != nil {
		f.Close()
		return qerrors.NewIO("write sample config", path, err)
	}
	if err := f.Close(); err != nil {
		return qerrors.NewIO("close sample config", path, err)
	}
	return nil
}
