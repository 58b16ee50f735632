package config

import (
	"net/url"
	"path/filepath"
	"strconv"

	qerrors "github.com/samuel7776/monkeytype/core/errors"
	"github.com/samuel7776/monkeytype/internal/logging"
	"github.com/samuel7776/monkeytype/internal/validation"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateSource(); err != nil {
		return err
	}
	if err := c.validateOutput(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateSource() error {
	if c.Source.BaseURL == "" {
		return qerrors.NewValidation("source.base_url", "", "must be set")
	}
	u, err := url.Parse(c.Source.BaseURL)
	if err != nil || u.Host == "" {
		return qerrors.NewValidation("source.base_url", c.Source.BaseURL, "must be an absolute URL")
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return qerrors.NewValidation("source.base_url", c.Source.BaseURL, "scheme must be http or https")
	}
	if c.Source.TimeoutSeconds <= 0 {
		return qerrors.NewValidation("source.timeout_seconds", strconv.Itoa(c.Source.TimeoutSeconds), "must be positive")
	}
	return nil
}

func (c *Config) validateOutput() error {
	if c.Output.Path == "" {
		return qerrors.NewValidation("output.path", "", "must be set")
	}
	if err := checkOutputPath(c.Output.Root, c.Output.Path); err != nil {
		return &qerrors.ValidationError{Field: "output.path", Value: c.Output.Path, Message: err.Error(), Err: err}
	}
	if c.Output.SQLite != "" {
		if err := checkOutputPath(c.Output.Root, c.Output.SQLite); err != nil {
			return &qerrors.ValidationError{Field: "output.sqlite", Value: c.Output.SQLite, Message: err.Error(), Err: err}
		}
	}
	if c.Output.Language == "" {
		return qerrors.NewValidation("output.language", "", "must be set")
	}
	if c.Output.SQLite != "" && c.resolve(c.Output.SQLite) == c.DatasetPath() {
		return qerrors.NewValidation("output.sqlite", c.Output.SQLite, "must differ from output.path")
	}
	return nil
}

// checkOutputPath accepts absolute paths as given and keeps relative ones
// inside root.
func checkOutputPath(root, p string) error {
	if filepath.IsAbs(p) {
		return validation.ValidatePath(p)
	}
	_, err := validation.SanitizePath(root, p)
	return err
}

func (c *Config) validateLogging() error {
	if _, err := logging.ParseLevel(c.Logging.Level); err != nil {
		return qerrors.NewValidation("logging.level", c.Logging.Level, "must be debug, info, warn, or error")
	}
	if _, err := logging.ParseFormat(c.Logging.Format); err != nil {
		return qerrors.NewValidation("logging.format", c.Logging.Format, "must be auto, text, or json")
	}
	return nil
}
