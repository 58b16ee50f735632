package config

import (
	"strings"
)

func (c *Config) normalize() {
	c.Source.BaseURL = strings.TrimRight(strings.TrimSpace(c.Source.BaseURL), "/")
	c.Source.UserAgent = strings.TrimSpace(c.Source.UserAgent)

	c.Catalog.Path = strings.TrimSpace(c.Catalog.Path)

	c.Output.Root = strings.TrimSpace(c.Output.Root)
	if c.Output.Root == "" {
		c.Output.Root = defaultOutputRoot
	}
	c.Output.Path = strings.TrimSpace(c.Output.Path)
	c.Output.SQLite = strings.TrimSpace(c.Output.SQLite)
	c.Output.Language = strings.TrimSpace(c.Output.Language)

	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
}

// Normalize trims values and fills in empty optional fields. Callers that
// change a loaded Config should call Normalize and Validate again.
func (c *Config) Normalize() {
	c.normalize()
}
