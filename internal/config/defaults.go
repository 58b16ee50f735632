package config

import (
	"github.com/samuel7776/monkeytype/internal/fetch"
	"github.com/samuel7776/monkeytype/internal/quotes"
)

const (
	// ProjectConfigName is the file looked up in the working directory.
	ProjectConfigName = "quotegen.toml"

	defaultOutputRoot = "."
	defaultOutputPath = "frontend/static/quotes/english.json"
	defaultLogLevel   = "info"
	defaultLogFormat  = "auto"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Source: Source{
			BaseURL:        fetch.DefaultBaseURL,
			UserAgent:      fetch.DefaultUserAgent,
			TimeoutSeconds: int(fetch.DefaultTimeout.Seconds()),
		},
		Output: Output{
			Root:     defaultOutputRoot,
			Path:     defaultOutputPath,
			Language: quotes.DefaultLanguage,
		},
		Logging: Logging{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
		},
	}
}
