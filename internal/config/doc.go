// Package config loads, normalizes, and validates quotegen configuration.
//
// Settings come from a TOML file (an explicit --config path, or quotegen.toml
// in the working directory) layered over repository defaults. Command-line
// flags are applied on top by the caller before Validate runs again.
package config
