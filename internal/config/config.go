// Package config defines gobraze's runtime configuration.
package config

import "time"

// Config is populated by viper from the config file, environment, and flags.
type Config struct {
	// FilesDir holds local copies of the reference PDFs.
	FilesDir string `mapstructure:"files_dir"`

	// FetchTimeout bounds each reference download.
	FetchTimeout time.Duration `mapstructure:"fetch_timeout"`
}

// Defaults returns the built-in configuration values.
func Defaults() Config {
	return Config{
		FilesDir:     "files",
		FetchTimeout: 30 * time.Second,
	}
}
