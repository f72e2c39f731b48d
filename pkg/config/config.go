// Package config provides configuration management for gnspecies.
//
// This package has no I/O dependencies (no file operations, no network calls).
// Validation functions may write user-facing warnings via gn.Warn().
//
// # Configuration Sources
//
// Precedence (highest to lowest): CLI flags > env vars > config.yaml > defaults
//
// # Design Principles
//
// - Default config (from New()) is always valid - no validation needed
// - All mutations go through Option functions - the only way to modify Config
// - Invalid options are rejected with gn.Warn() - config remains in valid state
// - ToOptions() converts persistent fields (those in config.yaml)
// - Environment variables match ToOptions() fields exactly
//
// # Persistent vs Runtime Fields
//
// Persistent fields (in ToOptions, config.yaml, and env vars):
//   - Wiki: directory_url, encyclopedia_url, user_agent, timeout_sec,
//     rate_limit, max_retries
//   - Log: level, format, destination
//   - General: jobs_number, format
//
// Runtime-only fields (CLI flags only):
//   - HomeDir (set once at startup)
//
// # Environment Variables
//
// Use GNSPECIES_ prefix with underscores for nesting:
//
//	GNSPECIES_WIKI_USER_AGENT="gnspecies/v0.1.0 (me@example.org)"
//	GNSPECIES_WIKI_TIMEOUT_SEC=20
//	GNSPECIES_LOG_LEVEL=info
//	GNSPECIES_JOBS_NUMBER=8
package config

import (
	"runtime"
)

// Config represents the complete gnspecies configuration.
type Config struct {
	// Wiki contains settings of MediaWiki services used as sources.
	Wiki WikiConfig `mapstructure:"wiki" yaml:"wiki"`

	Log LogConfig `mapstructure:"log" yaml:"log"`

	// JobsNumber is the number of concurrent workers for batch searches.
	// Default value is set according to the number of available threads.
	JobsNumber int `mapstructure:"jobs_number" yaml:"jobs_number"`

	// Format of the output: 'pretty', 'compact', 'csv', 'tsv' or 'text'.
	Format string `mapstructure:"format" yaml:"format"`

	// HomeDir determines where config, cache and logs directories reside.
	// It must be set by CLI during init, there is no default value for it.
	HomeDir string
}

// WikiConfig contains settings of the species directory and the
// encyclopedia services.
type WikiConfig struct {
	// DirectoryURL is the Action API endpoint of the species directory.
	DirectoryURL string `mapstructure:"directory_url" yaml:"directory_url"`

	// EncyclopediaURL is the Action API endpoint of the encyclopedia.
	EncyclopediaURL string `mapstructure:"encyclopedia_url" yaml:"encyclopedia_url"`

	// UserAgent is sent with every request. MediaWiki asks clients to
	// identify themselves with a contact address.
	UserAgent string `mapstructure:"user_agent" yaml:"user_agent"`

	// TimeoutSec is the timeout of one HTTP request in seconds.
	TimeoutSec int `mapstructure:"timeout_sec" yaml:"timeout_sec"`

	// RateLimit is the maximum number of requests per second to each
	// service.
	RateLimit int `mapstructure:"rate_limit" yaml:"rate_limit"`

	// MaxRetries is how many times a throttled (HTTP 429) request is
	// repeated. Zero disables retries.
	MaxRetries int `mapstructure:"max_retries" yaml:"max_retries"`
}

// LogConfig provides typical settings for application logs.
type LogConfig struct {
	// Format can be 'json' or 'text'.
	Format string `mapstructure:"format"      yaml:"format"`
	// Level of logging -- 'error', 'warn', 'info', 'debug'
	Level string `mapstructure:"level"       yaml:"level"`
	// Destination can be a log file (to default place), STDERR or STDOUT
	Destination string `mapstructure:"destination" yaml:"destination"`
}

// DefaultUserAgent identifies gnspecies to MediaWiki services.
const DefaultUserAgent = "gnspecies (https://github.com/gnames/gnspecies)"

// New creates a Config with sensible default values.
// The returned config is always valid and ready to use.
// Default values can be overridden using Option functions via Update().
func New() *Config {
	res := &Config{
		Wiki: WikiConfig{
			DirectoryURL:    "https://species.wikimedia.org/w/api.php",
			EncyclopediaURL: "https://en.wikipedia.org/w/api.php",
			UserAgent:       DefaultUserAgent,
			TimeoutSec:      20,
			RateLimit:       5,
			MaxRetries:      3,
		},
		Log: LogConfig{
			Format: "json",
			Level:  "info",
			// for now file is rewritten every time the log starts
			Destination: "file",
		},
		JobsNumber: runtime.NumCPU(),
		Format:     "pretty",
	}

	return res
}
