package config

import (
	"strings"
)

// Option is a function that modifies a Config.
// Options validate inputs and reject invalid values with warnings.
type Option func(*Config)

// OptWikiDirectoryURL sets the Action API endpoint of the species
// directory.
func OptWikiDirectoryURL(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidURL("Wiki Directory URL", s) {
			c.Wiki.DirectoryURL = s
		}
	}
}

// OptWikiEncyclopediaURL sets the Action API endpoint of the
// encyclopedia.
func OptWikiEncyclopediaURL(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidURL("Wiki Encyclopedia URL", s) {
			c.Wiki.EncyclopediaURL = s
		}
	}
}

// OptWikiUserAgent sets the User-Agent header of requests.
func OptWikiUserAgent(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Wiki User Agent", s) {
			c.Wiki.UserAgent = s
		}
	}
}

// OptWikiTimeoutSec sets the HTTP request timeout in seconds.
func OptWikiTimeoutSec(i int) Option {
	return func(c *Config) {
		if isValidInt("Wiki Timeout", i) {
			c.Wiki.TimeoutSec = i
		}
	}
}

// OptWikiRateLimit sets the maximum number of requests per second.
func OptWikiRateLimit(i int) Option {
	return func(c *Config) {
		if isValidInt("Wiki Rate Limit", i) {
			c.Wiki.RateLimit = i
		}
	}
}

// OptWikiMaxRetries sets how many times a throttled request is repeated.
// Zero disables retries.
func OptWikiMaxRetries(i int) Option {
	return func(c *Config) {
		if isValidNonNegative("Wiki Max Retries", i) {
			c.Wiki.MaxRetries = i
		}
	}
}

// OptLogLevel sets the logging level.
// Valid values: "debug", "info", "warn", "error".
func OptLogLevel(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Level", s) {
			c.Log.Level = s
		}
	}
}

// OptLogFormat sets the log output format.
// Valid values: "json", "text".
func OptLogFormat(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Format", s) {
			c.Log.Format = s
		}
	}
}

// OptLogDestination sets where logs are written.
// Valid values: "file", "stderr", "stdout".
func OptLogDestination(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Destination", s) {
			c.Log.Destination = s
		}
	}
}

// OptJobsNumber sets the number of concurrent workers for batch searches.
// Default is runtime.NumCPU().
func OptJobsNumber(i int) Option {
	return func(c *Config) {
		if isValidInt("Jobs Number", i) {
			c.JobsNumber = i
		}
	}
}

// OptFormat sets the output format.
// Valid values: "pretty", "compact", "csv", "tsv", "text".
func OptFormat(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Format", s) {
			c.Format = s
		}
	}
}

// OptHomeDir sets the home directory for config, cache, and log locations.
// Set once at startup from os.UserHomeDir().
// Runtime-only field - not in ToOptions().
func OptHomeDir(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Home Directory", s) {
			c.HomeDir = s
		}
	}
}
