package config_test

import (
	"path/filepath"
	"runtime"
	"testing"

	"github.com/gnames/gnspecies/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirs(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping test that uses file system in short mode")
	}

	tempHome := t.TempDir()

	tests := []struct {
		msg string
		fn  func(string) string
		res string
	}{
		{
			msg: "config dir",
			fn:  config.ConfigDir,
			res: filepath.Join(tempHome, ".config", "gnspecies"),
		},
		{
			msg: "cache dir",
			fn:  config.CacheDir,
			res: filepath.Join(tempHome, ".cache", "gnspecies"),
		},
		{
			msg: "log dir",
			fn:  config.LogDir,
			res: filepath.Join(tempHome, ".local", "share", "gnspecies", "logs"),
		},
		{
			msg: "config file",
			fn:  config.ConfigFilePath,
			res: filepath.Join(tempHome, ".config", "gnspecies", "config.yaml"),
		},
	}

	for _, v := range tests {
		res := v.fn(tempHome)
		assert.Equal(t, v.res, res, v.msg)
	}
}

func TestNew(t *testing.T) {
	cfg := config.New()
	require.NotNil(t, cfg)

	assert.Equal(t, "https://species.wikimedia.org/w/api.php", cfg.Wiki.DirectoryURL)
	assert.Equal(t, "https://en.wikipedia.org/w/api.php", cfg.Wiki.EncyclopediaURL)
	assert.Equal(t, config.DefaultUserAgent, cfg.Wiki.UserAgent)
	assert.Equal(t, 20, cfg.Wiki.TimeoutSec)
	assert.Equal(t, 5, cfg.Wiki.RateLimit)
	assert.Equal(t, 3, cfg.Wiki.MaxRetries)

	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "file", cfg.Log.Destination)

	assert.Equal(t, runtime.NumCPU(), cfg.JobsNumber)
	assert.Equal(t, "pretty", cfg.Format)
	assert.Empty(t, cfg.HomeDir)
}

func TestOptionWikiURL(t *testing.T) {
	def := config.New().Wiki.DirectoryURL
	tests := []struct {
		msg   string
		input string
		res   string
	}{
		{"sets valid url", "http://localhost:8080/w/api.php",
			"http://localhost:8080/w/api.php"},
		{"trims whitespace", "  https://example.org/api.php ",
			"https://example.org/api.php"},
		{"ignores empty", "", def},
		{"ignores missing scheme", "example.org/api.php", def},
		{"ignores other schemes", "ftp://example.org/api.php", def},
	}

	for _, v := range tests {
		t.Run(v.msg, func(t *testing.T) {
			cfg := config.New()
			cfg.Update([]config.Option{config.OptWikiDirectoryURL(v.input)})
			assert.Equal(t, v.res, cfg.Wiki.DirectoryURL)
		})
	}
}

func TestOptionWikiNumbers(t *testing.T) {
	tests := []struct {
		msg string
		opt config.Option
		get func(*config.Config) int
		res int
	}{
		{"timeout", config.OptWikiTimeoutSec(5),
			func(c *config.Config) int { return c.Wiki.TimeoutSec }, 5},
		{"zero timeout", config.OptWikiTimeoutSec(0),
			func(c *config.Config) int { return c.Wiki.TimeoutSec }, 20},
		{"rate limit", config.OptWikiRateLimit(1),
			func(c *config.Config) int { return c.Wiki.RateLimit }, 1},
		{"negative rate limit", config.OptWikiRateLimit(-1),
			func(c *config.Config) int { return c.Wiki.RateLimit }, 5},
		{"no retries", config.OptWikiMaxRetries(0),
			func(c *config.Config) int { return c.Wiki.MaxRetries }, 0},
		{"negative retries", config.OptWikiMaxRetries(-2),
			func(c *config.Config) int { return c.Wiki.MaxRetries }, 3},
		{"jobs", config.OptJobsNumber(8),
			func(c *config.Config) int { return c.JobsNumber }, 8},
		{"zero jobs", config.OptJobsNumber(0),
			func(c *config.Config) int { return c.JobsNumber }, runtime.NumCPU()},
	}

	for _, v := range tests {
		t.Run(v.msg, func(t *testing.T) {
			cfg := config.New()
			cfg.Update([]config.Option{v.opt})
			assert.Equal(t, v.res, v.get(cfg))
		})
	}
}

func TestOptionEnums(t *testing.T) {
	tests := []struct {
		msg string
		opt config.Option
		get func(*config.Config) string
		res string
	}{
		{"log level", config.OptLogLevel("DEBUG"),
			func(c *config.Config) string { return c.Log.Level }, "debug"},
		{"bad log level", config.OptLogLevel("trace"),
			func(c *config.Config) string { return c.Log.Level }, "info"},
		{"log format", config.OptLogFormat("text"),
			func(c *config.Config) string { return c.Log.Format }, "text"},
		{"bad log format", config.OptLogFormat("xml"),
			func(c *config.Config) string { return c.Log.Format }, "json"},
		{"log destination", config.OptLogDestination(" stderr "),
			func(c *config.Config) string { return c.Log.Destination }, "stderr"},
		{"bad log destination", config.OptLogDestination("stdin"),
			func(c *config.Config) string { return c.Log.Destination }, "file"},
		{"output format", config.OptFormat("CSV"),
			func(c *config.Config) string { return c.Format }, "csv"},
		{"bad output format", config.OptFormat("xml"),
			func(c *config.Config) string { return c.Format }, "pretty"},
	}

	for _, v := range tests {
		t.Run(v.msg, func(t *testing.T) {
			cfg := config.New()
			cfg.Update([]config.Option{v.opt})
			assert.Equal(t, v.res, v.get(cfg))
		})
	}
}

func TestMultipleOptions(t *testing.T) {
	t.Run("applies multiple options in order", func(t *testing.T) {
		cfg := config.New()
		cfg.Update([]config.Option{
			config.OptWikiUserAgent("tester/1.0"),
			config.OptLogLevel("debug"),
			config.OptJobsNumber(16),
		})

		assert.Equal(t, "tester/1.0", cfg.Wiki.UserAgent)
		assert.Equal(t, "debug", cfg.Log.Level)
		assert.Equal(t, 16, cfg.JobsNumber)
		assert.Equal(t, "json", cfg.Log.Format)
	})

	t.Run("later options override earlier ones", func(t *testing.T) {
		cfg := config.New()
		cfg.Update([]config.Option{
			config.OptWikiUserAgent("first"),
			config.OptWikiUserAgent("second"),
		})
		assert.Equal(t, "second", cfg.Wiki.UserAgent)
	})
}

func TestToOptions(t *testing.T) {
	t.Run("round trip of persistent fields", func(t *testing.T) {
		original := config.New()
		original.Update([]config.Option{
			config.OptWikiDirectoryURL("http://localhost/dir"),
			config.OptWikiEncyclopediaURL("http://localhost/enc"),
			config.OptWikiUserAgent("tester/1.0"),
			config.OptWikiTimeoutSec(7),
			config.OptWikiRateLimit(2),
			config.OptWikiMaxRetries(0),
			config.OptLogLevel("debug"),
			config.OptLogFormat("text"),
			config.OptLogDestination("stdout"),
			config.OptJobsNumber(8),
			config.OptFormat("tsv"),
		})

		newCfg := config.New()
		newCfg.Update(original.ToOptions())

		assert.Equal(t, original.Wiki, newCfg.Wiki)
		assert.Equal(t, original.Log, newCfg.Log)
		assert.Equal(t, original.JobsNumber, newCfg.JobsNumber)
		assert.Equal(t, original.Format, newCfg.Format)
	})

	t.Run("excludes runtime-only fields", func(t *testing.T) {
		cfg := config.New()
		cfg.Update([]config.Option{config.OptHomeDir("/custom/home")})
		assert.Equal(t, "/custom/home", cfg.HomeDir)

		newCfg := config.New()
		newCfg.Update(cfg.ToOptions())
		assert.Equal(t, "", newCfg.HomeDir)
	})
}
