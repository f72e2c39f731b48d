/*
Copyright © 2025 Dmitry Mozzherin <dmozzherin@gmail.com>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/gnames/gn"
	"github.com/gnames/gnspecies/internal/iofs"
	"github.com/gnames/gnspecies/internal/iologger"
	gnspecies "github.com/gnames/gnspecies/pkg"
	"github.com/gnames/gnspecies/pkg/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	homeDir string
	opts    []config.Option
	cfg     *config.Config
)

// getRootCmd returns the root command with all subcommands attached.
// Extracted as a function to facilitate testing.
func getRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Version: fmt.Sprintf(
			"version: %s\nbuild:   %s", gnspecies.Version, gnspecies.Build,
		),
		Use:   "gnspecies",
		Short: "GNspecies finds species information in Wikispecies and Wikipedia",
		Long: `GNspecies collects what is known about a species from Wikispecies
and Wikipedia and merges it into one record: description, taxonomic
classification, habitat and a few fun facts.

Commands:
  - search: find one or more species by name
  - identify: guess a species from an image file name and find it
  - batch: find species listed in a file, optionally saving to SQLite

Configuration precedence (highest to lowest):
  1. CLI flags
  2. Environment variables (GNSPECIES_*)
  3. Config file (~/.config/gnspecies/config.yaml)
  4. Built-in defaults

Environment variables:
  GNSPECIES_WIKI_USER_AGENT       User-Agent sent to MediaWiki services
  GNSPECIES_WIKI_TIMEOUT_SEC      Request timeout in seconds
  GNSPECIES_WIKI_RATE_LIMIT       Requests per second to each service
  GNSPECIES_LOG_LEVEL             Log level (debug/info/warn/error)
  GNSPECIES_JOBS_NUMBER           Concurrent searches in batch mode
  GNSPECIES_FORMAT                Output format

  See 'go doc github.com/gnames/gnspecies/pkg/config' for complete list.`,
		PersistentPreRunE: bootstrap,
		RunE:              runRoot,
		SilenceErrors:     true,
		SilenceUsage:      true,
	}

	// Remove the automatic "gnspecies version" prefix
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	// Override version flag to use -V (consistent with other gn projects)
	rootCmd.Flags().BoolP("version", "V", false, "version for gnspecies")

	rootCmd.PersistentFlags().StringP(
		"format", "f", "",
		"output format: pretty, compact, csv, tsv, text",
	)

	rootCmd.AddCommand(getSearchCmd())
	rootCmd.AddCommand(getIdentifyCmd())
	rootCmd.AddCommand(getBatchCmd())

	return rootCmd
}

func bootstrap(cmd *cobra.Command, args []string) error {
	var err error
	homeDir, err = os.UserHomeDir()
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = iofs.EnsureDirs(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	// Initialize logging with hardcoded defaults
	// Will be reconfigured later with user's config settings
	defaultLog := config.LogConfig{
		Format:      "json",
		Level:       "info",
		Destination: "file",
	}
	if err = iologger.Init(config.LogDir(homeDir), defaultLog); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = iofs.EnsureConfigFile(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	var cfgViper *config.Config
	if cfgViper, err = initConfig(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	cfg = config.New()
	opts = cfgViper.ToOptions()
	cfg.Update(opts)

	// Set HomeDir after config is loaded
	cfg.Update([]config.Option{config.OptHomeDir(homeDir)})

	applyFlags(cmd, formatFlag)

	// Reconfigure logging with user's settings and proper log file location
	if err = reconfigureLogging(cfg); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	slog.Info("Configuration loaded", "config_file", config.ConfigFilePath(homeDir))

	return nil
}

// reconfigureLogging reinitializes the logger with the loaded configuration.
// Creates log file in the proper location now that we know HomeDir.
func reconfigureLogging(cfg *config.Config) error {
	logDir := config.LogDir(cfg.HomeDir)
	return iologger.Init(logDir, cfg.Log)
}

func runRoot(cmd *cobra.Command, args []string) error {
	versionFlag(cmd)
	gn.Info(
		"Configuration files are available at <em>%s</em>",
		config.ConfigDir(homeDir),
	)
	return cmd.Help()
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := getRootCmd().Execute()
	if err != nil {
		os.Exit(1)
	}
}

func initConfig(home string) (*config.Config, error) {
	var err error
	cfgPath := config.ConfigFilePath(home)
	v := viper.New()
	v.SetConfigFile(cfgPath)

	initEnvVars(v)

	if err = v.ReadInConfig(); err != nil {
		return nil, iofs.ReadFileError(cfgPath, err)
	}

	var res config.Config
	if err = v.Unmarshal(&res); err != nil {
		return nil, iofs.ReadFileError(cfgPath, err)
	}

	return &res, nil
}

func initEnvVars(v *viper.Viper) {
	// Set environment variables we want.
	// We set them manually so we can see clearly which env variables are allowed.
	// These match the fields included in config.ToOptions() - i.e., persistent
	// configuration that can be stored in config.yaml.
	v.SetEnvPrefix("GNSPECIES")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// MediaWiki services
	v.BindEnv("wiki.directory_url", "GNSPECIES_WIKI_DIRECTORY_URL")
	v.BindEnv("wiki.encyclopedia_url", "GNSPECIES_WIKI_ENCYCLOPEDIA_URL")
	v.BindEnv("wiki.user_agent", "GNSPECIES_WIKI_USER_AGENT")
	v.BindEnv("wiki.timeout_sec", "GNSPECIES_WIKI_TIMEOUT_SEC")
	v.BindEnv("wiki.rate_limit", "GNSPECIES_WIKI_RATE_LIMIT")
	v.BindEnv("wiki.max_retries", "GNSPECIES_WIKI_MAX_RETRIES")

	// Log configuration
	v.BindEnv("log.level", "GNSPECIES_LOG_LEVEL")
	v.BindEnv("log.format", "GNSPECIES_LOG_FORMAT")
	v.BindEnv("log.destination", "GNSPECIES_LOG_DESTINATION")

	// General configuration
	v.BindEnv("jobs_number", "GNSPECIES_JOBS_NUMBER")
	v.BindEnv("format", "GNSPECIES_FORMAT")

	v.AutomaticEnv()
}
