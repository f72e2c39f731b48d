package cmd

import (
	"fmt"
	"os"

	gnspecies "github.com/gnames/gnspecies/pkg"
	"github.com/gnames/gnspecies/pkg/config"
	"github.com/spf13/cobra"
)

type funcFlag func(cmd *cobra.Command)

func versionFlag(cmd *cobra.Command) {
	hasVersionFlag, _ := cmd.Flags().GetBool("version")
	if hasVersionFlag {
		fmt.Printf("\nversion: %s\nbuild: %s\n\n", gnspecies.Version, gnspecies.Build)
		os.Exit(0)
	}
}

func formatFlag(cmd *cobra.Command) {
	if !cmd.Flags().Changed("format") {
		return
	}
	format, _ := cmd.Flags().GetString("format")
	cfg.Update([]config.Option{config.OptFormat(format)})
}

func jobsFlag(cmd *cobra.Command) {
	if !cmd.Flags().Changed("jobs") {
		return
	}
	jobs, _ := cmd.Flags().GetInt("jobs")
	cfg.Update([]config.Option{config.OptJobsNumber(jobs)})
}

func applyFlags(cmd *cobra.Command, fs ...funcFlag) {
	for _, f := range fs {
		f(cmd)
	}
}
