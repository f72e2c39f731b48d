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
	"context"
	"os"
	"os/signal"

	"github.com/gnames/gn"
	"github.com/gnames/gnspecies/internal/ioexport"
	"github.com/gnames/gnspecies/internal/iofinder"
	"github.com/spf13/cobra"
)

// getBatchCmd returns the batch command.
// Extracted as a function to facilitate testing and dynamic
// command registration.
func getBatchCmd() *cobra.Command {
	var outPath string

	batchCmd := &cobra.Command{
		Use:   "batch FILE",
		Short: "Find species listed in a file, one name per line",
		Long: `Find many species concurrently.

The input file contains one name per line. Empty lines and lines
starting with '#' are ignored. Results keep the order of the input.

Without --output the records are printed in the chosen format. With
--output they are saved to a SQLite database with tables species,
classification and fun_facts. An existing database file is replaced.

Examples:
  gnspecies batch names.txt
  gnspecies batch names.txt -j 4 -f csv
  gnspecies batch names.txt -o species.sqlite`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			applyFlags(cmd, jobsFlag)
			err := runBatch(args[0], outPath)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	batchCmd.Flags().IntP(
		"jobs", "j", 0,
		"number of concurrent searches (default: number of CPU threads)",
	)
	batchCmd.Flags().StringVarP(
		&outPath, "output", "o", "",
		"save results to a SQLite database file",
	)

	return batchCmd
}

func runBatch(path, outPath string) error {
	names, err := iofinder.ReadNames(path)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	f := newFinder()
	defer f.Close()

	recs, err := iofinder.Batch(ctx, f, names, cfg.JobsNumber)
	if err != nil {
		return err
	}

	if outPath != "" {
		return ioexport.SQLite(ctx, outPath, recs)
	}
	return printRecords(recs)
}
