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
	"fmt"
	"os"
	"os/signal"

	"github.com/gnames/gn"
	"github.com/gnames/gnspecies/internal/iofinder"
	"github.com/gnames/gnspecies/internal/iowiki"
	gnspecies "github.com/gnames/gnspecies/pkg"
	"github.com/gnames/gnspecies/pkg/ent/record"
	"github.com/spf13/cobra"
)

// getSearchCmd returns the search command.
// Extracted as a function to facilitate testing and dynamic
// command registration.
func getSearchCmd() *cobra.Command {
	searchCmd := &cobra.Command{
		Use:   "search NAME [NAME...]",
		Short: "Find species information by name",
		Long: `Find a species in Wikispecies and Wikipedia and print the merged record.

Scientific names with authorship are normalized to their canonical form
before the search. Common names are searched as they are.

This command:
  1. Normalizes every name with gnparser
  2. Queries Wikispecies and Wikipedia concurrently
  3. Extracts description, classification, habitat and fun facts
  4. Merges both results into one record

Examples:
  gnspecies search "Panthera leo"
  gnspecies search "Panthera leo (Linnaeus, 1758)" -f text
  gnspecies search "Bellis perennis" "Canis lupus" -f csv`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runSearch(args)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	return searchCmd
}

func runSearch(names []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	f := newFinder()
	defer f.Close()

	recs, err := search(ctx, f, names)
	if err != nil {
		return err
	}
	return printRecords(recs)
}

func search(
	ctx context.Context,
	f gnspecies.Finder,
	names []string,
) ([]record.Species, error) {
	res := make([]record.Species, 0, len(names))
	for _, v := range names {
		sp, err := f.Find(ctx, v)
		if err != nil {
			return nil, err
		}
		res = append(res, sp)
	}
	return res, nil
}

// newFinder creates a finder backed by the configured MediaWiki services.
func newFinder() gnspecies.Finder {
	dir := iowiki.NewDirectory(cfg.Wiki)
	enc := iowiki.NewEncyclopedia(cfg.Wiki)
	return iofinder.New(cfg, dir, enc)
}

func printRecords(recs []record.Species) error {
	out, err := output(recs, cfg.Format)
	if err != nil {
		return err
	}
	fmt.Println(out)
	return nil
}
