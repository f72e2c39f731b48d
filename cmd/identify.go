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
	"github.com/gnames/gnspecies/pkg/lookup"
	"github.com/spf13/cobra"
)

// getIdentifyCmd returns the identify command.
// Extracted as a function to facilitate testing and dynamic
// command registration.
func getIdentifyCmd() *cobra.Command {
	identifyCmd := &cobra.Command{
		Use:   "identify FILE",
		Short: "Guess a species from an image file name and find it",
		Long: `Guess which species an image shows and print its record.

The guess is based on keywords in the file name only, for example
"lion_at_dawn.jpg" is taken for Panthera leo. The image content is not
analyzed. Files without a known keyword are taken for Homo sapiens.

Supported extensions: png, jpg, jpeg, gif.

Examples:
  gnspecies identify my_lion.jpg
  gnspecies identify daisy.png -f text`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runIdentify(args[0])
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	return identifyCmd
}

func runIdentify(file string) error {
	name, err := identify(file)
	if err != nil {
		return err
	}
	gn.Info("Image <em>%s</em> looks like <em>%s</em>", file, name)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	f := newFinder()
	defer f.Close()

	recs, err := search(ctx, f, []string{name})
	if err != nil {
		return err
	}
	return printRecords(recs)
}

// identify returns the species name guessed from the file name.
func identify(file string) (string, error) {
	if !lookup.Allowed(file) {
		return "", UnsupportedFileError(file)
	}

	l, err := lookup.New()
	if err != nil {
		return "", err
	}
	return l.Species(file), nil
}
