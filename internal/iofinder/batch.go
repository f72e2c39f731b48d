package iofinder

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/cheggaaa/pb/v3"
	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/gnames/gnfmt"
	gnspecies "github.com/gnames/gnspecies/pkg"
	"github.com/gnames/gnspecies/pkg/ent/record"
	"golang.org/x/sync/errgroup"
)

// Batch searches all names with the given number of workers. The results
// keep the order of names. An error is returned only when ctx is
// cancelled.
func Batch(
	ctx context.Context,
	f gnspecies.Finder,
	names []string,
	jobs int,
) ([]record.Species, error) {
	if jobs <= 0 {
		jobs = 1
	}
	jobs = min(jobs, max(len(names), 1))

	start := time.Now()
	res := make([]record.Species, len(names))

	bar := pb.Full.Start(len(names))
	bar.Set("prefix", "Searching species: ")
	bar.Set(pb.CleanOnFinish, true)
	defer bar.Finish()

	idxCh := make(chan int)
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		defer close(idxCh)
		for i := range names {
			select {
			case <-gctx.Done():
				return gctx.Err()
			case idxCh <- i:
			}
		}
		return nil
	})

	for range jobs {
		g.Go(func() error {
			for i := range idxCh {
				sp, err := f.Find(gctx, names[i])
				if err != nil {
					return err
				}
				res[i] = sp
				bar.Increment()
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	var found int
	for i := range res {
		if res[i].Error == "" {
			found++
		}
	}
	dur := gnfmt.TimeString(time.Since(start).Seconds())
	slog.Info("Batch search finished",
		"names", len(names),
		"found", found,
		"duration", dur,
	)

	msg := fmt.Sprintf(
		"<em>Found %s of %s species</em> in %s",
		humanize.Comma(int64(found)),
		humanize.Comma(int64(len(names))),
		dur,
	)
	gn.Info(msg)

	return res, nil
}

// ReadNames reads one name per line from a file. Empty lines and lines
// starting with '#' are ignored.
func ReadNames(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, ReadNamesError(path, err)
	}
	defer f.Close()

	var res []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		res = append(res, line)
	}
	if err = sc.Err(); err != nil {
		return nil, ReadNamesError(path, err)
	}

	if len(res) == 0 {
		return nil, EmptyNamesError(path)
	}
	return res, nil
}
