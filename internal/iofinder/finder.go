// Package iofinder searches species in the remote sources and merges the
// results. It is the only place where transport meets extraction.
package iofinder

import (
	"context"
	"fmt"
	"log/slog"

	gnspecies "github.com/gnames/gnspecies/pkg"
	"github.com/gnames/gnspecies/pkg/config"
	"github.com/gnames/gnspecies/pkg/ent/record"
	"github.com/gnames/gnspecies/pkg/parserpool"
	"github.com/gnames/gnspecies/pkg/reconcile"
	"github.com/gnames/gnspecies/pkg/species"
	"golang.org/x/sync/errgroup"
)

// DocumentSource provides raw pages of one of the sources.
type DocumentSource interface {
	// Fetch returns the document for a species name. A page that does
	// not exist is not an error, it has Exists set to false.
	Fetch(ctx context.Context, name string) (record.RawDocument, error)
}

type finder struct {
	dir  DocumentSource
	enc  DocumentSource
	pool parserpool.Pool
}

// New creates a Finder that uses dir as the species directory and enc as
// the encyclopedia.
func New(cfg *config.Config, dir, enc DocumentSource) gnspecies.Finder {
	return &finder{
		dir:  dir,
		enc:  enc,
		pool: parserpool.NewPool(cfg.JobsNumber),
	}
}

// Find normalizes the name, fetches both sources concurrently and merges
// what they provide.
func (f *finder) Find(ctx context.Context, name string) (record.Species, error) {
	query := f.pool.Canonical(name)
	if query == "" {
		return reconcile.Merge(query, nil, nil), nil
	}
	if query != name {
		slog.Debug("Normalized query", "name", name, "query", query)
	}

	var dirRes, encRes record.Partial

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		doc, fetchErr := f.dir.Fetch(gctx, query)
		dirRes, err = partial(ctx, record.Directory, query, doc, fetchErr)
		return err
	})
	g.Go(func() error {
		var err error
		doc, fetchErr := f.enc.Fetch(gctx, query)
		encRes, err = partial(ctx, record.Encyclopedia, query, doc, fetchErr)
		return err
	})

	if err := g.Wait(); err != nil {
		return record.Species{}, CancelledError(query, err)
	}

	res := reconcile.Merge(query, &dirRes, &encRes)
	slog.Info("Species search finished",
		"query", query,
		"title", res.Title,
		"sources", len(res.DataSources),
	)
	return res, nil
}

// Close releases the parser pool.
func (f *finder) Close() {
	f.pool.Close()
}

// partial converts a fetched document into a partial record. A failed
// fetch becomes an unsuccessful partial, unless the caller cancelled the
// search.
func partial(
	ctx context.Context,
	src record.Source,
	query string,
	doc record.RawDocument,
	err error,
) (record.Partial, error) {
	if err != nil {
		if ctx.Err() != nil {
			return record.Partial{}, ctx.Err()
		}
		slog.Warn("Cannot retrieve document",
			"source", src.String(),
			"query", query,
			"error", err,
		)
		res := record.NewPartial(src, query)
		res.Error = fmt.Sprintf(
			"Error retrieving information from %s: %s", src, err,
		)
		return res, nil
	}

	switch src {
	case record.Directory:
		return species.FromDirectory(doc), nil
	default:
		return species.FromEncyclopedia(doc), nil
	}
}
