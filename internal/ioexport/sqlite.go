// Package ioexport saves species records to a SQLite database.
package ioexport

import (
	"context"
	"database/sql"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/gnames/gnspecies/pkg/ent/record"
	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE species (
  id TEXT PRIMARY KEY,
  title TEXT NOT NULL,
  description TEXT NOT NULL,
  habitat TEXT NOT NULL,
  error TEXT NOT NULL DEFAULT '',
  data_sources TEXT NOT NULL DEFAULT ''
);

CREATE TABLE classification (
  species_id TEXT NOT NULL REFERENCES species(id),
  rank TEXT NOT NULL,
  value TEXT NOT NULL,
  PRIMARY KEY (species_id, rank)
);

CREATE TABLE fun_facts (
  species_id TEXT NOT NULL REFERENCES species(id),
  position INTEGER NOT NULL,
  fact TEXT NOT NULL,
  PRIMARY KEY (species_id, position)
);
`

// SQLite writes records to a new SQLite database at path. An existing
// file is replaced. Records with the same ID are saved once.
func SQLite(ctx context.Context, path string, recs []record.Species) error {
	err := os.Remove(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return CreateError(path, err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return CreateError(path, err)
	}
	defer db.Close()

	if _, err = db.ExecContext(ctx, schema); err != nil {
		return CreateError(path, err)
	}

	count, err := insert(ctx, db, recs)
	if err != nil {
		return WriteError(path, err)
	}

	slog.Info("Exported species", "path", path, "records", count)
	gn.Info(
		"Saved <em>%s</em> species to <em>%s</em>",
		humanize.Comma(int64(count)), path,
	)
	return nil
}

func insert(ctx context.Context, db *sql.DB, recs []record.Species) (int, error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	spStmt, err := tx.PrepareContext(ctx, `
INSERT INTO species (id, title, description, habitat, error, data_sources)
VALUES (?, ?, ?, ?, ?, ?)
ON CONFLICT (id) DO NOTHING`)
	if err != nil {
		return 0, err
	}
	defer spStmt.Close()

	clStmt, err := tx.PrepareContext(ctx,
		`INSERT INTO classification (species_id, rank, value) VALUES (?, ?, ?)`)
	if err != nil {
		return 0, err
	}
	defer clStmt.Close()

	ffStmt, err := tx.PrepareContext(ctx,
		`INSERT INTO fun_facts (species_id, position, fact) VALUES (?, ?, ?)`)
	if err != nil {
		return 0, err
	}
	defer ffStmt.Close()

	var count int
	for _, r := range recs {
		id := r.ID.String()
		res, err := spStmt.ExecContext(ctx,
			id, r.Title, r.Description, r.Habitat, r.Error, sourceNames(r),
		)
		if err != nil {
			return 0, err
		}
		if n, _ := res.RowsAffected(); n == 0 {
			slog.Debug("Skipping duplicate species", "title", r.Title)
			continue
		}
		count++

		for _, rank := range r.Classification.Known() {
			_, err = clStmt.ExecContext(ctx,
				id, string(rank), r.Classification.Get(rank),
			)
			if err != nil {
				return 0, err
			}
		}

		for i, f := range r.FunFacts {
			if _, err = ffStmt.ExecContext(ctx, id, i+1, f); err != nil {
				return 0, err
			}
		}
	}

	if err = tx.Commit(); err != nil {
		return 0, err
	}
	return count, nil
}

func sourceNames(r record.Species) string {
	names := make([]string, len(r.DataSources))
	for i, v := range r.DataSources {
		names[i] = v.String()
	}
	return strings.Join(names, ",")
}
