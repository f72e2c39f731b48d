package iowiki

import (
	"context"
	"log/slog"
	"net/url"

	"github.com/gnames/gnspecies/pkg/config"
	"github.com/gnames/gnspecies/pkg/ent/record"
)

// Encyclopedia fetches full articles of the encyclopedia.
type Encyclopedia struct {
	c *client
}

// NewEncyclopedia creates an encyclopedia client.
func NewEncyclopedia(cfg config.WikiConfig) *Encyclopedia {
	return &Encyclopedia{
		c: newClient(record.Encyclopedia.String(), cfg.EncyclopediaURL, cfg),
	}
}

// Fetch searches for the best matching article and returns its full
// plain text. When the search finds nothing the document has Exists set
// to false.
func (e *Encyclopedia) Fetch(ctx context.Context, name string) (record.RawDocument, error) {
	title, err := e.search(ctx, name)
	if err != nil {
		return record.RawDocument{Title: name}, err
	}
	if title == "" {
		slog.Debug("No encyclopedia article found", "name", name)
		return record.RawDocument{Title: name}, nil
	}

	params := url.Values{}
	params.Set("titles", title)
	params.Set("prop", "extracts|categories")
	params.Set("explaintext", "1")
	params.Set("cllimit", "50")

	var resp response
	if err = e.c.query(ctx, params, &resp); err != nil {
		return record.RawDocument{Title: title}, err
	}
	return resp.document(title), nil
}

func (e *Encyclopedia) search(ctx context.Context, name string) (string, error) {
	params := url.Values{}
	params.Set("list", "search")
	params.Set("srsearch", name)
	params.Set("srlimit", "1")

	var resp response
	if err := e.c.query(ctx, params, &resp); err != nil {
		return "", err
	}
	if len(resp.Query.Search) == 0 {
		return "", nil
	}
	return resp.Query.Search[0].Title, nil
}
