package iowiki

import (
	"context"
	"net/url"

	"github.com/gnames/gnspecies/pkg/config"
	"github.com/gnames/gnspecies/pkg/ent/record"
)

// Directory fetches pages of the species directory.
type Directory struct {
	c *client
}

// NewDirectory creates a species directory client.
func NewDirectory(cfg config.WikiConfig) *Directory {
	return &Directory{
		c: newClient(record.Directory.String(), cfg.DirectoryURL, cfg),
	}
}

// Fetch returns the intro, categories and links of the page with the
// given title. A missing page is not an error, it has Exists set to false.
func (d *Directory) Fetch(ctx context.Context, name string) (record.RawDocument, error) {
	params := url.Values{}
	params.Set("titles", name)
	params.Set("prop", "extracts|categories|info|links")
	params.Set("exintro", "1")
	params.Set("explaintext", "1")
	params.Set("cllimit", "50")
	params.Set("pllimit", "50")

	var resp response
	if err := d.c.query(ctx, params, &resp); err != nil {
		return record.RawDocument{Title: name}, err
	}
	return resp.document(name), nil
}
