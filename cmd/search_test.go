package cmd

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gnames/gnspecies/pkg/config"
	"github.com/gnames/gnspecies/pkg/ent/record"
	"github.com/gnames/gnspecies/pkg/ent/taxon"
	"github.com/gnames/gnspecies/pkg/reconcile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	lionPage = `{"query":{"pages":{"3311":{"pageid":3311,"title":"Panthera leo",
"extract":"Panthera leo\nLinnaeus, 1758",
"categories":[{"title":"Category:Felidae"},{"title":"Category: Genus Panthera"}]}}}}`

	lionArticle = `{"query":{"pages":{"36896":{"pageid":36896,"title":"Lion",
"extract":"The lion is a large cat of Africa. It is a member of the family Felidae.\n\n== Habitat ==\nThe lion inhabits grasslands and savannas.\n\n== Behaviour ==\nLions are the only social cats in the world."}}}}`

	missingPage = `{"query":{"pages":{"-1":{"title":"Leo nonexistus","missing":""}}}}`
)

// wikiServer fakes both MediaWiki services.
func wikiServer(t *testing.T) *httptest.Server {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("list") == "search" {
			if q.Get("srsearch") == "Panthera leo" {
				w.Write([]byte(`{"query":{"search":[{"title":"Lion"}]}}`))
				return
			}
			w.Write([]byte(`{"query":{"search":[]}}`))
			return
		}
		switch q.Get("titles") {
		case "Panthera leo":
			w.Write([]byte(lionPage))
		case "Lion":
			w.Write([]byte(lionArticle))
		default:
			w.Write([]byte(missingPage))
		}
	}))
	t.Cleanup(ts.Close)
	return ts
}

// testConfig points the global configuration to the fake services.
func testConfig(t *testing.T) {
	ts := wikiServer(t)
	cfg = config.New()
	cfg.Update([]config.Option{
		config.OptWikiDirectoryURL(ts.URL),
		config.OptWikiEncyclopediaURL(ts.URL),
		config.OptWikiRateLimit(100),
		config.OptJobsNumber(2),
		config.OptFormat("compact"),
	})
}

// TestGetSearchCmd verifies the search command definition.
func TestGetSearchCmd(t *testing.T) {
	cmd := getSearchCmd()
	require.NotNil(t, cmd, "Search command should exist")
	assert.Equal(t, "search", cmd.Name())
	assert.Contains(t, cmd.Long, "Wikispecies")
	assert.NotNil(t, cmd.RunE, "RunE should be set")
	assert.Error(t, cmd.Args(cmd, []string{}),
		"At least one name is required")
	assert.NotSame(t, cmd, getSearchCmd())
}

// TestSearch verifies a search through both fake services.
func TestSearch(t *testing.T) {
	testConfig(t)
	f := newFinder()
	defer f.Close()

	recs, err := search(context.Background(), f,
		[]string{"Panthera leo Linnaeus, 1758", "Leo nonexistus"})
	require.Nil(t, err)
	require.Len(t, recs, 2)

	lion := recs[0]
	assert.Empty(t, lion.Error)
	assert.Equal(t, "Panthera leo", lion.Title)
	assert.Equal(t, "Panthera", lion.Classification.Get(taxon.Genus))
	assert.Equal(t, "Felidae", lion.Classification.Get(taxon.Family))
	assert.Equal(t, "The lion inhabits grasslands and savannas.", lion.Habitat)
	assert.Equal(t, []record.Source{record.Directory, record.Encyclopedia},
		lion.DataSources)

	assert.Equal(t, reconcile.NotFoundMsg, recs[1].Error)
}

// TestSearchCancelled verifies a cancelled search returns an error.
func TestSearchCancelled(t *testing.T) {
	testConfig(t)
	f := newFinder()
	defer f.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	recs, err := search(ctx, f, []string{"Panthera leo"})
	assert.Error(t, err)
	assert.Nil(t, recs)
}
