package iofinder_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/gnames/gn"
	"github.com/gnames/gnspecies/internal/iofinder"
	"github.com/gnames/gnspecies/pkg/config"
	"github.com/gnames/gnspecies/pkg/ent/record"
	"github.com/gnames/gnspecies/pkg/ent/taxon"
	"github.com/gnames/gnspecies/pkg/errcode"
	"github.com/gnames/gnspecies/pkg/reconcile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSource struct {
	mu    sync.Mutex
	names []string
	doc   record.RawDocument
	err   error
}

func (f *fakeSource) Fetch(ctx context.Context, name string) (record.RawDocument, error) {
	f.mu.Lock()
	f.names = append(f.names, name)
	f.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return record.RawDocument{Title: name}, err
	}
	if f.err != nil {
		return record.RawDocument{Title: name}, f.err
	}
	return f.doc, nil
}

const lionArticle = "The lion is a large cat of Africa. It is a member of " +
	"the family Felidae.\n\n" +
	"== Habitat ==\nThe lion inhabits grasslands and savannas.\n\n" +
	"== Behaviour ==\nLions are the only social cats in the world. " +
	"Females give birth to three cubs."

func dirSource() *fakeSource {
	return &fakeSource{doc: record.RawDocument{
		Title:   "Panthera leo",
		Exists:  true,
		Extract: "Panthera leo\nLinnaeus, 1758",
		Categories: []string{
			"Category:Felidae", "Category: Genus Panthera",
		},
	}}
}

func encSource() *fakeSource {
	return &fakeSource{doc: record.RawDocument{
		Title:   "Lion",
		Exists:  true,
		Extract: lionArticle,
	}}
}

func TestFind(t *testing.T) {
	assert := assert.New(t)
	dir, enc := dirSource(), encSource()
	f := iofinder.New(config.New(), dir, enc)
	defer f.Close()

	res, err := f.Find(context.Background(), "Panthera leo Linnaeus, 1758")
	require.Nil(t, err)
	assert.Equal([]string{"Panthera leo"}, dir.names)
	assert.Equal([]string{"Panthera leo"}, enc.names)

	assert.Empty(res.Error)
	assert.Equal("Panthera leo", res.Title)
	assert.Equal("Panthera", res.Classification.Get(taxon.Genus))
	assert.Equal("Felidae", res.Classification.Get(taxon.Family))
	assert.Equal("The lion inhabits grasslands and savannas.", res.Habitat)
	assert.Contains(res.FunFacts, "Lions are the only social cats in the world.")
	assert.Equal([]record.Source{record.Directory, record.Encyclopedia},
		res.DataSources)
}

func TestFindCommonName(t *testing.T) {
	for _, name := range []string{"Snow Leopard", "Bald Eagle", "Red Panda"} {
		t.Run(name, func(t *testing.T) {
			dir := &fakeSource{doc: record.RawDocument{Title: name}}
			enc := &fakeSource{doc: record.RawDocument{Title: name}}
			f := iofinder.New(config.New(), dir, enc)
			defer f.Close()

			res, err := f.Find(context.Background(), name)
			require.Nil(t, err)
			assert.Equal(t, []string{name}, dir.names)
			assert.Equal(t, []string{name}, enc.names)
			assert.Equal(t, name, res.Title)
		})
	}
}

func TestFindSourceFailures(t *testing.T) {
	boom := errors.New("connection reset")
	tests := []struct {
		msg     string
		dirErr  error
		encErr  error
		sources []record.Source
		resErr  string
	}{
		{"directory fails", boom, nil,
			[]record.Source{record.Encyclopedia}, ""},
		{"encyclopedia fails", nil, boom,
			[]record.Source{record.Directory}, ""},
		{"both fail", boom, boom,
			[]record.Source{}, reconcile.NotFoundMsg},
	}

	for _, v := range tests {
		t.Run(v.msg, func(t *testing.T) {
			dir, enc := dirSource(), encSource()
			dir.err, enc.err = v.dirErr, v.encErr
			f := iofinder.New(config.New(), dir, enc)
			defer f.Close()

			res, err := f.Find(context.Background(), "Panthera leo")
			require.Nil(t, err)
			assert.Equal(t, v.sources, res.DataSources)
			assert.Equal(t, v.resErr, res.Error)
		})
	}
}

func TestFindMissingPages(t *testing.T) {
	dir := &fakeSource{doc: record.RawDocument{Title: "Leo nonexistus"}}
	enc := &fakeSource{doc: record.RawDocument{Title: "Leo nonexistus"}}
	f := iofinder.New(config.New(), dir, enc)
	defer f.Close()

	res, err := f.Find(context.Background(), "Leo nonexistus")
	require.Nil(t, err)
	assert.Equal(t, reconcile.NotFoundMsg, res.Error)
	assert.Equal(t, record.NoDescription, res.Description)
}

func TestFindEmptyName(t *testing.T) {
	dir, enc := dirSource(), encSource()
	f := iofinder.New(config.New(), dir, enc)
	defer f.Close()

	res, err := f.Find(context.Background(), "   ")
	require.Nil(t, err)
	assert.Equal(t, reconcile.NotFoundMsg, res.Error)
	assert.Empty(t, dir.names)
	assert.Empty(t, enc.names)
}

func TestFindCancelled(t *testing.T) {
	f := iofinder.New(config.New(), dirSource(), encSource())
	defer f.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := f.Find(ctx, "Panthera leo")
	require.NotNil(t, err)

	var gnErr *gn.Error
	require.True(t, errors.As(err, &gnErr))
	assert.Equal(t, errcode.FinderCancelledError, gnErr.Code)
}

// echoFinder returns records titled by the query after a delay that
// shrinks with the position of the name, so late names finish first.
type echoFinder struct {
	delays map[string]time.Duration
}

func (e echoFinder) Find(ctx context.Context, name string) (record.Species, error) {
	select {
	case <-ctx.Done():
		return record.Species{}, ctx.Err()
	case <-time.After(e.delays[name]):
	}
	res := record.NewSpecies(name)
	if name == "Nothing" {
		res.Error = reconcile.NotFoundMsg
	}
	return res, nil
}

func (e echoFinder) Close() {}

func TestBatchKeepsOrder(t *testing.T) {
	names := []string{"Panthera leo", "Bellis perennis", "Nothing",
		"Canis lupus", "Felis catus"}
	delays := make(map[string]time.Duration)
	for i, v := range names {
		delays[v] = time.Duration(len(names)-i) * 5 * time.Millisecond
	}

	for _, jobs := range []int{0, 1, 3, 10} {
		res, err := iofinder.Batch(
			context.Background(), echoFinder{delays: delays}, names, jobs,
		)
		require.Nil(t, err)
		require.Len(t, res, len(names))
		for i := range names {
			assert.Equal(t, names[i], res[i].Title)
		}
		assert.Equal(t, reconcile.NotFoundMsg, res[2].Error)
	}
}

func TestBatchCancelled(t *testing.T) {
	names := []string{"Panthera leo", "Canis lupus"}
	delays := map[string]time.Duration{
		"Panthera leo": time.Minute,
		"Canis lupus":  time.Minute,
	}
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	res, err := iofinder.Batch(ctx, echoFinder{delays: delays}, names, 2)
	assert.NotNil(t, err)
	assert.Nil(t, res)
}

func TestReadNames(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping file system test in short mode")
	}
	dir := t.TempDir()

	tests := []struct {
		msg     string
		content string
		res     []string
		code    gn.ErrorCode
	}{
		{"names", "Panthera leo\n\n# cats\n  Felis catus \n",
			[]string{"Panthera leo", "Felis catus"}, errcode.UnknownError},
		{"only comments", "# nothing\n\n", nil, errcode.BatchEmptyError},
	}

	for i, v := range tests {
		t.Run(v.msg, func(t *testing.T) {
			path := filepath.Join(dir, "names"+string(rune('a'+i))+".txt")
			require.Nil(t, os.WriteFile(path, []byte(v.content), 0644))

			res, err := iofinder.ReadNames(path)
			if v.code == errcode.UnknownError {
				require.Nil(t, err)
				assert.Equal(t, v.res, res)
				return
			}
			var gnErr *gn.Error
			require.True(t, errors.As(err, &gnErr))
			assert.Equal(t, v.code, gnErr.Code)
		})
	}

	t.Run("missing file", func(t *testing.T) {
		_, err := iofinder.ReadNames(filepath.Join(dir, "absent.txt"))
		var gnErr *gn.Error
		require.True(t, errors.As(err, &gnErr))
		assert.Equal(t, errcode.BatchReadError, gnErr.Code)
	})
}
