// Package reconcile merges per-source partial records into the final
// species record.
//
// The directory record is the base. The encyclopedia record then
// contributes with per-field rules: description only replaces a missing
// or short one, habitat always replaces, each known classification rank
// overwrites, and fun facts are appended when they are not near-duplicates
// of the facts already present.
package reconcile

import (
	"slices"
	"unicode/utf8"

	"github.com/gnames/gnspecies/pkg/ent/record"
	"github.com/gnames/gnspecies/pkg/ent/taxon"
	"github.com/gnames/gnspecies/pkg/extract"
	"github.com/gnames/gnspecies/pkg/text"
)

// NotFoundMsg is the error of a record no source contributed to.
const NotFoundMsg = "Species information not found in either " +
	"Wikispecies or Wikipedia."

// minDescriptionLen is the length under which a description is replaced
// by the encyclopedia one.
const minDescriptionLen = 50

// Merge combines directory and encyclopedia partial records into a
// species record. A nil or unsuccessful partial contributes nothing. The
// query becomes the title unless the directory supplies one.
func Merge(query string, dir, enc *record.Partial) record.Species {
	res := record.NewSpecies(query)

	if dir != nil && dir.Succeeded {
		seedDirectory(&res, dir)
	}

	if enc != nil && enc.Succeeded {
		mergeEncyclopedia(&res, enc)
	}

	if len(res.DataSources) == 0 {
		res.Error = NotFoundMsg
	}
	return res
}

func seedDirectory(res *record.Species, dir *record.Partial) {
	if dir.Title != "" && dir.Title != res.Title {
		*res = record.NewSpecies(dir.Title)
	}
	if dir.Description != "" {
		res.Description = dir.Description
	}
	if dir.Habitat != "" {
		res.Habitat = dir.Habitat
	}
	for r, v := range dir.Classification {
		res.Classification.Set(r, v)
	}
	res.FunFacts = append(res.FunFacts, dir.FunFacts...)
	res.DataSources = append(res.DataSources, record.Directory)
}

func mergeEncyclopedia(res *record.Species, enc *record.Partial) {
	if enc.Description != "" && shortDescription(res.Description) {
		res.Description = enc.Description
	}

	if enc.Habitat != "" {
		res.Habitat = enc.Habitat
	}

	// Encyclopedia ranks win over directory ranks.
	for r, v := range enc.Classification {
		if v == taxon.Unknown {
			continue
		}
		res.Classification.Set(r, v)
	}

	for _, f := range enc.FunFacts {
		if text.TooSimilar(f, res.FunFacts) {
			continue
		}
		res.FunFacts = append(res.FunFacts, f)
	}
	if len(res.FunFacts) > extract.MaxFacts {
		res.FunFacts = slices.Clip(res.FunFacts[:extract.MaxFacts])
	}

	res.DataSources = append(res.DataSources, record.Encyclopedia)
}

func shortDescription(s string) bool {
	return s == record.NoDescription || utf8.RuneCountInString(s) < minDescriptionLen
}
