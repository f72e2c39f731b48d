// Package extract turns raw per-source documents into structured fields:
// a 7-rank taxonomic classification, a habitat description and a short
// list of fun facts.
//
// All functions are pure and deterministic. They never return errors,
// every extractor degrades to a defined fallback (Unknown ranks, a generic
// habitat message or a generic fact) so the output is always well formed.
//
// Heuristics are driven by ordered keyword and pattern tables declared in
// tables.go.
package extract

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/gnames/gnspecies/pkg/ent/taxon"
)

// CategoryClassification derives a classification from directory category
// labels, links and the page title. Passes run in this order:
//
//  1. rank prefixes inside category labels (last matching category wins);
//  2. taxonomic suffixes of single-word categories (overwrites);
//  3. rank names inside category labels (fills Unknown only);
//  4. genus and species from a two-word title (fills Unknown only);
//  5. taxonomic suffixes of single-word links (fills Unknown only).
//
// Known values are normalized to start with an upper-case letter.
func CategoryClassification(
	categories, links []string,
	title string,
) taxon.Classification {
	res := taxon.New()

	cats := make([]string, 0, len(categories))
	for _, c := range categories {
		c = strings.TrimPrefix(c, "Category:")
		cats = append(cats, strings.TrimSpace(c))
	}

	prefixPass(res, cats)
	suffixPass(res, cats)
	rankNamePass(res, cats)
	titlePass(res, title)
	linkPass(res, links)

	res.Normalize()
	return res
}

func prefixPass(res taxon.Classification, cats []string) {
	for _, c := range cats {
		low := strings.ToLower(c)
		for _, rp := range CategoryPrefixes {
			for _, prefix := range rp.Prefixes {
				val, ok := wordAfter(low, prefix)
				if !ok {
					continue
				}
				res.Set(rp.Rank, taxon.Capitalize(val))
				break
			}
		}
	}
}

func suffixPass(res taxon.Classification, cats []string) {
	for _, c := range cats {
		if r, ok := suffixRank(c); ok {
			res.Set(r, c)
		}
	}
}

func rankNamePass(res taxon.Classification, cats []string) {
	for _, c := range cats {
		low := strings.ToLower(c)
		for _, r := range taxon.CanonicalRanks {
			val, ok := wordAfter(low, string(r))
			if !ok {
				continue
			}
			res.SetIfUnknown(r, taxon.Capitalize(val))
		}
	}
}

func titlePass(res taxon.Classification, title string) {
	words := strings.Fields(title)
	if len(words) != 2 {
		return
	}
	res.SetIfUnknown(taxon.Genus, words[0])
	res.SetIfUnknown(taxon.Species, words[1])
}

func linkPass(res taxon.Classification, links []string) {
	for _, l := range links {
		l = strings.TrimSpace(l)
		if r, ok := suffixRank(l); ok {
			res.SetIfUnknown(r, l)
		}
	}
}

// suffixRank returns the rank implied by the ending of a single-word name.
func suffixRank(name string) (taxon.Rank, bool) {
	if name == "" || strings.ContainsAny(name, " \t\n") {
		return "", false
	}
	for _, v := range NameSuffixes {
		if strings.HasSuffix(name, v.Suffix) {
			return v.Rank, true
		}
	}
	return "", false
}

// wordAfter returns the first word that follows the first occurrence
// of marker in s. Surrounding colons and trailing punctuation are
// dropped, a word that does not start with a letter is rejected.
func wordAfter(s, marker string) (string, bool) {
	idx := strings.Index(s, marker)
	if idx < 0 {
		return "", false
	}
	for _, w := range strings.Fields(s[idx+len(marker):]) {
		w = strings.TrimLeft(w, ":")
		w = strings.TrimRightFunc(w, unicode.IsPunct)
		if w == "" {
			continue
		}
		first, _ := utf8.DecodeRuneInString(w)
		if !unicode.IsLetter(first) {
			return "", false
		}
		return w, true
	}
	return "", false
}
