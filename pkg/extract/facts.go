package extract

import (
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/gnames/gnspecies/pkg/text"
)

// FactFallback is the only fact returned when prose has nothing usable.
const FactFallback = "This species is documented in Wikispecies, " +
	"the free species directory."

const (
	// MaxFacts is the maximum number of fun facts per record.
	MaxFacts = 4

	// seedBuckets is how many buckets of FactSelectionOrder contribute
	// a fact before similarity-based filling begins.
	seedBuckets = 3

	minFactWords    = 4
	minGeneralWords = 5
	shortTextLen    = 100
)

// Facts returns up to MaxFacts diverse sentences worth showing as fun
// facts. Every fact ends with terminal punctuation.
func Facts(txt string) []string {
	res, _ := FactsWithFallback(txt)
	return res
}

// FactsWithFallback works like Facts and also reports if the result is
// the generic FactFallback, so callers merging several texts can skip it.
func FactsWithFallback(txt string) ([]string, bool) {
	sents := text.SentenceList(txt)

	if len(sents) == 1 && utf8.RuneCountInString(sents[0]) < shortTextLen {
		return []string{text.Terminate(sents[0])}, false
	}

	buckets := make(map[string][]string, len(FactBuckets))
	for _, s := range sents {
		if tag, ok := factBucket(s); ok {
			buckets[tag] = append(buckets[tag], s)
		}
	}

	var res []string
	pop := func(tag string) {
		cands := buckets[tag]
		if len(cands) == 0 {
			return
		}
		buckets[tag] = cands[1:]
		if !text.TooSimilar(cands[0], res) {
			res = append(res, cands[0])
		}
	}

	for _, tag := range FactSelectionOrder[:seedBuckets] {
		pop(tag)
	}
	for _, tag := range FactSelectionOrder {
		if len(res) >= MaxFacts {
			break
		}
		pop(tag)
	}

	if len(res) < 2 && len(sents) > 0 {
		for _, s := range []string{sents[0], sents[len(sents)/2]} {
			if text.WordCount(s) >= minGeneralWords && !slices.Contains(res, s) {
				res = append(res, s)
			}
		}
	}

	if len(res) == 0 {
		return []string{FactFallback}, true
	}

	uniq := make([]string, 0, len(res))
	for _, s := range res {
		s = text.Terminate(s)
		if !slices.Contains(uniq, s) {
			uniq = append(uniq, s)
		}
	}
	if len(uniq) > MaxFacts {
		uniq = uniq[:MaxFacts]
	}
	return uniq, false
}

// factBucket returns the tag of the first bucket the sentence belongs to.
// Sentences shorter than 4 words are skipped.
func factBucket(s string) (string, bool) {
	wc := text.WordCount(s)
	if wc < minFactWords {
		return "", false
	}
	for _, b := range FactBuckets {
		switch b.Tag {
		case BucketGeneral:
			if wc >= minGeneralWords {
				return b.Tag, true
			}
		case BucketMeasurement:
			if !hasDigit(s) {
				continue
			}
			if _, ok := text.ContainsAny(s, b.Keywords); ok {
				return b.Tag, true
			}
		default:
			if _, ok := text.ContainsAny(s, b.Keywords); ok {
				return b.Tag, true
			}
		}
	}
	return "", false
}

func hasDigit(s string) bool {
	return strings.IndexFunc(s, unicode.IsDigit) >= 0
}
