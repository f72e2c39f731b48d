package extract

import (
	"log/slog"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/gnames/gnspecies/pkg/ent/taxon"
	"github.com/gnames/gnspecies/pkg/text"
)

// ProseClassification derives a classification from encyclopedia prose
// and the page title. Passes:
//
//  1. label and suffix patterns inside a taxonomy section (Unknown only);
//  2. taxobox "Rank: Value" lines anywhere in the text (overwrites);
//  3. label and suffix patterns in the first paragraph (Unknown only);
//  4. genus and species from a binomial-looking title (Unknown only);
//  5. "belongs to the family X" and "is a member of the genus X"
//     statements (Unknown only).
//
// Whatever happens inside, the function returns the classification
// accumulated so far.
func ProseClassification(txt, title string) (res taxon.Classification) {
	res = taxon.New()
	if strings.TrimSpace(txt) == "" {
		return res
	}

	defer func() {
		if r := recover(); r != nil {
			slog.Warn("Prose classification stopped early",
				"title", title, "error", r)
			res.Normalize()
		}
	}()

	if sect, ok := text.Section(txt, taxonomySections); ok {
		taxonomyFromText(res, sect)
	}

	for _, rp := range infoboxPatterns {
		if m := rp.patterns[0].FindStringSubmatch(txt); m != nil {
			res.Set(rp.rank, strings.TrimSpace(m[1]))
		}
	}

	taxonomyFromText(res, text.FirstParagraph(txt))

	binomialTitle(res, title)

	for _, rp := range statementPatterns {
		if !res.IsUnknown(rp.rank) {
			continue
		}
		if m := rp.patterns[0].FindStringSubmatch(txt); m != nil {
			res.SetIfUnknown(rp.rank, strings.TrimSpace(m[1]))
		}
	}

	res.Normalize()
	return res
}

// taxonomyFromText fills Unknown ranks from label patterns and from
// taxonomic name endings found in txt.
func taxonomyFromText(res taxon.Classification, txt string) {
	if txt == "" {
		return
	}

	for _, rp := range labelPatterns {
		if !res.IsUnknown(rp.rank) {
			continue
		}
		for _, p := range rp.patterns {
			if m := p.FindStringSubmatch(txt); m != nil {
				res.Set(rp.rank, taxon.Capitalize(m[1]))
				break
			}
		}
	}

	for _, rp := range suffixPatterns {
		if !res.IsUnknown(rp.rank) {
			continue
		}
		for _, p := range rp.patterns {
			if m := p.FindStringSubmatch(txt); m != nil {
				res.Set(rp.rank, m[1])
				break
			}
		}
	}
}

// binomialTitle treats titles like "Panthera leo" as genus and species.
func binomialTitle(res taxon.Classification, title string) {
	words := strings.Fields(title)
	if len(words) < 2 || !res.IsUnknown(taxon.Genus) {
		return
	}
	if !isCapitalized(words[0]) || !isLower(words[1]) {
		return
	}
	res.Set(taxon.Genus, words[0])
	res.SetIfUnknown(taxon.Species, words[1])
}

// isCapitalized is true for an upper-case letter followed by at least one
// character and no other upper-case letters.
func isCapitalized(s string) bool {
	r, size := utf8.DecodeRuneInString(s)
	if !unicode.IsUpper(r) {
		return false
	}
	return isLower(s[size:])
}

// isLower is true when s has at least one letter and none of them is
// upper-case.
func isLower(s string) bool {
	var hasLetter bool
	for _, r := range s {
		if unicode.IsUpper(r) || unicode.IsTitle(r) {
			return false
		}
		if unicode.IsLower(r) {
			hasLetter = true
		}
	}
	return hasLetter
}
