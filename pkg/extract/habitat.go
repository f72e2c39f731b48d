package extract

import (
	"github.com/gnames/gnspecies/pkg/text"
)

// HabitatUnavailable is returned when no sentence describes where the
// species lives.
const HabitatUnavailable = "Specific habitat information is not available. " +
	"Try searching online for more details about this species' " +
	"natural environment."

// maxHabitatSentences limits the length of a habitat description.
const maxHabitatSentences = 2

// Habitat picks sentences describing where a species lives. Keyword tiers
// of HabitatTiers are tried in order and the first tier that matches any
// sentence wins. Without a match, the second or the first sentence is used
// if it has more than 5 words. The result is never empty.
func Habitat(txt string) string {
	sents := text.SentenceList(txt)

	var found []string
	for _, tier := range HabitatTiers {
		for _, s := range sents {
			if _, ok := text.ContainsAny(s, tier.Keywords); ok {
				found = append(found, s)
			}
		}
		if len(found) > 0 {
			break
		}
	}

	if len(found) == 0 && len(sents) >= 2 {
		switch {
		case text.WordCount(sents[1]) > 5:
			found = sents[1:2]
		case text.WordCount(sents[0]) > 5:
			found = sents[:1]
		}
	}

	switch len(found) {
	case 0:
		return HabitatUnavailable
	case 1:
		return text.Terminate(found[0])
	default:
		return joinSentences(found[:maxHabitatSentences])
	}
}

// joinSentences joins sentences with ". " unless a sentence already
// carries its own terminal punctuation.
func joinSentences(ss []string) string {
	var res string
	for i, s := range ss {
		if i > 0 {
			if text.EndsWithPunct(res) {
				res += " "
			} else {
				res += ". "
			}
		}
		res += s
	}
	return text.Terminate(res)
}
