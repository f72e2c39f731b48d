package text

import "strings"

// SimilarityThreshold is the similarity at which two strings are
// considered near-duplicates.
const SimilarityThreshold = 0.7

// Similarity returns the Jaccard similarity of the lower-cased word sets
// of a and b. It returns 0 when either string is empty.
func Similarity(a, b string) float64 {
	if a == "" || b == "" {
		return 0
	}
	wa := wordSet(a)
	wb := wordSet(b)

	var inter int
	for w := range wa {
		if _, ok := wb[w]; ok {
			inter++
		}
	}
	union := len(wa) + len(wb) - inter
	if union == 0 {
		return 0
	}
	return float64(inter) / float64(union)
}

// TooSimilar returns true if s reaches SimilarityThreshold with any of
// the accepted strings.
func TooSimilar(s string, accepted []string) bool {
	for _, v := range accepted {
		if Similarity(s, v) >= SimilarityThreshold {
			return true
		}
	}
	return false
}

func wordSet(s string) map[string]struct{} {
	words := strings.Fields(strings.ToLower(s))
	res := make(map[string]struct{}, len(words))
	for _, w := range words {
		res[w] = struct{}{}
	}
	return res
}
