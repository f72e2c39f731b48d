// Package text provides the low-level text heuristics shared by
// extractors: pseudo-sentence segmentation, word-overlap similarity and
// location of headed sections in plain-text encyclopedia extracts.
//
// The package is pure, it performs no I/O.
package text

import (
	"iter"
	"strings"
)

// Sentences splits prose into pseudo-sentences. A boundary follows every
// '.', '!' or '?' that is immediately followed by a space. Results are
// trimmed and empty ones are skipped. Abbreviations are not special-cased.
func Sentences(s string) iter.Seq[string] {
	return func(yield func(string) bool) {
		start := 0
		for i := 0; i < len(s)-1; i++ {
			switch s[i] {
			case '.', '!', '?':
				if s[i+1] != ' ' {
					continue
				}
				sent := strings.TrimSpace(s[start : i+1])
				start = i + 1
				if sent == "" {
					continue
				}
				if !yield(sent) {
					return
				}
			}
		}
		if sent := strings.TrimSpace(s[start:]); sent != "" {
			yield(sent)
		}
	}
}

// SentenceList collects Sentences into a slice.
func SentenceList(s string) []string {
	var res []string
	for sent := range Sentences(s) {
		res = append(res, sent)
	}
	return res
}

// WordCount returns the number of whitespace-separated words.
func WordCount(s string) int {
	return len(strings.Fields(s))
}

// EndsWithPunct returns true if s ends with '.', '!' or '?'.
func EndsWithPunct(s string) bool {
	return strings.HasSuffix(s, ".") ||
		strings.HasSuffix(s, "!") ||
		strings.HasSuffix(s, "?")
}

// Terminate appends a period when s lacks terminal punctuation.
func Terminate(s string) string {
	if EndsWithPunct(s) {
		return s
	}
	return s + "."
}

// ContainsAny returns the first keyword found in the lower-cased s.
// Keywords are compared in lower case.
func ContainsAny(s string, keywords []string) (string, bool) {
	low := strings.ToLower(s)
	for _, kw := range keywords {
		if strings.Contains(low, strings.ToLower(kw)) {
			return kw, true
		}
	}
	return "", false
}
