package text

import (
	"regexp"
	"strings"
)

// maxSections limits how many matching section bodies are joined.
const maxSections = 2

// headingRx finds "== Heading ==" markers of any level.
var headingRx = regexp.MustCompile(`={2,}[ \t]*([^=\n]+?)[ \t]*={2,}`)

// Section returns the text of sections whose headings contain any of the
// keywords (case-insensitive). Non-empty bodies of up to two matching
// sections are joined with a space in document order. When no heading
// matches, the first paragraph containing a keyword is returned. The
// boolean is false when neither search finds anything.
func Section(txt string, keywords []string) (string, bool) {
	if txt == "" || len(keywords) == 0 {
		return "", false
	}

	locs := headingRx.FindAllStringSubmatchIndex(txt, -1)
	var bodies []string
	for i, loc := range locs {
		heading := txt[loc[2]:loc[3]]
		if _, ok := ContainsAny(heading, keywords); !ok {
			continue
		}
		end := len(txt)
		if i+1 < len(locs) {
			end = locs[i+1][0]
		}
		body := strings.TrimSpace(txt[loc[1]:end])
		if body == "" {
			continue
		}
		bodies = append(bodies, body)
		if len(bodies) == maxSections {
			break
		}
	}
	if len(bodies) > 0 {
		return strings.Join(bodies, " "), true
	}

	for _, para := range Paragraphs(txt) {
		if _, ok := ContainsAny(para, keywords); ok {
			return para, true
		}
	}
	return "", false
}

// Paragraphs splits text on blank-line separators.
func Paragraphs(txt string) []string {
	return strings.Split(txt, "\n\n")
}

// FirstParagraph returns the text before the first blank line,
// or the whole text when there is none.
func FirstParagraph(txt string) string {
	para, _, _ := strings.Cut(txt, "\n\n")
	return para
}
