package text_test

import (
	"testing"

	"github.com/gnames/gnspecies/pkg/text"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSentences(t *testing.T) {
	tests := []struct {
		msg  string
		text string
		res  []string
	}{
		{"empty", "", nil},
		{"spaces only", "   ", nil},
		{"single no punct", "A lion", []string{"A lion"}},
		{
			"three kinds of punctuation",
			"Lions roar. Do they purr? They do! Sometimes.",
			[]string{"Lions roar.", "Do they purr?", "They do!", "Sometimes."},
		},
		{
			"abbreviation splits",
			"It is found in the U.S. and Canada.",
			[]string{"It is found in the U.S.", "and Canada."},
		},
		{
			"internal period without space",
			"Version 1.5 is here.",
			[]string{"Version 1.5 is here."},
		},
		{
			"extra spaces collapse into no empty sentence",
			"One.  Two.",
			[]string{"One.", "Two."},
		},
	}

	for _, v := range tests {
		t.Run(v.msg, func(t *testing.T) {
			assert.Equal(t, v.res, text.SentenceList(v.text))
		})
	}
}

func TestSentencesEarlyStop(t *testing.T) {
	var got []string
	for s := range text.Sentences("One. Two. Three.") {
		got = append(got, s)
		if len(got) == 2 {
			break
		}
	}
	assert.Equal(t, []string{"One.", "Two."}, got)
}

func TestSimilarity(t *testing.T) {
	tests := []struct {
		msg  string
		a, b string
		res  float64
	}{
		{"identical", "the lion roars", "the lion roars", 1},
		{"case insensitive", "The Lion", "the lion", 1},
		{"empty a", "", "lion", 0},
		{"empty b", "lion", "", 0},
		{"disjoint", "lion roars", "tiger sleeps", 0},
		{"half", "a b", "a c", 1.0 / 3},
		{"whitespace only", " ", " ", 0},
	}

	for _, v := range tests {
		t.Run(v.msg, func(t *testing.T) {
			assert.InDelta(t, v.res, text.Similarity(v.a, v.b), 1e-9)
			assert.InDelta(t, text.Similarity(v.a, v.b),
				text.Similarity(v.b, v.a), 1e-9, "symmetric")
		})
	}
}

func TestTooSimilar(t *testing.T) {
	accepted := []string{"The lion is a large cat of the genus Panthera."}
	assert.True(t, text.TooSimilar(
		"The lion is a large cat of the genus Panthera!", accepted))
	assert.False(t, text.TooSimilar("Lions live in prides.", accepted))
	assert.False(t, text.TooSimilar("anything", nil))
}

func TestSection(t *testing.T) {
	doc := "Intro paragraph about lions.\n\n" +
		"== Taxonomy ==\nThe lion belongs to the family Felidae.\n\n" +
		"== Distribution and habitat ==\nLions live in savannas.\n\n" +
		"=== Former range ===\nThey once lived in Europe.\n\n" +
		"== Behaviour ==\nLions hunt in groups."

	tests := []struct {
		msg      string
		keywords []string
		res      string
		ok       bool
	}{
		{
			"single heading",
			[]string{"Taxonomy"},
			"The lion belongs to the family Felidae.",
			true,
		},
		{
			"two headings joined in document order",
			[]string{"Range", "Habitat"},
			"Lions live in savannas. They once lived in Europe.",
			true,
		},
		{
			"case insensitive heading",
			[]string{"behaviour"},
			"Lions hunt in groups.",
			true,
		},
		{
			"paragraph fallback",
			[]string{"Intro"},
			"Intro paragraph about lions.",
			true,
		},
		{
			"nothing",
			[]string{"Etymology"},
			"",
			false,
		},
	}

	for _, v := range tests {
		t.Run(v.msg, func(t *testing.T) {
			res, ok := text.Section(doc, v.keywords)
			require.Equal(t, v.ok, ok)
			assert.Equal(t, v.res, res)
		})
	}
}

func TestSectionEmpty(t *testing.T) {
	_, ok := text.Section("", []string{"Habitat"})
	assert.False(t, ok)
	_, ok = text.Section("Some text", nil)
	assert.False(t, ok)
}

func TestFirstParagraph(t *testing.T) {
	assert.Equal(t, "one", text.FirstParagraph("one\n\ntwo"))
	assert.Equal(t, "only", text.FirstParagraph("only"))
}

func TestTerminate(t *testing.T) {
	assert.Equal(t, "A lion.", text.Terminate("A lion"))
	assert.Equal(t, "A lion!", text.Terminate("A lion!"))
	assert.Equal(t, "A lion?", text.Terminate("A lion?"))
}
