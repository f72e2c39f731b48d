package extract_test

import (
	"strings"
	"testing"

	"github.com/gnames/gnspecies/pkg/extract"
	"github.com/gnames/gnspecies/pkg/text"
	"github.com/stretchr/testify/assert"
)

const (
	factOnly    = "The lion is the only social cat species."
	factMeasure = "Males measure 250 cm in total."
	factColor   = "Its tawny coat has a uniform color."
	factHunt    = "Lions hunt zebras and buffalo at night."
	factBirth   = "Females give birth to three cubs."
	factWorld   = "The lion is the only social cat in the world."
	factWild    = "The lion is the only social cat in the wild world."
)

func TestFacts(t *testing.T) {
	tests := []struct {
		msg     string
		txt     string
		res     []string
		generic bool
	}{
		{
			msg: "buckets in selection order",
			txt: strings.Join(
				[]string{factOnly, factMeasure, factColor, factHunt, factBirth}, " ",
			),
			res: []string{factOnly, factMeasure, factColor, factBirth},
		},
		{
			msg: "similar sentence is rejected",
			txt: strings.Join([]string{factWorld, factWild, factBirth}, " "),
			res: []string{factWorld, factBirth},
		},
		{
			msg: "padding when fewer than two facts",
			txt: factWorld + " " + factWild,
			res: []string{factWorld, factWild},
		},
		{
			msg: "short text is a fact",
			txt: "A small cat",
			res: []string{"A small cat."},
		},
		{
			msg:     "only short sentences",
			txt:     "Lions roar. Cats meow. Dogs bark loudly.",
			res:     []string{extract.FactFallback},
			generic: true,
		},
		{
			msg:     "empty",
			txt:     "",
			res:     []string{extract.FactFallback},
			generic: true,
		},
	}

	for _, v := range tests {
		t.Run(v.msg, func(t *testing.T) {
			res, generic := extract.FactsWithFallback(v.txt)
			assert.Equal(t, v.res, res)
			assert.Equal(t, v.generic, generic)
			assert.Equal(t, res, extract.Facts(v.txt))
		})
	}
}

func TestFactsProperties(t *testing.T) {
	txt := strings.Repeat(
		"The lion is the largest cat in Africa. Lions sleep for 20 hours a day. "+
			"Cubs are born blind and weigh about 1 kg. "+
			"Males defend a territory with loud roars. "+
			"The mane color darkens with age in most males. "+
			"Lions were once found across Europe and India. ", 2)

	res := extract.Facts(txt)
	assert.NotEmpty(t, res)
	assert.LessOrEqual(t, len(res), extract.MaxFacts)
	for i, f := range res {
		assert.True(t, text.EndsWithPunct(f), f)
		for _, g := range res[i+1:] {
			assert.NotEqual(t, f, g)
			assert.Less(t, text.Similarity(f, g), text.SimilarityThreshold)
		}
	}
	assert.Equal(t, res, extract.Facts(txt))
}
