package taxon_test

import (
	"testing"

	"github.com/gnames/gnspecies/pkg/ent/taxon"
	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		msg string
		val string
		res string
	}{
		{"lower-case value", "felidae", "Felidae"},
		{"already capitalized", "Felidae", "Felidae"},
		{"empty value", "", taxon.Unknown},
		{"digit", "2", taxon.Unknown},
		{"parenthesis", "(biology)", taxon.Unknown},
		{"non-latin letter", "ёж", "Ёж"},
	}

	for _, v := range tests {
		t.Run(v.msg, func(t *testing.T) {
			c := taxon.Classification{taxon.Family: v.val}
			c.Normalize()
			assert.Equal(t, v.res, c.Get(taxon.Family))
			for _, r := range taxon.CanonicalRanks {
				_, ok := c[r]
				assert.True(t, ok, "rank %s", r)
			}
		})
	}
}
