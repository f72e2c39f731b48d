// Package taxon defines taxonomic ranks and the Classification mapping
// produced by extractors.
package taxon

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Unknown is the sentinel value of a rank that was not determined.
const Unknown = "Unknown"

// Rank is a taxonomic rank name as used in classification keys.
type Rank string

// Canonical ranks. They are always present in a Classification.
const (
	Kingdom Rank = "kingdom"
	Phylum  Rank = "phylum"
	Class   Rank = "class"
	Order   Rank = "order"
	Family  Rank = "family"
	Genus   Rank = "genus"
	Species Rank = "species"
)

// Auxiliary ranks. They appear in a Classification only when discovered.
const (
	Subfamily Rank = "subfamily"
	Suborder  Rank = "suborder"
)

// CanonicalRanks lists canonical ranks from the highest to the lowest.
var CanonicalRanks = []Rank{
	Kingdom, Phylum, Class, Order, Family, Genus, Species,
}

// AuxiliaryRanks lists non-canonical ranks that extractors may fill.
var AuxiliaryRanks = []Rank{Suborder, Subfamily}

// IsCanonical returns true if the rank is one of the 7 canonical ranks.
func (r Rank) IsCanonical() bool {
	for _, v := range CanonicalRanks {
		if v == r {
			return true
		}
	}
	return false
}

// Classification maps ranks to names. Canonical ranks are always present,
// their values are either Unknown or start with an upper-case letter
// after Normalize.
type Classification map[Rank]string

// New returns a fresh Classification with all canonical ranks set to
// Unknown. Every call allocates a new map.
func New() Classification {
	res := make(Classification, len(CanonicalRanks))
	for _, r := range CanonicalRanks {
		res[r] = Unknown
	}
	return res
}

// Get returns the value of a rank, or Unknown if the rank is absent.
func (c Classification) Get(r Rank) string {
	if v, ok := c[r]; ok && v != "" {
		return v
	}
	return Unknown
}

// IsUnknown returns true if the rank is absent or set to Unknown.
func (c Classification) IsUnknown(r Rank) bool {
	return c.Get(r) == Unknown
}

// SetIfUnknown sets the value only when the rank is still Unknown.
// Empty values are ignored.
func (c Classification) SetIfUnknown(r Rank, val string) {
	if val == "" || !c.IsUnknown(r) {
		return
	}
	c[r] = val
}

// Set overwrites the value of a rank. Empty values are ignored.
func (c Classification) Set(r Rank, val string) {
	if val == "" {
		return
	}
	c[r] = val
}

// Normalize upper-cases the first character of every known value
// and restores missing canonical ranks. Values that do not start with
// a letter become Unknown.
func (c Classification) Normalize() {
	for _, r := range CanonicalRanks {
		if _, ok := c[r]; !ok {
			c[r] = Unknown
		}
	}
	for k, v := range c {
		first, _ := utf8.DecodeRuneInString(v)
		if v == "" || !unicode.IsLetter(first) {
			c[k] = Unknown
			continue
		}
		if v != Unknown {
			c[k] = UpperFirst(v)
		}
	}
}

// Known returns ranks with determined values, canonical ranks first in
// hierarchical order, then auxiliary ranks.
func (c Classification) Known() []Rank {
	var res []Rank
	for _, r := range CanonicalRanks {
		if !c.IsUnknown(r) {
			res = append(res, r)
		}
	}
	for _, r := range AuxiliaryRanks {
		if v, ok := c[r]; ok && v != Unknown {
			res = append(res, r)
		}
	}
	return res
}

// Clone returns an independent copy of the classification.
func (c Classification) Clone() Classification {
	res := make(Classification, len(c))
	for k, v := range c {
		res[k] = v
	}
	return res
}

// UpperFirst upper-cases the first character and keeps the rest.
func UpperFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

// Capitalize upper-cases the first character and lower-cases the rest,
// the convention for names above the species level.
func Capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + strings.ToLower(s[size:])
}
