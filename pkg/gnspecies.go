// Package gnspecies finds what is known about a species in the species
// directory (Wikispecies) and the encyclopedia (Wikipedia) and merges it
// into one normalized record.
package gnspecies

import (
	"context"

	"github.com/gnames/gnspecies/pkg/ent/record"
)

var (
	// Version of gnspecies, set by build flags.
	Version = "v0.1.0"
	// Build timestamp, set by build flags.
	Build = "n/a"
)

// Finder looks up species by name.
type Finder interface {
	// Find returns the merged record for a species name. Unavailable
	// sources never cause an error: when nothing is found, the record
	// carries an explanatory Error field. An error is returned only when
	// ctx is cancelled.
	Find(ctx context.Context, name string) (record.Species, error)

	// Close releases resources of the finder.
	Close()
}
