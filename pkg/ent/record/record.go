// Package record contains per-source inputs and outputs of the extraction
// pipeline and the final merged species record.
package record

import (
	"github.com/gnames/gnspecies/pkg/ent/taxon"
	"github.com/gnames/gnuuid"
	"github.com/google/uuid"
)

// NoDescription is the placeholder description of a record that has
// not received any prose yet.
const NoDescription = "No description available."

// Source identifies where a partial record came from.
type Source int

const (
	// UnknownSource is the zero value.
	UnknownSource Source = iota
	// Directory is the species directory (Wikispecies).
	Directory
	// Encyclopedia is the encyclopedia (Wikipedia).
	Encyclopedia
)

// String returns the human-readable name of the source.
func (s Source) String() string {
	switch s {
	case Directory:
		return "Wikispecies"
	case Encyclopedia:
		return "Wikipedia"
	default:
		return "Unknown"
	}
}

// MarshalText renders the source by its name in JSON and YAML.
func (s Source) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// RawDocument is an already deserialized page of one of the sources.
// It is built by the transport layer and not modified afterwards.
type RawDocument struct {
	// Title of the page.
	Title string
	// Exists is false when the referenced page does not exist.
	Exists bool
	// Extract is plain prose, intro-only or full depending on the source.
	Extract string
	// Categories are category labels, possibly with "Category:" prefix.
	Categories []string
	// Links are titles of pages the document links to.
	Links []string
}

// Partial is the result of running extractors over one source document.
type Partial struct {
	Source         Source
	Title          string
	Description    string
	Classification taxon.Classification
	Habitat        string
	FunFacts       []string
	Succeeded      bool
	Error          string
}

// NewPartial returns an unsuccessful partial record with default fields.
func NewPartial(src Source, title string) Partial {
	return Partial{
		Source:         src,
		Title:          title,
		Description:    NoDescription,
		Classification: taxon.New(),
		Habitat:        taxon.Unknown,
	}
}

// Species is the final record that merges all partial records.
type Species struct {
	// ID is UUID v5 generated from the Title.
	ID             uuid.UUID            `json:"id"`
	Title          string               `json:"title"`
	Description    string               `json:"description"`
	Classification taxon.Classification `json:"classification"`
	Habitat        string               `json:"habitat"`
	FunFacts       []string             `json:"funFacts"`
	DataSources    []Source             `json:"dataSources"`
	// Error is set only when no source contributed anything.
	Error string `json:"error,omitempty"`
}

// NewSpecies returns a record with default fields for the given title.
func NewSpecies(title string) Species {
	return Species{
		ID:             gnuuid.New(title),
		Title:          title,
		Description:    NoDescription,
		Classification: taxon.New(),
		Habitat:        taxon.Unknown,
		FunFacts:       []string{},
		DataSources:    []Source{},
	}
}

// HasSource returns true if the source contributed to the record.
func (s Species) HasSource(src Source) bool {
	for _, v := range s.DataSources {
		if v == src {
			return true
		}
	}
	return false
}
