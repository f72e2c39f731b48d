// Package species assembles per-source partial records from raw documents
// by running the extractors the way each source needs.
//
// A directory page carries categories and a short intro, so its
// classification comes from category labels. An encyclopedia page carries
// long prose with headed sections, so its classification, habitat and
// facts are searched in those sections first.
package species

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/gnames/gnspecies/pkg/ent/record"
	"github.com/gnames/gnspecies/pkg/ent/taxon"
	"github.com/gnames/gnspecies/pkg/extract"
)

// DirectoryNotFoundMsg is the error of a missing directory page.
const DirectoryNotFoundMsg = "Species not found in Wikispecies. Try a " +
	"different spelling or check for the scientific name."

// minDirectoryDescription is the length under which a directory
// description is synthesized from the classification.
const minDirectoryDescription = 20

var spacesRx = regexp.MustCompile(` +`)

// FromDirectory builds a partial record from a directory page.
func FromDirectory(doc record.RawDocument) record.Partial {
	res := record.NewPartial(record.Directory, doc.Title)
	if !doc.Exists {
		res.Error = DirectoryNotFoundMsg
		return res
	}

	desc := strings.ReplaceAll(doc.Extract, "\n", " ")
	desc = spacesRx.ReplaceAllString(strings.TrimSpace(desc), " ")

	res.Classification = extract.CategoryClassification(
		doc.Categories, doc.Links, doc.Title,
	)
	res.Habitat = extract.Habitat(desc)
	res.FunFacts = extract.Facts(desc)

	if utf8.RuneCountInString(desc) < minDirectoryDescription {
		desc = synthDescription(doc.Title, res.Classification)
	}
	res.Description = desc
	res.Succeeded = true
	return res
}

// synthDescription writes a description from known ranks.
func synthDescription(title string, c taxon.Classification) string {
	var parts []string
	if !c.IsUnknown(taxon.Genus) && !c.IsUnknown(taxon.Species) {
		parts = append(parts, fmt.Sprintf(
			"%s is a species in the genus %s.", title, c.Get(taxon.Genus),
		))
	}
	if !c.IsUnknown(taxon.Family) {
		parts = append(parts, fmt.Sprintf(
			"It belongs to the family %s.", c.Get(taxon.Family),
		))
	}
	if !c.IsUnknown(taxon.Order) {
		parts = append(parts, fmt.Sprintf(
			"It is classified under the order %s.", c.Get(taxon.Order),
		))
	}
	if len(parts) == 0 {
		return fmt.Sprintf(
			"%s is a species documented in Wikispecies, "+
				"the free species directory.", title,
		)
	}
	return strings.Join(parts, " ")
}
