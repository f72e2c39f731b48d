package species

import (
	"slices"
	"strings"

	"github.com/gnames/gnspecies/pkg/ent/record"
	"github.com/gnames/gnspecies/pkg/extract"
	"github.com/gnames/gnspecies/pkg/text"
)

// EncyclopediaNotFoundMsg is the error of a missing encyclopedia page.
const EncyclopediaNotFoundMsg = "Wikipedia page not found."

// Section keywords of encyclopedia articles.
var (
	HabitatSections = []string{
		"Habitat", "Distribution", "Range", "Ecology", "Environment",
	}
	BehaviorSections = []string{
		"Behavior", "Behaviour", "Life cycle", "Diet", "Feeding",
		"Reproduction", "Biology",
	}
	ConservationSections = []string{
		"Conservation", "Status", "Threats", "Population",
	}
)

// minSectionFacts is the number of facts after which less specific
// texts are not consulted.
const minSectionFacts = 2

// FromEncyclopedia builds a partial record from a full encyclopedia
// article.
func FromEncyclopedia(doc record.RawDocument) record.Partial {
	res := record.NewPartial(record.Encyclopedia, doc.Title)
	if !doc.Exists {
		res.Error = EncyclopediaNotFoundMsg
		return res
	}

	txt := cleanProse(doc.Extract)
	res.Description = strings.TrimSpace(text.FirstParagraph(txt))

	if sect, ok := text.Section(txt, HabitatSections); ok {
		res.Habitat = extract.Habitat(sect)
	} else {
		res.Habitat = extract.Habitat(txt)
	}

	res.FunFacts = encyclopediaFacts(txt)
	res.Classification = extract.ProseClassification(txt, doc.Title)
	res.Succeeded = true
	return res
}

// cleanProse keeps paragraph breaks and turns other line breaks into
// spaces.
func cleanProse(s string) string {
	paras := strings.Split(s, "\n\n")
	for i := range paras {
		paras[i] = strings.ReplaceAll(paras[i], "\n", " ")
	}
	return strings.Join(paras, "\n\n")
}

// encyclopediaFacts collects facts from behaviour sections, then from
// conservation sections, then from the whole text, stopping as soon as
// there are at least two.
func encyclopediaFacts(txt string) []string {
	var res []string
	add := func(s string) {
		facts, generic := extract.FactsWithFallback(s)
		if generic {
			return
		}
		for _, f := range facts {
			if !slices.Contains(res, f) {
				res = append(res, f)
			}
		}
	}

	if sect, ok := text.Section(txt, BehaviorSections); ok {
		add(sect)
	}
	if len(res) < minSectionFacts {
		if sect, ok := text.Section(txt, ConservationSections); ok {
			add(sect)
		}
	}
	if len(res) < minSectionFacts {
		add(txt)
	}

	if len(res) == 0 {
		return []string{extract.FactFallback}
	}
	if len(res) > extract.MaxFacts {
		res = res[:extract.MaxFacts]
	}
	return res
}
