package extract

import (
	"regexp"

	"github.com/gnames/gnspecies/pkg/ent/taxon"
)

// RankPrefixes pairs a rank with the label prefixes that introduce its
// value in a category name. Prefixes are lower-case and cover English,
// Latin, Spanish and Italian spellings.
type RankPrefixes struct {
	Rank     taxon.Rank
	Prefixes []string
}

// CategoryPrefixes is searched by the first pass of category
// classification, in this order.
var CategoryPrefixes = []RankPrefixes{
	{taxon.Kingdom, []string{
		"kingdom:", "regnum:", "reino:", "regno:",
		"kingdom ", "regnum ", "reino ", "regno ",
	}},
	{taxon.Phylum, []string{
		"phylum:", "division:", "división:", "divisio:",
		"phylum ", "division ", "división ", "divisio ",
	}},
	{taxon.Class, []string{
		"class:", "clase:", "classis:", "class ", "clase ", "classis ",
	}},
	{taxon.Order, []string{
		"order:", "orden:", "ordo:", "order ", "orden ", "ordo ",
	}},
	{taxon.Family, []string{
		"family:", "familia:", "family ", "familia ",
	}},
	{taxon.Genus, []string{
		"genus:", "género:", "genero:", "genus ", "género ", "genero ",
	}},
	{taxon.Species, []string{
		"species:", "especie:", "specie:", "species ", "especie ", "specie ",
	}},
}

// RankSuffix maps an ending of a single-word name to a rank.
type RankSuffix struct {
	Suffix string
	Rank   taxon.Rank
}

// NameSuffixes are tried in order against single-word categories and
// links, the first matching ending wins.
var NameSuffixes = []RankSuffix{
	{"idae", taxon.Family},
	{"inae", taxon.Subfamily},
	{"ales", taxon.Order},
	{"aceae", taxon.Family},
	{"ineae", taxon.Suborder},
	{"oideae", taxon.Subfamily},
}

// rankPatterns are label patterns of the shared prose taxonomy extractor.
type rankPatterns struct {
	rank     taxon.Rank
	patterns []*regexp.Regexp
}

// wordRx is the capture group for a taxon name in prose patterns.
const wordRx = `([A-Za-z]+)`

// labelPatterns finds "Kingdom: Animalia", "Kingdom Animalia" and
// "a member of the kingdom Animalia" for the ranks above family.
var labelPatterns = []rankPatterns{
	labelRank(taxon.Kingdom, "kingdom"),
	labelRank(taxon.Phylum, "phylum"),
	labelRank(taxon.Class, "class"),
	labelRank(taxon.Order, "order"),
}

func labelRank(r taxon.Rank, label string) rankPatterns {
	return rankPatterns{
		rank: r,
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)\b` + label + `:\s*` + wordRx),
			regexp.MustCompile(`(?i)\b` + label + `\s+` + wordRx),
			regexp.MustCompile(`(?i)a member of the ` + label + `\s+` + wordRx),
		},
	}
}

// suffixPatterns infer ranks from standard endings of names in prose.
// Matching is case-sensitive.
var suffixPatterns = []rankPatterns{
	{taxon.Family, []*regexp.Regexp{
		regexp.MustCompile(`\b([A-Za-z]+idae)\b`),
		regexp.MustCompile(`\b([A-Za-z]+aceae)\b`),
	}},
	{taxon.Order, []*regexp.Regexp{
		regexp.MustCompile(`\b([A-Za-z]+ales)\b`),
		regexp.MustCompile(`\b([A-Za-z]+ida)\b`),
	}},
	{taxon.Class, []*regexp.Regexp{
		regexp.MustCompile(`\b([A-Za-z]+ia)\b`),
		regexp.MustCompile(`\b([A-Za-z]+phyceae)\b`),
	}},
	{taxon.Phylum, []*regexp.Regexp{
		regexp.MustCompile(`\b([A-Za-z]+phyta)\b`),
		regexp.MustCompile(`\b([A-Za-z]+zoa)\b`),
	}},
}

// infoboxPatterns match "Rank: Value" lines of a taxobox, one per
// canonical rank. A match always overwrites.
var infoboxPatterns = func() []rankPatterns {
	res := make([]rankPatterns, len(taxon.CanonicalRanks))
	for i, r := range taxon.CanonicalRanks {
		res[i] = rankPatterns{
			rank: r,
			patterns: []*regexp.Regexp{
				regexp.MustCompile(`(?i)` + string(r) + `:\s*` + wordRx),
			},
		}
	}
	return res
}()

// statementPatterns match declarative sentences such as "belongs to the
// family Felidae" or "is a member of the genus Panthera".
var statementPatterns = func() []rankPatterns {
	belongs := []taxon.Rank{
		taxon.Kingdom, taxon.Phylum, taxon.Class, taxon.Order, taxon.Family,
	}
	member := []taxon.Rank{
		taxon.Kingdom, taxon.Phylum, taxon.Class, taxon.Order, taxon.Family,
		taxon.Genus,
	}
	var res []rankPatterns
	for _, r := range belongs {
		res = append(res, rankPatterns{r, []*regexp.Regexp{
			regexp.MustCompile(
				`(?i)(?:belongs|belonging)\s+to\s+(?:the\s+)?` +
					string(r) + `\s+` + wordRx,
			),
		}})
	}
	for _, r := range member {
		res = append(res, rankPatterns{r, []*regexp.Regexp{
			regexp.MustCompile(
				`(?i)(?:is|as)\s+a\s+(?:member|species)\s+of\s+(?:the\s+)?` +
					string(r) + `\s+` + wordRx,
			),
		}})
	}
	return res
}()

// taxonomySections are headings searched for prose classification.
var taxonomySections = []string{
	"Taxonomy", "Classification", "Taxonomic", "Scientific classification",
}

// KeywordTier is a named group of keywords. Tiers are evaluated top-down.
type KeywordTier struct {
	Tag      string
	Keywords []string
}

// HabitatTiers are tried in order, the first tier with any matching
// sentence wins.
var HabitatTiers = []KeywordTier{
	{"habitat", []string{
		"habitat", "lives in", "found in", "native to", "occurs in",
		"distribution", "range includes", "ecosystem", "biome", "environment",
		"inhabits", "dwelling in", "endemic to", "natural range",
		"geographical range", "distributed across", "prefers", "thrives in",
		"flourishes in", "resides in", "habitat type", "commonly found",
		"typically found", "often found", "usually found", "primarily found",
	}},
	{"biome", []string{
		"tropical", "temperate", "polar", "arctic", "antarctic", "desert",
		"rainforest", "forest", "jungle", "grassland", "savanna", "wetland",
		"marsh", "swamp", "mountain", "alpine", "coastal", "marine",
		"freshwater", "ocean", "sea", "river", "lake", "stream", "pond",
		"terrestrial", "aquatic", "woodland", "meadow", "tundra", "taiga",
		"steppe", "continent", "island", "shore", "beach", "reef", "cave",
		"burrow", "nest", "canopy", "undergrowth",
	}},
	{"region", []string{
		"africa", "asia", "europe", "north america", "south america",
		"australia", "antarctica", "oceania", "mediterranean", "pacific",
		"atlantic", "indian ocean", "arctic ocean", "southern ocean",
		"northern", "southern", "eastern", "western", "central", "worldwide",
		"global", "cosmopolitan", "international",
	}},
	{"movement", []string{
		"migrate", "roam", "travel", "swim", "fly", "climb", "burrow", "dig",
		"nest", "breed", "forage", "hunt", "territory", "range",
	}},
}

// Fact bucket tags.
const (
	BucketInteresting  = "interesting"
	BucketBiological   = "biological"
	BucketBehavioral   = "behavioral"
	BucketReproductive = "reproductive"
	BucketComparative  = "comparative"
	BucketMeasurement  = "measurement"
	BucketGeneral      = "general"
)

// FactBuckets classify sentences. A sentence goes to the first bucket
// with a matching keyword. Measurement sentences also need a digit.
// General is the catch-all and has no keywords.
var FactBuckets = []KeywordTier{
	{BucketInteresting, []string{
		"interesting", "unique", "unusual", "remarkable", "notable",
		"surprising", "fascinating", "amazing", "extraordinary", "distinctive",
		"special", "rare", "strange", "curious", "unlike", "peculiar", "odd",
		"bizarre", "striking", "colorful", "beautiful", "impressive", "popular",
		"famous", "well-known", "largest", "smallest", "fastest", "slowest",
		"oldest", "youngest", "only", "record", "discovery", "first", "last",
		"origin", "discovered", "introduced", "revered", "sacred", "symbol",
		"iconic", "emblem", "represented", "mythology", "legend", "folklore",
		"traditional", "cultural", "significance", "historical",
	}},
	{BucketBiological, []string{
		"lifespan", "longevity", "size", "weight", "height", "length",
		"wingspan", "color", "pattern", "marking", "appearance", "physical",
		"morphology", "anatomy", "feature", "characteristic", "distinctive",
		"body", "shape", "structure", "adaptation", "evolved", "evolution",
		"mutation", "gene", "genetic", "chromosome", "hybrid", "species",
		"subspecies", "variety", "breed", "strain", "extinct", "endangered",
		"threatened", "vulnerable", "conservation", "protected",
	}},
	{BucketBehavioral, []string{
		"diet", "eat", "feeding", "food", "prey", "predator", "hunt",
		"scavenge", "forage", "graze", "browse", "omnivore", "carnivore",
		"herbivore", "insectivore", "behavior", "behaviour", "habit",
		"activity", "social", "solitary", "group", "herd", "flock", "pack",
		"colony", "community", "family", "nocturnal", "diurnal", "crepuscular",
		"migrate", "migration", "hibernate", "hibernation", "estivate",
		"dormant", "sleep", "rest", "active", "territory", "defend",
		"aggressive", "docile", "tame", "wild", "domestic", "domesticated",
		"trained", "human",
	}},
	{BucketReproductive, []string{
		"reproduce", "reproduction", "breeding", "mate", "mating", "courtship",
		"display", "attract", "offspring", "young", "juvenile", "infant",
		"baby", "child", "adult", "egg", "spawn", "birth", "pregnant",
		"gestation", "incubation", "hatch", "nestling", "fledgling", "litter",
		"clutch", "brood", "parent", "care", "raise", "nurse", "wean",
	}},
	{BucketComparative, []string{
		"more than", "less than", "bigger than", "smaller than", "larger than",
		"faster than", "slower than", "better than", "worse than",
		"greater than", "unlike", "similar to", "compared to", "in contrast to",
		"differs from", "up to", "as many as", "can reach", "can grow",
		"can live", "known to", "capable of", "able to", "estimated",
		"approximately", "about", "around",
	}},
	{BucketMeasurement, []string{
		"cm", "meter", "metre", "kilometer", "kilometre", "feet", "foot",
		"inch", "kg", "gram", "pound", "ton", "tonne", "year", "month", "week",
		"day", "hour", "percent", "°C", "°F", "degree", "celsius",
		"fahrenheit", "temperature", "speed", "mph", "kph", "knot", "altitude",
		"depth", "width", "height",
	}},
	{BucketGeneral, nil},
}

// FactSelectionOrder is the order in which buckets give away facts.
// The first three buckets contribute their best sentence before any
// other bucket is consulted.
var FactSelectionOrder = []string{
	BucketInteresting,
	BucketMeasurement,
	BucketBiological,
	BucketReproductive,
	BucketBehavioral,
	BucketComparative,
	BucketGeneral,
}
