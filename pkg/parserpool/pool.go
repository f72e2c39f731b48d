// Package parserpool keeps a pool of gnparser instances and uses them to
// normalize user queries to canonical scientific names.
// Parsing is computation, not I/O, so the package stays pure.
package parserpool

import (
	"fmt"
	"regexp"
	"runtime"
	"strings"

	"github.com/gnames/gnlib/ent/nomcode"
	"github.com/gnames/gnparser"
	"github.com/gnames/gnparser/ent/parsed"
)

// Pool provides gnparser instances for concurrent parsing.
type Pool interface {
	// Parse parses a name string with the given nomenclatural code.
	// It is safe for concurrent use.
	Parse(nameString string, code nomcode.Code) (parsed.Parsed, error)

	// Canonical returns the simple canonical form of a scientific name,
	// for example "Panthera leo" for "Panthera leo (Linnaeus, 1758)".
	// The zoological code is tried first, then the botanical one.
	// Strings that do not parse, such as common names, are returned
	// trimmed and otherwise unchanged.
	Canonical(nameString string) string

	// Close shuts down the parser pools. The pool must not be used
	// afterwards.
	Close()
}

type pool struct {
	botanicalCh  chan gnparser.GNparser
	zoologicalCh chan gnparser.GNparser
}

// NewPool creates botanical and zoological pools with jobsNum parsers
// each. If jobsNum is 0, runtime.NumCPU() is used.
func NewPool(jobsNum int) Pool {
	size := jobsNum
	if size <= 0 {
		size = runtime.NumCPU()
	}

	botCfg := gnparser.NewConfig(
		gnparser.OptCode(nomcode.Botanical),
		gnparser.OptWithDetails(true),
	)
	zooCfg := gnparser.NewConfig(
		gnparser.OptCode(nomcode.Zoological),
		gnparser.OptWithDetails(true),
	)

	return &pool{
		botanicalCh:  gnparser.NewPool(botCfg, size),
		zoologicalCh: gnparser.NewPool(zooCfg, size),
	}
}

func (p *pool) Parse(nameString string, code nomcode.Code) (parsed.Parsed, error) {
	var ch chan gnparser.GNparser
	switch code {
	case nomcode.Botanical:
		ch = p.botanicalCh
	case nomcode.Zoological:
		ch = p.zoologicalCh
	default:
		return parsed.Parsed{}, fmt.Errorf("unsupported nomenclatural code: %v", code)
	}

	parser := <-ch
	res := parser.ParseName(nameString)
	ch <- parser

	return res, nil
}

func (p *pool) Canonical(nameString string) string {
	name := strings.TrimSpace(nameString)
	if name == "" {
		return name
	}

	for _, code := range []nomcode.Code{nomcode.Zoological, nomcode.Botanical} {
		res, err := p.Parse(name, code)
		if err != nil || !res.Parsed || res.Canonical == nil {
			continue
		}
		if res.Canonical.Simple != "" && keepsName(name, res) {
			return res.Canonical.Simple
		}
	}
	return name
}

// authorRx matches signs of an author citation: a year, a parenthesized
// author or an abbreviated name such as "L." or "Linn.".
var authorRx = regexp.MustCompile(`\d|\(|\b\p{Lu}\p{L}*\.`)

// keepsName checks that the canonical form does not lose words of the
// name. Capitalized common names like "Snow Leopard" parse as a genus
// with an author, such a parse is rejected unless the dropped words look
// like a real author citation.
func keepsName(name string, res parsed.Parsed) bool {
	if res.Cardinality >= 2 {
		return true
	}
	words := strings.Fields(name)
	if len(words) < 2 {
		return true
	}
	return authorRx.MatchString(strings.Join(words[1:], " "))
}

func (p *pool) Close() {
	if p.botanicalCh != nil {
		close(p.botanicalCh)
		for range p.botanicalCh {
		}
	}
	if p.zoologicalCh != nil {
		close(p.zoologicalCh)
		for range p.zoologicalCh {
		}
	}
}
