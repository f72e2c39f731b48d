/*
Copyright © 2025 Dmitry Mozzherin <dmozzherin@gmail.com>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gnames/gnfmt"
	"github.com/gnames/gnspecies/pkg/ent/record"
	"github.com/gnames/gnspecies/pkg/ent/taxon"
)

var csvHeader = []string{
	"Id", "Title", "Description",
	"Kingdom", "Phylum", "Class", "Order", "Family", "Genus", "Species",
	"Habitat", "FunFacts", "DataSources", "Error",
}

// output renders records in one of the supported formats.
func output(recs []record.Species, format string) (string, error) {
	switch format {
	case "pretty", "compact":
		return jsonOutput(recs, format == "pretty")
	case "csv":
		return csvOutput(recs, ','), nil
	case "tsv":
		return csvOutput(recs, '\t'), nil
	case "text":
		return textOutput(recs), nil
	default:
		return "", FormatError(format)
	}
}

func jsonOutput(recs []record.Species, pretty bool) (string, error) {
	enc := gnfmt.GNjson{Pretty: pretty}
	res := make([]string, 0, len(recs))
	for i := range recs {
		bs, err := enc.Encode(recs[i])
		if err != nil {
			return "", EncodeError(recs[i].Title, err)
		}
		res = append(res, string(bs))
	}
	return strings.Join(res, "\n"), nil
}

func csvOutput(recs []record.Species, sep rune) string {
	res := make([]string, 0, len(recs)+1)
	res = append(res, gnfmt.ToCSV(csvHeader, sep))
	for i := range recs {
		res = append(res, gnfmt.ToCSV(csvRow(recs[i]), sep))
	}
	return strings.Join(res, "\n")
}

func csvRow(r record.Species) []string {
	row := []string{r.ID.String(), r.Title, r.Description}
	for _, rank := range taxon.CanonicalRanks {
		row = append(row, r.Classification.Get(rank))
	}
	row = append(row,
		r.Habitat,
		strings.Join(r.FunFacts, " | "),
		sourceList(r.DataSources, "|"),
		r.Error,
	)
	return row
}

func textOutput(recs []record.Species) string {
	res := make([]string, 0, len(recs))
	for i := range recs {
		res = append(res, textRecord(recs[i]))
	}
	return strings.Join(res, "\n\n")
}

func textRecord(r record.Species) string {
	var b strings.Builder
	b.WriteString(r.Title + "\n")
	if r.Error != "" {
		b.WriteString("Error: " + r.Error)
		return b.String()
	}

	b.WriteString("\nDescription:\n  " + r.Description + "\n")

	if ranks := r.Classification.Known(); len(ranks) > 0 {
		b.WriteString("\nClassification:\n")
		for _, rank := range ranks {
			fmt.Fprintf(&b, "  %s: %s\n",
				taxon.UpperFirst(string(rank)), r.Classification.Get(rank))
		}
	}

	b.WriteString("\nHabitat:\n  " + r.Habitat + "\n")

	if len(r.FunFacts) > 0 {
		b.WriteString("\nFun facts:\n")
		for i, f := range r.FunFacts {
			b.WriteString("  " + strconv.Itoa(i+1) + ". " + f + "\n")
		}
	}

	b.WriteString("\nSources: " + sourceList(r.DataSources, ", "))
	return b.String()
}

func sourceList(srcs []record.Source, sep string) string {
	res := make([]string, len(srcs))
	for i, v := range srcs {
		res[i] = v.String()
	}
	return strings.Join(res, sep)
}
