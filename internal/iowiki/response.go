package iowiki

import (
	"strconv"

	"github.com/gnames/gnspecies/pkg/ent/record"
)

// response is the subset of an Action API query reply used here.
// The legacy JSON format is used, pages are keyed by page id and missing
// pages get negative ids.
type response struct {
	Query struct {
		Pages  map[string]page `json:"pages"`
		Search []titled        `json:"search"`
	} `json:"query"`
	Error *apiError `json:"error"`
}

type apiError struct {
	Code string `json:"code"`
	Info string `json:"info"`
}

type page struct {
	Title      string   `json:"title"`
	Missing    *string  `json:"missing"`
	Invalid    *string  `json:"invalid"`
	Extract    string   `json:"extract"`
	Categories []titled `json:"categories"`
	Links      []titled `json:"links"`
}

type titled struct {
	Title string `json:"title"`
}

// document converts the first page of the reply. The name is used as
// the title when the reply has none.
func (r *response) document(name string) record.RawDocument {
	res := record.RawDocument{Title: name}
	for id, p := range r.Query.Pages {
		if p.Title != "" {
			res.Title = p.Title
		}
		pageID, err := strconv.Atoi(id)
		if err != nil || pageID < 0 || p.Missing != nil || p.Invalid != nil {
			return res
		}
		res.Exists = true
		res.Extract = p.Extract
		res.Categories = titles(p.Categories)
		res.Links = titles(p.Links)
		break
	}
	return res
}

func titles(ts []titled) []string {
	if len(ts) == 0 {
		return nil
	}
	res := make([]string, len(ts))
	for i, v := range ts {
		res[i] = v.Title
	}
	return res
}
