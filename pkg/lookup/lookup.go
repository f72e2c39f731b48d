// Package lookup guesses a species name from an image file name.
//
// It stands in for image recognition: a file named "my_lion.jpg" is
// assumed to show Panthera leo. The keyword table is embedded as YAML.
package lookup

import (
	_ "embed"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed keywords.yaml
var keywordsYAML []byte

// AllowedExtensions are image file extensions accepted by Allowed.
var AllowedExtensions = []string{"png", "jpg", "jpeg", "gif"}

// Keyword maps a file-name fragment to a scientific name.
type Keyword struct {
	Keyword string `yaml:"keyword"`
	Name    string `yaml:"name"`
}

// Group is a named, ordered list of keywords.
type Group struct {
	Name     string    `yaml:"name"`
	Keywords []Keyword `yaml:"keywords"`
}

// Lookup holds the keyword table.
type Lookup struct {
	Default string  `yaml:"default"`
	Groups  []Group `yaml:"groups"`
}

// New decodes the embedded keyword table.
func New() (*Lookup, error) {
	var res Lookup
	if err := yaml.Unmarshal(keywordsYAML, &res); err != nil {
		return nil, TableError(err)
	}
	return &res, nil
}

// Species returns the scientific name of the first keyword found in the
// lower-cased file name, or the default name.
func (l *Lookup) Species(filename string) string {
	low := strings.ToLower(filepath.Base(filename))
	for _, g := range l.Groups {
		for _, kw := range g.Keywords {
			if strings.Contains(low, kw.Keyword) {
				return kw.Name
			}
		}
	}
	return l.Default
}

// Allowed returns true if the file has an image extension.
func Allowed(filename string) bool {
	ext := strings.TrimPrefix(filepath.Ext(filename), ".")
	if ext == "" {
		return false
	}
	ext = strings.ToLower(ext)
	for _, v := range AllowedExtensions {
		if v == ext {
			return true
		}
	}
	return false
}
