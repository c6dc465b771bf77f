// Package fixtures loads the scanner's end-to-end test scenarios from
// a YAML file, grounded on the teacher's LocalFilesystemLoader
// (template_loader.go) for the "read from baseDir-relative path, wrap
// the OS error" shape, adapted here to decode structured fixture data
// with gopkg.in/yaml.v2 instead of returning an io.Reader of template
// source.
package fixtures

import (
	"os"

	"github.com/juju/errors"
	yaml "gopkg.in/yaml.v2"
)

// Scenario is one named end-to-end scan scenario (spec.md §8): raw
// input text plus the flat sequence of token kind names
// internal/harness is expected to produce for it.
type Scenario struct {
	Name   string   `yaml:"name"`
	Input  string   `yaml:"input"`
	Tokens []string `yaml:"tokens"`
}

// Load reads and decodes scenarios from a YAML file at path.
func Load(path string) ([]Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Annotatef(err, "reading fixtures %q", path)
	}
	var scenarios []Scenario
	if err := yaml.Unmarshal(data, &scenarios); err != nil {
		return nil, errors.Annotatef(err, "decoding fixtures %q", path)
	}
	return scenarios, nil
}
