package cvdraft

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadFile reads a draft from a YAML file. Missing lists are normalized to
// empty ones so the loaded draft keeps the always-serializable guarantee.
func LoadFile(path string) (*Draft, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading draft file: %w", err)
	}

	draft := New()
	if err := yaml.Unmarshal(data, draft); err != nil {
		return nil, fmt.Errorf("parsing draft file %q: %w", path, err)
	}

	draft.normalize()

	return draft, nil
}

// normalize replaces nil lists with empty ones after decoding.
func (d *Draft) normalize() {
	if d.Skills == nil {
		d.Skills = []string{}
	}
	if d.Experiences == nil {
		d.Experiences = []Experience{}
	}
	if d.Education == nil {
		d.Education = []Education{}
	}
	if d.Projects == nil {
		d.Projects = []Project{}
	}
	for i := range d.Projects {
		if d.Projects[i].Technologies == nil {
			d.Projects[i].Technologies = []string{}
		}
	}
	if d.Certifications == nil {
		d.Certifications = []Certification{}
	}
	if d.Languages == nil {
		d.Languages = []Language{}
	}
	if d.Hobbies == nil {
		d.Hobbies = []string{}
	}
	if d.Volunteering == nil {
		d.Volunteering = []string{}
	}
	if d.Awards == nil {
		d.Awards = []string{}
	}
}
