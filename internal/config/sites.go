package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Site is an observer location used by sweeps.
type Site struct {
	Name      string  `yaml:"name" validate:"required"`
	Latitude  float64 `yaml:"latitude" validate:"gte=-90,lte=90"`
	Longitude float64 `yaml:"longitude" validate:"gte=-180,lte=180"`
	// Altitude in metres above sea level; may be negative.
	Altitude float64 `yaml:"altitude"`
}

type siteFile struct {
	Sites []Site `yaml:"sites" validate:"required,min=1,dive"`
}

// LoadSites reads a YAML site list:
//
//	sites:
//	  - name: greenwich
//	    latitude: 51.4769
//	    longitude: 0
func LoadSites(path string) ([]Site, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read sites: %w", err)
	}
	sites, err := ParseSites(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return sites, nil
}

// ParseSites decodes and validates a YAML site list. Unknown keys are
// rejected.
func ParseSites(data []byte) ([]Site, error) {
	var f siteFile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse sites: %w", err)
	}
	if err := validate.Struct(f); err != nil {
		return nil, fmt.Errorf("invalid sites: %w", describe(err))
	}

	seen := make(map[string]bool, len(f.Sites))
	for _, s := range f.Sites {
		if seen[s.Name] {
			return nil, fmt.Errorf("invalid sites: duplicate site %q", s.Name)
		}
		seen[s.Name] = true
	}
	return f.Sites, nil
}
