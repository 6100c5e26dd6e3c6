package site

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/pthm/hxdrop"
)

//go:embed demos.yaml
var demosYAML []byte

// Demo is one live picker on the index page.
type Demo struct {
	Slug        string   `yaml:"slug"`
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	Accept      []string `yaml:"accept"`
	MaxFiles    int      `yaml:"max_files"`
	Code        string   `yaml:"code"`
}

// Config returns the widget configuration for the demo.
func (d Demo) Config(theme string) hxdrop.Config {
	return hxdrop.Config{
		Accept:   d.Accept,
		MaxFiles: d.MaxFiles,
		Class:    "demo-" + d.Slug,
		Theme:    theme,
	}
}

// LoadCatalog parses the embedded demo catalog.
func LoadCatalog() ([]Demo, error) {
	return ParseCatalog(demosYAML)
}

// ParseCatalog parses and validates a YAML demo list.
func ParseCatalog(data []byte) ([]Demo, error) {
	var demos []Demo
	if err := yaml.Unmarshal(data, &demos); err != nil {
		return nil, fmt.Errorf("parse demo catalog: %w", err)
	}

	seen := make(map[string]bool, len(demos))
	for i, d := range demos {
		switch {
		case d.Slug == "":
			return nil, fmt.Errorf("demo %d: missing slug", i)
		case seen[d.Slug]:
			return nil, fmt.Errorf("demo %q: duplicate slug", d.Slug)
		case d.Title == "":
			return nil, fmt.Errorf("demo %q: missing title", d.Slug)
		case d.MaxFiles < 0:
			return nil, fmt.Errorf("demo %q: max_files %d is negative", d.Slug, d.MaxFiles)
		}
		seen[d.Slug] = true
	}
	return demos, nil
}
