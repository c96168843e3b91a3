package preset

import (
	"fmt"
	"os"
	"strings"

	"github.com/reactgen-labs/reactgen/internal/deps"
	"github.com/reactgen-labs/reactgen/internal/skeleton"
	"go.yaml.in/yaml/v3"
)

// Preset is a reusable project recipe.
type Preset struct {
	Name           string   `yaml:"name"`
	Description    string   `yaml:"description,omitempty"`
	Features       []string `yaml:"features,omitempty"`
	Start          bool     `yaml:"start,omitempty"`
	PackageManager string   `yaml:"package_manager,omitempty"`
	ExtraPackages  []string `yaml:"extra_packages,omitempty"`
}

// InvalidError reports schema violations in a preset file.
type InvalidError struct {
	Path   string
	Issues []ValidationIssue
}

func (e *InvalidError) Error() string {
	msgs := make([]string, len(e.Issues))
	for i, issue := range e.Issues {
		msgs[i] = issue.String()
	}
	return fmt.Sprintf("preset %s is invalid: %s", e.Path, strings.Join(msgs, "; "))
}

// Load reads, validates, and decodes a preset file.
func Load(path string) (*Preset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading preset %s: %w", path, err)
	}
	return parse(path, data)
}

func parse(path string, data []byte) (*Preset, error) {
	result, err := Validate(data)
	if err != nil {
		return nil, fmt.Errorf("validating preset %s: %w", path, err)
	}
	if !result.Valid {
		return nil, &InvalidError{Path: path, Issues: result.Issues}
	}

	var p Preset
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parsing preset %s: %w", path, err)
	}
	return &p, nil
}

// Flags maps the preset's feature list to a flag set.
func (p *Preset) Flags() (skeleton.Flags, error) {
	var fl skeleton.Flags
	for _, name := range p.Features {
		f, err := skeleton.ParseFeature(name)
		if err != nil {
			return skeleton.Flags{}, fmt.Errorf("preset %s: %w", p.Name, err)
		}
		fl = fl.With(f)
	}
	return fl, nil
}

// ExtraGroup returns the install group for extra_packages, or false when empty.
func (p *Preset) ExtraGroup() (deps.Group, bool, error) {
	if len(p.ExtraPackages) == 0 {
		return deps.Group{}, false, nil
	}
	g, err := deps.Extra(p.ExtraPackages)
	if err != nil {
		return deps.Group{}, false, fmt.Errorf("preset %s: %w", p.Name, err)
	}
	return g, true, nil
}
