// Package deps defines the npm package groups installed into a generated project.
// Each group is one install invocation; feature groups are gated by the same
// flags that gate the corresponding skeleton templates.
package deps

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/reactgen-labs/reactgen/internal/skeleton"
)

// Package is an npm package name with an optional semver constraint.
type Package struct {
	Name       string
	Constraint string
}

// String renders the package as an install argument, e.g. "react-router-dom@^5.3.0".
func (p Package) String() string {
	if p.Constraint == "" {
		return p.Name
	}
	return p.Name + "@" + p.Constraint
}

// Group is a set of packages installed by one command.
type Group struct {
	Label    string
	Packages []Package
}

// Args returns the install arguments for the group.
func (g Group) Args() []string {
	out := make([]string, len(g.Packages))
	for i, p := range g.Packages {
		out[i] = p.String()
	}
	return out
}

var namePattern = regexp.MustCompile(`^(@[a-z0-9][a-z0-9._~-]*/)?[a-z0-9][a-z0-9._~-]*$`)

// Parse reads a "name" or "name@constraint" spec. Scoped names such as
// "@reduxjs/toolkit@^1.9" are supported. The constraint must be a valid semver range.
func Parse(spec string) (Package, error) {
	spec = strings.TrimSpace(spec)
	name, constraint := spec, ""
	if i := strings.LastIndex(spec, "@"); i > 0 {
		name, constraint = spec[:i], spec[i+1:]
		if constraint == "" {
			return Package{}, fmt.Errorf("package %q: empty version constraint", spec)
		}
	}

	if !namePattern.MatchString(name) {
		return Package{}, fmt.Errorf("invalid package name %q", name)
	}
	if constraint != "" {
		if _, err := semver.NewConstraint(constraint); err != nil {
			return Package{}, fmt.Errorf("package %q: invalid version constraint: %w", name, err)
		}
	}
	return Package{Name: name, Constraint: constraint}, nil
}

// MustParse is Parse for static package lists.
func MustParse(specs ...string) []Package {
	out := make([]Package, len(specs))
	for i, s := range specs {
		p, err := Parse(s)
		if err != nil {
			panic(err)
		}
		out[i] = p
	}
	return out
}

// Groups returns the install groups for a flag set: the baseline groups first,
// then each enabled feature's group in fixed feature order.
func Groups(flags skeleton.Flags) []Group {
	groups := []Group{
		{Label: "bootstrap", Packages: MustParse("bootstrap", "react-bootstrap")},
		{Label: "axios", Packages: MustParse("axios")},
		// The generated routes use the v5 Switch/Redirect API.
		{Label: "router", Packages: MustParse("react-router-dom@^5.3.0")},
	}
	for _, f := range flags.Features() {
		if g, ok := featureGroups[f]; ok {
			groups = append(groups, g)
		}
	}
	return groups
}

var featureGroups = map[skeleton.Feature]Group{
	skeleton.FeatureRedux: {
		Label:    "redux",
		Packages: MustParse("redux", "react-redux", "redux-thunk", "redux-devtools-extension"),
	},
	skeleton.FeatureToastify: {
		Label:    "toastify",
		Packages: MustParse("react-toastify"),
	},
}

// Extra builds a trailing group from user-supplied package specs.
func Extra(specs []string) (Group, error) {
	g := Group{Label: "extra"}
	for _, s := range specs {
		p, err := Parse(s)
		if err != nil {
			return Group{}, err
		}
		g.Packages = append(g.Packages, p)
	}
	return g, nil
}
