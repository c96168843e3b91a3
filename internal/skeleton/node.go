package skeleton

import (
	"errors"
	"fmt"
	"strings"
)

// Node is a single entry of a Template. It is implemented only by File and Dir.
type Node interface {
	NodeName() string
	isNode()
}

// File is a leaf node with fully resolved content.
type File struct {
	Name    string
	Content string
}

// Dir is a directory node. Its children form the Template of the next level.
type Dir struct {
	Name     string
	Children Template
}

func (f File) NodeName() string { return f.Name }
func (File) isNode()            {}

func (d Dir) NodeName() string { return d.Name }
func (Dir) isNode()            {}

// Template is an ordered sequence of nodes at one directory level.
type Template []Node

// ErrInvalidName is returned by Validate for names that cannot be a single path segment.
var ErrInvalidName = errors.New("invalid node name")

// ErrDuplicateName is returned by Validate when two siblings share a name.
var ErrDuplicateName = errors.New("duplicate sibling name")

// Validate checks that every name is a single path segment and that sibling
// names are unique at every level.
func (t Template) Validate() error {
	return t.validate("")
}

func (t Template) validate(prefix string) error {
	seen := make(map[string]bool, len(t))
	for _, n := range t {
		name := n.NodeName()
		if err := validateName(name); err != nil {
			return fmt.Errorf("%s%q: %w", prefix, name, err)
		}
		if seen[name] {
			return fmt.Errorf("%s%q: %w", prefix, name, ErrDuplicateName)
		}
		seen[name] = true

		if d, ok := n.(Dir); ok {
			if err := d.Children.validate(prefix + name + "/"); err != nil {
				return err
			}
		}
	}
	return nil
}

func validateName(name string) error {
	switch {
	case name == "":
		return fmt.Errorf("%w: empty", ErrInvalidName)
	case name == "." || name == "..":
		return fmt.Errorf("%w: relative segment", ErrInvalidName)
	case strings.ContainsAny(name, `/\`):
		return fmt.Errorf("%w: contains a path separator", ErrInvalidName)
	case strings.ContainsRune(name, 0):
		return fmt.Errorf("%w: contains NUL", ErrInvalidName)
	}
	return nil
}

// Walk calls fn for every node in depth-first order, parent before children.
// The path passed to fn is slash-separated and relative to the template root.
func (t Template) Walk(fn func(path string, n Node)) {
	t.walk("", fn)
}

func (t Template) walk(prefix string, fn func(string, Node)) {
	for _, n := range t {
		p := prefix + n.NodeName()
		fn(p, n)
		if d, ok := n.(Dir); ok {
			d.Children.walk(p+"/", fn)
		}
	}
}

// Files returns the slash-separated paths of every File in the template.
func (t Template) Files() []string {
	var out []string
	t.Walk(func(p string, n Node) {
		if _, ok := n.(File); ok {
			out = append(out, p)
		}
	})
	return out
}
