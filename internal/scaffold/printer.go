package scaffold

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/reactgen-labs/reactgen/internal/materialize"
)

// eventPrinter writes one line per materialization event, with paths shown
// relative to the project root's parent so they read like "app/src/index.js".
type eventPrinter struct {
	w    io.Writer
	base string
}

func newEventPrinter(w io.Writer, root string) *eventPrinter {
	return &eventPrinter{w: w, base: filepath.Dir(root)}
}

func (p *eventPrinter) Observe(e materialize.Event) {
	path := e.Path
	if rel, err := filepath.Rel(p.base, e.Path); err == nil {
		path = rel
	}
	suffix := ""
	if e.DryRun {
		suffix = color.New(color.FgCyan).Sprint(" (dry run)")
	}
	fmt.Fprintf(p.w, "%s %s%s\n", kindLabel(e.Kind), filepath.ToSlash(path), suffix)
}

func kindLabel(k materialize.Kind) string {
	switch k {
	case materialize.FileOverwritten:
		return color.New(color.FgYellow).Sprint(k.String())
	default:
		return color.New(color.FgGreen).Sprint(k.String())
	}
}
