package skeleton

import "strings"

// Fragment is one piece of file content. An unconditional fragment has an empty
// When and always contributes Text. A conditional fragment contributes Text when
// its feature is enabled and Else otherwise.
type Fragment struct {
	Text string
	When Feature
	Else string
}

// Always returns an unconditional fragment.
func Always(text string) Fragment { return Fragment{Text: text} }

// If returns a fragment that is present only when f is enabled.
func If(f Feature, text string) Fragment { return Fragment{Text: text, When: f} }

// IfElse returns a fragment choosing between two texts on f.
func IfElse(f Feature, text, otherwise string) Fragment {
	return Fragment{Text: text, When: f, Else: otherwise}
}

// Resolve concatenates the fragments for the given flag set.
func Resolve(fragments []Fragment, flags Flags) string {
	var b strings.Builder
	for _, fr := range fragments {
		if fr.When == "" || flags.Enabled(fr.When) {
			b.WriteString(fr.Text)
			continue
		}
		b.WriteString(fr.Else)
	}
	return b.String()
}
