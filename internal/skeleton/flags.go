package skeleton

// Feature identifies a template contribution.
type Feature string

const (
	FeatureBaseline Feature = "baseline"
	FeatureRedux    Feature = "redux"
	FeatureToastify Feature = "toastify"
)

// Flags is the set of enabled optional features. It is passed by value to
// every builder; nothing reads feature state from globals.
type Flags struct {
	Redux    bool
	Toastify bool
}

// Enabled reports whether f is part of the flag set. The baseline is always enabled.
func (fl Flags) Enabled(f Feature) bool {
	switch f {
	case FeatureBaseline:
		return true
	case FeatureRedux:
		return fl.Redux
	case FeatureToastify:
		return fl.Toastify
	default:
		return false
	}
}

// With returns a copy of fl with f enabled. Unknown features are ignored.
func (fl Flags) With(f Feature) Flags {
	switch f {
	case FeatureRedux:
		fl.Redux = true
	case FeatureToastify:
		fl.Toastify = true
	}
	return fl
}

// Or merges two flag sets.
func (fl Flags) Or(other Flags) Flags {
	return Flags{
		Redux:    fl.Redux || other.Redux,
		Toastify: fl.Toastify || other.Toastify,
	}
}

// Features returns the optional features in fl, in fixed feature order.
func (fl Flags) Features() []Feature {
	var out []Feature
	for _, f := range optionalOrder {
		if fl.Enabled(f) {
			out = append(out, f)
		}
	}
	return out
}
