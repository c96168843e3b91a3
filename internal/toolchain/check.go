package toolchain

import (
	"context"
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// MinNodeVersion is the oldest Node.js release create-react-app supports.
const MinNodeVersion = ">= 14.0.0"

// ToolStatus is the result of probing one external tool.
type ToolStatus struct {
	Name    string
	Version string
	OK      bool
	Problem string
}

// CheckTools probes node, npx and the package manager by running `<tool> --version`.
func CheckTools(ctx context.Context, r Runner, pm PackageManager) []ToolStatus {
	names := []string{"node", "npx", pm.Name()}

	var out []ToolStatus
	for _, name := range names {
		st := probe(ctx, r, name)
		if st.OK && name == "node" {
			if ok, err := satisfies(st.Version, MinNodeVersion); err != nil {
				st.OK, st.Problem = false, err.Error()
			} else if !ok {
				st.OK, st.Problem = false, fmt.Sprintf("version %s does not satisfy %s", st.Version, MinNodeVersion)
			}
		}
		out = append(out, st)
	}
	return out
}

func probe(ctx context.Context, r Runner, name string) ToolStatus {
	cmd := Command{Name: name, Args: []string{"--version"}}
	out, err := r.Run(ctx, cmd)
	if err := Check(cmd, out, err); err != nil {
		return ToolStatus{Name: name, Problem: err.Error()}
	}
	return ToolStatus{Name: name, Version: strings.TrimSpace(out.Stdout), OK: true}
}

// satisfies reports whether version (with or without a leading "v") meets constraint.
func satisfies(version, constraint string) (bool, error) {
	v, err := semver.NewVersion(strings.TrimPrefix(version, "v"))
	if err != nil {
		return false, fmt.Errorf("parsing version %q: %w", version, err)
	}
	c, err := semver.NewConstraint(constraint)
	if err != nil {
		return false, fmt.Errorf("parsing constraint %q: %w", constraint, err)
	}
	return c.Check(v), nil
}
