package branding

import "testing"

func TestEmbeddedValues(t *testing.T) {
	if got := CLIName(); got != "reactgen" {
		t.Errorf("CLIName() = %q, want reactgen", got)
	}
	if got := HomeDir(); got != ".reactgen" {
		t.Errorf("HomeDir() = %q, want .reactgen", got)
	}
	if got := EnvVar("package_manager"); got != "REACTGEN_PACKAGE_MANAGER" {
		t.Errorf("EnvVar() = %q", got)
	}
}
