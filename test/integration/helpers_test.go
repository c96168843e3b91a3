//go:build integration

package integration_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/reactgen-labs/reactgen/internal/toolchain"
)

// recordingRunner records commands instead of spawning node tooling.
type recordingRunner struct {
	mu       sync.Mutex
	commands []toolchain.Command
	failOn   string
}

func (r *recordingRunner) Run(_ context.Context, c toolchain.Command) (*toolchain.Output, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.commands = append(r.commands, c)
	if r.failOn != "" && strings.Contains(c.String(), r.failOn) {
		return &toolchain.Output{ExitCode: 1, Stderr: "npm ERR! 404"}, nil
	}
	return &toolchain.Output{}, nil
}

func (r *recordingRunner) lines() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, 0, len(r.commands))
	for _, c := range r.commands {
		out = append(out, c.String())
	}
	return out
}

// setupTestEnv sandboxes the user config directory and returns a fresh
// project root that does not exist yet.
func setupTestEnv(t *testing.T) string {
	t.Helper()
	t.Setenv("REACTGEN_HOME", t.TempDir())
	return filepath.Join(t.TempDir(), "app")
}

func assertFileExists(t *testing.T, path string) {
	t.Helper()
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("expected file %s to exist: %v", path, err)
	}
	if info.IsDir() {
		t.Fatalf("expected %s to be a file, got directory", path)
	}
}

func assertNotExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("expected %s to not exist", path)
	}
}

func assertFileContains(t *testing.T, path, substr string) {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	if !strings.Contains(string(data), substr) {
		t.Errorf("%s does not contain %q", path, substr)
	}
}

func listFiles(t *testing.T, root string) []string {
	t.Helper()
	var files []string
	err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() {
			rel, _ := filepath.Rel(root, path)
			files = append(files, filepath.ToSlash(rel))
		}
		return nil
	})
	if err != nil {
		t.Fatalf("walking %s: %v", root, err)
	}
	return files
}
