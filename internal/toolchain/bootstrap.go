package toolchain

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"
)

// SourceDir is the project subdirectory the skeleton is generated into.
const SourceDir = "src"

// CreateReactApp bootstraps a project with `npx create-react-app <root>` and then
// replaces the generated src directory with an empty one.
type CreateReactApp struct {
	Runner Runner
	FS     afero.Fs
	// Tool is the bootstrap package passed to npx; defaults to create-react-app.
	Tool string
}

// Bootstrap runs the bootstrap tool and returns the emptied source directory.
func (b *CreateReactApp) Bootstrap(ctx context.Context, root string) (string, error) {
	tool := b.Tool
	if tool == "" {
		tool = "create-react-app"
	}

	cmd := Command{
		Name: "npx",
		Args: []string{tool, root},
		// Skip npx's interactive "Ok to proceed?" prompt.
		Env: []string{"npm_config_yes=true"},
	}
	out, err := b.Runner.Run(ctx, cmd)
	if err := Check(cmd, out, err); err != nil {
		return "", fmt.Errorf("bootstrapping %s: %w", root, err)
	}

	src := filepath.Join(root, SourceDir)
	if err := b.FS.RemoveAll(src); err != nil {
		return "", fmt.Errorf("removing %s: %w", src, err)
	}
	if err := b.FS.Mkdir(src, 0755); err != nil {
		return "", fmt.Errorf("creating %s: %w", src, err)
	}
	return src, nil
}

// ExistingProject skips the bootstrap tool and only makes sure the source
// directory exists. Existing content is kept.
type ExistingProject struct {
	FS afero.Fs
}

func (e *ExistingProject) Bootstrap(_ context.Context, root string) (string, error) {
	src := filepath.Join(root, SourceDir)
	if err := e.FS.MkdirAll(src, 0755); err != nil {
		return "", fmt.Errorf("creating %s: %w", src, err)
	}
	return src, nil
}
