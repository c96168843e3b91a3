package toolchain

import (
	"context"
	"fmt"

	"github.com/reactgen-labs/reactgen/internal/deps"
)

// PackageInstaller installs dependency groups with a package manager.
type PackageInstaller struct {
	Runner  Runner
	Manager PackageManager
}

// Install runs one install command for the group inside dir.
func (p *PackageInstaller) Install(ctx context.Context, dir string, g deps.Group) error {
	cmd, err := p.Manager.InstallCommand(dir, g.Args())
	if err != nil {
		return err
	}
	out, err := p.Runner.Run(ctx, cmd)
	if err := Check(cmd, out, err); err != nil {
		return fmt.Errorf("installing %s packages: %w", g.Label, err)
	}
	return nil
}

// DevServer starts the project's dev server and blocks until it exits.
type DevServer struct {
	Runner  Runner
	Manager PackageManager
}

func (d *DevServer) Start(ctx context.Context, dir string) error {
	cmd, err := d.Manager.StartCommand(dir)
	if err != nil {
		return err
	}
	out, err := d.Runner.Run(ctx, cmd)
	if err := Check(cmd, out, err); err != nil {
		return fmt.Errorf("starting dev server: %w", err)
	}
	return nil
}
