package scaffold

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/reactgen-labs/reactgen/internal/deps"
	"github.com/reactgen-labs/reactgen/internal/materialize"
	"github.com/reactgen-labs/reactgen/internal/skeleton"
	"github.com/reactgen-labs/reactgen/internal/toolchain"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// ErrMissingRoot is returned when no project root path is given.
var ErrMissingRoot = errors.New("missing required project path")

// Bootstrapper prepares the project and returns its empty source directory.
type Bootstrapper interface {
	Bootstrap(ctx context.Context, root string) (string, error)
}

// Installer installs one dependency group inside the project directory.
type Installer interface {
	Install(ctx context.Context, dir string, g deps.Group) error
}

// Launcher starts the dev server and blocks until it exits.
type Launcher interface {
	Start(ctx context.Context, dir string) error
}

// Options selects what a run generates.
type Options struct {
	Root  string
	Flags skeleton.Flags
	// Extra is an additional install group appended after the feature groups.
	Extra       *deps.Group
	Start       bool
	SkipInstall bool
	// DryRun prints the events a run would produce without running any tool
	// or touching the filesystem.
	DryRun bool
}

// Result holds the outcome of a run.
type Result struct {
	Root       string
	SourceDir  string
	Events     []materialize.Event
	Collisions []string
	Installed  []deps.Group
	Started    bool
}

// Scaffolder wires the materializer to its external collaborators.
type Scaffolder struct {
	FS           afero.Fs
	Bootstrapper Bootstrapper
	Installer    Installer
	Launcher     Launcher
	// Out receives the human-readable progress log; nil discards it.
	Out    io.Writer
	Logger *zap.Logger
}

// Run executes a full generation. The root path is checked before anything
// else happens. Processes never overlap with materialization: bootstrap runs
// first, then every template is written, then installs, then start.
func (s *Scaffolder) Run(ctx context.Context, opts Options) (*Result, error) {
	root := strings.TrimSpace(opts.Root)
	if root == "" {
		return nil, ErrMissingRoot
	}

	logger := s.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	out := s.Out
	if out == nil {
		out = io.Discard
	}

	result := &Result{Root: root}

	src, err := s.bootstrap(ctx, root, opts.DryRun, logger)
	if err != nil {
		return result, err
	}
	result.SourceDir = src

	rec := &materialize.Recorder{}
	m := materialize.New(s.FS,
		materialize.WithObserver(materialize.Multi(rec, newEventPrinter(out, root), collisionObserver(result, logger))),
		materialize.WithDryRun(opts.DryRun),
	)

	for _, sel := range skeleton.Select(opts.Flags) {
		fmt.Fprintf(out, "--- %s ---\n", sectionTitle(sel.Feature))
		logger.Debug("materializing template", zap.String("feature", string(sel.Feature)), zap.String("dir", src))
		if err := m.Materialize(src, sel.Template); err != nil {
			result.Events = rec.Events()
			return result, fmt.Errorf("generating %s files: %w", sel.Feature, err)
		}
	}
	result.Events = rec.Events()

	if opts.DryRun {
		logger.Info("dry run, skipping install and start")
		return result, nil
	}

	if !opts.SkipInstall {
		groups := deps.Groups(opts.Flags)
		if opts.Extra != nil && len(opts.Extra.Packages) > 0 {
			groups = append(groups, *opts.Extra)
		}
		for _, g := range groups {
			logger.Info("installing packages", zap.String("group", g.Label), zap.Strings("packages", g.Args()))
			if err := s.Installer.Install(ctx, root, g); err != nil {
				return result, err
			}
			result.Installed = append(result.Installed, g)
		}
	}

	if opts.Start {
		logger.Info("starting dev server", zap.String("dir", root))
		if err := s.Launcher.Start(ctx, root); err != nil {
			return result, err
		}
		result.Started = true
	}

	return result, nil
}

func (s *Scaffolder) bootstrap(ctx context.Context, root string, dryRun bool, logger *zap.Logger) (string, error) {
	if dryRun {
		return filepath.Join(root, toolchain.SourceDir), nil
	}
	logger.Info("bootstrapping project", zap.String("root", root))
	src, err := s.Bootstrapper.Bootstrap(ctx, root)
	if err != nil {
		return "", err
	}
	return src, nil
}

// collisionObserver records and warns about files written by more than one template.
func collisionObserver(result *Result, logger *zap.Logger) materialize.Observer {
	return materialize.ObserverFunc(func(e materialize.Event) {
		if e.Collision {
			result.Collisions = append(result.Collisions, e.Path)
			logger.Warn("file declared by more than one template, last writer wins", zap.String("path", e.Path))
		}
	})
}

func sectionTitle(f skeleton.Feature) string {
	if f == skeleton.FeatureBaseline {
		return "Baseline"
	}
	for _, info := range skeleton.Features() {
		if info.ID == f {
			return info.Title
		}
	}
	return string(f)
}
