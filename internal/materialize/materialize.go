package materialize

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/reactgen-labs/reactgen/internal/skeleton"
	"github.com/spf13/afero"
)

var (
	// ErrNotDirectory is returned when a Dir node targets an existing non-directory.
	ErrNotDirectory = errors.New("path exists and is not a directory")
	// ErrIsDirectory is returned when a File node targets an existing directory.
	ErrIsDirectory = errors.New("path exists and is a directory")
)

const (
	defaultDirPerm  os.FileMode = 0755
	defaultFilePerm os.FileMode = 0644
)

// Option configures a Materializer.
type Option func(*Materializer)

// WithObserver sets the event observer.
func WithObserver(o Observer) Option {
	return func(m *Materializer) { m.observer = o }
}

// WithDirPerm sets the mode for created directories.
func WithDirPerm(perm os.FileMode) Option {
	return func(m *Materializer) { m.dirPerm = perm }
}

// WithFilePerm sets the mode for written files.
func WithFilePerm(perm os.FileMode) Option {
	return func(m *Materializer) { m.filePerm = perm }
}

// WithDryRun reports events without touching the filesystem.
func WithDryRun(dry bool) Option {
	return func(m *Materializer) { m.dryRun = dry }
}

// Materializer writes templates to a filesystem. One Materializer should be
// used for all templates of a run so that file collisions between templates
// are reported. It is not safe for concurrent use.
type Materializer struct {
	fs       afero.Fs
	observer Observer
	dirPerm  os.FileMode
	filePerm os.FileMode
	dryRun   bool

	written map[string]bool
	// planned tracks directories a dry run would have created.
	planned map[string]bool
}

// New returns a Materializer writing to fsys.
func New(fsys afero.Fs, opts ...Option) *Materializer {
	m := &Materializer{
		fs:       fsys,
		dirPerm:  defaultDirPerm,
		filePerm: defaultFilePerm,
		written:  make(map[string]bool),
		planned:  make(map[string]bool),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Materialize applies t under basePath, depth-first and in declaration order.
// The first filesystem error aborts the walk; whatever was written before it
// stays on disk.
func (m *Materializer) Materialize(basePath string, t skeleton.Template) error {
	for _, n := range t {
		fullPath := filepath.Join(basePath, n.NodeName())

		switch node := n.(type) {
		case skeleton.File:
			if err := m.writeFile(fullPath, node.Content); err != nil {
				return err
			}
		case skeleton.Dir:
			if err := m.ensureDir(fullPath); err != nil {
				return err
			}
			if err := m.Materialize(fullPath, node.Children); err != nil {
				return err
			}
		default:
			return fmt.Errorf("unsupported node type %T at %s", n, fullPath)
		}
	}
	return nil
}

func (m *Materializer) ensureDir(path string) error {
	if m.planned[path] {
		return nil
	}

	info, err := m.fs.Stat(path)
	switch {
	case err == nil && info.IsDir():
		return nil
	case err == nil:
		return fmt.Errorf("creating directory %s: %w", path, ErrNotDirectory)
	case !errors.Is(err, fs.ErrNotExist):
		return fmt.Errorf("stat %s: %w", path, err)
	}

	if m.dryRun {
		m.planned[path] = true
	} else if err := m.fs.Mkdir(path, m.dirPerm); err != nil {
		return fmt.Errorf("creating directory %s: %w", path, err)
	}

	m.emit(Event{Kind: DirCreated, Path: path, DryRun: m.dryRun})
	return nil
}

func (m *Materializer) writeFile(path, content string) error {
	kind := FileCreated
	collision := m.written[path]

	if collision {
		kind = FileOverwritten
	} else {
		info, err := m.fs.Stat(path)
		switch {
		case err == nil && info.IsDir():
			return fmt.Errorf("writing %s: %w", path, ErrIsDirectory)
		case err == nil:
			kind = FileOverwritten
		case !errors.Is(err, fs.ErrNotExist):
			return fmt.Errorf("stat %s: %w", path, err)
		}
	}

	if !m.dryRun {
		if err := afero.WriteFile(m.fs, path, []byte(content), m.filePerm); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}
	}
	m.written[path] = true

	m.emit(Event{Kind: kind, Path: path, Collision: collision, DryRun: m.dryRun})
	return nil
}

func (m *Materializer) emit(e Event) {
	if m.observer != nil {
		m.observer.Observe(e)
	}
}

// Written returns the number of distinct file paths written so far.
func (m *Materializer) Written() int {
	return len(m.written)
}
