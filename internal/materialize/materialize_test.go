package materialize

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"sort"
	"syscall"
	"testing"

	"github.com/reactgen-labs/reactgen/internal/skeleton"
	"github.com/spf13/afero"
)

// failingFs fails any file open whose base name matches failOn.
type failingFs struct {
	afero.Fs
	failOn string
}

var errDiskFull = errors.New("no space left on device")

func (f failingFs) OpenFile(name string, flag int, perm os.FileMode) (afero.File, error) {
	if filepath.Base(name) == f.failOn {
		return nil, &os.PathError{Op: "open", Path: name, Err: errDiskFull}
	}
	return f.Fs.OpenFile(name, flag, perm)
}

func mustMkdir(t *testing.T, fsys afero.Fs, path string) {
	t.Helper()
	if err := fsys.MkdirAll(path, 0755); err != nil {
		t.Fatal(err)
	}
}

func readFile(t *testing.T, fsys afero.Fs, path string) string {
	t.Helper()
	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	return string(data)
}

// listTree returns every path under root, slash-separated and sorted.
func listTree(t *testing.T, fsys afero.Fs, root string) []string {
	t.Helper()
	var out []string
	err := afero.Walk(fsys, root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if path == root {
			return nil
		}
		rel, _ := filepath.Rel(root, path)
		rel = filepath.ToSlash(rel)
		if info.IsDir() {
			rel += "/"
		}
		out = append(out, rel)
		return nil
	})
	if err != nil {
		t.Fatalf("walking %s: %v", root, err)
	}
	sort.Strings(out)
	return out
}

func TestMaterializeCreatesTree(t *testing.T) {
	fsys := afero.NewMemMapFs()
	mustMkdir(t, fsys, "/app/src")

	rec := &Recorder{}
	m := New(fsys, WithObserver(rec))

	tmpl := skeleton.Template{
		skeleton.File{Name: "index.js", Content: "root"},
		skeleton.Dir{Name: "components", Children: skeleton.Template{
			skeleton.File{Name: "X.js", Content: "x"},
			skeleton.Dir{Name: "empty"},
		}},
	}
	if err := m.Materialize("/app/src", tmpl); err != nil {
		t.Fatalf("Materialize() error: %v", err)
	}

	want := []string{"components/", "components/X.js", "components/empty/", "index.js"}
	if got := listTree(t, fsys, "/app/src"); !reflect.DeepEqual(got, want) {
		t.Errorf("tree = %v, want %v", got, want)
	}
	if got := readFile(t, fsys, "/app/src/components/X.js"); got != "x" {
		t.Errorf("X.js = %q, want %q", got, "x")
	}

	// Parent before children, declaration order.
	var events []string
	for _, e := range rec.Events() {
		events = append(events, e.String())
	}
	wantEvents := []string{
		"Create File " + filepath.Join("/app/src", "index.js"),
		"Create Folder " + filepath.Join("/app/src", "components"),
		"Create File " + filepath.Join("/app/src", "components", "X.js"),
		"Create Folder " + filepath.Join("/app/src", "components", "empty"),
	}
	if !reflect.DeepEqual(events, wantEvents) {
		t.Errorf("events = %v, want %v", events, wantEvents)
	}
}

func TestMaterializeIdempotentDirectories(t *testing.T) {
	fsys := afero.NewMemMapFs()
	mustMkdir(t, fsys, "/root")

	tmpl := skeleton.Template{
		skeleton.Dir{Name: "a", Children: skeleton.Template{
			skeleton.Dir{Name: "b"},
			skeleton.File{Name: "f.js", Content: "1"},
		}},
	}

	if err := New(fsys).Materialize("/root", tmpl); err != nil {
		t.Fatalf("first Materialize() error: %v", err)
	}
	before := listTree(t, fsys, "/root")

	rec := &Recorder{}
	if err := New(fsys, WithObserver(rec)).Materialize("/root", tmpl); err != nil {
		t.Fatalf("second Materialize() error: %v", err)
	}
	if after := listTree(t, fsys, "/root"); !reflect.DeepEqual(before, after) {
		t.Errorf("tree changed on second run: %v -> %v", before, after)
	}
	if n := rec.Count(DirCreated); n != 0 {
		t.Errorf("second run emitted %d directory events, want 0", n)
	}
	if n := rec.Count(FileOverwritten); n != 1 {
		t.Errorf("second run emitted %d overwrite events, want 1", n)
	}
}

func TestMaterializeMergesDirectories(t *testing.T) {
	fsys := afero.NewMemMapFs()
	mustMkdir(t, fsys, "/root")

	base := skeleton.Template{
		skeleton.Dir{Name: "components", Children: skeleton.Template{
			skeleton.File{Name: "X.js", Content: "x"},
		}},
	}
	feature := skeleton.Template{
		skeleton.Dir{Name: "components", Children: skeleton.Template{
			skeleton.File{Name: "Y.js", Content: "y"},
		}},
	}

	rec := &Recorder{}
	m := New(fsys, WithObserver(rec))
	for _, tmpl := range []skeleton.Template{base, feature} {
		if err := m.Materialize("/root", tmpl); err != nil {
			t.Fatalf("Materialize() error: %v", err)
		}
	}

	want := []string{"components/", "components/X.js", "components/Y.js"}
	if got := listTree(t, fsys, "/root"); !reflect.DeepEqual(got, want) {
		t.Errorf("tree = %v, want %v", got, want)
	}
	if n := rec.Count(DirCreated); n != 1 {
		t.Errorf("DirCreated events = %d, want 1", n)
	}
}

func TestMaterializeLastWriterWins(t *testing.T) {
	fsys := afero.NewMemMapFs()
	mustMkdir(t, fsys, "/root")

	first := skeleton.Template{skeleton.File{Name: "Z.js", Content: "first"}}
	second := skeleton.Template{skeleton.File{Name: "Z.js", Content: "second"}}

	rec := &Recorder{}
	m := New(fsys, WithObserver(rec))
	if err := m.Materialize("/root", first); err != nil {
		t.Fatal(err)
	}
	if err := m.Materialize("/root", second); err != nil {
		t.Fatal(err)
	}

	if got := readFile(t, fsys, "/root/Z.js"); got != "second" {
		t.Errorf("Z.js = %q, want %q", got, "second")
	}

	events := rec.Events()
	if len(events) != 2 {
		t.Fatalf("got %d events, want 2", len(events))
	}
	if events[0].Kind != FileCreated || events[0].Collision {
		t.Errorf("first event = %+v, want plain FileCreated", events[0])
	}
	if events[1].Kind != FileOverwritten || !events[1].Collision {
		t.Errorf("second event = %+v, want FileOverwritten collision", events[1])
	}
	if m.Written() != 1 {
		t.Errorf("Written() = %d, want 1", m.Written())
	}
}

func TestMaterializeOverwritesPreexistingFile(t *testing.T) {
	fsys := afero.NewMemMapFs()
	mustMkdir(t, fsys, "/root")
	if err := afero.WriteFile(fsys, "/root/App.css", []byte("body{}"), 0644); err != nil {
		t.Fatal(err)
	}

	rec := &Recorder{}
	tmpl := skeleton.Template{skeleton.File{Name: "App.css", Content: ""}}
	if err := New(fsys, WithObserver(rec)).Materialize("/root", tmpl); err != nil {
		t.Fatal(err)
	}
	if got := readFile(t, fsys, "/root/App.css"); got != "" {
		t.Errorf("App.css = %q, want empty", got)
	}
	events := rec.Events()
	if len(events) != 1 || events[0].Kind != FileOverwritten || events[0].Collision {
		t.Errorf("events = %+v, want one non-collision overwrite", events)
	}
}

func TestMaterializeErrors(t *testing.T) {
	t.Run("read-only filesystem", func(t *testing.T) {
		base := afero.NewMemMapFs()
		mustMkdir(t, base, "/root")
		fsys := afero.NewReadOnlyFs(base)

		err := New(fsys).Materialize("/root", skeleton.Template{skeleton.Dir{Name: "a"}})
		if !errors.Is(err, syscall.EPERM) {
			t.Errorf("Materialize() error = %v, want EPERM", err)
		}
	})

	t.Run("file where directory expected", func(t *testing.T) {
		fsys := afero.NewMemMapFs()
		mustMkdir(t, fsys, "/root")
		if err := afero.WriteFile(fsys, "/root/components", []byte("oops"), 0644); err != nil {
			t.Fatal(err)
		}
		err := New(fsys).Materialize("/root", skeleton.Template{skeleton.Dir{Name: "components"}})
		if !errors.Is(err, ErrNotDirectory) {
			t.Errorf("Materialize() error = %v, want ErrNotDirectory", err)
		}
	})

	t.Run("directory where file expected", func(t *testing.T) {
		fsys := afero.NewMemMapFs()
		mustMkdir(t, fsys, "/root/index.js")
		err := New(fsys).Materialize("/root", skeleton.Template{skeleton.File{Name: "index.js"}})
		if !errors.Is(err, ErrIsDirectory) {
			t.Errorf("Materialize() error = %v, want ErrIsDirectory", err)
		}
	})

	t.Run("aborts and leaves partial state", func(t *testing.T) {
		mem := afero.NewMemMapFs()
		mustMkdir(t, mem, "/root")
		fsys := failingFs{Fs: mem, failOn: "b.js"}

		tmpl := skeleton.Template{
			skeleton.File{Name: "a.js", Content: "a"},
			skeleton.File{Name: "b.js", Content: "b"},
			skeleton.File{Name: "c.js", Content: "c"},
		}
		err := New(fsys).Materialize("/root", tmpl)
		if !errors.Is(err, errDiskFull) {
			t.Fatalf("Materialize() error = %v, want errDiskFull", err)
		}
		if got := listTree(t, mem, "/root"); !reflect.DeepEqual(got, []string{"a.js"}) {
			t.Errorf("tree after failure = %v, want [a.js]", got)
		}

		// A second run on a healthy filesystem repairs the partial state.
		if err := New(mem).Materialize("/root", tmpl); err != nil {
			t.Fatalf("repair run error: %v", err)
		}
		if got := listTree(t, mem, "/root"); !reflect.DeepEqual(got, []string{"a.js", "b.js", "c.js"}) {
			t.Errorf("tree after repair = %v", got)
		}
	})
}

func TestMaterializeDryRun(t *testing.T) {
	fsys := afero.NewMemMapFs()
	mustMkdir(t, fsys, "/root")

	rec := &Recorder{}
	m := New(fsys, WithObserver(rec), WithDryRun(true))
	for _, sel := range skeleton.Select(skeleton.Flags{Toastify: true}) {
		if err := m.Materialize("/root", sel.Template); err != nil {
			t.Fatalf("Materialize(%s) error: %v", sel.Feature, err)
		}
	}

	if got := listTree(t, fsys, "/root"); len(got) != 0 {
		t.Errorf("dry run wrote %v", got)
	}
	if n := rec.Count(DirCreated); n != 3 {
		t.Errorf("DirCreated = %d, want 3 (components reused)", n)
	}
	if n := rec.Count(FileCreated); n != 12 {
		t.Errorf("FileCreated = %d, want 12", n)
	}
	for _, e := range rec.Events() {
		if !e.DryRun {
			t.Errorf("event %v not marked as dry run", e)
		}
	}
}

func TestMaterializeOsFs(t *testing.T) {
	root := t.TempDir()
	fsys := afero.NewOsFs()

	m := New(fsys, WithFilePerm(0600))
	tmpl := skeleton.Template{
		skeleton.Dir{Name: "pages", Children: skeleton.Template{
			skeleton.File{Name: "HomePage.js", Content: "home"},
		}},
	}
	if err := m.Materialize(root, tmpl); err != nil {
		t.Fatalf("Materialize() error: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(root, "pages", "HomePage.js"))
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "home" {
		t.Errorf("HomePage.js = %q, want %q", data, "home")
	}
}

func TestMulti(t *testing.T) {
	a, b := &Recorder{}, &Recorder{}
	obs := Multi(a, nil, b)
	obs.Observe(Event{Kind: DirCreated, Path: "x"})
	if len(a.Events()) != 1 || len(b.Events()) != 1 {
		t.Errorf("Multi did not fan out: %d, %d", len(a.Events()), len(b.Events()))
	}
}
