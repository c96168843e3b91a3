package materialize

import "sync"

// Kind classifies a materialization event.
type Kind int

const (
	DirCreated Kind = iota
	FileCreated
	FileOverwritten
)

func (k Kind) String() string {
	switch k {
	case DirCreated:
		return "Create Folder"
	case FileCreated:
		return "Create File"
	case FileOverwritten:
		return "Overwrite File"
	default:
		return "Unknown"
	}
}

// Event is emitted once per file written and once per directory newly created.
// Directories that already existed produce no event.
type Event struct {
	Kind Kind
	Path string
	// Collision is set when the file was already written earlier by the same
	// Materializer, i.e. two templates declared the same file.
	Collision bool
	DryRun    bool
}

func (e Event) String() string {
	return e.Kind.String() + " " + e.Path
}

// Observer receives events in the order the filesystem changes happen.
type Observer interface {
	Observe(Event)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(Event)

func (f ObserverFunc) Observe(e Event) { f(e) }

// Recorder is an Observer that keeps every event.
type Recorder struct {
	mu     sync.Mutex
	events []Event
}

func (r *Recorder) Observe(e Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
}

// Events returns a copy of the recorded events.
func (r *Recorder) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Event, len(r.events))
	copy(out, r.events)
	return out
}

// Count returns how many recorded events have the given kind.
func (r *Recorder) Count(k Kind) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, e := range r.events {
		if e.Kind == k {
			n++
		}
	}
	return n
}

// Multi fans an event out to several observers.
func Multi(observers ...Observer) Observer {
	return ObserverFunc(func(e Event) {
		for _, o := range observers {
			if o != nil {
				o.Observe(e)
			}
		}
	})
}
