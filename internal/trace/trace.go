// Package trace writes behavior-tree runs to a markdown file for debugging.
package trace

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/gobhv/go-bhv/pkg/bhv"
	"github.com/gobhv/go-bhv/pkg/bhv/event"
)

// Tracer records the per-tick (or per-event) results of a run.
// Thread-safe. The log file is truncated on creation.
type Tracer struct {
	mu    sync.Mutex
	file  *os.File
	path  string
	runID string
	steps int
}

// New creates a tracer that writes to the given path.
// The file is created (or truncated) immediately.
func New(path string) (*Tracer, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("trace: create %q: %w", path, err)
	}
	return &Tracer{file: f, path: path}, nil
}

// StartRun writes the run header and stamps a fresh run ID.
func (t *Tracer) StartRun(treeName string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.file.Truncate(0)
	t.file.Seek(0, 0)
	t.runID = uuid.NewString()
	t.steps = 0

	t.writef("# Run %s\n\n", t.runID)
	t.writef("**Tree**: %s  \n", treeName)
	t.writef("**Started**: %s\n\n", time.Now().Format(time.RFC3339))
	t.writef("---\n\n")
}

// Tick records one poll-model tick. Wire it up via bhv.WithTickHook.
func (t *Tracer) Tick(tick int, s bhv.Status) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.steps++
	t.writef("- tick %d → %s\n", tick, s)
}

// Event records one event-model step. Wire it up via event.WithEventHook.
func (t *Tracer) Event(n int, ev event.Event, s bhv.Status) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.steps++
	kind := string(ev.Kind())
	if kind == "" {
		kind = "(unit)"
	}
	t.writef("- event %d [%s] → %s\n", n, kind, s)
}

// EndRun writes the final summary.
func (t *Tracer) EndRun(final bhv.Status) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.writef("\n## Summary\n\n")
	t.writef("- **Run**: %s\n", t.runID)
	t.writef("- **Steps**: %d\n", t.steps)
	t.writef("- **Result**: %s\n", final)
	t.writef("- **Finished**: %s\n", time.Now().Format(time.RFC3339))
}

// RunID returns the identifier stamped by the last StartRun.
func (t *Tracer) RunID() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.runID
}

// Close closes the underlying file.
func (t *Tracer) Close() error {
	if t.file != nil {
		return t.file.Close()
	}
	return nil
}

func (t *Tracer) writef(format string, args ...any) {
	fmt.Fprintf(t.file, format, args...)
}
