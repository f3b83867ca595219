package bhv_test

import (
	"testing"

	"github.com/gobhv/go-bhv/pkg/bhv"
)

// ── stub node: returns a scripted status per call, counts invocations ──

type world struct {
	invoked []string
}

type stub struct {
	name   string
	script []bhv.Status // one entry per call; the last repeats forever
	calls  int
}

func (s *stub) Update(w *world) bhv.Status {
	w.invoked = append(w.invoked, s.name)
	i := s.calls
	if i >= len(s.script) {
		i = len(s.script) - 1
	}
	s.calls++
	return s.script[i]
}

func succeeds(name string) *stub { return &stub{name: name, script: []bhv.Status{bhv.Succeeded}} }
func fails(name string) *stub    { return &stub{name: name, script: []bhv.Status{bhv.Failed}} }

// ── Sequence ──

func TestSequence_AllSucceed(t *testing.T) {
	w := &world{}
	a, b := succeeds("a"), succeeds("b")
	seq := bhv.NewSequence[world](a, b)

	if got := seq.Update(w); got != bhv.Succeeded {
		t.Errorf("expected Succeeded, got %s", got)
	}
	if a.calls != 1 || b.calls != 1 {
		t.Errorf("expected one call per child, got a=%d b=%d", a.calls, b.calls)
	}
}

func TestSequence_ShortCircuitsOnFailure(t *testing.T) {
	w := &world{}
	a, b, c := succeeds("a"), fails("b"), succeeds("c")
	seq := bhv.NewSequence[world](a, b, c)

	if got := seq.Update(w); got != bhv.Failed {
		t.Errorf("expected Failed, got %s", got)
	}
	if a.calls != 1 || b.calls != 1 {
		t.Errorf("expected children a and b invoked once, got a=%d b=%d", a.calls, b.calls)
	}
	if c.calls != 0 {
		t.Errorf("child after the failure must not be invoked, got %d calls", c.calls)
	}
}

func TestSequence_ZeroChildrenSucceeds(t *testing.T) {
	w := &world{}
	seq := bhv.NewSequence[world]()
	if got := seq.Update(w); got != bhv.Succeeded {
		t.Errorf("expected Succeeded from empty sequence, got %s", got)
	}
}

func TestSequence_ResumesInProgressChild(t *testing.T) {
	w := &world{}
	a := succeeds("a")
	b := &stub{name: "b", script: []bhv.Status{bhv.InProgress, bhv.Succeeded}}
	c := succeeds("c")
	seq := bhv.NewSequence[world](a, b, c)

	if got := seq.Update(w); got != bhv.InProgress {
		t.Errorf("call 1: expected InProgress, got %s", got)
	}
	if got := seq.Update(w); got != bhv.Succeeded {
		t.Errorf("call 2: expected Succeeded, got %s", got)
	}
	// Call 2 must resume at b, not restart from a.
	if a.calls != 1 {
		t.Errorf("already-succeeded child re-invoked: a called %d times", a.calls)
	}
	if b.calls != 2 || c.calls != 1 {
		t.Errorf("expected b=2 c=1, got b=%d c=%d", b.calls, c.calls)
	}
}

func TestSequence_ResetAfterSuccess(t *testing.T) {
	w := &world{}
	a, b := succeeds("a"), succeeds("b")
	seq := bhv.NewSequence[world](a, b)

	seq.Update(w)
	if got := seq.Update(w); got != bhv.Succeeded {
		t.Errorf("second run: expected Succeeded, got %s", got)
	}
	// A fresh run must start from the first child again.
	if a.calls != 2 || b.calls != 2 {
		t.Errorf("expected both children invoked twice, got a=%d b=%d", a.calls, b.calls)
	}
}

func TestSequence_ResetAfterFailure(t *testing.T) {
	w := &world{}
	a := succeeds("a")
	b := &stub{name: "b", script: []bhv.Status{bhv.Failed, bhv.Succeeded}}
	seq := bhv.NewSequence[world](a, b)

	if got := seq.Update(w); got != bhv.Failed {
		t.Errorf("call 1: expected Failed, got %s", got)
	}
	if got := seq.Update(w); got != bhv.Succeeded {
		t.Errorf("call 2: expected Succeeded, got %s", got)
	}
	// The failure must have reset the sequence to child 0.
	if a.calls != 2 {
		t.Errorf("expected a re-invoked after reset, got %d calls", a.calls)
	}
}

// ── Selector ──

func TestSelector_ShortCircuitsOnSuccess(t *testing.T) {
	w := &world{}
	a, b, c := fails("a"), succeeds("b"), fails("c")
	sel := bhv.NewSelector[world](a, b, c)

	if got := sel.Update(w); got != bhv.Succeeded {
		t.Errorf("expected Succeeded, got %s", got)
	}
	if a.calls != 1 || b.calls != 1 {
		t.Errorf("expected children a and b invoked once, got a=%d b=%d", a.calls, b.calls)
	}
	if c.calls != 0 {
		t.Errorf("child after the success must not be invoked, got %d calls", c.calls)
	}
}

func TestSelector_AllFail(t *testing.T) {
	w := &world{}
	sel := bhv.NewSelector[world](fails("a"), fails("b"))
	if got := sel.Update(w); got != bhv.Failed {
		t.Errorf("expected Failed when every child fails, got %s", got)
	}
}

func TestSelector_ZeroChildrenFails(t *testing.T) {
	w := &world{}
	sel := bhv.NewSelector[world]()
	if got := sel.Update(w); got != bhv.Failed {
		t.Errorf("expected Failed from empty selector, got %s", got)
	}
}

func TestSelector_ResumesInProgressChild(t *testing.T) {
	w := &world{}
	a := fails("a")
	b := &stub{name: "b", script: []bhv.Status{bhv.InProgress, bhv.Failed}}
	c := succeeds("c")
	sel := bhv.NewSelector[world](a, b, c)

	if got := sel.Update(w); got != bhv.InProgress {
		t.Errorf("call 1: expected InProgress, got %s", got)
	}
	if got := sel.Update(w); got != bhv.Succeeded {
		t.Errorf("call 2: expected Succeeded, got %s", got)
	}
	if a.calls != 1 || b.calls != 2 || c.calls != 1 {
		t.Errorf("expected a=1 b=2 c=1, got a=%d b=%d c=%d", a.calls, b.calls, c.calls)
	}
}

func TestSelector_ResetAfterSuccess(t *testing.T) {
	w := &world{}
	a := &stub{name: "a", script: []bhv.Status{bhv.Succeeded}}
	b := fails("b")
	sel := bhv.NewSelector[world](a, b)

	sel.Update(w)
	if got := sel.Update(w); got != bhv.Succeeded {
		t.Errorf("second run: expected Succeeded, got %s", got)
	}
	if a.calls != 2 {
		t.Errorf("expected a invoked on both runs, got %d calls", a.calls)
	}
	if b.calls != 0 {
		t.Errorf("b must never be reached, got %d calls", b.calls)
	}
}
