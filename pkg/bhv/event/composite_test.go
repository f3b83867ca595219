package event_test

import (
	"testing"

	"github.com/gobhv/go-bhv/pkg/bhv/event"
)

// ── stubs ──

type world struct{}

// reactStub accepts every kind and returns a scripted status per React call.
type reactStub struct {
	event.Always
	script []event.Status // one entry per call; the last repeats forever
	calls  int
	kinds  []event.Kind // kinds of the events actually reacted to
}

func (s *reactStub) React(ev event.Event, _ *world) event.Status {
	s.kinds = append(s.kinds, ev.Kind())
	i := s.calls
	if i >= len(s.script) {
		i = len(s.script) - 1
	}
	s.calls++
	return s.script[i]
}

func reactOK() *reactStub   { return &reactStub{script: []event.Status{event.Succeeded}} }
func reactFail() *reactStub { return &reactStub{script: []event.Status{event.Failed}} }

// ── combination parity with the poll model ──

func TestSequence_ShortCircuitsOnFailure(t *testing.T) {
	w := &world{}
	a, b, c := reactOK(), reactFail(), reactOK()
	seq := event.NewSequence[world](a, b, c)

	if got := seq.React(event.Unit, w); got != event.Failed {
		t.Errorf("expected Failed, got %s", got)
	}
	if a.calls != 1 || b.calls != 1 || c.calls != 0 {
		t.Errorf("expected a=1 b=1 c=0, got a=%d b=%d c=%d", a.calls, b.calls, c.calls)
	}
}

func TestSelector_ShortCircuitsOnSuccess(t *testing.T) {
	w := &world{}
	a, b, c := reactFail(), reactOK(), reactFail()
	sel := event.NewSelector[world](a, b, c)

	if got := sel.React(event.Unit, w); got != event.Succeeded {
		t.Errorf("expected Succeeded, got %s", got)
	}
	if c.calls != 0 {
		t.Errorf("child after the success must not be invoked, got %d calls", c.calls)
	}
}

func TestSequence_ZeroChildrenSucceeds(t *testing.T) {
	w := &world{}
	if got := event.NewSequence[world]().React(event.Unit, w); got != event.Succeeded {
		t.Errorf("expected Succeeded, got %s", got)
	}
}

func TestSelector_ZeroChildrenFails(t *testing.T) {
	w := &world{}
	if got := event.NewSelector[world]().React(event.Unit, w); got != event.Failed {
		t.Errorf("expected Failed, got %s", got)
	}
}

// ── relevance filtering ──

func TestSequence_DecliningChildHoldsState(t *testing.T) {
	w := &world{}
	a := reactOK()
	b := reactOK()
	seq := event.NewSequence[world](a, event.WaitFor[world]("go", b))

	// Event 1: a succeeds, the WaitFor child declines — sequence parks there.
	if got := seq.React(event.Signal("tick"), w); got != event.InProgress {
		t.Errorf("event 1: expected InProgress, got %s", got)
	}
	// Event 2: still irrelevant. a must NOT be re-invoked.
	if got := seq.React(event.Signal("tick"), w); got != event.InProgress {
		t.Errorf("event 2: expected InProgress, got %s", got)
	}
	if a.calls != 1 {
		t.Errorf("declined events must not rewind the sequence, a called %d times", a.calls)
	}
	// Event 3: the matching kind releases the wait.
	if got := seq.React(event.Signal("go"), w); got != event.Succeeded {
		t.Errorf("event 3: expected Succeeded, got %s", got)
	}
	if b.calls != 1 {
		t.Errorf("expected the waited child invoked once, got %d", b.calls)
	}
}

func TestWaitFor_OnlyMatchingKindReachesChild(t *testing.T) {
	w := &world{}
	child := reactOK()
	n := event.WaitFor[world]("k", child)

	for _, k := range []event.Kind{"a", "k", "a"} {
		if n.ShouldReactTo(k) {
			if got := n.React(event.Signal(k), w); got != event.Succeeded {
				t.Errorf("kind %q: expected Succeeded, got %s", k, got)
			}
		}
	}
	if child.calls != 1 {
		t.Errorf("expected exactly one React for the matching kind, got %d", child.calls)
	}
	if len(child.kinds) != 1 || child.kinds[0] != "k" {
		t.Errorf("expected the child to see only kind k, got %v", child.kinds)
	}
}

// ── decorators forward relevance ──

func TestDecorators_ForwardChildRelevance(t *testing.T) {
	filtered := event.WaitFor[world]("k", reactOK())

	decorators := map[string]event.Node[world]{
		"invert":     event.Invert[world](filtered),
		"pass":       event.Pass[world](filtered),
		"fail":       event.Fail[world](filtered),
		"repeat":     event.Repeat[world](2, filtered),
		"until_pass": event.UntilPass[world](filtered),
		"until_fail": event.UntilFail[world](filtered),
	}
	for name, d := range decorators {
		if d.ShouldReactTo("other") {
			t.Errorf("%s: expected the filter to be forwarded for kind other", name)
		}
		if !d.ShouldReactTo("k") {
			t.Errorf("%s: expected kind k to stay relevant", name)
		}
	}
}

func TestInvert_FlipsTerminal(t *testing.T) {
	w := &world{}
	if got := event.Invert[world](reactOK()).React(event.Unit, w); got != event.Failed {
		t.Errorf("expected Failed, got %s", got)
	}
	if got := event.Invert[world](reactFail()).React(event.Unit, w); got != event.Succeeded {
		t.Errorf("expected Succeeded, got %s", got)
	}
}

func TestRepeat_CountsAcrossEvents(t *testing.T) {
	w := &world{}
	child := reactOK()
	n := event.Repeat[world](3, child)

	for i := 1; i <= 2; i++ {
		if got := n.React(event.Unit, w); got != event.InProgress {
			t.Errorf("event %d: expected InProgress, got %s", i, got)
		}
	}
	if got := n.React(event.Unit, w); got != event.Succeeded {
		t.Errorf("event 3: expected Succeeded, got %s", got)
	}
}

func TestHandle_SeesTheEvent(t *testing.T) {
	w := &world{}
	n := event.Handle(func(ev event.Event, _ *world) event.Status {
		if ev.Kind() == "stop" {
			return event.Failed
		}
		return event.InProgress
	})

	if got := n.React(event.Signal("tick"), w); got != event.InProgress {
		t.Errorf("tick: expected InProgress, got %s", got)
	}
	if got := n.React(event.Signal("stop"), w); got != event.Failed {
		t.Errorf("stop: expected Failed, got %s", got)
	}
}

func TestUntilPass_RetriesAcrossEvents(t *testing.T) {
	w := &world{}
	child := &reactStub{script: []event.Status{event.Failed, event.Failed, event.Succeeded}}
	n := event.UntilPass[world](child)

	if got := n.React(event.Unit, w); got != event.InProgress {
		t.Errorf("event 1: expected InProgress, got %s", got)
	}
	if got := n.React(event.Unit, w); got != event.InProgress {
		t.Errorf("event 2: expected InProgress, got %s", got)
	}
	if got := n.React(event.Unit, w); got != event.Succeeded {
		t.Errorf("event 3: expected Succeeded, got %s", got)
	}
}
