package bhv_test

import (
	"testing"

	"github.com/gobhv/go-bhv/pkg/bhv"
)

func TestCond_MapsPredicateToStatus(t *testing.T) {
	type state struct{ ok bool }

	n := bhv.Cond(func(s *state) bool { return s.ok })

	s := &state{ok: true}
	if got := n.Update(s); got != bhv.Succeeded {
		t.Errorf("true predicate: expected Succeeded, got %s", got)
	}
	s.ok = false
	if got := n.Update(s); got != bhv.Failed {
		t.Errorf("false predicate: expected Failed, got %s", got)
	}
}

func TestAction_AlwaysSucceedsAndRunsEachCall(t *testing.T) {
	runs := 0
	n := bhv.Action(func(_ *struct{}) { runs++ })

	for call := 1; call <= 3; call++ {
		if got := n.Update(&struct{}{}); got != bhv.Succeeded {
			t.Errorf("call %d: expected Succeeded, got %s", call, got)
		}
	}
	if runs != 3 {
		t.Errorf("expected 3 runs, got %d", runs)
	}
}

func TestTask_ReportsItsOwnStatus(t *testing.T) {
	// A leaf that stays in progress for two calls, then fails.
	left := 2
	n := bhv.Task(func(_ *struct{}) bhv.Status {
		if left > 0 {
			left--
			return bhv.InProgress
		}
		return bhv.Failed
	})

	s := &struct{}{}
	if got := n.Update(s); got != bhv.InProgress {
		t.Errorf("call 1: expected InProgress, got %s", got)
	}
	if got := n.Update(s); got != bhv.InProgress {
		t.Errorf("call 2: expected InProgress, got %s", got)
	}
	if got := n.Update(s); got != bhv.Failed {
		t.Errorf("call 3: expected Failed, got %s", got)
	}
}

func TestStatus_TerminalAndString(t *testing.T) {
	cases := []struct {
		s        bhv.Status
		terminal bool
		str      string
	}{
		{bhv.InProgress, false, "in-progress"},
		{bhv.Succeeded, true, "succeeded"},
		{bhv.Failed, true, "failed"},
	}
	for _, c := range cases {
		if c.s.Terminal() != c.terminal {
			t.Errorf("%s: Terminal() = %v, want %v", c.str, c.s.Terminal(), c.terminal)
		}
		if c.s.String() != c.str {
			t.Errorf("String() = %q, want %q", c.s.String(), c.str)
		}
	}
}
