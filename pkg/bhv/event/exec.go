package event

import (
	"context"
	"log"

	"github.com/gobhv/go-bhv/pkg/bhv"
)

// ExecOption configures Execute.
type ExecOption func(*execConfig)

type execConfig struct {
	maxEvents int
	drain     bool
	hook      func(n int, ev Event, s Status)
}

// WithMaxEvents caps the number of events processed per Execute call;
// n <= 0 removes the cap. The default is bhv.DefaultMaxTicks.
func WithMaxEvents(n int) ExecOption {
	return func(c *execConfig) {
		c.maxEvents = n
	}
}

// WithDrain makes Execute keep pumping events after the root reaches a
// terminal status instead of stopping there. Because nodes reset on
// terminal, subsequent events start fresh runs of the tree; the returned
// Status is the last one observed.
func WithDrain() ExecOption {
	return func(c *execConfig) {
		c.drain = true
	}
}

// WithEventHook registers a function observing every processed event and
// the root's result for it, in order. Event numbers start at 1.
func WithEventHook(fn func(n int, ev Event, s Status)) ExecOption {
	return func(c *execConfig) {
		c.hook = fn
	}
}

// Execute drives root over the events yielded by src, one at a time, in
// order. For each event the root's relevance is consulted first: a declined
// event counts as InProgress without invoking the tree.
//
// By default Execute stops when the root reaches a terminal status or the
// source is exhausted, whichever comes first; WithDrain changes the former.
// The returned Status is the last one observed (InProgress if the source
// was exhausted before the tree ever completed). The error is non-nil only
// when the run was cut short: ctx.Err() on cancellation, bhv.ErrTickLimit
// when the event cap fired.
func Execute[Ctx any](ctx context.Context, root Node[Ctx], state *Ctx, src Source, opts ...ExecOption) (Status, error) {
	cfg := execConfig{maxEvents: bhv.DefaultMaxTicks}
	for _, opt := range opts {
		opt(&cfg)
	}

	last := InProgress
	for n := 1; ; n++ {
		if cfg.maxEvents > 0 && n > cfg.maxEvents {
			log.Printf("[Execute] Warning: event cap (%d) reached, aborting", cfg.maxEvents)
			return last, bhv.ErrTickLimit
		}
		if err := ctx.Err(); err != nil {
			return last, err
		}

		ev, ok := src.Next()
		if !ok {
			return last, nil
		}

		if root.ShouldReactTo(ev.Kind()) {
			last = root.React(ev, state)
		} else {
			last = InProgress
		}
		if cfg.hook != nil {
			cfg.hook(n, ev, last)
		}
		if last.Terminal() && !cfg.drain {
			return last, nil
		}
	}
}
