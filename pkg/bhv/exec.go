package bhv

import (
	"context"
	"errors"
	"log"
)

// DefaultMaxTicks is an independent safety cap on the number of ticks per
// Execute call. It guards against trees that can never leave InProgress
// (e.g. an UntilPass whose target is never reached) when the caller asked to
// run to completion. Zero via WithMaxTicks disables the cap.
const DefaultMaxTicks = 100000

// ErrTickLimit is returned by Execute when the tick cap is reached before
// the root produced a terminal status.
var ErrTickLimit = errors.New("bhv: tick limit reached before terminal status")

// ExecOption configures Execute.
type ExecOption func(*execConfig)

type execConfig struct {
	maxTicks int
	hook     func(tick int, s Status)
}

// WithMaxTicks overrides DefaultMaxTicks; n <= 0 removes the cap entirely.
func WithMaxTicks(n int) ExecOption {
	return func(c *execConfig) {
		c.maxTicks = n
	}
}

// WithTickHook registers a function observing every tick's result, in order.
// Tick numbers start at 1.
func WithTickHook(fn func(tick int, s Status)) ExecOption {
	return func(c *execConfig) {
		c.hook = fn
	}
}

// Tick runs a single update of the root node. It is the per-call entry point
// for callers that own their own tick loop (one invocation per frame, timer
// fire, or poll cycle).
func Tick[Ctx any](root Node[Ctx], state *Ctx) Status {
	return root.Update(state)
}

// Execute drives root until it returns a terminal status, ticking it once
// per loop iteration against the shared state. The context is checked
// between ticks only; a tick itself always runs to completion.
//
// The returned Status is the last one observed. The error is non-nil only
// when the run was cut short: ctx.Err() on cancellation, ErrTickLimit when
// the tick cap fired.
func Execute[Ctx any](ctx context.Context, root Node[Ctx], state *Ctx, opts ...ExecOption) (Status, error) {
	cfg := execConfig{maxTicks: DefaultMaxTicks}
	for _, opt := range opts {
		opt(&cfg)
	}

	last := InProgress
	for tick := 1; ; tick++ {
		if cfg.maxTicks > 0 && tick > cfg.maxTicks {
			log.Printf("[Execute] Warning: tick cap (%d) reached, aborting", cfg.maxTicks)
			return last, ErrTickLimit
		}
		if err := ctx.Err(); err != nil {
			return last, err
		}

		last = root.Update(state)
		if cfg.hook != nil {
			cfg.hook(tick, last)
		}
		if last.Terminal() {
			return last, nil
		}
	}
}
