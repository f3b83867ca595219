package event

import "github.com/gobhv/go-bhv/pkg/bhv"

// The decorators below mirror their poll-model counterparts in pkg/bhv;
// relevance is forwarded to the child, so wrapping a WaitFor keeps its
// filtering intact.

// Invert flips the child's terminal result; InProgress passes through.
func Invert[Ctx any](child Node[Ctx]) Node[Ctx] {
	return &invert[Ctx]{child: child}
}

type invert[Ctx any] struct {
	child Node[Ctx]
}

func (n *invert[Ctx]) ShouldReactTo(k Kind) bool { return n.child.ShouldReactTo(k) }

func (n *invert[Ctx]) React(ev Event, ctx *Ctx) Status {
	return n.child.React(ev, ctx).Invert()
}

// Pass forces any terminal child result to Succeeded.
func Pass[Ctx any](child Node[Ctx]) Node[Ctx] {
	return &force[Ctx]{child: child, forced: Succeeded}
}

// Fail forces any terminal child result to Failed.
func Fail[Ctx any](child Node[Ctx]) Node[Ctx] {
	return &force[Ctx]{child: child, forced: Failed}
}

type force[Ctx any] struct {
	child  Node[Ctx]
	forced Status
}

func (n *force[Ctx]) ShouldReactTo(k Kind) bool { return n.child.ShouldReactTo(k) }

func (n *force[Ctx]) React(ev Event, ctx *Ctx) Status {
	if s := n.child.React(ev, ctx); !s.Terminal() {
		return s
	}
	return n.forced
}

// Repeat requires count child successes before succeeding; a child failure
// abandons the run. Semantics match bhv.Repeat, including deferred
// continuation.
func Repeat[Ctx any](count int, child Node[Ctx]) Node[Ctx] {
	if count < 1 {
		count = 1
	}
	return &repeat[Ctx]{child: child, count: count}
}

type repeat[Ctx any] struct {
	child Node[Ctx]
	count int
	done  int
}

func (n *repeat[Ctx]) ShouldReactTo(k Kind) bool { return n.child.ShouldReactTo(k) }

func (n *repeat[Ctx]) React(ev Event, ctx *Ctx) Status {
	return bhv.StepRepeat(n.child.React(ev, ctx), &n.done, n.count)
}

// UntilPass retries the child until it succeeds; see bhv.UntilPass.
func UntilPass[Ctx any](child Node[Ctx]) Node[Ctx] {
	return &until[Ctx]{child: child, target: Succeeded}
}

// UntilFail retries the child until it fails; see bhv.UntilFail.
func UntilFail[Ctx any](child Node[Ctx]) Node[Ctx] {
	return &until[Ctx]{child: child, target: Failed}
}

type until[Ctx any] struct {
	child  Node[Ctx]
	target Status
}

func (n *until[Ctx]) ShouldReactTo(k Kind) bool { return n.child.ShouldReactTo(k) }

func (n *until[Ctx]) React(ev Event, ctx *Ctx) Status {
	return bhv.StepUntil(n.child.React(ev, ctx), n.target)
}

// WaitFor declines every event except those of the configured kind, and
// otherwise forwards to its child. It is the relevance-filtering decorator:
// a parent composite treats the declined events as InProgress, so the tree
// simply waits at this node until a matching event arrives.
func WaitFor[Ctx any](kind Kind, child Node[Ctx]) Node[Ctx] {
	return &waitFor[Ctx]{child: child, kind: kind}
}

type waitFor[Ctx any] struct {
	child Node[Ctx]
	kind  Kind
}

func (n *waitFor[Ctx]) ShouldReactTo(k Kind) bool { return k == n.kind }

func (n *waitFor[Ctx]) React(ev Event, ctx *Ctx) Status {
	return n.child.React(ev, ctx)
}
