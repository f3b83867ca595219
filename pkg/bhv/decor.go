package bhv

// Invert wraps child so that a terminal result is flipped: Succeeded becomes
// Failed and vice versa. InProgress passes through unchanged.
func Invert[Ctx any](child Node[Ctx]) Node[Ctx] {
	return &invert[Ctx]{child: child}
}

type invert[Ctx any] struct {
	child Node[Ctx]
}

func (n *invert[Ctx]) Update(ctx *Ctx) Status {
	return n.child.Update(ctx).Invert()
}

// Pass wraps child so that any terminal result becomes Succeeded. The
// child's side effects still occur; InProgress passes through unchanged.
// Useful to keep a leaf's effect while deciding the branch outcome
// independently of the leaf's natural result.
func Pass[Ctx any](child Node[Ctx]) Node[Ctx] {
	return &force[Ctx]{child: child, forced: Succeeded}
}

// Fail wraps child so that any terminal result becomes Failed. The child's
// side effects still occur; InProgress passes through unchanged.
func Fail[Ctx any](child Node[Ctx]) Node[Ctx] {
	return &force[Ctx]{child: child, forced: Failed}
}

type force[Ctx any] struct {
	child  Node[Ctx]
	forced Status
}

func (n *force[Ctx]) Update(ctx *Ctx) Status {
	if s := n.child.Update(ctx); !s.Terminal() {
		return s
	}
	return n.forced
}

// Repeat wraps child so that it must succeed count times before the
// decorator succeeds. A child failure abandons the run immediately: the
// completed-success counter resets and the decorator returns Failed.
//
// Continuation is deferred: after an intermediate child success the
// decorator returns InProgress and re-invokes the child on the next external
// call, never within the same one.
//
// A count below 1 is clamped to 1.
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

func (n *repeat[Ctx]) Update(ctx *Ctx) Status {
	return StepRepeat(n.child.Update(ctx), &n.done, n.count)
}

// UntilPass wraps child so that it is re-run call after call until it
// succeeds, at which point the decorator returns Succeeded. A child failure
// yields InProgress and the child retries on the next call.
//
// The decorator has no failure outcome of its own: a child that never
// succeeds keeps the tree in a perpetual InProgress steady state, which is a
// valid (if possibly unintended) outcome, not an error.
func UntilPass[Ctx any](child Node[Ctx]) Node[Ctx] {
	return &until[Ctx]{child: child, target: Succeeded}
}

// UntilFail is the mirror of UntilPass: the decorator returns Succeeded once
// the child fails, and retries (InProgress) while the child succeeds.
func UntilFail[Ctx any](child Node[Ctx]) Node[Ctx] {
	return &until[Ctx]{child: child, target: Failed}
}

type until[Ctx any] struct {
	child  Node[Ctx]
	target Status
}

func (n *until[Ctx]) Update(ctx *Ctx) Status {
	return StepUntil(n.child.Update(ctx), n.target)
}

// Until re-runs child until pred holds over the context. The predicate is
// evaluated after each completed child run; when it reports true the
// decorator returns Succeeded, otherwise it returns InProgress and the child
// runs again on the next call.
func Until[Ctx any](child Node[Ctx], pred func(*Ctx) bool) Node[Ctx] {
	return &untilCond[Ctx]{child: child, pred: pred}
}

type untilCond[Ctx any] struct {
	child Node[Ctx]
	pred  func(*Ctx) bool
}

func (n *untilCond[Ctx]) Update(ctx *Ctx) Status {
	if !n.child.Update(ctx).Terminal() {
		return InProgress
	}
	if n.pred(ctx) {
		return Succeeded
	}
	return InProgress
}
