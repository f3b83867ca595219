package event

// Cond lifts a read-only predicate into a leaf: Succeeded when true, Failed
// otherwise. The event itself is ignored; wrap in WaitFor to gate on a kind.
func Cond[Ctx any](pred func(*Ctx) bool) Node[Ctx] {
	return &condNode[Ctx]{pred: pred}
}

type condNode[Ctx any] struct {
	Always
	pred func(*Ctx) bool
}

func (n *condNode[Ctx]) React(_ Event, ctx *Ctx) Status {
	if n.pred(ctx) {
		return Succeeded
	}
	return Failed
}

// Action lifts a side-effecting function into a leaf that always succeeds.
func Action[Ctx any](fn func(*Ctx)) Node[Ctx] {
	return &actionNode[Ctx]{fn: fn}
}

type actionNode[Ctx any] struct {
	Always
	fn func(*Ctx)
}

func (n *actionNode[Ctx]) React(_ Event, ctx *Ctx) Status {
	n.fn(ctx)
	return Succeeded
}

// Task lifts a function reporting its own Status into a leaf.
func Task[Ctx any](fn func(*Ctx) Status) Node[Ctx] {
	return &taskNode[Ctx]{fn: fn}
}

type taskNode[Ctx any] struct {
	Always
	fn func(*Ctx) Status
}

func (n *taskNode[Ctx]) React(_ Event, ctx *Ctx) Status {
	return n.fn(ctx)
}

// Handle lifts a function that inspects the event itself into a leaf,
// for leaves whose behavior depends on the event payload rather than only
// the shared context.
func Handle[Ctx any](fn func(Event, *Ctx) Status) Node[Ctx] {
	return &handleNode[Ctx]{fn: fn}
}

type handleNode[Ctx any] struct {
	Always
	fn func(Event, *Ctx) Status
}

func (n *handleNode[Ctx]) React(ev Event, ctx *Ctx) Status {
	return n.fn(ev, ctx)
}
