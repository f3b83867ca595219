package bhv

// Cond lifts a read-only predicate into a leaf node: Succeeded when the
// predicate reports true, Failed otherwise. It never returns InProgress and
// performs no mutation of its own.
func Cond[Ctx any](pred func(*Ctx) bool) Node[Ctx] {
	return condNode[Ctx](pred)
}

type condNode[Ctx any] func(*Ctx) bool

func (f condNode[Ctx]) Update(ctx *Ctx) Status {
	if f(ctx) {
		return Succeeded
	}
	return Failed
}

// Action lifts a side-effecting function into a leaf node that always
// returns Succeeded. A failing action must be expressed by composition,
// e.g. Fail(Action(fn)) or Invert.
func Action[Ctx any](fn func(*Ctx)) Node[Ctx] {
	return actionNode[Ctx](fn)
}

type actionNode[Ctx any] func(*Ctx)

func (f actionNode[Ctx]) Update(ctx *Ctx) Status {
	f(ctx)
	return Succeeded
}

// Task lifts a function that reports its own Status into a leaf node,
// letting a leaf stay InProgress across calls or fail directly. The
// function owns any state it needs between calls and is responsible for
// resetting it before returning a terminal status.
func Task[Ctx any](fn func(*Ctx) Status) Node[Ctx] {
	return taskNode[Ctx](fn)
}

type taskNode[Ctx any] func(*Ctx) Status

func (f taskNode[Ctx]) Update(ctx *Ctx) Status {
	return f(ctx)
}
