package bhv

// Sequence runs its children in order and succeeds only if all of them
// succeed (logical AND).
//
// Per call it resumes at the child that was last in progress. A child
// failure short-circuits: later children are not invoked in that call, and
// the sequence resets before returning Failed. A sequence with zero
// children returns Succeeded immediately.
type Sequence[Ctx any] struct {
	children []Node[Ctx]
	cur      int
}

// NewSequence builds a Sequence over the given children.
func NewSequence[Ctx any](children ...Node[Ctx]) *Sequence[Ctx] {
	return &Sequence[Ctx]{children: children}
}

// Update implements Node.
func (s *Sequence[Ctx]) Update(ctx *Ctx) Status {
	return StepChildren(len(s.children), &s.cur, Succeeded, func(i int) (Status, bool) {
		return s.children[i].Update(ctx), true
	})
}

// Selector runs its children in order and succeeds on the first child that
// succeeds (logical OR).
//
// Per call it resumes at the child that was last in progress. A child
// success short-circuits: later children are not invoked in that call, and
// the selector resets before returning Succeeded. It fails only if every
// child fails; a selector with zero children returns Failed immediately.
type Selector[Ctx any] struct {
	children []Node[Ctx]
	cur      int
}

// NewSelector builds a Selector over the given children.
func NewSelector[Ctx any](children ...Node[Ctx]) *Selector[Ctx] {
	return &Selector[Ctx]{children: children}
}

// Update implements Node.
func (s *Selector[Ctx]) Update(ctx *Ctx) Status {
	return StepChildren(len(s.children), &s.cur, Failed, func(i int) (Status, bool) {
		return s.children[i].Update(ctx), true
	})
}
