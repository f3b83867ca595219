package event

import "github.com/gobhv/go-bhv/pkg/bhv"

// Sequence is the event-model AND composite. It follows the poll-model
// combination rule — resume at the remembered child, short-circuit on
// failure, reset on terminal — with one addition: a child that declines the
// current event leaves the sequence InProgress with all state untouched.
type Sequence[Ctx any] struct {
	Always
	children []Node[Ctx]
	cur      int
}

// NewSequence builds a Sequence over the given children.
func NewSequence[Ctx any](children ...Node[Ctx]) *Sequence[Ctx] {
	return &Sequence[Ctx]{children: children}
}

// React implements Node.
func (s *Sequence[Ctx]) React(ev Event, ctx *Ctx) Status {
	k := ev.Kind()
	return bhv.StepChildren(len(s.children), &s.cur, Succeeded, func(i int) (Status, bool) {
		if !s.children[i].ShouldReactTo(k) {
			return InProgress, false
		}
		return s.children[i].React(ev, ctx), true
	})
}

// Selector is the event-model OR composite, symmetric to Sequence with
// success and failure swapped.
type Selector[Ctx any] struct {
	Always
	children []Node[Ctx]
	cur      int
}

// NewSelector builds a Selector over the given children.
func NewSelector[Ctx any](children ...Node[Ctx]) *Selector[Ctx] {
	return &Selector[Ctx]{children: children}
}

// React implements Node.
func (s *Selector[Ctx]) React(ev Event, ctx *Ctx) Status {
	k := ev.Kind()
	return bhv.StepChildren(len(s.children), &s.cur, Failed, func(i int) (Status, bool) {
		if !s.children[i].ShouldReactTo(k) {
			return InProgress, false
		}
		return s.children[i].React(ev, ctx), true
	})
}
