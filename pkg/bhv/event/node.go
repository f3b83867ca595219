package event

// Node is the event-reactive node contract, the counterpart of bhv.Node.
type Node[Ctx any] interface {
	// ShouldReactTo reports whether events of the given kind are relevant
	// to this node. A declining node is treated by its parent as though it
	// returned InProgress, without React being called.
	ShouldReactTo(k Kind) bool

	// React runs one step of the node in response to an event. The same
	// resume-after-InProgress and reset-before-terminal rules as
	// bhv.Node.Update apply.
	React(ev Event, ctx *Ctx) Status
}

// Always is an embeddable base declaring total relevance: every event kind
// is accepted. It is the default stance of composites and leaves; only
// filtering decorators such as WaitFor narrow it.
type Always struct{}

// ShouldReactTo implements the relevance half of Node.
func (Always) ShouldReactTo(Kind) bool { return true }
