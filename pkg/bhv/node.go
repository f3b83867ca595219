// Package bhv implements a poll-driven behavior-tree engine: a library of
// composable nodes that model decision logic as a tree, where each node
// yields a tri-state Status and composite/decorator nodes combine child
// results into sequencing, branching, and looping.
//
// A tree is generic over exactly one context type, the shared mutable state
// every node in the tree reads and writes. The engine never inspects the
// context itself; it only threads it through.
//
// Execution is single-threaded and cooperative: a call to Update runs to
// completion synchronously, and InProgress is a return value, not a
// suspension. The caller decides when to invoke again. A node returning
// InProgress keeps private memory so the next call resumes where it left
// off; a node returning a terminal status has already reset that memory.
//
// The event-reactive variant of this contract lives in the bhv/event
// subpackage.
package bhv

// Node is the contract every behavior-tree node satisfies.
//
// Type parameter Ctx is the shared state type of the tree. Composite and
// decorator nodes are generic over their children's context type and forward
// it unchanged.
type Node[Ctx any] interface {
	// Update runs one tick of the node against the shared context.
	//
	// Calling Update again after InProgress resumes the node's own state
	// machine. Calling Update again after a terminal status behaves as if
	// the node were freshly constructed.
	Update(ctx *Ctx) Status
}
