package bhv

// Status is the tri-state outcome of running a node.
//
// A node that returns InProgress has not finished: invoking it again resumes
// from where it left off. Succeeded and Failed are terminal — a node returning
// either must have reset its internal state first, so the next invocation
// starts an independent run.
type Status int

const (
	// InProgress means the node has not reached a terminal result yet.
	InProgress Status = iota
	// Succeeded means the node completed successfully.
	Succeeded
	// Failed means the node completed unsuccessfully. This is the only
	// error channel inside a tree; there is no separate error value.
	Failed
)

// Terminal reports whether s is Succeeded or Failed.
func (s Status) Terminal() bool {
	return s == Succeeded || s == Failed
}

// Invert swaps Succeeded and Failed; InProgress is unchanged.
func (s Status) Invert() Status {
	switch s {
	case Succeeded:
		return Failed
	case Failed:
		return Succeeded
	default:
		return s
	}
}

// String returns a human-readable status name.
func (s Status) String() string {
	switch s {
	case InProgress:
		return "in-progress"
	case Succeeded:
		return "succeeded"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}
