package bhv

// This file holds the status-combination rules shared by the poll-model
// nodes in this package and the event-model nodes in bhv/event. The
// algorithms are written once, parameterized over an abstract "invoke child"
// step; each model binds that step to its own contract.

// StepChildren drives an ordered child list from a remembered cursor,
// applying the shared sequence/selector combination rule.
//
// pass is the status that advances the cursor and is returned once the list
// is exhausted: Succeeded for a sequence, Failed for a selector. The other
// terminal status short-circuits, resetting the cursor before returning.
//
// invoke runs child i; a false second result means the child declined this
// invocation (event-model relevance filtering), which is treated as
// InProgress without touching the cursor. Poll-model callers always report
// true.
//
// An empty list returns pass immediately.
func StepChildren(count int, cursor *int, pass Status, invoke func(i int) (Status, bool)) Status {
	for *cursor < count {
		s, ok := invoke(*cursor)
		if !ok || s == InProgress {
			return InProgress
		}
		if s != pass {
			*cursor = 0
			return s
		}
		*cursor++
	}
	*cursor = 0
	return pass
}

// StepRepeat advances a bounded-repetition counter given a child result.
//
// A child success increments *done; reaching count resets the counter and
// yields Succeeded. A child failure abandons the run, resetting the counter
// and yielding Failed. Continuation is deferred: an incomplete count yields
// InProgress and the child is re-invoked on the next external call, never
// within the same one.
func StepRepeat(s Status, done *int, count int) Status {
	switch s {
	case InProgress:
		return InProgress
	case Failed:
		*done = 0
		return Failed
	}
	*done++
	if *done >= count {
		*done = 0
		return Succeeded
	}
	return InProgress
}

// StepUntil applies the retry-until-target rule: a terminal child result
// equal to target yields Succeeded, any other terminal result yields
// InProgress (retry on the next call), and InProgress passes through.
func StepUntil(s, target Status) Status {
	if !s.Terminal() {
		return InProgress
	}
	if s == target {
		return Succeeded
	}
	return InProgress
}
