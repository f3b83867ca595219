// Package event implements the event-reactive variant of the bhv engine.
//
// Instead of being polled, a tree is fed an ordered sequence of events. For
// each event every node on the traversal path is first asked whether events
// of that kind are relevant to it; a node that declines is treated as though
// it returned InProgress for that event without being invoked, its internal
// state untouched. A node that accepts reacts to the event using the same
// composite/decorator combination rules as the poll model.
package event

import "github.com/gobhv/go-bhv/pkg/bhv"

// Status is the tri-state node result shared with the poll model.
type Status = bhv.Status

// Re-exported so event-model leaves need not import both packages.
const (
	InProgress = bhv.InProgress
	Succeeded  = bhv.Succeeded
	Failed     = bhv.Failed
)

// Kind is the stable discriminant of an event, used purely for relevance
// filtering. It carries no wire format.
type Kind string

// Event is a data-carrying signal delivered to a tree. Concrete event types
// expose their payload themselves; the engine only ever looks at the kind.
type Event interface {
	Kind() Kind
}

// Signal is a minimal payload-free Event.
type Signal Kind

// Kind implements Event.
func (s Signal) Kind() Kind { return Kind(s) }

// Unit is the blank event produced by UnitPump. Its kind is the empty
// string.
var Unit Event = Signal("")

// Source yields events in order. Next reports false once the sequence is
// exhausted; a Source may be unbounded and never report false.
type Source interface {
	Next() (Event, bool)
}

// UnitPump is an endless Source of blank events, useful for driving a
// reactive tree as if it were polled.
type UnitPump struct{}

// Next implements Source.
func (UnitPump) Next() (Event, bool) { return Unit, true }

// FromSlice returns a Source yielding the given events in order, then
// reporting exhaustion.
func FromSlice(events ...Event) Source {
	return &sliceSource{events: events}
}

type sliceSource struct {
	events []Event
	next   int
}

func (s *sliceSource) Next() (Event, bool) {
	if s.next >= len(s.events) {
		return nil, false
	}
	ev := s.events[s.next]
	s.next++
	return ev, true
}

// FromChan returns a Source reading events from ch until it is closed.
func FromChan(ch <-chan Event) Source {
	return chanSource(ch)
}

type chanSource <-chan Event

func (c chanSource) Next() (Event, bool) {
	ev, ok := <-c
	return ev, ok
}
