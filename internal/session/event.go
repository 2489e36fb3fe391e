package session

import "fmt"

// EventKind identifies the kind of decoded input.
type EventKind int

const (
	EventNone EventKind = iota
	EventChooseDiscCount
	EventClickPeg
	EventRestart
	EventCancel
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventNone:
		return "None"
	case EventChooseDiscCount:
		return "ChooseDiscCount"
	case EventClickPeg:
		return "ClickPeg"
	case EventRestart:
		return "Restart"
	case EventCancel:
		return "Cancel"
	default:
		return "Unknown"
	}
}

// Event is one discrete input already decoded by the host.
// Value carries the disc count or peg index where the kind needs one.
type Event struct {
	Kind  EventKind
	Value int
}

// ChooseDiscCount builds an event selecting n discs.
func ChooseDiscCount(n int) Event {
	return Event{Kind: EventChooseDiscCount, Value: n}
}

// ClickPeg builds an event for a click on peg i.
func ClickPeg(i int) Event {
	return Event{Kind: EventClickPeg, Value: i}
}

// Restart builds a restart request.
func Restart() Event {
	return Event{Kind: EventRestart}
}

// Cancel builds a cancel request.
func Cancel() Event {
	return Event{Kind: EventCancel}
}

func (e Event) String() string {
	switch e.Kind {
	case EventChooseDiscCount, EventClickPeg:
		return fmt.Sprintf("%s(%d)", e.Kind, e.Value)
	default:
		return e.Kind.String()
	}
}
