package core

// EventKind identifies something notable that happened during a frame.
type EventKind int

const (
	EventStart        EventKind = iota // First activation of a session
	EventFlap                          // Flap impulse applied
	EventScore                         // An obstacle was passed
	EventNewHighScore                  // Score exceeded the stored best
	EventCollision                     // Session ended by a collision
	EventReset                         // Session returned to the ready state
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventStart:
		return "start"
	case EventFlap:
		return "flap"
	case EventScore:
		return "score"
	case EventNewHighScore:
		return "new_high_score"
	case EventCollision:
		return "collision"
	case EventReset:
		return "reset"
	default:
		return "unknown"
	}
}

// Event is a single game event. Value carries the score for score-related
// events and the collision kind for EventCollision.
type Event struct {
	Kind  EventKind
	Value int
}

// HasEvent reports whether events contains at least one event of the given kind.
func HasEvent(events []Event, kind EventKind) bool {
	for _, e := range events {
		if e.Kind == kind {
			return true
		}
	}
	return false
}

// EventSink receives the events a game emits each frame.
type EventSink interface {
	HandleEvents(events []Event)
}
