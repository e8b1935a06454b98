package onceguard

// Observer receives guard lifecycle events. Implementations must be safe
// for concurrent use when the guard is accessed from multiple goroutines.
type Observer interface {
	On(eventData EventData)
}

// Event represents a guard event type.
type Event int

const (
	// EventRun is emitted when a registration invokes its callback.
	EventRun Event = iota
	// EventRepeat is emitted when a version was already handled for the id.
	EventRepeat
	// EventSkip is emitted when a registration is a no-op because the
	// condition is false, the version is zero, or the callback is nil.
	EventSkip
	// EventDedup is emitted when a concurrent Do caller shares an
	// in-flight computation instead of triggering a new one.
	EventDedup
)

func (e Event) String() string {
	switch e {
	case EventRun:
		return "run"
	case EventRepeat:
		return "repeat"
	case EventSkip:
		return "skip"
	case EventDedup:
		return "dedup"
	default:
		return "unknown"
	}
}

// EventData carries the details of a guard event.
type EventData struct {
	Event   Event
	ID      string
	Version int64
}

func (g *Guard) emit(event Event, id string, version int64) {
	if g.observer == nil {
		return
	}
	g.observer.On(EventData{
		Event:   event,
		ID:      id,
		Version: version,
	})
}
