package hal

import "fmt"

// EventKind identifies a window-system notification.
type EventKind uint8

const (
	EventUnknown EventKind = iota
	EventSizeChanged
	EventCloseRequested
	EventDestroyed
	EventPaint
	EventActivation
	// EventQuit is the system-level quit signal; it ends the frame loop.
	EventQuit
)

func (k EventKind) String() string {
	switch k {
	case EventSizeChanged:
		return "size-changed"
	case EventCloseRequested:
		return "close-requested"
	case EventDestroyed:
		return "destroyed"
	case EventPaint:
		return "paint"
	case EventActivation:
		return "activation"
	case EventQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// Event is a window-system notification.
type Event struct {
	Kind EventKind

	// Width and Height carry the new client size for EventSizeChanged.
	Width  int
	Height int

	// Active is set for EventActivation.
	Active bool

	// Code is the raw platform message for notifications without a
	// dedicated kind.
	Code uint32
}

func (e Event) String() string {
	switch e.Kind {
	case EventSizeChanged:
		return fmt.Sprintf("%s %dx%d", e.Kind, e.Width, e.Height)
	case EventActivation:
		return fmt.Sprintf("%s active=%t", e.Kind, e.Active)
	case EventUnknown:
		return fmt.Sprintf("%s code=%#x", e.Kind, e.Code)
	default:
		return e.Kind.String()
	}
}

// SizeChanged builds an EventSizeChanged notification.
func SizeChanged(width, height int) Event {
	return Event{Kind: EventSizeChanged, Width: width, Height: height}
}

// eventQueue is a FIFO of pending notifications shared by the host
// windows. It is only touched from the thread that owns the window.
type eventQueue struct {
	events []Event
}

func (q *eventQueue) push(ev ...Event) {
	q.events = append(q.events, ev...)
}

func (q *eventQueue) pop() (Event, bool) {
	if len(q.events) == 0 {
		return Event{}, false
	}
	ev := q.events[0]
	q.events[0] = Event{}
	q.events = q.events[1:]
	if len(q.events) == 0 {
		q.events = q.events[:0:0]
	}
	return ev, true
}

func (q *eventQueue) len() int { return len(q.events) }
