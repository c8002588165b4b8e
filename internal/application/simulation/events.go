package simulation

import "fmt"

// EventKind classifies an entry in the run's event log
type EventKind string

const (
	EventDayStarted EventKind = "DAY_STARTED"
	EventHandled    EventKind = "HANDLED"
	EventFailed     EventKind = "FAILED"
	EventUnhandled  EventKind = "UNHANDLED"
	EventEscalated  EventKind = "ESCALATED"
	EventPruned     EventKind = "PRUNED"
)

// Event is one line of the run narrative
type Event struct {
	Day      int
	Kind     EventKind
	Employee string
	Message  string
}

func (e Event) String() string {
	if e.Employee == "" {
		return fmt.Sprintf("day %d [%s] %s", e.Day, e.Kind, e.Message)
	}
	return fmt.Sprintf("day %d [%s] %s: %s", e.Day, e.Kind, e.Employee, e.Message)
}

// EventLog is an append-only record of everything that happened in a run
type EventLog struct {
	events []Event
}

func (l *EventLog) Record(e Event) {
	l.events = append(l.events, e)
}

// Events returns a copy of the log in recording order
func (l *EventLog) Events() []Event {
	return append([]Event(nil), l.events...)
}

// ForDay returns the events recorded on one day
func (l *EventLog) ForDay(day int) []Event {
	var out []Event
	for _, e := range l.events {
		if e.Day == day {
			out = append(out, e)
		}
	}
	return out
}

// Count returns how many events of a kind were recorded
func (l *EventLog) Count(kind EventKind) int {
	n := 0
	for _, e := range l.events {
		if e.Kind == kind {
			n++
		}
	}
	return n
}
