package obj

import "github.com/milk9111/platformer/common"

type EventKind string

const (
	EventBump       EventKind = "bump"
	EventCoin       EventKind = "coin"
	EventStomp      EventKind = "stomp"
	EventCollect    EventKind = "collect"
	EventPowerUp    EventKind = "power_up"
	EventHurt       EventKind = "hurt"
	EventOneUp      EventKind = "one_up"
	EventCheckpoint EventKind = "checkpoint"
	EventMessage    EventKind = "message"
	EventDeath      EventKind = "death"
	EventRespawn    EventKind = "respawn"
	EventGameOver   EventKind = "game_over"
	EventClear      EventKind = "clear"
)

// Event is something gameplay reports to whoever drives the world.
type Event struct {
	Kind     EventKind
	Position common.Vector
	Points   int
	Text     string
}

// EventQueue is a simple FIFO queue.
type EventQueue struct {
	items []Event
}

// Push adds an event.
func (q *EventQueue) Push(evt Event) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Drain returns all events and clears the queue.
func (q *EventQueue) Drain() []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

func (q *EventQueue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.items)
}
