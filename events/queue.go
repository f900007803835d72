// @focus: #event { queue }
package events

import (
	"time"

	"github.com/lixenwraith/term-invaders/constants"
)

// EventQueue is a fixed-size FIFO ring buffer of frame side effects
// Single-threaded: producers and the consumer all run inside the update pass
//
// Overflow: oldest events are overwritten when full
type EventQueue struct {
	events [constants.EventQueueSize]GameEvent
	head   uint64 // Read index
	tail   uint64 // Write index

	// Stamp applied by Emit
	frame int64
	now   time.Time
}

func NewEventQueue() *EventQueue {
	return &EventQueue{}
}

// BeginFrame sets the frame number and time stamped onto subsequently emitted events
func (eq *EventQueue) BeginFrame(frame int64, now time.Time) {
	eq.frame = frame
	eq.now = now
}

// Emit pushes an event stamped with the current frame
func (eq *EventQueue) Emit(t EventType, payload any) {
	eq.Push(GameEvent{
		Type:      t,
		Payload:   payload,
		Frame:     eq.frame,
		Timestamp: eq.now,
	})
}

// Push adds an event, overwriting the oldest unread event when full
func (eq *EventQueue) Push(event GameEvent) {
	eq.events[eq.tail&constants.EventBufferMask] = event
	eq.tail++
	if eq.tail-eq.head > constants.EventQueueSize {
		eq.head = eq.tail - constants.EventQueueSize
	}
}

// Len returns the number of unread events
func (eq *EventQueue) Len() int {
	return int(eq.tail - eq.head)
}

// Consume returns all pending events in FIFO order and empties the queue
func (eq *EventQueue) Consume() []GameEvent {
	n := eq.tail - eq.head
	if n == 0 {
		return nil
	}

	result := make([]GameEvent, 0, n)
	for i := eq.head; i < eq.tail; i++ {
		result = append(result, eq.events[i&constants.EventBufferMask])
	}
	eq.head = eq.tail
	return result
}
