package events

import (
	"testing"
	"time"

	"github.com/lixenwraith/term-invaders/constants"
)

func TestEventQueue_FIFO(t *testing.T) {
	q := NewEventQueue()
	now := time.Now()
	q.BeginFrame(7, now)

	q.Emit(EventAlienKilled, &AlienKilledPayload{Player: 0, Points: 10})
	q.Emit(EventShipHit, &ShipHitPayload{Player: 1, LivesLeft: 2})

	if q.Len() != 2 {
		t.Fatalf("Expected 2 pending events, got %d", q.Len())
	}

	got := q.Consume()
	if len(got) != 2 {
		t.Fatalf("Expected 2 consumed events, got %d", len(got))
	}
	if got[0].Type != EventAlienKilled || got[1].Type != EventShipHit {
		t.Errorf("Events out of order: %v, %v", got[0].Type, got[1].Type)
	}
	if got[0].Frame != 7 || !got[0].Timestamp.Equal(now) {
		t.Errorf("Event not stamped with frame metadata: %+v", got[0])
	}

	if q.Consume() != nil {
		t.Error("Expected empty queue after consume")
	}
}

func TestEventQueue_Overflow(t *testing.T) {
	q := NewEventQueue()
	total := constants.EventQueueSize + 10

	for i := 0; i < total; i++ {
		q.Push(GameEvent{Type: EventBlockDestroyed, Frame: int64(i)})
	}

	got := q.Consume()
	if len(got) != constants.EventQueueSize {
		t.Fatalf("Expected %d events after overflow, got %d", constants.EventQueueSize, len(got))
	}
	if got[0].Frame != 10 {
		t.Errorf("Expected oldest surviving frame 10, got %d", got[0].Frame)
	}
	if got[len(got)-1].Frame != int64(total-1) {
		t.Errorf("Expected newest frame %d, got %d", total-1, got[len(got)-1].Frame)
	}
}

type recordingHandler struct {
	types []EventType
	seen  []EventType
}

func (h *recordingHandler) EventTypes() []EventType { return h.types }

func (h *recordingHandler) HandleEvent(_ int, ev GameEvent) {
	h.seen = append(h.seen, ev.Type)
}

func TestRouter_DispatchAll(t *testing.T) {
	q := NewEventQueue()
	r := NewRouter[int]()

	kills := &recordingHandler{types: []EventType{EventAlienKilled}}
	all := &recordingHandler{types: []EventType{EventAlienKilled, EventGameOver}}
	r.Register(kills)
	r.Register(all)

	if r.HandlerCount(EventAlienKilled) != 2 {
		t.Errorf("Expected 2 handlers for AlienKilled, got %d", r.HandlerCount(EventAlienKilled))
	}

	q.Emit(EventAlienKilled, nil)
	q.Emit(EventShipHit, nil)
	q.Emit(EventGameOver, nil)

	consumed := r.DispatchAll(0, q)
	if len(consumed) != 3 {
		t.Errorf("Expected 3 consumed events, got %d", len(consumed))
	}
	if len(kills.seen) != 1 {
		t.Errorf("Kill handler saw %v", kills.seen)
	}
	if len(all.seen) != 2 || all.seen[1] != EventGameOver {
		t.Errorf("Broad handler saw %v", all.seen)
	}
}

func TestEventType_Names(t *testing.T) {
	for et := EventType(0); et < eventTypeCount; et++ {
		name := et.String()
		if name == "" || name == "Unknown" {
			t.Errorf("Event type %d has no name", et)
		}
		back, ok := GetEventType(name)
		if !ok || back != et {
			t.Errorf("Name round-trip failed for %s", name)
		}
	}
	if EventType(-1).String() != "Unknown" {
		t.Error("Expected Unknown for invalid type")
	}
}
