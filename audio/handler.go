package audio

import (
	"time"

	"github.com/lixenwraith/term-invaders/events"
)

// Player is the sink the event handler plays into
type Player interface {
	Play(SoundType)
}

// eventSounds maps core events to their effect
var eventSounds = map[events.EventType]SoundType{
	events.EventLaserFired:   SoundShoot,
	events.EventAlienFired:   SoundAlienShoot,
	events.EventAlienKilled:  SoundInvaderKilled,
	events.EventBonusEntered: SoundMysteryEntered,
	events.EventBonusKilled:  SoundMysteryKilled,
	events.EventShipHit:      SoundShipExplosion,
}

// EventHandler turns round events into sound effects
type EventHandler struct {
	player Player
}

// NewEventHandler creates a handler playing into p
func NewEventHandler(p Player) *EventHandler {
	return &EventHandler{player: p}
}

// EventTypes implements events.Handler
func (h *EventHandler) EventTypes() []events.EventType {
	return []events.EventType{
		events.EventLaserFired,
		events.EventAlienFired,
		events.EventAlienKilled,
		events.EventBonusEntered,
		events.EventBonusKilled,
		events.EventShipHit,
	}
}

// HandleEvent implements events.Handler
func (h *EventHandler) HandleEvent(_ time.Time, ev events.GameEvent) {
	if h.player == nil {
		return
	}
	if st, ok := eventSounds[ev.Type]; ok {
		h.player.Play(st)
	}
}
