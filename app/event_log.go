package app

import (
	"log/slog"
	"time"

	"github.com/lixenwraith/term-invaders/events"
)

// eventLogger writes round milestones to the debug log
type eventLogger struct {
	logger *slog.Logger
}

func newEventLogger(logger *slog.Logger) *eventLogger {
	return &eventLogger{logger: logger.With("component", "events")}
}

func (l *eventLogger) EventTypes() []events.EventType {
	return []events.EventType{
		events.EventLevelStarted,
		events.EventLevelCleared,
		events.EventShipDestroyed,
		events.EventBonusKilled,
		events.EventLaserPassedBarrier,
		events.EventGameOver,
		events.EventVictory,
		events.EventPauseToggled,
	}
}

func (l *eventLogger) HandleEvent(_ time.Time, ev events.GameEvent) {
	l.logger.Debug(ev.Type.String(), "frame", ev.Frame, "payload", ev.Payload)
}
