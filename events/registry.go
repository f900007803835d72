package events

var typeToName = [eventTypeCount]string{
	EventLaserFired:         "LaserFired",
	EventAlienFired:         "AlienFired",
	EventAlienKilled:        "AlienKilled",
	EventBonusEntered:       "BonusEntered",
	EventBonusKilled:        "BonusKilled",
	EventBonusEscaped:       "BonusEscaped",
	EventLaserPassedBarrier: "LaserPassedBarrier",
	EventBlockDestroyed:     "BlockDestroyed",
	EventShipHit:            "ShipHit",
	EventShipDestroyed:      "ShipDestroyed",
	EventLevelCleared:       "LevelCleared",
	EventLevelStarted:       "LevelStarted",
	EventGameOver:           "GameOver",
	EventVictory:            "Victory",
	EventPauseToggled:       "PauseToggled",
}

// String returns the registered name of the event type
func (t EventType) String() string {
	if t < 0 || t >= eventTypeCount {
		return "Unknown"
	}
	return typeToName[t]
}

// GetEventType returns the EventType for a given name
func GetEventType(name string) (EventType, bool) {
	for i, n := range typeToName {
		if n == name {
			return EventType(i), true
		}
	}
	return 0, false
}
