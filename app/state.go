package app

// AppState is the screen the application is showing
type AppState uint8

const (
	StateMenu AppState = iota
	StateNameEntry
	StateRound
	StateResults
	StateQuit
)

var stateNames = [...]string{
	StateMenu:      "Menu",
	StateNameEntry: "NameEntry",
	StateRound:     "Round",
	StateResults:   "Results",
	StateQuit:      "Quit",
}

func (s AppState) String() string {
	if int(s) < len(stateNames) {
		return stateNames[s]
	}
	return "Unknown"
}

var appTransitions = map[AppState][]AppState{
	StateMenu:      {StateNameEntry, StateQuit},
	StateNameEntry: {StateMenu, StateRound, StateQuit},
	StateRound:     {StateMenu, StateResults, StateQuit},
	StateResults:   {StateMenu, StateQuit},
}

// CanTransition reports whether the application may move from one screen to another
func CanTransition(from, to AppState) bool {
	for _, s := range appTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}
