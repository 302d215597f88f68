package components

import (
	"github.com/automoto/hookshot/config"
	"github.com/yohamta/donburi"
)

type StateData struct {
	CurrentState  config.StateID
	PreviousState config.StateID
	StateTimer    int // ticks spent in CurrentState
}

// Set switches state and restarts the timer when it changes.
func (s *StateData) Set(id config.StateID) {
	if s.CurrentState == id {
		return
	}
	s.PreviousState = s.CurrentState
	s.CurrentState = id
	s.StateTimer = 0
}

var State = donburi.NewComponentType[StateData]()
