package components

import (
	"github.com/automoto/hookshot/input"
	"github.com/yohamta/donburi"
)

// InputData is an agent's private input bus plus what is waiting to be
// published on it.
type InputData struct {
	Bus     *input.Bus
	Pending []input.Event
	Script  []input.Scripted // sorted by At
	Next    int              // index of the next unfired script entry
}

var Input = donburi.NewComponentType[InputData]()
