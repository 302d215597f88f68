package components

import "github.com/yohamta/donburi"

// BlockData marks a hookable body.
type BlockData struct {
	Name     string
	Captured bool // pulled all the way in; no longer in the space
}

var Block = donburi.NewComponentType[BlockData]()
