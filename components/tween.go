package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// TweenAxis says which coordinate a Tween drives.
type TweenAxis int

const (
	TweenY TweenAxis = iota
	TweenX
)

var Tween = donburi.NewComponentType[gween.Sequence]()

var TweenTarget = donburi.NewComponentType[TweenAxis]()
