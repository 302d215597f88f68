package systems

import (
	"github.com/automoto/hookshot/components"
	"github.com/automoto/hookshot/input"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// scriptEpsilon absorbs float drift between tick time and script times.
const scriptEpsilon = 1e-9

// UpdateInput fires due scripted events and publishes everything pending on
// each agent's bus.
func UpdateInput(ecs *ecs.ECS) {
	var now float64
	if c := clock(ecs); c != nil {
		now = c.Seconds()
	}

	components.Input.Each(ecs.World, func(e *donburi.Entry) {
		in := components.Input.Get(e)
		for in.Next < len(in.Script) && in.Script[in.Next].At <= now+scriptEpsilon {
			in.Pending = append(in.Pending, in.Script[in.Next].Event)
			in.Next++
		}

		pending := in.Pending
		in.Pending = nil
		for _, ev := range pending {
			// a stun without a target stuns the agent itself
			if ev.Kind == input.Stun && ev.Target == nil && e.HasComponent(components.Object) {
				ev.Target = components.Object.Get(e).Object
			}
			in.Bus.Publish(ev)
		}
	})
}

// Inject queues an event for e's bus. It is published on the next update.
func Inject(e *donburi.Entry, ev input.Event) bool {
	if e == nil || !e.Valid() || !e.HasComponent(components.Input) {
		return false
	}
	in := components.Input.Get(e)
	in.Pending = append(in.Pending, ev)
	return true
}
