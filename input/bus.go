package input

import (
	"github.com/automoto/hookshot/mathutil"
	"github.com/automoto/hookshot/physics"
)

// Kind identifies an input event.
type Kind int

const (
	InteractPressed Kind = iota
	Move
	JumpPressed
	DashPressed
	Stun
)

var kindNames = [...]string{
	InteractPressed: "interact",
	Move:            "move",
	JumpPressed:     "jump",
	DashPressed:     "dash",
	Stun:            "stun",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// Event is one input signal. Axis is set for Move; Target and Seconds for Stun.
type Event struct {
	Kind    Kind
	Axis    mathutil.Vec2
	Target  physics.Body
	Seconds float64
}

// Handler receives published events.
type Handler func(Event)

type subscription struct {
	id int
	fn Handler
}

// Bus fans input events out to subscribers in subscription order.
// It is not safe for concurrent use.
type Bus struct {
	subs   []subscription
	nextID int
}

func NewBus() *Bus {
	return &Bus{}
}

// Subscribe registers h and returns the function that removes it.
// Calling the returned function more than once is harmless.
func (b *Bus) Subscribe(h Handler) (unsubscribe func()) {
	b.nextID++
	id := b.nextID
	b.subs = append(b.subs, subscription{id: id, fn: h})
	return func() { b.remove(id) }
}

func (b *Bus) remove(id int) {
	for i, s := range b.subs {
		if s.id == id {
			b.subs = append(b.subs[:i:i], b.subs[i+1:]...)
			return
		}
	}
}

// Publish delivers e to every handler subscribed when Publish was called.
// Handlers may subscribe or unsubscribe while being called.
func (b *Bus) Publish(e Event) {
	if len(b.subs) == 0 {
		return
	}
	snapshot := append([]subscription(nil), b.subs...)
	for _, s := range snapshot {
		if b.subscribed(s.id) {
			s.fn(e)
		}
	}
}

func (b *Bus) subscribed(id int) bool {
	for _, s := range b.subs {
		if s.id == id {
			return true
		}
	}
	return false
}

// Len returns the number of live subscriptions.
func (b *Bus) Len() int {
	return len(b.subs)
}

func (b *Bus) Interact()               { b.Publish(Event{Kind: InteractPressed}) }
func (b *Bus) Move(axis mathutil.Vec2) { b.Publish(Event{Kind: Move, Axis: axis}) }
func (b *Bus) Jump()                   { b.Publish(Event{Kind: JumpPressed}) }
func (b *Bus) Dash()                   { b.Publish(Event{Kind: DashPressed}) }
func (b *Bus) Stun(target physics.Body, seconds float64) {
	b.Publish(Event{Kind: Stun, Target: target, Seconds: seconds})
}
