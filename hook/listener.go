package hook

import (
	"github.com/automoto/hookshot/gamemath"
	"github.com/automoto/hookshot/mathutil"
)

// Listener observes a controller's sessions.
type Listener interface {
	OnMove(s *Session, pos mathutil.Vec2)
	OnCompleted(s *Session)
	OnReleased(s *Session, reason ReleaseReason)
	OnLaunch(s *Session, sol gamemath.LaunchSolution)
}

// Funcs adapts plain functions to Listener. Nil fields are skipped.
type Funcs struct {
	Move      func(*Session, mathutil.Vec2)
	Completed func(*Session)
	Released  func(*Session, ReleaseReason)
	Launch    func(*Session, gamemath.LaunchSolution)
}

func (f Funcs) OnMove(s *Session, pos mathutil.Vec2) {
	if f.Move != nil {
		f.Move(s, pos)
	}
}

func (f Funcs) OnCompleted(s *Session) {
	if f.Completed != nil {
		f.Completed(s)
	}
}

func (f Funcs) OnReleased(s *Session, reason ReleaseReason) {
	if f.Released != nil {
		f.Released(s, reason)
	}
}

func (f Funcs) OnLaunch(s *Session, sol gamemath.LaunchSolution) {
	if f.Launch != nil {
		f.Launch(s, sol)
	}
}

type listeners struct {
	byID map[int]Listener
	keys []int
	next int
}

func (l *listeners) add(x Listener) func() {
	if l.byID == nil {
		l.byID = map[int]Listener{}
	}
	l.next++
	id := l.next
	l.byID[id] = x
	l.keys = append(l.keys, id)
	return func() {
		if _, ok := l.byID[id]; !ok {
			return
		}
		delete(l.byID, id)
		for i, k := range l.keys {
			if k == id {
				l.keys = append(l.keys[:i:i], l.keys[i+1:]...)
				return
			}
		}
	}
}

func (l *listeners) each(fn func(Listener)) {
	for _, id := range append([]int(nil), l.keys...) {
		if x, ok := l.byID[id]; ok {
			fn(x)
		}
	}
}
