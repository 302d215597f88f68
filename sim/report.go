package sim

import (
	"sort"
	"sync"

	"github.com/automoto/hookshot/hook"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Report summarises what happened in a world so far.
type Report struct {
	WorldID   uuid.UUID
	Arena     string
	Ticks     int
	Acquired  int // sensor found events
	Lost      int // sensor lost events
	Completed int // pulls that reached the anchor
	Launches  int
	Released  map[string]int // by release reason
	Captured  []string       // blocks pulled all the way in
}

// Releases is the total number of released sessions.
func (r Report) Releases() int {
	n := 0
	for _, c := range r.Released {
		n += c
	}
	return n
}

// MarshalZerologObject lets a Report be logged with Event.Object.
func (r Report) MarshalZerologObject(e *zerolog.Event) {
	e.Str("world", r.WorldID.String()).
		Str("arena", r.Arena).
		Int("ticks", r.Ticks).
		Int("acquired", r.Acquired).
		Int("lost", r.Lost).
		Int("completed", r.Completed).
		Int("launches", r.Launches).
		Strs("captured", r.Captured)

	released := zerolog.Dict()
	keys := make([]string, 0, len(r.Released))
	for k := range r.Released {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		released.Int(k, r.Released[k])
	}
	e.Dict("released", released)
}

// recorder accumulates a Report. Loops may read it from another goroutine.
type recorder struct {
	mu sync.Mutex
	r  Report
}

func newRecorder(id uuid.UUID, arena string) *recorder {
	return &recorder{r: Report{
		WorldID:  id,
		Arena:    arena,
		Released: map[string]int{},
	}}
}

func (rec *recorder) update(fn func(r *Report)) {
	rec.mu.Lock()
	defer rec.mu.Unlock()
	fn(&rec.r)
}

func (rec *recorder) released(reason hook.ReleaseReason) {
	rec.update(func(r *Report) { r.Released[reason.String()]++ })
}

func (rec *recorder) snapshot() Report {
	rec.mu.Lock()
	defer rec.mu.Unlock()
	out := rec.r
	out.Released = make(map[string]int, len(rec.r.Released))
	for k, v := range rec.r.Released {
		out.Released[k] = v
	}
	out.Captured = append([]string(nil), rec.r.Captured...)
	return out
}
