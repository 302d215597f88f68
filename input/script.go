package input

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/automoto/hookshot/mathutil"
)

// Scripted is an event due at a point in simulated time.
type Scripted struct {
	At    float64
	Event Event
}

// ParseScript reads a comma-separated list of kind[:arg]@seconds entries:
//
//	interact@1, move:-1@2.5, jump@3, dash@3.2, stun:0.75@4
//
// move takes the horizontal axis, stun the duration. Stun events carry no
// target; whoever replays the script fills it in. The result is sorted by time.
func ParseScript(s string) ([]Scripted, error) {
	var out []Scripted
	for _, raw := range strings.Split(s, ",") {
		entry := strings.TrimSpace(raw)
		if entry == "" {
			continue
		}
		spec, at, ok := strings.Cut(entry, "@")
		if !ok {
			return nil, fmt.Errorf("script entry %q: missing @time", entry)
		}
		when, err := strconv.ParseFloat(strings.TrimSpace(at), 64)
		if err != nil || when < 0 {
			return nil, fmt.Errorf("script entry %q: bad time %q", entry, at)
		}

		kind, arg, hasArg := strings.Cut(strings.TrimSpace(spec), ":")
		var value float64
		if hasArg {
			if value, err = strconv.ParseFloat(strings.TrimSpace(arg), 64); err != nil {
				return nil, fmt.Errorf("script entry %q: bad argument %q", entry, arg)
			}
		}

		var e Event
		switch strings.ToLower(strings.TrimSpace(kind)) {
		case "interact":
			e = Event{Kind: InteractPressed}
		case "move":
			e = Event{Kind: Move, Axis: mathutil.Vec2{X: value}}
		case "jump":
			e = Event{Kind: JumpPressed}
		case "dash":
			e = Event{Kind: DashPressed}
		case "stun":
			if value <= 0 {
				return nil, fmt.Errorf("script entry %q: stun needs a positive duration", entry)
			}
			e = Event{Kind: Stun, Seconds: value}
		default:
			return nil, fmt.Errorf("script entry %q: unknown input %q", entry, kind)
		}
		out = append(out, Scripted{At: when, Event: e})
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].At < out[j].At })
	return out, nil
}
