package hook

// State is the controller's position in a hook session.
type State int

const (
	Idle State = iota
	Validating
	Traveling
	Completed
	Released
)

var stateNames = [...]string{
	Idle:       "idle",
	Validating: "validating",
	Traveling:  "traveling",
	Completed:  "completed",
	Released:   "released",
}

func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return "unknown"
	}
	return stateNames[s]
}

// Live reports whether a session is in progress.
func (s State) Live() bool {
	return s == Validating || s == Traveling
}

// ReleaseReason says why a session ended in Released.
type ReleaseReason int

const (
	ReasonNone ReleaseReason = iota
	// ReasonOutOfRange: the target is within PullOffset of the anchor horizontally.
	ReasonOutOfRange
	ReasonObstructed
	ReasonUngrounded
	ReasonInteract
	ReasonMove
	ReasonJump
	ReasonDash
	ReasonRequested
	ReasonRetarget
	ReasonManual
)

var reasonNames = [...]string{
	ReasonNone:       "none",
	ReasonOutOfRange: "out_of_range",
	ReasonObstructed: "obstructed",
	ReasonUngrounded: "ungrounded",
	ReasonInteract:   "interact",
	ReasonMove:       "move",
	ReasonJump:       "jump",
	ReasonDash:       "dash",
	ReasonRequested:  "requested",
	ReasonRetarget:   "retarget",
	ReasonManual:     "manual",
}

func (r ReleaseReason) String() string {
	if r < 0 || int(r) >= len(reasonNames) {
		return "unknown"
	}
	return reasonNames[r]
}

// Precondition reports whether the reason comes from validation rather than
// from something that happened mid-travel.
func (r ReleaseReason) Precondition() bool {
	return r == ReasonOutOfRange || r == ReasonObstructed || r == ReasonUngrounded
}
