package config

// StateID identifies an agent's high-level behaviour state.
type StateID int

const (
	StateNone StateID = iota
	StateSearching
	StateTracking
	StateHooking
	StateStunned
)

var stateNames = map[StateID]string{
	StateNone:      "none",
	StateSearching: "searching",
	StateTracking:  "tracking",
	StateHooking:   "hooking",
	StateStunned:   "stunned",
}

func (s StateID) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return "unknown"
}
