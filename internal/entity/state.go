package entity

// StateInstance is open-ended: the gateway may report values not listed here
// and they are shown verbatim.
type StateInstance string

const (
	StateNotAuthorized StateInstance = "notAuthorized"
	StateAuthorized    StateInstance = "authorized"
	StateBlocked       StateInstance = "blocked"
	StateSleepMode     StateInstance = "sleepMode"
	StateStarting      StateInstance = "starting"
	StateYellowCard    StateInstance = "yellowCard"
)

func (s StateInstance) Known() bool {
	switch s {
	case StateNotAuthorized, StateAuthorized, StateBlocked, StateSleepMode, StateStarting, StateYellowCard:
		return true
	}
	return false
}
