package config

// StateID is the action state of a soldier. It selects which animation plays.
type StateID int

const (
	StateNone StateID = iota
	Idle
	Running
	Jump
)

// StateToFileName maps a state to its sprite directory under img/<charType>/.
var StateToFileName = map[StateID]string{
	Idle:    "Idle",
	Running: "Run",
	Jump:    "Jump",
}

func (s StateID) String() string {
	if name, ok := StateToFileName[s]; ok {
		return name
	}
	return "None"
}
