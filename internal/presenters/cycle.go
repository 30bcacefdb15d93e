package presenters

// State is the position of a submission in its cycle.
type State int

const (
	StateIdle State = iota
	StateValidating
	StateAnnotating
	StateLocationsComputed
	StateError
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StateValidating:
		return "Validating"
	case StateAnnotating:
		return "Annotating"
	case StateLocationsComputed:
		return "LocationsComputed"
	case StateError:
		return "Error"
	default:
		return "Unknown"
	}
}

// Outcome records how the last submission cycle ended.
type Outcome struct {
	CycleID   string
	State     State // StateLocationsComputed or StateError
	Message   string
	Locations int
}
