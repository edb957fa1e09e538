package shell

// State is the lifecycle position of a Shell.
type State int

const (
	StateUninitialized State = iota
	StateRunning
	StateExited
)

func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateRunning:
		return "running"
	case StateExited:
		return "exited"
	default:
		return "unknown"
	}
}
