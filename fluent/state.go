package fluent

import (
	"errors"

	"fluentmap/internal/common"
	"fluentmap/model"
)

// State is the phase of a Container.
type State int

const (
	StateEmpty     State = iota // nothing registered yet
	StatePopulated              // at least one source registered
	StateApplied                // Apply was called
)

// String returns a human-readable representation of the State.
func (s State) String() string {
	switch s {
	case StateEmpty:
		return "empty"
	case StatePopulated:
		return "populated"
	case StateApplied:
		return "applied"
	default:
		return common.UnknownStr
	}
}

// ErrAlreadyApplied is returned by a second Apply.
var ErrAlreadyApplied = model.NewError(model.KindState, "apply", "", errors.New("container already applied"))
