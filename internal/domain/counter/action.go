package counter

import (
	"errors"
	"fmt"
	"strings"
)

// Action is something that happened to the counter.
// The set is closed: only the types in this package implement it.
type Action interface {
	fmt.Stringer

	counterAction()
}

type (
	// Increment adds one to the counter.
	Increment struct{}
	// Decrement subtracts one from the counter.
	Decrement struct{}
	// IncrementAsync asks for an Increment to be dispatched later.
	// The reducer itself ignores it.
	IncrementAsync struct{}
)

// Wire names of the actions.
const (
	IncrementName      = "increment"
	DecrementName      = "decrement"
	IncrementAsyncName = "increment_async"
)

// ErrUnknownAction is returned by ParseAction for names it does not know.
var ErrUnknownAction = errors.New("unknown action")

func (Increment) counterAction()      {}
func (Decrement) counterAction()      {}
func (IncrementAsync) counterAction() {}

// String returns the wire name.
func (Increment) String() string { return IncrementName }

// String returns the wire name.
func (Decrement) String() string { return DecrementName }

// String returns the wire name.
func (IncrementAsync) String() string { return IncrementAsyncName }

// ParseAction resolves a wire name into an Action.
// Matching ignores case, surrounding spaces and the dash/underscore difference.
func ParseAction(name string) (Action, error) {
	normalized := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "-", "_")

	switch normalized {
	case IncrementName:
		return Increment{}, nil
	case DecrementName:
		return Decrement{}, nil
	case IncrementAsyncName:
		return IncrementAsync{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownAction, name)
	}
}

// ActionNames lists every wire name in a stable order.
func ActionNames() []string {
	return []string{IncrementName, DecrementName, IncrementAsyncName}
}
