package counter

import "fmt"

// State is the counter value at a point in time.
type State struct {
	// Count is the current counter value. It may go negative.
	Count int64
}

// String renders the state for logs and traces.
func (s State) String() string {
	return fmt.Sprintf("{count: %d}", s.Count)
}
