package counter

// Reduce computes the next counter state. Unknown and asynchronous
// actions leave the state unchanged; there is no lower bound.
func Reduce(s State, a Action) State {
	switch a.(type) {
	case Increment:
		return State{Count: s.Count + 1}
	case Decrement:
		return State{Count: s.Count - 1}
	case IncrementAsync:
		return s
	default:
		return s
	}
}

// FollowUp returns the action to dispatch later in response to a.
func FollowUp(a Action) (Action, bool) {
	if _, ok := a.(IncrementAsync); ok {
		return Increment{}, true
	}

	return nil, false
}
