package counter

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestReduce covers every action, including the ones that must not change the state.
func TestReduce(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		state  State
		action Action
		want   State
	}{
		{name: "increment", state: State{Count: 0}, action: Increment{}, want: State{Count: 1}},
		{name: "decrement below zero", state: State{Count: 0}, action: Decrement{}, want: State{Count: -1}},
		{name: "async is ignored", state: State{Count: 7}, action: IncrementAsync{}, want: State{Count: 7}},
		{name: "nil is ignored", state: State{Count: 3}, action: nil, want: State{Count: 3}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			require.Equal(t, tc.want, Reduce(tc.state, tc.action))
		})
	}
}

// TestFollowUp ensures only IncrementAsync schedules an Increment.
func TestFollowUp(t *testing.T) {
	t.Parallel()

	next, ok := FollowUp(IncrementAsync{})
	require.True(t, ok)
	require.Equal(t, Increment{}, next)

	_, ok = FollowUp(Increment{})
	require.False(t, ok)

	_, ok = FollowUp(Decrement{})
	require.False(t, ok)
}

// TestParseAction checks name normalization and the unknown-name error.
func TestParseAction(t *testing.T) {
	t.Parallel()

	for _, name := range ActionNames() {
		a, err := ParseAction(name)
		require.NoError(t, err)
		require.Equal(t, name, a.String())
	}

	a, err := ParseAction("  Increment-Async ")
	require.NoError(t, err)
	require.Equal(t, IncrementAsync{}, a)

	_, err = ParseAction("reset")
	require.ErrorIs(t, err, ErrUnknownAction)
}

// TestStateString checks the rendering used in logs and traces.
func TestStateString(t *testing.T) {
	t.Parallel()

	require.Equal(t, "{count: -3}", State{Count: -3}.String())
}
