package store

// Reducer computes the next state from the current state and an action.
// It must be total: actions it does not handle return the input unchanged.
type Reducer[S, A any] func(state S, action A) S

// Dispatcher submits an action to a store.
type Dispatcher[A any] func(action A)

// Middleware observes every dispatched action together with the state
// snapshot taken at dispatch time and may dispatch further actions.
type Middleware[S, A any] func(state S, action A, dispatch Dispatcher[A])

// Observer receives committed state values.
type Observer[S any] func(state S)
