// Package counter is the sample application served by statebox.
//
// It defines the counter State, the closed set of actions that may change it,
// the Reduce transition function and the FollowUp rule that turns an
// IncrementAsync into a delayed Increment.
package counter
