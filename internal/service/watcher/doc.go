// Package watcher follows the counter value on a statebox server and prints
// every change, reconnecting when the stream breaks.
package watcher
