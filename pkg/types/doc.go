// Package types defines the Task and TaskStore entities, the calendar Date
// value type, the Adapter interface implemented by the persistence backends,
// and the standard error values for the tally task tracker.
package types
