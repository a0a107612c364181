// Package logtail reads the tail of musaed's log file and splits lines into
// timestamp, message and an inferred level for the log pane.
package logtail
