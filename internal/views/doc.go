// Package views holds the presentation state for each screen.
//
// A view owns a local copy of the data it displays and drives the course
// service in response to user actions. Views are safe for use from multiple
// goroutines; the TUI and CLI both sit on top of them.
package views
