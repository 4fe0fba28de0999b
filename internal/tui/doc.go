// Package tui is the interactive terminal front end.
//
// It shows four tabs over the shared views: a dashboard, the editable course
// list, live search and the message log.
package tui
