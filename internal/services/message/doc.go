// Package message keeps the user-visible notification log.
//
// Any component may append status text; the log is ordered, unbounded and
// only emptied by an explicit Clear.
package message
