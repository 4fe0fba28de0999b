// Package app wires application dependencies for the CLI.
//
// It builds the logger, message log, backend client, course service and, when
// no API URL is configured, an in-process mock backend from Config, exposing
// them via the Wire struct. App layers the views on top of a Wire.
package app
