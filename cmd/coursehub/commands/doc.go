// Package commands defines the coursehub CLI and wires dependencies for subcommands.
//
// Commands
//
//   - list        Print every course
//   - dashboard   Print the dashboard slice (courses 2 to 5)
//   - get         Print one course by id
//   - search      Print courses whose name contains a term
//   - add         Create a course
//   - delete      Delete a course by id
//   - update      Rename a course
//   - ui          Start the interactive terminal UI
//
// # Implementation
//
// The root command loads the config file, applies flag overrides and builds
// the dependency graph (message log, backend client, course service and, by
// default, an in-process mock backend) before any subcommand runs. With
// --messages the message log is printed once the subcommand finishes.
package commands
