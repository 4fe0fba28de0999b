// Command mockapi serves the in-memory courses API over HTTP for development
// and for pointing coursehub --api at a shared backend.
//
// Routes
//
//	/api/courses...   the courses collection (see package internal/mockapi)
//	/ping             health check, answers "pong"
//
// Behaviour
//
//   - All state is held in memory and lost on process exit.
//   - The store is seeded from --seed (YAML or JSON) or the built-in catalogue.
//   - With --watch the seed file is reloaded whenever it changes.
//   - Every request is access-logged; --log-format json emits JSON lines.
//   - The default listen address is :8080.
package main
