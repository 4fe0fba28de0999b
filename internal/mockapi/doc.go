// Package mockapi is an in-memory stand-in for the courses REST server.
//
// HTTP API (relative to the server root)
//
//	GET /api/courses[/]?id=N&name=TERM
//	    Return the collection. id filters by exact id; name keeps courses
//	    whose name contains TERM, ignoring case. Both filters may be combined.
//
//	GET /api/courses/{id}
//	    Return one course, or 404.
//
//	POST /api/courses { "name": "..." }
//	    Create a course. A missing or zero id is assigned by the store.
//	    Responds 201 with the stored record, or 409 if the id is taken.
//
//	PUT /api/courses { "id": N, "name": "..." }
//	    Replace the course with the body's id, creating it when absent.
//	    Responds 204.
//
//	DELETE /api/courses/{id}
//	    Remove a course. Responds 204 whether or not it existed.
//
// Behaviour
//
//   - Responses are JSON; error statuses carry {"error": "..."}.
//   - GET responses carry a strong ETag; a matching If-None-Match yields 304.
//   - An optional Delay simulates network latency and honours cancellation.
//   - Every request is written to the access log with its X-Request-ID.
//
// Handler can be mounted on a real listener (cmd/mockapi) or installed into an
// http.Client in-process with Transport, so no socket is needed at all.
package mockapi
