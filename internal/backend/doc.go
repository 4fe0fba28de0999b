// Package backend provides an HTTP implementation of the domain.CourseBackend
// interface.
//
// It speaks JSON to a REST-style courses collection rooted at
// {Base}/api/courses. Every request accepts a context for cancellation and
// carries an X-Request-ID header. Non-2xx statuses are returned as
// *StatusError values with the HTTP method, full URL and status text to aid
// diagnostics; a 404 also matches ErrNotFound under errors.Is.
//
// The client never retries, caches or reinterprets failures. Deciding what
// a failure means to the user is the course service's job.
package backend
