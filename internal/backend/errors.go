package backend

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrNotFound matches any *StatusError carrying a 404.
var ErrNotFound = errors.New("not found")

// StatusError is returned for non-2xx responses.
type StatusError struct {
	Method string
	URL    string
	Code   int
	Status string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("Http failure response for %s %s: %s", e.Method, e.URL, e.Status)
}

// Is lets errors.Is(err, ErrNotFound) succeed for 404 responses.
func (e *StatusError) Is(target error) bool {
	return target == ErrNotFound && e.Code == http.StatusNotFound
}
