package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"coursehub/internal/domain"
)

// CoursesPath is the collection endpoint relative to Base.
const CoursesPath = "/api/courses"

// RequestIDHeader carries a per-request id to the backend access log.
const RequestIDHeader = "X-Request-ID"

// HTTP talks to the courses collection over JSON/HTTP.
type HTTP struct {
	Base string
	HTTP *http.Client
}

// NewHTTP returns a client for base using httpClient, or http.DefaultClient when nil.
func NewHTTP(base string, httpClient *http.Client) *HTTP {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &HTTP{Base: strings.TrimRight(base, "/"), HTTP: httpClient}
}

// List returns the whole collection.
func (c *HTTP) List(ctx context.Context) ([]domain.Course, error) {
	var out []domain.Course
	if err := c.do(ctx, http.MethodGet, CoursesPath, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Get fetches one course from its item path; a missing id is an ErrNotFound.
func (c *HTTP) Get(ctx context.Context, id domain.CourseID) (domain.Course, error) {
	var out domain.Course
	if err := c.do(ctx, http.MethodGet, itemPath(id), nil, &out); err != nil {
		return domain.Course{}, err
	}
	return out, nil
}

// FilterByID queries the collection with an id filter and returns 0 or 1 courses.
func (c *HTTP) FilterByID(ctx context.Context, id domain.CourseID) ([]domain.Course, error) {
	var out []domain.Course
	q := url.Values{"id": {strconv.Itoa(int(id))}}
	if err := c.do(ctx, http.MethodGet, CoursesPath+"/?"+q.Encode(), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// SearchByName queries the collection with a name filter.
func (c *HTTP) SearchByName(ctx context.Context, term string) ([]domain.Course, error) {
	var out []domain.Course
	q := url.Values{"name": {term}}
	if err := c.do(ctx, http.MethodGet, CoursesPath+"/?"+q.Encode(), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Create posts course and returns the stored record with its assigned id.
func (c *HTTP) Create(ctx context.Context, course domain.Course) (domain.Course, error) {
	var out domain.Course
	if err := c.do(ctx, http.MethodPost, CoursesPath, newCourseBody(course), &out); err != nil {
		return domain.Course{}, err
	}
	return out, nil
}

// Delete removes the course at its item path.
func (c *HTTP) Delete(ctx context.Context, id domain.CourseID) error {
	return c.do(ctx, http.MethodDelete, itemPath(id), nil, nil)
}

// Update puts the full record to the collection endpoint.
func (c *HTTP) Update(ctx context.Context, course domain.Course) error {
	return c.do(ctx, http.MethodPut, CoursesPath, course, nil)
}

// newCourseBody omits the id so the backend assigns one.
func newCourseBody(course domain.Course) any {
	if course.ID != 0 {
		return course
	}
	return struct {
		Name string `json:"name"`
	}{Name: course.Name}
}

func itemPath(id domain.CourseID) string {
	return CoursesPath + "/" + url.PathEscape(id.String())
}

func (c *HTTP) do(ctx context.Context, method, path string, in any, out any) error {
	var body io.Reader
	if in != nil {
		buf := new(bytes.Buffer)
		if err := json.NewEncoder(buf).Encode(in); err != nil {
			return err
		}
		body = buf
	}

	u := c.Base + path
	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return err
	}
	if method != http.MethodGet {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set(RequestIDHeader, uuid.NewString())

	resp, err := c.HTTP.Do(req)
	if err != nil {
		// *url.Error already names the method and URL.
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		return &StatusError{Method: method, URL: u, Code: resp.StatusCode, Status: resp.Status}
	}
	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s %s: %w", method, u, err)
	}
	return nil
}

// Compile-time assertion that HTTP implements domain.CourseBackend.
var _ domain.CourseBackend = (*HTTP)(nil)
