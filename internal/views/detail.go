package views

import (
	"context"
	"sync"

	"coursehub/internal/domain"
)

// DetailView edits a single course.
type DetailView struct {
	svc domain.CourseService

	mu     sync.Mutex
	course domain.Course
	loaded bool
}

// NewDetailView returns an empty detail view over svc.
func NewDetailView(svc domain.CourseService) *DetailView {
	return &DetailView{svc: svc}
}

// Load fetches course id. It reports false when the course is unavailable.
func (v *DetailView) Load(ctx context.Context, id domain.CourseID) (bool, error) {
	c, ok, err := v.svc.GetCourse(ctx, id)
	v.mu.Lock()
	v.course, v.loaded = c, ok
	v.mu.Unlock()
	return ok, err
}

// Course returns the course being edited.
func (v *DetailView) Course() (domain.Course, bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.course, v.loaded
}

// SetName edits the local copy only; Save sends it.
func (v *DetailView) SetName(name string) {
	v.mu.Lock()
	v.course.Name = name
	v.mu.Unlock()
}

// Save writes the local copy back. It is a no-op when nothing is loaded.
func (v *DetailView) Save(ctx context.Context) error {
	c, ok := v.Course()
	if !ok {
		return nil
	}
	return v.svc.UpdateCourse(ctx, c)
}
