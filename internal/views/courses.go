package views

import (
	"context"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"coursehub/internal/domain"
)

// CoursesView is the full course list with add and delete.
type CoursesView struct {
	svc domain.CourseService

	mu      sync.Mutex
	courses []domain.Course
	pending *errgroup.Group
}

// NewCoursesView returns an empty list view over svc.
func NewCoursesView(svc domain.CourseService) *CoursesView {
	return &CoursesView{svc: svc, pending: new(errgroup.Group)}
}

// Init loads the collection into the display list.
func (v *CoursesView) Init(ctx context.Context) error {
	courses, err := v.svc.ListCourses(ctx)
	v.mu.Lock()
	v.courses = courses
	v.mu.Unlock()
	return err
}

// Courses returns a snapshot of the display list.
func (v *CoursesView) Courses() []domain.Course {
	v.mu.Lock()
	defer v.mu.Unlock()
	return append([]domain.Course(nil), v.courses...)
}

// Add creates a course named name and appends the server's record. Blank
// names are ignored without contacting the service.
func (v *CoursesView) Add(ctx context.Context, name string) (domain.Course, bool, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.Course{}, false, nil
	}
	created, ok, err := v.svc.AddCourse(ctx, domain.Course{Name: name})
	if !ok {
		return domain.Course{}, false, err
	}
	v.mu.Lock()
	v.courses = append(v.courses, created)
	v.mu.Unlock()
	return created, true, nil
}

// Delete drops every entry equal to course from the display list right away,
// then removes it on the server in the background. The local removal is never
// rolled back; Wait reports the outcome.
func (v *CoursesView) Delete(ctx context.Context, course domain.Course) {
	reqCtx := context.WithoutCancel(ctx)

	v.mu.Lock()
	defer v.mu.Unlock()

	kept := make([]domain.Course, 0, len(v.courses))
	for _, c := range v.courses {
		if c != course {
			kept = append(kept, c)
		}
	}
	v.courses = kept
	v.pending.Go(func() error {
		return v.svc.DeleteCourse(reqCtx, course)
	})
}

// Wait blocks until every delete issued so far has finished and returns the
// first error any of them reported.
func (v *CoursesView) Wait() error {
	v.mu.Lock()
	g := v.pending
	v.pending = new(errgroup.Group)
	v.mu.Unlock()
	return g.Wait()
}
