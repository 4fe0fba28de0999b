package views

import (
	"context"
	"sync"

	"coursehub/internal/domain"
)

const (
	dashboardSkip = 1
	dashboardSize = 4
)

// DashboardView shows a fixed slice of the collection: positions 2 to 5.
type DashboardView struct {
	svc domain.CourseService

	mu      sync.Mutex
	courses []domain.Course
}

// NewDashboardView returns an empty dashboard over svc.
func NewDashboardView(svc domain.CourseService) *DashboardView {
	return &DashboardView{svc: svc}
}

// Init loads the collection and keeps the dashboard slice of it.
func (v *DashboardView) Init(ctx context.Context) error {
	all, err := v.svc.ListCourses(ctx)
	top := dashboardSlice(all)
	v.mu.Lock()
	v.courses = top
	v.mu.Unlock()
	return err
}

// Courses returns a snapshot of the dashboard list.
func (v *DashboardView) Courses() []domain.Course {
	v.mu.Lock()
	defer v.mu.Unlock()
	return append([]domain.Course(nil), v.courses...)
}

func dashboardSlice(all []domain.Course) []domain.Course {
	if len(all) <= dashboardSkip {
		return []domain.Course{}
	}
	end := min(len(all), dashboardSkip+dashboardSize)
	return append([]domain.Course(nil), all[dashboardSkip:end]...)
}
