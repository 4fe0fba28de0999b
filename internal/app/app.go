package app

import "coursehub/internal/views"

// App holds one instance of every view, all sharing a Wire.
type App struct {
	*Wire

	CoursesView   *views.CoursesView
	DashboardView *views.DashboardView
	DetailView    *views.DetailView
	SearchView    *views.SearchView
}

// New builds the views over w.
func New(w *Wire, searchOpts ...views.SearchOption) *App {
	return &App{
		Wire:          w,
		CoursesView:   views.NewCoursesView(w.Courses),
		DashboardView: views.NewDashboardView(w.Courses),
		DetailView:    views.NewDetailView(w.Courses),
		SearchView:    views.NewSearchView(w.Courses, searchOpts...),
	}
}

// Close releases background resources held by the views.
func (a *App) Close() error {
	a.SearchView.Close()
	return a.CoursesView.Wait()
}
