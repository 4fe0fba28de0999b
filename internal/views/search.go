package views

import (
	"context"
	"sync"
	"time"

	"coursehub/internal/domain"
)

// DefaultSearchDebounce is how long typing must pause before a search runs.
const DefaultSearchDebounce = 300 * time.Millisecond

// SearchView runs name searches as the user types.
//
// Terms are debounced, a term equal to the last one searched is skipped, and
// starting a new search cancels the one in flight so only the latest term's
// results are ever published.
type SearchView struct {
	svc      domain.CourseService
	debounce time.Duration
	onResult func([]domain.Course)

	mu       sync.Mutex
	timer    *time.Timer
	pending  string
	last     string
	searched bool
	gen      uint64
	cancel   context.CancelFunc
	results  []domain.Course
	closed   bool
}

// SearchOption customises a SearchView.
type SearchOption func(*SearchView)

// WithDebounce overrides DefaultSearchDebounce.
func WithDebounce(d time.Duration) SearchOption {
	return func(v *SearchView) { v.debounce = d }
}

// OnResults registers fn to receive every published result set.
func OnResults(fn func([]domain.Course)) SearchOption {
	return func(v *SearchView) { v.onResult = fn }
}

// NewSearchView returns a search view over svc.
func NewSearchView(svc domain.CourseService, opts ...SearchOption) *SearchView {
	v := &SearchView{svc: svc, debounce: DefaultSearchDebounce}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Search records term as the latest input and (re)starts the debounce timer.
func (v *SearchView) Search(term string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.closed {
		return
	}
	v.pending = term
	if v.timer != nil {
		v.timer.Stop()
	}
	v.timer = time.AfterFunc(v.debounce, v.fire)
}

// Results returns the latest published results.
func (v *SearchView) Results() []domain.Course {
	v.mu.Lock()
	defer v.mu.Unlock()
	return append([]domain.Course(nil), v.results...)
}

// Close stops the timer and cancels any search in flight.
func (v *SearchView) Close() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.closed = true
	if v.timer != nil {
		v.timer.Stop()
	}
	if v.cancel != nil {
		v.cancel()
	}
}

func (v *SearchView) fire() {
	v.mu.Lock()
	term := v.pending
	if v.closed || (v.searched && term == v.last) {
		v.mu.Unlock()
		return
	}
	v.last, v.searched = term, true
	if v.cancel != nil {
		v.cancel()
	}
	ctx, cancel := context.WithCancel(context.Background())
	v.cancel = cancel
	v.gen++
	gen := v.gen
	v.mu.Unlock()

	go v.run(ctx, gen, term)
}

func (v *SearchView) run(ctx context.Context, gen uint64, term string) {
	results, _ := v.svc.SearchCourses(ctx, term)

	v.mu.Lock()
	if gen != v.gen || v.closed {
		v.mu.Unlock()
		return
	}
	v.results = results
	fn := v.onResult
	v.mu.Unlock()

	if fn != nil {
		fn(append([]domain.Course(nil), results...))
	}
}
