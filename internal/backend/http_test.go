package backend_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"coursehub/internal/backend"
	"coursehub/internal/domain"
	"coursehub/internal/mockapi"
	"coursehub/internal/store"
)

// recorder wraps the mock handler and remembers what the client sent.
type recorder struct {
	next http.Handler

	mu       sync.Mutex
	requests []*http.Request
}

func (r *recorder) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.mu.Lock()
	r.requests = append(r.requests, req.Clone(context.Background()))
	r.mu.Unlock()
	r.next.ServeHTTP(w, req)
}

func (r *recorder) last(t *testing.T) *http.Request {
	t.Helper()
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.requests) == 0 {
		t.Fatal("no request recorded")
	}
	return r.requests[len(r.requests)-1]
}

func newClient(t *testing.T) (*backend.HTTP, *recorder) {
	t.Helper()
	rec := &recorder{next: mockapi.NewHandler(store.NewMemoryStore(store.DefaultSeed()))}
	srv := httptest.NewServer(rec)
	t.Cleanup(srv.Close)
	return backend.NewHTTP(srv.URL+"/", srv.Client()), rec
}

func TestList(t *testing.T) {
	c, rec := newClient(t)
	got, err := c.List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 10 {
		t.Fatalf("want 10 courses, got %d", len(got))
	}
	req := rec.last(t)
	if req.Method != http.MethodGet || req.URL.Path != "/api/courses" {
		t.Fatalf("unexpected request %s %s", req.Method, req.URL)
	}
	if req.Header.Get(backend.RequestIDHeader) == "" {
		t.Fatal("missing request id")
	}
}

func TestGet_NotFoundIsErrNotFound(t *testing.T) {
	c, _ := newClient(t)
	_, err := c.Get(context.Background(), 404)
	if !errors.Is(err, backend.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
	var se *backend.StatusError
	if !errors.As(err, &se) || se.Code != http.StatusNotFound || se.Method != http.MethodGet {
		t.Fatalf("want *StatusError 404, got %#v", err)
	}
}

func TestFilterByID(t *testing.T) {
	c, rec := newClient(t)
	got, err := c.FilterByID(context.Background(), 15)
	if err != nil {
		t.Fatalf("filter: %v", err)
	}
	if len(got) != 1 || got[0].ID != 15 {
		t.Fatalf("unexpected result %v", got)
	}
	if q := rec.last(t).URL.Query().Get("id"); q != "15" {
		t.Fatalf("want id=15 in query, got %q", q)
	}
}

func TestSearchByName_EscapesTerm(t *testing.T) {
	c, rec := newClient(t)
	if _, err := c.SearchByName(context.Background(), "HTTP and"); err != nil {
		t.Fatalf("search: %v", err)
	}
	if q := rec.last(t).URL.Query().Get("name"); q != "HTTP and" {
		t.Fatalf("want term round-tripped, got %q", q)
	}
}

func TestCreate_SendsJSONWithoutID(t *testing.T) {
	c, rec := newClient(t)
	got, err := c.Create(context.Background(), domain.Course{Name: "Go"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if got.ID != 21 {
		t.Fatalf("want server-assigned id 21, got %d", got.ID)
	}
	req := rec.last(t)
	if req.Method != http.MethodPost || req.Header.Get("Content-Type") != "application/json" {
		t.Fatalf("unexpected request %s content-type=%q", req.Method, req.Header.Get("Content-Type"))
	}
}

func TestUpdateAndDelete(t *testing.T) {
	c, rec := newClient(t)
	ctx := context.Background()

	if err := c.Update(ctx, domain.Course{ID: 11, Name: "Renamed"}); err != nil {
		t.Fatalf("update: %v", err)
	}
	if req := rec.last(t); req.Method != http.MethodPut || req.Header.Get("Content-Type") != "application/json" {
		t.Fatalf("unexpected request %s", req.Method)
	}
	got, err := c.Get(ctx, 11)
	if err != nil || got.Name != "Renamed" {
		t.Fatalf("get after update: %+v, %v", got, err)
	}

	if err := c.Delete(ctx, 11); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if req := rec.last(t); req.Method != http.MethodDelete || req.URL.Path != "/api/courses/11" {
		t.Fatalf("unexpected request %s %s", req.Method, req.URL)
	}
	if _, err := c.Get(ctx, 11); !errors.Is(err, backend.ErrNotFound) {
		t.Fatalf("want ErrNotFound after delete, got %v", err)
	}
}

func TestTransportError(t *testing.T) {
	tr := mockapi.NewTransport(mockapi.NewHandler(store.NewMemoryStore(nil)))
	tr.SetOffline(true)
	c := backend.NewHTTP("http://coursehub.local", tr.Client())

	_, err := c.List(context.Background())
	if !errors.Is(err, mockapi.ErrOffline) {
		t.Fatalf("want ErrOffline, got %v", err)
	}
	if errors.Is(err, backend.ErrNotFound) {
		t.Fatal("transport error must not look like a 404")
	}
}
