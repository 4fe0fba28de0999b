package course_test

import (
	"context"
	"errors"
	"strings"
	"sync/atomic"
	"testing"

	"coursehub/internal/backend"
	"coursehub/internal/domain"
	"coursehub/internal/mockapi"
	"coursehub/internal/services/course"
	"coursehub/internal/services/message"
	"coursehub/internal/store"
)

// countingBackend counts calls that reach the wire.
type countingBackend struct {
	domain.CourseBackend
	searches atomic.Int32
	lastTerm atomic.Value
}

func (c *countingBackend) SearchByName(ctx context.Context, term string) ([]domain.Course, error) {
	c.searches.Add(1)
	c.lastTerm.Store(term)
	return c.CourseBackend.SearchByName(ctx, term)
}

type fixture struct {
	svc       *course.Service
	messages  *message.Service
	transport *mockapi.Transport
	backend   *countingBackend
}

func newFixture(t *testing.T, opts ...course.Option) fixture {
	t.Helper()
	tr := mockapi.NewTransport(mockapi.NewHandler(store.NewMemoryStore(store.DefaultSeed())))
	be := &countingBackend{CourseBackend: backend.NewHTTP("http://coursehub.local", tr.Client())}
	msgs := message.New()
	return fixture{
		svc:       course.New(be, msgs, opts...),
		messages:  msgs,
		transport: tr,
		backend:   be,
	}
}

func lastMessage(t *testing.T, m *message.Service) string {
	t.Helper()
	all := m.Messages()
	if len(all) == 0 {
		t.Fatal("message log is empty")
	}
	return all[len(all)-1].String()
}

func countFailures(m *message.Service, op string) int {
	n := 0
	for _, msg := range m.Messages() {
		if strings.HasPrefix(msg.String(), "CourseService: "+op+" failed:") {
			n++
		}
	}
	return n
}

func TestListCourses_LogsSuccess(t *testing.T) {
	f := newFixture(t)
	got, err := f.svc.ListCourses(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 10 {
		t.Fatalf("want 10 courses, got %d", len(got))
	}
	if msg := lastMessage(t, f.messages); msg != "CourseService: fetched courses" {
		t.Fatalf("unexpected message %q", msg)
	}
}

func TestListCourses_FailureBecomesEmpty(t *testing.T) {
	f := newFixture(t)
	f.transport.SetOffline(true)

	got, err := f.svc.ListCourses(context.Background())
	if err != nil {
		t.Fatalf("swallow policy returned error: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Fatalf("want empty non-nil slice, got %#v", got)
	}
	if n := countFailures(f.messages, "getCourses"); n != 1 {
		t.Fatalf("want exactly one failure entry, got %d", n)
	}
}

func TestFindCourse(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	c, ok, err := f.svc.FindCourse(ctx, 14)
	if err != nil || !ok || c.ID != 14 {
		t.Fatalf("find 14: %+v, %v, %v", c, ok, err)
	}
	if msg := lastMessage(t, f.messages); msg != "CourseService: fetched course id=14" {
		t.Fatalf("unexpected message %q", msg)
	}

	_, ok, err = f.svc.FindCourse(ctx, 999)
	if err != nil || ok {
		t.Fatalf("find 999: ok=%v err=%v", ok, err)
	}
	if msg := lastMessage(t, f.messages); msg != "CourseService: did not find course id=999" {
		t.Fatalf("unexpected message %q", msg)
	}
}

func TestGetCourse_MissingIsAbsentNotError(t *testing.T) {
	f := newFixture(t)
	c, ok, err := f.svc.GetCourse(context.Background(), 999)
	if err != nil {
		t.Fatalf("swallow policy returned error: %v", err)
	}
	if ok || c != (domain.Course{}) {
		t.Fatalf("want absent course, got %+v ok=%v", c, ok)
	}
	if n := countFailures(f.messages, "getCourse id=999"); n != 1 {
		t.Fatalf("want one failure entry, got %d: %v", n, f.messages.Messages())
	}
}

func TestGetCourse_Found(t *testing.T) {
	f := newFixture(t)
	c, ok, err := f.svc.GetCourse(context.Background(), 11)
	if err != nil || !ok || c.Name != "Angular Fundamentals" {
		t.Fatalf("get 11: %+v, %v, %v", c, ok, err)
	}
}

func TestSearchCourses_BlankTermSkipsRequest(t *testing.T) {
	f := newFixture(t)
	for _, term := range []string{"", "   ", "\t\n"} {
		got, err := f.svc.SearchCourses(context.Background(), term)
		if err != nil || got == nil || len(got) != 0 {
			t.Fatalf("term %q: got %#v, %v", term, got, err)
		}
	}
	if n := f.backend.searches.Load(); n != 0 {
		t.Fatalf("blank terms issued %d requests", n)
	}
	if f.messages.Len() != 0 {
		t.Fatalf("blank terms logged %v", f.messages.Messages())
	}
}

func TestSearchCourses_OneRequestWithTerm(t *testing.T) {
	f := newFixture(t)
	got, err := f.svc.SearchCourses(context.Background(), "xyz")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("want no matches, got %v", got)
	}
	if n := f.backend.searches.Load(); n != 1 {
		t.Fatalf("want 1 request, got %d", n)
	}
	if term := f.backend.lastTerm.Load(); term != "xyz" {
		t.Fatalf("want term xyz, got %v", term)
	}
	if msg := lastMessage(t, f.messages); msg != `CourseService: found courses matching "xyz"` {
		t.Fatalf("unexpected message %q", msg)
	}
}

func TestAddCourse_AssignsID(t *testing.T) {
	f := newFixture(t)
	c, ok, err := f.svc.AddCourse(context.Background(), domain.Course{Name: "Go Basics"})
	if err != nil || !ok {
		t.Fatalf("add: ok=%v err=%v", ok, err)
	}
	if c.ID != 21 || c.Name != "Go Basics" {
		t.Fatalf("unexpected course %+v", c)
	}
	if msg := lastMessage(t, f.messages); msg != "CourseService: added course w/ id=21" {
		t.Fatalf("unexpected message %q", msg)
	}
}

func TestDeleteAndUpdate(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	if err := f.svc.UpdateCourse(ctx, domain.Course{ID: 12, Name: "TS"}); err != nil {
		t.Fatalf("update: %v", err)
	}
	if msg := lastMessage(t, f.messages); msg != "CourseService: updated course id=12" {
		t.Fatalf("unexpected message %q", msg)
	}
	if err := f.svc.DeleteCourse(ctx, domain.Course{ID: 12, Name: "TS"}); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := f.svc.DeleteCourseByID(ctx, 13); err != nil {
		t.Fatalf("delete by id: %v", err)
	}
	if msg := lastMessage(t, f.messages); msg != "CourseService: deleted course id=13" {
		t.Fatalf("unexpected message %q", msg)
	}
	all, _ := f.svc.ListCourses(ctx)
	if len(all) != 8 {
		t.Fatalf("want 8 courses left, got %d", len(all))
	}
}

func TestPolicyReturn_SurfacesOpError(t *testing.T) {
	f := newFixture(t, course.WithPolicy(course.PolicyReturn))

	_, ok, err := f.svc.GetCourse(context.Background(), 999)
	if ok {
		t.Fatal("missing course reported as present")
	}
	var opErr *course.OpError
	if !errors.As(err, &opErr) || opErr.Op != "getCourse id=999" {
		t.Fatalf("want *OpError for getCourse, got %v", err)
	}
	if !errors.Is(err, backend.ErrNotFound) {
		t.Fatalf("want ErrNotFound in chain, got %v", err)
	}

	f.transport.SetOffline(true)
	if err := f.svc.DeleteCourseByID(context.Background(), 11); !errors.Is(err, mockapi.ErrOffline) {
		t.Fatalf("want ErrOffline, got %v", err)
	}
	if n := countFailures(f.messages, "deleteCourse"); n != 1 {
		t.Fatalf("want one deleteCourse failure entry, got %d", n)
	}
}

func TestEveryFailureLogsOnce(t *testing.T) {
	f := newFixture(t)
	f.transport.SetOffline(true)
	ctx := context.Background()

	_, _ = f.svc.ListCourses(ctx)
	_, _, _ = f.svc.FindCourse(ctx, 11)
	_, _, _ = f.svc.GetCourse(ctx, 11)
	_, _ = f.svc.SearchCourses(ctx, "go")
	_, _, _ = f.svc.AddCourse(ctx, domain.Course{Name: "x"})
	_ = f.svc.DeleteCourseByID(ctx, 11)
	_ = f.svc.UpdateCourse(ctx, domain.Course{ID: 11, Name: "x"})

	if f.messages.Len() != 7 {
		t.Fatalf("want 7 entries, got %d: %v", f.messages.Len(), f.messages.Messages())
	}
	for _, op := range []string{"getCourses", "searchCourses", "addCourse", "deleteCourse", "updateCourse"} {
		if n := countFailures(f.messages, op); n != 1 {
			t.Fatalf("op %s: want 1 entry, got %d", op, n)
		}
	}
	if n := countFailures(f.messages, "getCourse id=11"); n != 2 {
		t.Fatalf("getCourse id=11: want 2 entries, got %d", n)
	}
}

func TestParsePolicy(t *testing.T) {
	for in, want := range map[string]course.Policy{"": course.PolicySwallow, "swallow": course.PolicySwallow, "Return": course.PolicyReturn, "strict": course.PolicyReturn} {
		got, err := course.ParsePolicy(in)
		if err != nil || got != want {
			t.Fatalf("ParsePolicy(%q) = %v, %v", in, got, err)
		}
	}
	if _, err := course.ParsePolicy("ignore"); err == nil {
		t.Fatal("expected error for unknown policy")
	}
}

func TestCancelledByCallerIsNotLogged(t *testing.T) {
	f := newFixture(t, course.WithPolicy(course.PolicyReturn))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	got, err := f.svc.SearchCourses(ctx, "http")
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("want context.Canceled, got %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("want empty fallback, got %v", got)
	}
	if f.messages.Len() != 0 {
		t.Fatalf("cancellation logged as failure: %v", f.messages.Messages())
	}
}

func TestTransportFailureNamesRequestOnce(t *testing.T) {
	f := newFixture(t)
	f.transport.SetOffline(true)

	_, _ = f.svc.ListCourses(context.Background())
	msgs := f.messages.Messages()
	if len(msgs) != 1 {
		t.Fatalf("want one entry, got %v", msgs)
	}
	if n := strings.Count(msgs[0].String(), "coursehub.local/api/courses"); n != 1 {
		t.Fatalf("URL repeated %d times in %q", n, msgs[0])
	}
}
