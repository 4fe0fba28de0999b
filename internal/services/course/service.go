package course

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"coursehub/internal/domain"
	"coursehub/internal/logging"
)

// logPrefix tags every entry this service adds to the message log.
const logPrefix = "CourseService: "

// Service maps the course operations onto a domain.CourseBackend.
type Service struct {
	backend  domain.CourseBackend
	messages domain.MessageService
	logger   logging.Logger
	policy   Policy
}

// Option customises a Service.
type Option func(*Service)

// WithLogger sends console diagnostics to l.
func WithLogger(l logging.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithPolicy selects the failure policy. The default is PolicySwallow.
func WithPolicy(p Policy) Option {
	return func(s *Service) { s.policy = p }
}

// New returns a Service over backend that reports to messages.
func New(backend domain.CourseBackend, messages domain.MessageService, opts ...Option) *Service {
	s := &Service{
		backend:  backend,
		messages: messages,
		logger:   logging.Nop(),
		policy:   PolicySwallow,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Policy reports the active failure policy.
func (s *Service) Policy() Policy { return s.policy }

// ListCourses fetches the whole collection. On failure it falls back to an
// empty slice.
func (s *Service) ListCourses(ctx context.Context) ([]domain.Course, error) {
	courses, err := s.backend.List(ctx)
	if err != nil {
		return handleError(ctx, s, "getCourses", []domain.Course{}, err)
	}
	s.log("fetched courses")
	return nonNil(courses), nil
}

// FindCourse looks id up through the collection's id filter. A missing course
// is reported as absent, never as a failure.
func (s *Service) FindCourse(ctx context.Context, id domain.CourseID) (domain.Course, bool, error) {
	courses, err := s.backend.FilterByID(ctx, id)
	if err != nil {
		c, err := handleError(ctx, s, fmt.Sprintf("getCourse id=%d", id), domain.Course{}, err)
		return c, false, err
	}
	if len(courses) == 0 {
		s.log(fmt.Sprintf("did not find course id=%d", id))
		return domain.Course{}, false, nil
	}
	s.log(fmt.Sprintf("fetched course id=%d", id))
	return courses[0], true, nil
}

// GetCourse fetches id from its item path. A 404 counts as a failure and is
// handled like any other: logged, then converted to an absent result.
func (s *Service) GetCourse(ctx context.Context, id domain.CourseID) (domain.Course, bool, error) {
	c, err := s.backend.Get(ctx, id)
	if err != nil {
		c, err := handleError(ctx, s, fmt.Sprintf("getCourse id=%d", id), domain.Course{}, err)
		return c, false, err
	}
	s.log(fmt.Sprintf("fetched course id=%d", id))
	return c, true, nil
}

// SearchCourses returns courses whose name contains term. A blank term
// returns an empty slice without touching the backend.
func (s *Service) SearchCourses(ctx context.Context, term string) ([]domain.Course, error) {
	if strings.TrimSpace(term) == "" {
		return []domain.Course{}, nil
	}
	courses, err := s.backend.SearchByName(ctx, term)
	if err != nil {
		return handleError(ctx, s, "searchCourses", []domain.Course{}, err)
	}
	s.log(fmt.Sprintf("found courses matching %q", term))
	return nonNil(courses), nil
}

// AddCourse creates course and returns the stored record with its
// server-assigned id.
func (s *Service) AddCourse(ctx context.Context, course domain.Course) (domain.Course, bool, error) {
	created, err := s.backend.Create(ctx, course)
	if err != nil {
		c, err := handleError(ctx, s, "addCourse", domain.Course{}, err)
		return c, false, err
	}
	s.log(fmt.Sprintf("added course w/ id=%d", created.ID))
	return created, true, nil
}

// DeleteCourse removes course by its id.
func (s *Service) DeleteCourse(ctx context.Context, course domain.Course) error {
	return s.DeleteCourseByID(ctx, course.ID)
}

// DeleteCourseByID removes the course with id.
func (s *Service) DeleteCourseByID(ctx context.Context, id domain.CourseID) error {
	if err := s.backend.Delete(ctx, id); err != nil {
		_, err := handleError(ctx, s, "deleteCourse", struct{}{}, err)
		return err
	}
	s.log(fmt.Sprintf("deleted course id=%d", id))
	return nil
}

// UpdateCourse replaces the stored record with course.
func (s *Service) UpdateCourse(ctx context.Context, course domain.Course) error {
	if err := s.backend.Update(ctx, course); err != nil {
		_, err := handleError(ctx, s, "updateCourse", struct{}{}, err)
		return err
	}
	s.log(fmt.Sprintf("updated course id=%d", course.ID))
	return nil
}

// handleError logs a failed operation to the console and the message log,
// then hands back fallback according to the service policy. A request the
// caller cancelled itself is not a failure and is dropped silently.
func handleError[T any](ctx context.Context, s *Service, op string, fallback T, err error) (T, error) {
	if errors.Is(ctx.Err(), context.Canceled) {
		if s.policy == PolicyReturn {
			return fallback, ctx.Err()
		}
		return fallback, nil
	}
	s.logger.Error("request failed", "op", op, "error", err)
	s.log(fmt.Sprintf("%s failed: %v", op, err))
	if s.policy == PolicyReturn {
		return fallback, &OpError{Op: op, Err: err}
	}
	return fallback, nil
}

func (s *Service) log(message string) {
	s.messages.Add(domain.Message(logPrefix + message))
}

func nonNil(courses []domain.Course) []domain.Course {
	if courses == nil {
		return []domain.Course{}
	}
	return courses
}

// Compile-time assertion that Service implements domain.CourseService.
var _ domain.CourseService = (*Service)(nil)
