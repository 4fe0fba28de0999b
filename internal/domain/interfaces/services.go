package interfaces

import (
	"context"

	domaintypes "coursehub/internal/domain/types"
)

// MessageService is the append-only notification log shown to the user.
type MessageService interface {
	Add(message domaintypes.Message)
	Clear()
	Messages() []domaintypes.Message
}

// CourseService is the data-access contract used by the views.
//
// Failures are logged to the MessageService and, depending on the service
// policy, either swallowed into the fallback value or returned.
type CourseService interface {
	ListCourses(ctx context.Context) ([]domaintypes.Course, error)
	FindCourse(ctx context.Context, id domaintypes.CourseID) (domaintypes.Course, bool, error)
	GetCourse(ctx context.Context, id domaintypes.CourseID) (domaintypes.Course, bool, error)
	SearchCourses(ctx context.Context, term string) ([]domaintypes.Course, error)
	AddCourse(ctx context.Context, course domaintypes.Course) (domaintypes.Course, bool, error)
	DeleteCourse(ctx context.Context, course domaintypes.Course) error
	DeleteCourseByID(ctx context.Context, id domaintypes.CourseID) error
	UpdateCourse(ctx context.Context, course domaintypes.Course) error
}
