package interfaces

import (
	"context"

	domaintypes "coursehub/internal/domain/types"
)

// CourseBackend is the raw REST surface of the courses collection, all with context.
// Implementations return every transport and status failure as an error.
type CourseBackend interface {
	List(ctx context.Context) ([]domaintypes.Course, error)
	Get(ctx context.Context, id domaintypes.CourseID) (domaintypes.Course, error)
	FilterByID(ctx context.Context, id domaintypes.CourseID) ([]domaintypes.Course, error)
	SearchByName(ctx context.Context, term string) ([]domaintypes.Course, error)
	Create(ctx context.Context, course domaintypes.Course) (domaintypes.Course, error)
	Delete(ctx context.Context, id domaintypes.CourseID) error
	Update(ctx context.Context, course domaintypes.Course) error
}
