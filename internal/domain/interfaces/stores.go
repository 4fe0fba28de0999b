package interfaces

import domaintypes "coursehub/internal/domain/types"

// CourseStore is the table behind the mock backend.
type CourseStore interface {
	All() []domaintypes.Course
	Get(id domaintypes.CourseID) (domaintypes.Course, bool)
	Insert(course domaintypes.Course) (domaintypes.Course, error)
	Put(course domaintypes.Course) (created bool)
	Delete(id domaintypes.CourseID) (existed bool)
	Replace(courses []domaintypes.Course)
}
