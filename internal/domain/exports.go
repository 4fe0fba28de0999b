package domain

import (
	interfaces "coursehub/internal/domain/interfaces"
	types "coursehub/internal/domain/types"
)

// Type aliases expose domain types from the types subpackage for compact imports.
type (
	CourseID = types.CourseID
	Course   = types.Course
	Message  = types.Message
)

// Interface aliases expose domain interfaces from the interfaces subpackage.
type (
	MessageService = interfaces.MessageService
	CourseService  = interfaces.CourseService
	CourseBackend  = interfaces.CourseBackend
	CourseStore    = interfaces.CourseStore
)
