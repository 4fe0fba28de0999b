package types

import "strconv"

// CourseID identifies a course. The mock backend assigns it on create.
type CourseID int

// String returns the decimal form of the identifier.
func (id CourseID) String() string { return strconv.Itoa(int(id)) }

// Course is the single record the application browses and edits.
type Course struct {
	ID   CourseID `json:"id" yaml:"id"`
	Name string   `json:"name" yaml:"name"`
}
