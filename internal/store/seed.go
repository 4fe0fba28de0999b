package store

import (
	"fmt"
	"strings"

	"github.com/hashicorp/go-multierror"
	"gopkg.in/yaml.v3"

	"coursehub/internal/domain"
)

// SeedFile mirrors the on-disk seed schema. JSON seeds parse the same way.
type SeedFile struct {
	Courses []domain.Course `yaml:"courses"`
}

// DefaultSeed returns the built-in course catalogue.
func DefaultSeed() []domain.Course {
	return []domain.Course{
		{ID: 11, Name: "Angular Fundamentals"},
		{ID: 12, Name: "TypeScript Basics"},
		{ID: 13, Name: "RxJS in Depth"},
		{ID: 14, Name: "HTTP and REST"},
		{ID: 15, Name: "Routing and Navigation"},
		{ID: 16, Name: "Forms and Validation"},
		{ID: 17, Name: "Testing Components"},
		{ID: 18, Name: "Dependency Injection"},
		{ID: 19, Name: "State Management"},
		{ID: 20, Name: "Deploying Web Apps"},
	}
}

// LoadSeed reads a YAML or JSON seed file. An empty path or a missing file
// yields DefaultSeed.
func LoadSeed(path string) ([]domain.Course, error) {
	if strings.TrimSpace(path) == "" {
		return DefaultSeed(), nil
	}
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}
	if data == nil {
		return DefaultSeed(), nil
	}
	courses, err := ParseSeed(data)
	if err != nil {
		return nil, fmt.Errorf("seed %s: %w", path, err)
	}
	return courses, nil
}

// ParseSeed decodes and validates seed data. It accepts either a top-level
// list of courses or a document with a "courses" key.
func ParseSeed(data []byte) ([]domain.Course, error) {
	var courses []domain.Course
	if err := yaml.Unmarshal(data, &courses); err != nil {
		var file SeedFile
		if err2 := yaml.Unmarshal(data, &file); err2 != nil {
			return nil, err2
		}
		courses = file.Courses
	}
	if err := ValidateSeed(courses); err != nil {
		return nil, err
	}
	return courses, nil
}

// ValidateSeed reports every problem in courses, not just the first.
func ValidateSeed(courses []domain.Course) error {
	var result *multierror.Error
	seen := make(map[domain.CourseID]bool, len(courses))
	for i, c := range courses {
		if c.ID <= 0 {
			result = multierror.Append(result, fmt.Errorf("course %d: id must be positive, got %d", i, c.ID))
		}
		if strings.TrimSpace(c.Name) == "" {
			result = multierror.Append(result, fmt.Errorf("course %d: name is blank", i))
		}
		if seen[c.ID] {
			result = multierror.Append(result, fmt.Errorf("course %d: duplicate id %d", i, c.ID))
		}
		seen[c.ID] = true
	}
	return result.ErrorOrNil()
}
