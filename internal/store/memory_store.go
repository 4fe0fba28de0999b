package store

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"coursehub/internal/domain"
)

// firstGeneratedID is handed out when the table is empty.
const firstGeneratedID domain.CourseID = 11

// ErrDuplicateID is returned by Insert when the caller supplied an id that is taken.
var ErrDuplicateID = errors.New("course id already exists")

// MemoryStore is the in-memory courses table served by the mock backend.
type MemoryStore struct {
	mu      sync.RWMutex
	courses map[domain.CourseID]domain.Course
}

// NewMemoryStore returns a store holding a copy of seed.
func NewMemoryStore(seed []domain.Course) *MemoryStore {
	s := &MemoryStore{}
	s.Replace(seed)
	return s
}

// All returns every course ordered by id.
func (s *MemoryStore) All() []domain.Course {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Course, 0, len(s.courses))
	for _, c := range s.courses {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Get looks a course up by id.
func (s *MemoryStore) Get(id domain.CourseID) (domain.Course, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.courses[id]
	return c, ok
}

// Insert adds course. A zero id is replaced by max(id)+1.
func (s *MemoryStore) Insert(course domain.Course) (domain.Course, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if course.ID == 0 {
		course.ID = s.nextIDLocked()
	} else if _, exists := s.courses[course.ID]; exists {
		return domain.Course{}, fmt.Errorf("%w: %d", ErrDuplicateID, course.ID)
	}
	s.courses[course.ID] = course
	return course, nil
}

// Put stores course under its id, creating it when absent.
func (s *MemoryStore) Put(course domain.Course) (created bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, exists := s.courses[course.ID]
	s.courses[course.ID] = course
	return !exists
}

// Delete removes the course with id and reports whether it was present.
func (s *MemoryStore) Delete(id domain.CourseID) (existed bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, existed = s.courses[id]
	delete(s.courses, id)
	return existed
}

// Replace swaps the whole table for courses.
func (s *MemoryStore) Replace(courses []domain.Course) {
	m := make(map[domain.CourseID]domain.Course, len(courses))
	for _, c := range courses {
		m[c.ID] = c
	}
	s.mu.Lock()
	s.courses = m
	s.mu.Unlock()
}

// nextIDLocked must be called with mu held.
func (s *MemoryStore) nextIDLocked() domain.CourseID {
	if len(s.courses) == 0 {
		return firstGeneratedID
	}
	var highest domain.CourseID
	for id := range s.courses {
		if id > highest {
			highest = id
		}
	}
	return highest + 1
}

// Compile-time assertion that MemoryStore implements domain.CourseStore.
var _ domain.CourseStore = (*MemoryStore)(nil)
