package message

import (
	"sync"

	"coursehub/internal/domain"
)

// Service is an append-only, in-memory message log.
type Service struct {
	mu       sync.Mutex
	messages []domain.Message
}

// New returns an empty message log.
func New() *Service { return &Service{} }

// Add appends message to the log.
func (s *Service) Add(message domain.Message) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages = append(s.messages, message)
}

// Clear drops every message.
func (s *Service) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages = nil
}

// Messages returns a copy of the log in insertion order.
func (s *Service) Messages() []domain.Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.Message(nil), s.messages...)
}

// Len reports how many messages are held.
func (s *Service) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.messages)
}

// Compile-time assertion that Service implements domain.MessageService.
var _ domain.MessageService = (*Service)(nil)
