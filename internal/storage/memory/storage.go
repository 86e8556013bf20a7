package memory

import (
	"slices"
	"sync"

	"github.com/mcoot/hackerclub/internal/model"
	"github.com/mcoot/hackerclub/internal/storage"
)

// Storage is an in-memory handle registry. It only grows.
type Storage struct {
	mu      sync.RWMutex
	handles map[string]struct{}
}

// New creates a new empty in-memory registry
func New() *Storage {
	return &Storage{
		handles: make(map[string]struct{}),
	}
}

// Ensure Storage implements the interface
var _ storage.HandleRegistry = (*Storage)(nil)

func (s *Storage) ClaimHandle(handle string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.handles[handle]; ok {
		return &model.DuplicateHandleError{Handle: handle}
	}
	s.handles[handle] = struct{}{}
	return nil
}

func (s *Storage) HasHandle(handle string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.handles[handle]
	return ok
}

func (s *Storage) Handles() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]string, 0, len(s.handles))
	for h := range s.handles {
		result = append(result, h)
	}
	slices.Sort(result)
	return result
}

func (s *Storage) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.handles)
}

// Process-wide registry

var (
	defaultMu       sync.Mutex
	defaultRegistry = New()
)

// Default returns the registry shared by the whole process
func Default() *Storage {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	return defaultRegistry
}

// ResetDefault replaces the process-wide registry with an empty one.
// Intended for test isolation; registries already handed out keep their state.
func ResetDefault() *Storage {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultRegistry = New()
	return defaultRegistry
}
