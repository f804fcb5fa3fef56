package service

import (
	"errors"
	"fmt"
	"sync"

	"portfolio-site/internal/core/logger"
	"portfolio-site/internal/features/carousel/domain"
	"portfolio-site/internal/features/carousel/ports"

	"go.uber.org/zap"
)

var (
	// ErrSectionNotFound is returned when no carousel is registered under a section id.
	ErrSectionNotFound = errors.New("carousel section not found")
	// ErrUnknownAction is returned for a command whose action is not recognised.
	ErrUnknownAction = errors.New("unknown carousel action")
)

// Registry implements ports.CarouselService over a set of independent rotations keyed by
// section id.
type Registry struct {
	mu        sync.RWMutex
	rotations map[string]ports.Rotator
	order     []string
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		rotations: make(map[string]ports.Rotator),
	}
}

// Register installs r under section. An instance already registered there is torn down first.
func (s *Registry) Register(section string, r ports.Rotator) {
	s.mu.Lock()
	old, exists := s.rotations[section]
	s.rotations[section] = r
	if !exists {
		s.order = append(s.order, section)
	}
	s.mu.Unlock()

	if exists && old != r {
		old.Teardown()
	}
	logger.Named("carousel").Info("Carousel registered",
		zap.String("section", section),
		zap.Int("items", r.Snapshot().Total),
	)
}

// Remove tears down and forgets the carousel of section. It reports whether one existed.
func (s *Registry) Remove(section string) bool {
	s.mu.Lock()
	r, ok := s.rotations[section]
	if ok {
		delete(s.rotations, section)
		for i, name := range s.order {
			if name == section {
				s.order = append(s.order[:i], s.order[i+1:]...)
				break
			}
		}
	}
	s.mu.Unlock()

	if ok {
		r.Teardown()
	}
	return ok
}

// Lookup returns the rotation registered under section.
func (s *Registry) Lookup(section string) (ports.Rotator, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.rotations[section]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrSectionNotFound, section)
	}
	return r, nil
}

// Sections lists registered section ids in registration order.
func (s *Registry) Sections() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]string(nil), s.order...)
}

// Get returns the snapshot of section.
func (s *Registry) Get(section string) (domain.Snapshot, error) {
	r, err := s.Lookup(section)
	if err != nil {
		return domain.Snapshot{}, err
	}
	return r.Snapshot(), nil
}

// Execute dispatches cmd to the carousel of section.
func (s *Registry) Execute(section string, cmd domain.Command) (domain.Snapshot, error) {
	if !cmd.Action.Valid() {
		return domain.Snapshot{}, fmt.Errorf("%w: %q", ErrUnknownAction, cmd.Action)
	}

	r, err := s.Lookup(section)
	if err != nil {
		return domain.Snapshot{}, err
	}

	switch cmd.Action {
	case domain.ActionNext:
		r.Next()
	case domain.ActionPrevious:
		r.Previous()
	case domain.ActionGoTo:
		if err := r.Select(cmd.Index); err != nil {
			return r.Snapshot(), err
		}
	case domain.ActionPause:
		r.Pause()
	case domain.ActionResume:
		r.Resume()
	case domain.ActionDragStart:
		r.DragStart(cmd.X)
	case domain.ActionDragMove:
		r.DragMove(cmd.X)
	case domain.ActionDragEnd:
		r.DragEnd()
	}

	return r.Snapshot(), nil
}

// CurrentIndex returns the current index of section, or 0 when none is registered.
func (s *Registry) CurrentIndex(section string) int {
	r, err := s.Lookup(section)
	if err != nil {
		return 0
	}
	return r.Index()
}

// Close tears down every registered carousel.
func (s *Registry) Close() {
	s.mu.Lock()
	rotations := s.rotations
	s.rotations = make(map[string]ports.Rotator)
	s.order = nil
	s.mu.Unlock()

	for _, r := range rotations {
		r.Teardown()
	}
}
