package ports

import (
	"portfolio-site/internal/features/carousel/domain"
)

// Rotator is the item-type independent view of a domain.Rotation.
// Every *domain.Rotation[T] satisfies it.
type Rotator interface {
	Snapshot() domain.Snapshot
	Index() int
	Advance(direction int)
	GoTo(index int) error
	Next()
	Previous()
	Select(index int) error
	Pause()
	Resume()
	DragStart(x float64)
	DragMove(x float64) (float64, bool)
	DragEnd()
	Teardown()
}

// CarouselService defines the primary port for driving carousels by section id.
type CarouselService interface {
	// Sections lists the registered section ids in registration order.
	Sections() []string
	// Get returns the current snapshot of a section.
	Get(section string) (domain.Snapshot, error)
	// Execute applies a command and returns the resulting snapshot.
	Execute(section string, cmd domain.Command) (domain.Snapshot, error)
	// CurrentIndex returns the index of a section, or 0 when it is not registered.
	CurrentIndex(section string) int
}

// FrameSource streams render frames for the SSE endpoint.
type FrameSource interface {
	Subscribe(section string) (<-chan domain.Frame, func())
	Last(section string) (domain.Frame, bool)
}
