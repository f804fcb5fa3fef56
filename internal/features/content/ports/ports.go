package ports

import (
	"context"
	"encoding/json"

	"portfolio-site/internal/features/content/domain"
)

// Fetcher is the secondary port that reads a raw content document.
type Fetcher interface {
	// Fetch returns the bytes stored at path, relative to the content root.
	Fetch(ctx context.Context, path string) ([]byte, error)
}

// Loader is a get-or-fetch memo over a Fetcher.
type Loader interface {
	// Raw returns the document at path, fetching it on first use.
	Raw(ctx context.Context, path string) ([]byte, error)
	// Load decodes the document at path into v.
	Load(ctx context.Context, path string, v any) error
}

// RotationLookup reports the current index of a carousel section.
type RotationLookup interface {
	CurrentIndex(section string) int
}

// SiteService defines the primary port used by the page handlers.
type SiteService interface {
	Page(ctx context.Context) (*domain.Page, error)
	Projects(ctx context.Context, category string) ([]domain.Project, []domain.Category, error)
	Section(ctx context.Context, name string) (json.RawMessage, error)
}
