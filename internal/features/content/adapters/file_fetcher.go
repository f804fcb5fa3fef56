package adapters

import (
	"context"
	"fmt"

	"github.com/spf13/afero"
)

// FileFetcher reads content documents from a directory.
type FileFetcher struct {
	fs afero.Fs
}

// NewFileFetcher serves documents from dir on the OS filesystem. Paths cannot escape dir.
func NewFileFetcher(dir string) *FileFetcher {
	return NewFileFetcherFs(afero.NewBasePathFs(afero.NewOsFs(), dir))
}

// NewFileFetcherFs serves documents from fs, typically an afero.NewMemMapFs in tests.
func NewFileFetcherFs(fs afero.Fs) *FileFetcher {
	return &FileFetcher{fs: fs}
}

// Fetch implements ports.Fetcher.
func (f *FileFetcher) Fetch(ctx context.Context, path string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := afero.ReadFile(f.fs, path)
	if err != nil {
		return nil, fmt.Errorf("file fetcher: failed to read %s: %w", path, err)
	}
	return data, nil
}
