package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"portfolio-site/internal/core/cache"
	"portfolio-site/internal/core/logger"
	"portfolio-site/internal/features/content/ports"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// cacheKeyPrefix namespaces content documents in the shared cache.
const cacheKeyPrefix = "content:"

// Loader implements ports.Loader: a get-or-fetch memo keyed by document path.
// A document is fetched at most once while it stays cached; concurrent first requests for
// the same path share a single fetch. Failed fetches and invalid JSON are never cached.
type Loader struct {
	fetcher ports.Fetcher
	cache   cache.Cache
	group   singleflight.Group
}

// NewLoader creates a Loader backed by fetcher and memoizing into c.
func NewLoader(fetcher ports.Fetcher, c cache.Cache) *Loader {
	return &Loader{
		fetcher: fetcher,
		cache:   c,
	}
}

// Raw returns the cached document at path, fetching it on first use.
func (l *Loader) Raw(ctx context.Context, path string) ([]byte, error) {
	log := logger.Named("content")
	key := cacheKeyPrefix + path

	data, err := l.cache.Get(ctx, key)
	if err == nil {
		log.Debug("Returning cached content", zap.String("path", path))
		return data, nil
	}
	if !errors.Is(err, cache.ErrNotFound) {
		// A broken cache degrades to fetching every time.
		log.Warn("Content cache lookup failed", zap.String("path", path), zap.Error(err))
	}

	v, err, shared := l.group.Do(path, func() (interface{}, error) {
		log.Info("Fetching content", zap.String("path", path))

		data, err := l.fetcher.Fetch(ctx, path)
		if err != nil {
			return nil, err
		}
		if !json.Valid(data) {
			return nil, fmt.Errorf("loader: %s is not valid JSON", path)
		}

		if err := l.cache.Set(ctx, key, data, 0); err != nil {
			log.Warn("Failed to cache content", zap.String("path", path), zap.Error(err))
		}
		return data, nil
	})
	if err != nil {
		log.Error("Failed to load content", zap.String("path", path), zap.Error(err))
		return nil, fmt.Errorf("loader: failed to load %s: %w", path, err)
	}

	if shared {
		log.Debug("Shared in-flight content fetch", zap.String("path", path))
	}
	return v.([]byte), nil
}

// Load decodes the document at path into v.
func (l *Loader) Load(ctx context.Context, path string, v any) error {
	data, err := l.Raw(ctx, path)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("loader: failed to decode %s: %w", path, err)
	}
	return nil
}

// Invalidate drops the cached copy of path so the next load fetches it again.
func (l *Loader) Invalidate(ctx context.Context, path string) error {
	return l.cache.Delete(ctx, cacheKeyPrefix+path)
}
