package service

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"portfolio-site/internal/core/cache"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingFetcher struct {
	mu      sync.Mutex
	docs    map[string][]byte
	fail    map[string]error
	calls   map[string]int
	release chan struct{}
}

func newCountingFetcher(docs map[string]string) *countingFetcher {
	f := &countingFetcher{
		docs:  make(map[string][]byte),
		fail:  make(map[string]error),
		calls: make(map[string]int),
	}
	for path, body := range docs {
		f.docs[path] = []byte(body)
	}
	return f
}

func (f *countingFetcher) Fetch(ctx context.Context, path string) ([]byte, error) {
	f.mu.Lock()
	f.calls[path]++
	release := f.release
	data, ok := f.docs[path]
	err := f.fail[path]
	f.mu.Unlock()

	if release != nil {
		<-release
	}
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, errors.New("not found")
	}
	return data, nil
}

func (f *countingFetcher) count(path string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[path]
}

func (f *countingFetcher) setFailure(path string, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.fail[path] = err
}

func TestLoader_MemoizesByPath(t *testing.T) {
	fetcher := newCountingFetcher(map[string]string{"hero.json": `{"title":"x"}`})
	loader := NewLoader(fetcher, cache.NewMemoryAdapter(clockwork.NewFakeClock()))
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		data, err := loader.Raw(ctx, "hero.json")
		require.NoError(t, err)
		assert.JSONEq(t, `{"title":"x"}`, string(data))
	}
	assert.Equal(t, 1, fetcher.count("hero.json"))

	var decoded struct {
		Title string `json:"title"`
	}
	require.NoError(t, loader.Load(ctx, "hero.json", &decoded))
	assert.Equal(t, "x", decoded.Title)
	assert.Equal(t, 1, fetcher.count("hero.json"))
}

func TestLoader_FailuresAreNotCached(t *testing.T) {
	fetcher := newCountingFetcher(map[string]string{"tools.json": `{"tools":[]}`})
	fetcher.setFailure("tools.json", errors.New("status 503"))
	loader := NewLoader(fetcher, cache.NewMemoryAdapter(clockwork.NewFakeClock()))
	ctx := context.Background()

	_, err := loader.Raw(ctx, "tools.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 503")

	fetcher.setFailure("tools.json", nil)
	data, err := loader.Raw(ctx, "tools.json")
	require.NoError(t, err)
	assert.JSONEq(t, `{"tools":[]}`, string(data))
	assert.Equal(t, 2, fetcher.count("tools.json"))
}

func TestLoader_InvalidJSONIsNotCached(t *testing.T) {
	fetcher := newCountingFetcher(map[string]string{"clients.json": `{"clients":[`})
	loader := NewLoader(fetcher, cache.NewMemoryAdapter(clockwork.NewFakeClock()))

	_, err := loader.Raw(context.Background(), "clients.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not valid JSON")

	_, err = loader.Raw(context.Background(), "clients.json")
	require.Error(t, err)
	assert.Equal(t, 2, fetcher.count("clients.json"))
}

func TestLoader_DecodeError(t *testing.T) {
	fetcher := newCountingFetcher(map[string]string{"hero.json": `[1,2]`})
	loader := NewLoader(fetcher, cache.NewMemoryAdapter(clockwork.NewFakeClock()))

	var decoded struct{ Title string }
	err := loader.Load(context.Background(), "hero.json", &decoded)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to decode hero.json")
}

func TestLoader_ConcurrentFirstLoadsShareOneFetch(t *testing.T) {
	fetcher := newCountingFetcher(map[string]string{"projects.json": `{"projects":[]}`})
	fetcher.release = make(chan struct{})
	loader := NewLoader(fetcher, cache.NewMemoryAdapter(clockwork.NewFakeClock()))

	var wg sync.WaitGroup
	var failures atomic.Int32
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := loader.Raw(context.Background(), "projects.json"); err != nil {
				failures.Add(1)
			}
		}()
	}

	// Let every goroutine reach the in-flight fetch before it completes.
	time.Sleep(50 * time.Millisecond)
	close(fetcher.release)
	wg.Wait()

	assert.Zero(t, failures.Load())
	assert.Equal(t, 1, fetcher.count("projects.json"))
}

func TestLoader_Invalidate(t *testing.T) {
	fetcher := newCountingFetcher(map[string]string{"hero.json": `{}`})
	loader := NewLoader(fetcher, cache.NewMemoryAdapter(clockwork.NewFakeClock()))
	ctx := context.Background()

	_, err := loader.Raw(ctx, "hero.json")
	require.NoError(t, err)
	require.NoError(t, loader.Invalidate(ctx, "hero.json"))
	_, err = loader.Raw(ctx, "hero.json")
	require.NoError(t, err)

	assert.Equal(t, 2, fetcher.count("hero.json"))
}
