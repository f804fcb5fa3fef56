package adapters

import (
	"sync"

	"portfolio-site/internal/features/carousel/domain"

	"github.com/jonboulle/clockwork"
)

// subscriberBuffer is the number of frames a slow subscriber may lag behind before
// older frames are dropped.
const subscriberBuffer = 8

// Broadcaster is a render sink hub. It remembers the last frame of every section and
// fans new frames out to subscribers. Publish never blocks on a subscriber.
type Broadcaster struct {
	mu     sync.Mutex
	last   map[string]domain.Frame
	subs   map[string]map[uint64]chan domain.Frame
	nextID uint64
	closed bool
}

// NewBroadcaster creates an empty Broadcaster.
func NewBroadcaster() *Broadcaster {
	return &Broadcaster{
		last: make(map[string]domain.Frame),
		subs: make(map[string]map[uint64]chan domain.Frame),
	}
}

// Publish records f as the latest frame of its section and delivers it to subscribers.
// A subscriber whose buffer is full loses its oldest pending frame.
func (b *Broadcaster) Publish(f domain.Frame) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return
	}
	b.last[f.Section] = f

	for _, ch := range b.subs[f.Section] {
		select {
		case ch <- f:
			continue
		default:
		}
		select {
		case <-ch:
		default:
		}
		select {
		case ch <- f:
		default:
		}
	}
}

// Last returns the most recent frame published for section.
func (b *Broadcaster) Last(section string) (domain.Frame, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	f, ok := b.last[section]
	return f, ok
}

// Subscribe returns a channel receiving every later frame of section and a function that
// cancels the subscription and closes the channel. The cancel function is idempotent.
func (b *Broadcaster) Subscribe(section string) (<-chan domain.Frame, func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	ch := make(chan domain.Frame, subscriberBuffer)
	if b.closed {
		close(ch)
		return ch, func() {}
	}

	b.nextID++
	id := b.nextID
	if b.subs[section] == nil {
		b.subs[section] = make(map[uint64]chan domain.Frame)
	}
	b.subs[section][id] = ch

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			b.mu.Lock()
			defer b.mu.Unlock()

			if sub, ok := b.subs[section][id]; ok {
				delete(b.subs[section], id)
				close(sub)
			}
		})
	}
}

// Subscribers returns the number of live subscriptions for section.
func (b *Broadcaster) Subscribers(section string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.subs[section])
}

// Close ends every subscription. Later publishes are dropped.
func (b *Broadcaster) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.closed = true
	for section, subs := range b.subs {
		for id, ch := range subs {
			close(ch)
			delete(subs, id)
		}
		delete(b.subs, section)
	}
}

// SinkFor returns a render sink that publishes frames for section, stamped by clock.
func SinkFor[T any](b *Broadcaster, section string, clock clockwork.Clock) domain.RenderSink[T] {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return domain.SinkFunc[T](func(items []T, index int) {
		b.Publish(domain.Frame{
			Section:    section,
			Index:      index,
			Total:      len(items),
			RenderedAt: clock.Now(),
		})
	})
}
