package domain

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
)

// ErrInvalidIndex is returned by GoTo and Select when the index is outside [0, N).
var ErrInvalidIndex = errors.New("invalid index")

const (
	// DefaultInterval is the auto-advance period used when Options.Interval is unset.
	DefaultInterval = 5 * time.Second
	// DefaultCooldown is how long auto-advance stays paused after a manual interaction.
	DefaultCooldown = 10 * time.Second
	// DefaultDragFactor scales the pointer delta into the visual drag offset.
	DefaultDragFactor = 2.0
)

// RenderSink receives the item sequence and the current index after every index change.
// Render is called with the rotation's lock held: it must not call back into the rotation.
type RenderSink[T any] interface {
	Render(items []T, index int)
}

// SinkFunc adapts a plain function to RenderSink.
type SinkFunc[T any] func(items []T, index int)

// Render implements RenderSink.
func (f SinkFunc[T]) Render(items []T, index int) {
	f(items, index)
}

// Options configures a Rotation.
type Options struct {
	// Interval is the auto-advance period. Zero uses DefaultInterval; a negative value
	// disables auto-advance so the rotation only moves on explicit commands.
	Interval time.Duration
	// Cooldown is the quiet period after a manual interaction. Zero uses DefaultCooldown.
	Cooldown time.Duration
	// StartDelay postpones the first tick after Initialize. Zero means one Interval.
	StartDelay time.Duration
	// DragFactor multiplies the pointer delta during a drag. Zero uses DefaultDragFactor.
	DragFactor float64
	// Clock drives every timer. Nil uses the real clock.
	Clock clockwork.Clock
}

func (o Options) withDefaults() Options {
	if o.Interval == 0 {
		o.Interval = DefaultInterval
	}
	if o.Cooldown <= 0 {
		o.Cooldown = DefaultCooldown
	}
	if o.StartDelay <= 0 {
		o.StartDelay = o.Interval
	}
	if o.DragFactor == 0 {
		o.DragFactor = DefaultDragFactor
	}
	if o.Clock == nil {
		o.Clock = clockwork.NewRealClock()
	}
	return o
}

func (o Options) autoAdvance() bool {
	return o.Interval > 0
}

type dragState struct {
	active bool
	startX float64
	base   float64
	offset float64
}

// Rotation is the state of one carousel-like section: an immutable item sequence, the
// current index, and the auto-advance timer that cycles through it.
//
// All methods are safe for concurrent use. Transitions are serialized by an internal mutex,
// which gives the same total ordering a single UI event loop would.
type Rotation[T any] struct {
	mu   sync.Mutex
	opts Options
	sink RenderSink[T]

	items     []T
	index     int
	direction int
	state     State

	// held is set by Pause and cleared by Resume; cooling is set between a manual
	// interaction and the end of its cooldown.
	held    bool
	cooling bool
	drag    dragState

	lastInteraction time.Time

	tick      clockwork.Timer
	tickGen   uint64
	resume    clockwork.Timer
	resumeGen uint64
}

// New creates an Idle rotation with no items. sink may be nil.
func New[T any](opts Options, sink RenderSink[T]) *Rotation[T] {
	return &Rotation[T]{
		opts:      opts.withDefaults(),
		sink:      sink,
		direction: 1,
		state:     StateIdle,
	}
}

// Initialize installs a new item sequence and restarts the rotation at index 0.
// An empty sequence leaves the rotation Idle with no timer and no render.
func (r *Rotation[T]) Initialize(items []T) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.state == StateStopped {
		return
	}

	r.stopTimers()
	r.items = append([]T(nil), items...)
	r.index = 0
	r.direction = 1
	r.held = false
	r.cooling = false
	r.drag = dragState{}

	if len(r.items) == 0 {
		r.state = StateIdle
		return
	}

	if r.opts.autoAdvance() {
		r.state = StateRunning
		r.scheduleTick(r.opts.StartDelay)
	} else {
		r.state = StateIdle
	}

	r.render()
}

// Advance moves the index by direction with circular wraparound. It is the transition the
// auto-advance timer uses and is a no-op while the rotation is paused, stopped or empty.
func (r *Rotation[T]) Advance(direction int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.navigable() || r.state == StatePaused {
		return
	}
	r.step(direction)
	r.render()
}

// GoTo jumps directly to index. Out-of-range indices fail with ErrInvalidIndex and leave
// the state unchanged. GoTo works in every live state, including Paused.
func (r *Rotation[T]) GoTo(index int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.goTo(index)
}

// Next is the "next" control: it moves forward and starts a cooldown.
func (r *Rotation[T]) Next() {
	r.interact(1)
}

// Previous is the "previous" control: it moves backward and starts a cooldown.
func (r *Rotation[T]) Previous() {
	r.interact(-1)
}

// Select is an indicator dot click: GoTo followed by a cooldown when the index is valid.
func (r *Rotation[T]) Select(index int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.goTo(index); err != nil {
		return err
	}
	r.beginCooldown()
	return nil
}

// Pause suspends auto-advance until Resume is called.
func (r *Rotation[T]) Pause() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.state != StateRunning && r.state != StatePaused {
		return
	}
	r.held = true
	r.stopTick()
	r.state = StatePaused
}

// Resume lifts a Pause. If a manual interaction happened less than one cooldown ago the
// rotation stays Paused until that cooldown expires.
func (r *Rotation[T]) Resume() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.state != StatePaused {
		return
	}
	r.held = false
	r.maybeRun()
}

// DragStart begins a pointer drag capture at horizontal position x.
// Auto-advance is suspended for the duration of the drag.
func (r *Rotation[T]) DragStart(x float64) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.navigable() {
		return
	}
	r.drag.active = true
	r.drag.startX = x
	r.drag.base = r.drag.offset
	r.lastInteraction = r.opts.Clock.Now()

	if r.opts.autoAdvance() {
		r.stopTimers()
		r.cooling = false
		r.state = StatePaused
	}
}

// DragMove updates the visual translation for pointer position x and returns it.
// It never changes the index. ok is false when no drag is in progress.
func (r *Rotation[T]) DragMove(x float64) (offset float64, ok bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.drag.active {
		return r.drag.offset, false
	}
	r.drag.offset = r.drag.base + (x-r.drag.startX)*r.opts.DragFactor
	return r.drag.offset, true
}

// DragEnd releases the capture (pointer up or leave). The index is left where it was;
// auto-advance resumes after the cooldown.
func (r *Rotation[T]) DragEnd() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.drag.active {
		return
	}
	r.drag.active = false
	r.beginCooldown()
}

// Teardown cancels every timer and releases the items. The rotation is inert afterwards.
func (r *Rotation[T]) Teardown() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.stopTimers()
	r.items = nil
	r.index = 0
	r.drag = dragState{}
	r.held = false
	r.cooling = false
	r.state = StateStopped
}

// Snapshot returns a copy of the observable state.
func (r *Rotation[T]) Snapshot() Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()

	return Snapshot{
		State:     r.state,
		Index:     r.index,
		Total:     len(r.items),
		Direction: r.direction,
		Paused:    r.state == StatePaused,
		Cooling:   r.cooling,
		Dragging:  r.drag.active,
		Offset:    r.drag.offset,

		LastInteraction: r.lastInteraction,
	}
}

// Index returns the current index.
func (r *Rotation[T]) Index() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.index
}

// Current returns the item at the current index.
func (r *Rotation[T]) Current() (T, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var zero T
	if len(r.items) == 0 {
		return zero, false
	}
	return r.items[r.index], true
}

// Items returns a copy of the installed sequence.
func (r *Rotation[T]) Items() []T {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]T(nil), r.items...)
}

// The helpers below expect r.mu to be held.

func (r *Rotation[T]) navigable() bool {
	return r.state != StateStopped && len(r.items) > 0
}

func (r *Rotation[T]) step(direction int) {
	n := len(r.items)
	r.index = ((r.index+direction)%n + n) % n
	if direction < 0 {
		r.direction = -1
	} else if direction > 0 {
		r.direction = 1
	}
}

func (r *Rotation[T]) goTo(index int) error {
	n := len(r.items)
	if r.state == StateStopped || index < 0 || index >= n {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrInvalidIndex, index, n)
	}
	if index < r.index {
		r.direction = -1
	} else if index > r.index {
		r.direction = 1
	}
	r.index = index
	r.render()
	return nil
}

func (r *Rotation[T]) interact(direction int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.navigable() {
		return
	}
	r.step(direction)
	r.render()
	r.beginCooldown()
}

// beginCooldown pauses auto-advance and schedules its return one cooldown from now.
// Repeated interactions push the deadline back.
func (r *Rotation[T]) beginCooldown() {
	r.lastInteraction = r.opts.Clock.Now()
	if !r.opts.autoAdvance() || !r.navigable() {
		return
	}

	r.stopTimers()
	r.cooling = true
	r.state = StatePaused

	r.resumeGen++
	gen := r.resumeGen
	r.resume = r.opts.Clock.AfterFunc(r.opts.Cooldown, func() {
		r.mu.Lock()
		defer r.mu.Unlock()

		if gen != r.resumeGen {
			return
		}
		r.resume = nil
		r.cooling = false
		r.maybeRun()
	})
}

// maybeRun moves to Running when nothing holds the rotation back.
func (r *Rotation[T]) maybeRun() {
	if !r.navigable() || !r.opts.autoAdvance() {
		return
	}
	if r.held || r.cooling || r.drag.active {
		r.state = StatePaused
		return
	}
	r.state = StateRunning
	r.scheduleTick(r.opts.Interval)
}

func (r *Rotation[T]) scheduleTick(d time.Duration) {
	r.stopTick()

	r.tickGen++
	gen := r.tickGen
	r.tick = r.opts.Clock.AfterFunc(d, func() {
		r.mu.Lock()
		defer r.mu.Unlock()

		// A stale callback may have fired after Pause, Teardown or a reschedule.
		if gen != r.tickGen || r.state != StateRunning || len(r.items) == 0 {
			return
		}
		r.step(1)
		r.render()
		r.scheduleTick(r.opts.Interval)
	})
}

func (r *Rotation[T]) stopTick() {
	r.tickGen++
	if r.tick != nil {
		r.tick.Stop()
		r.tick = nil
	}
}

func (r *Rotation[T]) stopTimers() {
	r.stopTick()
	r.resumeGen++
	if r.resume != nil {
		r.resume.Stop()
		r.resume = nil
	}
}

func (r *Rotation[T]) render() {
	if r.sink != nil {
		r.sink.Render(r.items, r.index)
	}
}
