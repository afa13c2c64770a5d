// Package alert implements the completion banner: visible for a fixed window
// after the most recent Show, with at most one pending hide.
package alert

import (
	"sync"
	"time"
)

const DefaultWindow = 5 * time.Second

// Timer is the cancellable handle returned by a Scheduler.
type Timer interface {
	Stop() bool
}

// Scheduler runs f once after d. time.AfterFunc satisfies it through AfterFunc.
type Scheduler func(d time.Duration, f func()) Timer

// AfterFunc schedules on the wall clock.
func AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

type Banner struct {
	mu       sync.Mutex
	window   time.Duration
	schedule Scheduler
	onChange func(visible bool)

	visible bool
	pending Timer
	gen     uint64
}

type Option func(*Banner)

func WithWindow(d time.Duration) Option {
	return func(b *Banner) {
		b.window = d
	}
}

func WithScheduler(s Scheduler) Option {
	return func(b *Banner) {
		b.schedule = s
	}
}

// WithOnChange registers a callback run after every visibility change.
// It is called without the banner lock held.
func WithOnChange(f func(visible bool)) Option {
	return func(b *Banner) {
		b.onChange = f
	}
}

func New(opts ...Option) *Banner {
	b := &Banner{
		window:   DefaultWindow,
		schedule: AfterFunc,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Show makes the banner visible and restarts the hide countdown.
// A previously pending hide is cancelled first.
func (b *Banner) Show() {
	b.mu.Lock()
	if b.pending != nil {
		b.pending.Stop()
	}
	b.gen++
	gen := b.gen
	wasVisible := b.visible
	b.visible = true
	b.pending = b.schedule(b.window, func() { b.hide(gen) })
	b.mu.Unlock()

	if !wasVisible {
		b.notify(true)
	}
}

// hide fires for generation gen; a newer Show makes it a no-op even if the
// timer raced its Stop.
func (b *Banner) hide(gen uint64) {
	b.mu.Lock()
	if gen != b.gen || !b.visible {
		b.mu.Unlock()
		return
	}
	b.visible = false
	b.pending = nil
	b.mu.Unlock()

	b.notify(false)
}

// Stop cancels any pending hide and hides the banner immediately.
func (b *Banner) Stop() {
	b.mu.Lock()
	if b.pending != nil {
		b.pending.Stop()
		b.pending = nil
	}
	b.gen++
	wasVisible := b.visible
	b.visible = false
	b.mu.Unlock()

	if wasVisible {
		b.notify(false)
	}
}

func (b *Banner) Visible() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.visible
}

func (b *Banner) notify(visible bool) {
	if b.onChange != nil {
		b.onChange(visible)
	}
}
