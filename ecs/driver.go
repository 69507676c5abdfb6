package ecs

import (
	"context"
	"time"
)

// TickObserver is called after every tick with its sequence number, starting
// at 1, and how long the tick took.
type TickObserver func(tick uint64, d time.Duration)

type driverOptions struct {
	queueCapacity int
	observer      TickObserver
}

// DriverOption configures a Driver.
type DriverOption func(o *driverOptions)

// WithQueueCapacity sets the initial capacity of the message queue.
func WithQueueCapacity(n int) DriverOption {
	return func(o *driverOptions) {
		o.queueCapacity = n
	}
}

// WithTickObserver installs a callback invoked after every tick.
func WithTickObserver(fn TickObserver) DriverOption {
	return func(o *driverOptions) {
		o.observer = fn
	}
}

// Driver owns the storage, the message queue and the root system, and advances
// them one tick at a time.
type Driver[C, M, S any] struct {
	storage  *Storage
	root     System[C, M, S]
	queue    *Queue[M]
	observer TickObserver
	ticks    uint64
}

// NewDriver creates a driver for root over storage.
func NewDriver[C, M, S any](storage *Storage, root System[C, M, S], opts ...DriverOption) *Driver[C, M, S] {
	if storage == nil {
		panic("ecs: driver requires a storage")
	}
	if root == nil {
		panic("ecs: driver requires a root system")
	}

	o := &driverOptions{queueCapacity: 64}
	for _, opt := range opts {
		opt(o)
	}

	return &Driver[C, M, S]{
		storage:  storage,
		root:     root,
		queue:    NewQueue[M](o.queueCapacity),
		observer: o.observer,
	}
}

// Advance runs one tick with the given context and returns the first signal
// raised during it.
func (d *Driver[C, M, S]) Advance(ctx C) (S, bool) {
	start := time.Now()
	value, ok := d.root.Run(d.storage, d.queue, ctx)
	d.ticks++
	if d.observer != nil {
		d.observer(d.ticks, time.Since(start))
	}
	return value, ok
}

// Run advances at the given interval until a tick signals or ctx is done. next
// builds each tick's context from the time elapsed since the previous tick.
// The error is ctx.Err() when the loop stopped because of ctx. A non-positive
// interval runs ticks back to back.
func (d *Driver[C, M, S]) Run(ctx context.Context, interval time.Duration, next func(dt time.Duration) C) (S, bool, error) {
	var zero S

	if interval <= 0 {
		return d.runUnpaced(ctx, next)
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	lastTime := time.Now()

	for {
		select {
		case <-ctx.Done():
			return zero, false, ctx.Err()
		case now := <-ticker.C:
			dt := now.Sub(lastTime)
			lastTime = now
			if value, ok := d.Advance(next(dt)); ok {
				return value, true, nil
			}
		}
	}
}

func (d *Driver[C, M, S]) runUnpaced(ctx context.Context, next func(dt time.Duration) C) (S, bool, error) {
	var zero S
	lastTime := time.Now()

	for {
		if err := ctx.Err(); err != nil {
			return zero, false, err
		}
		now := time.Now()
		dt := now.Sub(lastTime)
		lastTime = now
		if value, ok := d.Advance(next(dt)); ok {
			return value, true, nil
		}
	}
}

// Storage returns the driven storage.
func (d *Driver[C, M, S]) Storage() *Storage {
	return d.storage
}

// Queue returns the shared message queue.
func (d *Driver[C, M, S]) Queue() *Queue[M] {
	return d.queue
}

// Root returns the root system.
func (d *Driver[C, M, S]) Root() System[C, M, S] {
	return d.root
}

// Ticks returns the number of completed ticks.
func (d *Driver[C, M, S]) Ticks() uint64 {
	return d.ticks
}
