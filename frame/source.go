package frame

import (
	"context"
	"errors"
	"sync"
	"time"
)

// ErrClosed is returned by a Source that will deliver no more frames.
var ErrClosed = errors.New("frame source closed")

// Source delivers display frames. Next blocks until the next frame is due.
type Source interface {
	Next(ctx context.Context) error
}

// Ticker is a wall-clock Source firing at a fixed rate.
type Ticker struct {
	t *time.Ticker
}

// NewTicker returns a Ticker firing tps times per second.
func NewTicker(tps int) *Ticker {
	if tps <= 0 {
		tps = 60
	}
	return &Ticker{t: time.NewTicker(time.Second / time.Duration(tps))}
}

func (t *Ticker) Next(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.t.C:
		return nil
	}
}

// Stop releases the underlying timer.
func (t *Ticker) Stop() {
	t.t.Stop()
}

// Count is a Source that delivers n frames back to back and then closes.
type Count struct {
	left int
}

func NewCount(n int) *Count {
	return &Count{left: n}
}

func (c *Count) Next(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if c.left <= 0 {
		return ErrClosed
	}
	c.left--
	return nil
}

// Manual is a Source advanced by hand, one Tick per frame.
type Manual struct {
	ticks chan struct{}
	once  sync.Once
	done  chan struct{}
}

func NewManual() *Manual {
	return &Manual{
		ticks: make(chan struct{}),
		done:  make(chan struct{}),
	}
}

// Tick delivers one frame, blocking until the loop takes it. It returns false once
// the source is closed.
func (m *Manual) Tick() bool {
	select {
	case m.ticks <- struct{}{}:
		return true
	case <-m.done:
		return false
	}
}

// Close ends the source; a loop waiting on it returns.
func (m *Manual) Close() {
	m.once.Do(func() { close(m.done) })
}

func (m *Manual) Next(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-m.done:
		return ErrClosed
	case <-m.ticks:
		return nil
	}
}
