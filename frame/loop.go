package frame

import (
	"context"
	"errors"
	"fmt"
)

// Loop calls a step function once per frame delivered by its Source until the source
// closes or the context is cancelled. Steps always run to completion; cancellation is
// only observed between frames.
type Loop struct {
	src    Source
	step   func()
	frames int
}

func NewLoop(src Source, step func()) *Loop {
	return &Loop{src: src, step: step}
}

// Run blocks until the loop stops. A closed source is a normal stop and returns nil;
// cancellation returns the context's error.
func (l *Loop) Run(ctx context.Context) error {
	for {
		if err := l.src.Next(ctx); err != nil {
			if errors.Is(err, ErrClosed) {
				return nil
			}
			return fmt.Errorf("frame %d: %w", l.frames, err)
		}
		l.step()
		l.frames++
	}
}

// Frames returns how many steps have completed.
func (l *Loop) Frames() int {
	return l.frames
}
