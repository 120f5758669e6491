package orchid

import (
	"context"
	"time"
)

// Loop drives a session at a fixed tick rate, rendering after every tick.
type Loop struct {
	Session  *Session
	Input    InputSource
	Renderer Renderer

	TickRate time.Duration

	// Now is the clock of the loop, time.Now when nil.
	Now func() time.Time
}

func (l *Loop) now() time.Time {
	if l.Now != nil {
		return l.Now()
	}
	return time.Now()
}

// Run ticks until ctx is done.
func (l *Loop) Run(ctx context.Context) error {
	rate := l.TickRate
	if rate <= 0 {
		rate = DefaultTickRate
	}

	ticker := time.NewTicker(rate)
	defer ticker.Stop()

	last := l.now()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			now := l.now()
			l.Step(min(now.Sub(last), MaxTickDelta))
			last = now
		}
	}
}

// Step runs a single tick of dt and renders its result.
func (l *Loop) Step(dt time.Duration) {
	w, h := l.Renderer.Bounds()

	l.Session.Tick(float32(dt.Seconds()), l.Input.Input(), w, h)

	l.Renderer.Render(l.Session.Snapshot())
}
