// Package poller runs a function on start and then at a fixed interval until stopped.
package poller

import (
	"context"
	"errors"
	"sync"
	"time"
)

var (
	ErrAlreadyStarted  = errors.New("poller already started")
	ErrInvalidInterval = errors.New("poll interval must be positive")
)

type TickFunc func(ctx context.Context)

type Poller struct {
	interval time.Duration
	tick     TickFunc

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

func New(interval time.Duration, tick TickFunc) (*Poller, error) {
	if interval <= 0 {
		return nil, ErrInvalidInterval
	}
	return &Poller{interval: interval, tick: tick}, nil
}

// Start fires one tick immediately and then one per interval. Ticks run one at
// a time in the loop goroutine; a slow tick delays the next one instead of
// overlapping it.
//
// Cancelling ctx or calling Stop ends the loop. The tick itself gets a context
// that is not cancelled with the loop, so an in-flight fetch runs to completion.
func (p *Poller) Start(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.done != nil {
		return ErrAlreadyStarted
	}

	loopCtx, cancel := context.WithCancel(ctx)
	p.cancel = cancel
	p.done = make(chan struct{})

	go p.run(loopCtx, p.done)
	return nil
}

// Stop cancels the timer and waits for the loop to exit. No tick starts after
// Stop returns. Stop on a poller that was never started is a no-op.
func (p *Poller) Stop() {
	p.mu.Lock()
	cancel, done := p.cancel, p.done
	p.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
}

// Done is closed when the loop has exited. It is nil before Start.
func (p *Poller) Done() <-chan struct{} {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.done
}

func (p *Poller) run(ctx context.Context, done chan struct{}) {
	defer close(done)

	tickCtx := context.WithoutCancel(ctx)
	if ctx.Err() != nil {
		return
	}
	p.tick(tickCtx)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			// select picks randomly when both are ready
			if ctx.Err() != nil {
				return
			}
			p.tick(tickCtx)
		}
	}
}
