package anim

import (
	"context"
	"time"
)

const DefaultFPS = 60

// Driver ticks a Scheduler with wall-clock time while it is animating.
// Ticks are posted through post, which must run the function on the goroutine owning the scheduler.
type Driver struct {
	scheduler *Scheduler
	post      func(func())
	interval  time.Duration
	now       func() time.Time
	wake      chan struct{}
}

func NewDriver(scheduler *Scheduler, fps int, post func(func())) *Driver {
	if fps <= 0 {
		fps = DefaultFPS
	}
	d := &Driver{
		scheduler: scheduler,
		post:      post,
		interval:  time.Second / time.Duration(fps),
		now:       time.Now,
		wake:      make(chan struct{}, 1),
	}
	scheduler.SetWakeFunc(d.Wake)
	return d
}

func (d *Driver) Interval() time.Duration {
	return d.interval
}

// Wake makes Run start ticking. It never blocks.
func (d *Driver) Wake() {
	select {
	case d.wake <- struct{}{}:
	default:
	}
}

// Run blocks until ctx is done.
func (d *Driver) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-d.wake:
		}
		d.animate(ctx)
	}
}

func (d *Driver) animate(ctx context.Context) {
	ticker := time.NewTicker(d.interval)
	defer ticker.Stop()

	busy := make(chan bool, 1)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
		d.post(func() {
			busy <- d.scheduler.Tick(d.now())
		})
		select {
		case <-ctx.Done():
			return
		case animating := <-busy:
			if !animating {
				return
			}
		}
	}
}
