package anim

import "time"

type State int

const (
	Idle State = iota
	Animating
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Animating:
		return "animating"
	default:
		return "unknown"
	}
}

// Scheduler runs queued groups strictly one after another.
// It is not safe for concurrent use: Enqueue and Tick must be called from the same goroutine.
type Scheduler struct {
	now       func() time.Time
	wake      func()
	current   *Group
	queue     []*Group
	advancing bool
}

type SchedulerOption func(s *Scheduler)

// WithClock replaces time.Now for the scheduler.
func WithClock(now func() time.Time) SchedulerOption {
	return func(s *Scheduler) {
		s.now = now
	}
}

func NewScheduler(options ...SchedulerOption) *Scheduler {
	s := &Scheduler{now: time.Now}
	for _, option := range options {
		option(s)
	}
	return s
}

// SetWakeFunc registers f to be called every time the scheduler gets work while idle.
func (s *Scheduler) SetWakeFunc(f func()) {
	s.wake = f
}

func (s *Scheduler) State() State {
	if s.current != nil {
		return Animating
	}
	return Idle
}

// Current returns the group being played, or nil.
func (s *Scheduler) Current() *Group {
	return s.current
}

// Queued returns the groups waiting for the current one to finish.
func (s *Scheduler) Queued() []*Group {
	return s.queue
}

// Enqueue adds g to the queue. If the scheduler is idle g starts right away,
// and a group with nothing to wait for completes before Enqueue returns.
func (s *Scheduler) Enqueue(g *Group) {
	if g == nil {
		return
	}
	wasIdle := s.State() == Idle
	s.queue = append(s.queue, g)
	if s.advancing {
		return
	}
	s.advance(s.now())
	if wasIdle && s.State() == Animating && s.wake != nil {
		s.wake()
	}
}

// Tick advances the scheduler to now and reports whether it is still animating.
func (s *Scheduler) Tick(now time.Time) bool {
	if s.advancing {
		return s.State() == Animating
	}
	s.advance(now)
	return s.State() == Animating
}

// Flush finishes every running and queued tween immediately.
func (s *Scheduler) Flush() {
	for s.current != nil || len(s.queue) > 0 {
		if s.current == nil {
			s.advance(s.now())
			continue
		}
		for _, t := range s.current.tweens {
			t.Finish()
		}
		s.advance(s.now())
	}
}

func (s *Scheduler) advance(now time.Time) {
	s.advancing = true
	defer func() {
		s.advancing = false
	}()
	for {
		if s.current == nil {
			if len(s.queue) == 0 {
				return
			}
			s.current = s.queue[0]
			s.queue = s.queue[1:]
			s.current.start(now)
		}
		if !s.current.step(now) {
			return
		}
		s.current = nil
	}
}
