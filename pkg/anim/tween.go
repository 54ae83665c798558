package anim

import "time"

type tweenState int

const (
	tweenPending tweenState = iota
	tweenRunning
	tweenDone
)

// Tween moves a single float property from its value at start time to a target.
// Both the start value and the target are read when the tween actually starts,
// after its delay.
type Tween struct {
	tag      string
	get      func() float64
	set      func(float64)
	target   func() float64
	duration time.Duration
	delay    time.Duration
	ease     EasingFunc
	onEnd    func()

	durationSet bool
	delaySet    bool

	state     tweenState
	resolved  bool
	cancelled bool
	startAt   time.Time
	from      float64
	to        float64
}

type TweenOption func(t *Tween)

func WithTag(tag string) TweenOption {
	return func(t *Tween) {
		t.tag = tag
	}
}

func WithDuration(d time.Duration) TweenOption {
	return func(t *Tween) {
		t.duration = d
		t.durationSet = true
	}
}

func WithDelay(d time.Duration) TweenOption {
	return func(t *Tween) {
		t.delay = d
		t.delaySet = true
	}
}

func WithEasing(f EasingFunc) TweenOption {
	return func(t *Tween) {
		t.ease = f
	}
}

// OnEnd is called once when the tween reaches its target or is finished early.
// It is not called for cancelled tweens.
func OnEnd(f func()) TweenOption {
	return func(t *Tween) {
		t.onEnd = f
	}
}

// Const returns a target that is always v.
func Const(v float64) func() float64 {
	return func() float64 { return v }
}

func NewTween(get func() float64, set func(float64), target func() float64, options ...TweenOption) *Tween {
	t := &Tween{get: get, set: set, target: target}
	for _, option := range options {
		option(t)
	}
	return t
}

func (t *Tween) Tag() string {
	return t.tag
}

func (t *Tween) Duration() time.Duration {
	return t.duration
}

func (t *Tween) Done() bool {
	return t.state == tweenDone
}

func (t *Tween) Cancelled() bool {
	return t.cancelled
}

// Running reports whether the tween started and has not finished yet.
func (t *Tween) Running() bool {
	return t.state == tweenRunning && t.resolved
}

// Finish jumps to the target and fires OnEnd.
func (t *Tween) Finish() {
	if t.state == tweenDone {
		return
	}
	t.set(t.resolveTarget())
	t.end()
}

// Cancel stops the tween where it is. OnEnd is not called.
func (t *Tween) Cancel() {
	if t.state == tweenDone {
		return
	}
	t.state = tweenDone
	t.cancelled = true
}

func (t *Tween) resolveTarget() float64 {
	if t.resolved {
		return t.to
	}
	return t.target()
}

func (t *Tween) start(now time.Time) {
	if t.state != tweenPending {
		return
	}
	t.state = tweenRunning
	t.startAt = now.Add(t.delay)
}

func (t *Tween) end() {
	t.state = tweenDone
	if t.onEnd != nil {
		t.onEnd()
	}
}

// step advances the tween to now and reports whether it is done.
func (t *Tween) step(now time.Time) bool {
	switch t.state {
	case tweenDone:
		return true
	case tweenPending:
		return false
	}
	if now.Before(t.startAt) {
		return false
	}
	if !t.resolved {
		t.from = t.get()
		t.to = t.target()
		t.resolved = true
	}
	elapsed := now.Sub(t.startAt)
	if t.duration <= 0 || elapsed >= t.duration {
		t.set(t.to)
		t.end()
		return true
	}
	ease := t.ease
	if ease == nil {
		ease = Linear
	}
	p := ease(clamp01(float64(elapsed) / float64(t.duration)))
	t.set(t.from + (t.to-t.from)*p)
	return false
}
