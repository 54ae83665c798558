package anim

import "time"

// Group plays its tweens together. Duration, delay and easing set on the group
// apply to every tween that does not set its own.
type Group struct {
	name     string
	tweens   []*Tween
	duration time.Duration
	delay    time.Duration
	ease     EasingFunc
	onEnd    []func()
	started  bool
	done     bool
}

type GroupOption func(g *Group)

func GroupDuration(d time.Duration) GroupOption {
	return func(g *Group) {
		g.duration = d
	}
}

func GroupDelay(d time.Duration) GroupOption {
	return func(g *Group) {
		g.delay = d
	}
}

func GroupEasing(f EasingFunc) GroupOption {
	return func(g *Group) {
		g.ease = f
	}
}

func GroupName(name string) GroupOption {
	return func(g *Group) {
		g.name = name
	}
}

func NewGroup(options ...GroupOption) *Group {
	g := &Group{}
	for _, option := range options {
		option(g)
	}
	return g
}

func (g *Group) Name() string {
	return g.name
}

// Add appends tweens to the group. Adding to a started group is allowed,
// the tweens start right away.
func (g *Group) Add(tweens ...*Tween) *Group {
	for _, t := range tweens {
		if t == nil {
			continue
		}
		if !t.durationSet {
			t.duration = g.duration
		}
		if !t.delaySet {
			t.delay = g.delay
		}
		if t.ease == nil {
			t.ease = g.ease
		}
		g.tweens = append(g.tweens, t)
	}
	return g
}

func (g *Group) Tweens() []*Tween {
	return g.tweens
}

// Tagged returns the tweens of the group that carry the given tag.
func (g *Group) Tagged(tag string) []*Tween {
	var result []*Tween
	for _, t := range g.tweens {
		if t.tag == tag {
			result = append(result, t)
		}
	}
	return result
}

// OnEnd registers f to be called once every tween of the group is done.
func (g *Group) OnEnd(f func()) *Group {
	g.onEnd = append(g.onEnd, f)
	return g
}

func (g *Group) Started() bool {
	return g.started
}

func (g *Group) Done() bool {
	return g.done
}

func (g *Group) start(now time.Time) {
	g.started = true
	for _, t := range g.tweens {
		t.start(now)
	}
}

func (g *Group) step(now time.Time) bool {
	if g.done {
		return true
	}
	allDone := true
	// OnEnd callbacks may add tweens, so the length is re-read on every iteration.
	for i := 0; i < len(g.tweens); i++ {
		t := g.tweens[i]
		t.start(now)
		if !t.step(now) {
			allDone = false
		}
	}
	if !allDone {
		return false
	}
	g.done = true
	for _, f := range g.onEnd {
		f()
	}
	return true
}
