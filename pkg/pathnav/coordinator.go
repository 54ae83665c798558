package pathnav

import (
	"log/slog"
	"math"
	"slices"
	"time"

	"github.com/filetug/crumbtug/pkg/anim"
	"github.com/filetug/crumbtug/pkg/logutil"
)

// Tween tags used in the groups of a Coordinator.
const (
	TagEnter  = "enter"
	TagExit   = "exit"
	TagScroll = "scroll"
	TagReveal = "reveal"
)

const (
	DefaultAnimationDuration = 200 * time.Millisecond
	DefaultStartDelay        = time.Duration(0)
)

// Viewport is the scrollable surface the coordinator animates.
type Viewport interface {
	ViewportWidth() int
	ContentWidth() int
	ScrollOffset() float64
	SetScrollOffset(offset float64)
}

// Coordinator turns store changes into one animation group per change.
// Groups run one after another on its scheduler.
type Coordinator struct {
	store     *Store
	viewport  Viewport
	scheduler *anim.Scheduler
	logger    *slog.Logger

	duration   time.Duration
	startDelay time.Duration
	ease       anim.EasingFunc
	animated   bool

	groups []*anim.Group
}

type CoordinatorOption func(c *Coordinator)

// WithScheduler shares a scheduler between coordinators.
func WithScheduler(s *anim.Scheduler) CoordinatorOption {
	return func(c *Coordinator) {
		c.scheduler = s
	}
}

func WithDuration(d time.Duration) CoordinatorOption {
	return func(c *Coordinator) {
		c.duration = d
	}
}

func WithStartDelay(d time.Duration) CoordinatorOption {
	return func(c *Coordinator) {
		c.startDelay = d
	}
}

func WithEasing(f anim.EasingFunc) CoordinatorOption {
	return func(c *Coordinator) {
		c.ease = f
	}
}

// WithAnimations disables animations when enabled is false: changes are applied instantly.
func WithAnimations(enabled bool) CoordinatorOption {
	return func(c *Coordinator) {
		c.animated = enabled
	}
}

func WithCoordinatorLogger(logger *slog.Logger) CoordinatorOption {
	return func(c *Coordinator) {
		c.logger = logger
	}
}

func NewCoordinator(store *Store, viewport Viewport, options ...CoordinatorOption) *Coordinator {
	c := &Coordinator{
		store:      store,
		viewport:   viewport,
		duration:   DefaultAnimationDuration,
		startDelay: DefaultStartDelay,
		ease:       anim.Decelerate,
		animated:   true,
	}
	for _, option := range options {
		option(c)
	}
	if c.scheduler == nil {
		c.scheduler = anim.NewScheduler()
	}
	if c.logger == nil {
		c.logger = logutil.NewDiscardLogger()
	}
	return c
}

func (c *Coordinator) Scheduler() *anim.Scheduler {
	return c.scheduler
}

// State is Animating while any group started by this coordinator is running or queued.
func (c *Coordinator) State() anim.State {
	if len(c.groups) > 0 {
		return anim.Animating
	}
	return anim.Idle
}

func (c *Coordinator) Duration() time.Duration {
	return c.duration
}

func (c *Coordinator) instant() bool {
	return !c.animated || c.viewport.ViewportWidth() <= 0
}

func (c *Coordinator) scrollToEndTarget() float64 {
	return math.Max(0, float64(c.viewport.ContentWidth()-c.viewport.ViewportWidth()))
}

// Animate plays the exit of removed entries, the entrance of added ones and the scroll to the end together.
func (c *Coordinator) Animate(added, removed []*Entry) {
	c.supersede(TagEnter, TagScroll, TagReveal)

	if c.instant() {
		for _, e := range removed {
			e.Alpha = 0
			c.store.Finalize(e)
		}
		for _, e := range added {
			e.TranslationX = 0
		}
		c.viewport.SetScrollOffset(c.scrollToEndTarget())
		return
	}

	g := anim.NewGroup(
		anim.GroupName("batch"),
		anim.GroupDuration(c.duration),
		anim.GroupDelay(c.startDelay),
		anim.GroupEasing(c.ease),
	)
	if len(removed) > 0 {
		c.logger.Debug("starting remove animation", "removed", len(removed))
		for _, e := range removed {
			g.Add(c.exitTween(e))
		}
	}
	if len(added) > 0 {
		c.logger.Debug("starting add animation", "added", len(added))
		g.Add(c.enterTweens(added)...)
	}
	g.Add(anim.NewTween(c.viewport.ScrollOffset, c.viewport.SetScrollOffset, c.scrollToEndTarget, anim.WithTag(TagScroll)))
	c.enqueue(g)
}

func (c *Coordinator) exitTween(e *Entry) *anim.Tween {
	return anim.NewTween(
		func() float64 { return e.Alpha },
		func(v float64) { e.Alpha = v },
		anim.Const(0),
		anim.WithTag(TagExit),
		anim.OnEnd(func() { c.store.Finalize(e) }),
	)
}

// enterTweens slides every added entry in from the right, each one starting
// where the entry before it ends so the whole batch moves as one ribbon.
func (c *Coordinator) enterTweens(added []*Entry) []*anim.Tween {
	viewportWidth := c.viewport.ViewportWidth()
	entries := c.store.Entries()
	first := slices.Index(entries, added[0])

	tweens := make([]*anim.Tween, 0, len(added))
	for i, e := range added {
		previousWidth := 0
		if i > 0 {
			previousWidth = added[i-1].Width
		} else if first > 0 {
			previousWidth = entries[first-1].Width
		}
		e.TranslationX = float64(viewportWidth - previousWidth)
		tweens = append(tweens, anim.NewTween(
			func() float64 { return e.TranslationX },
			func(v float64) { e.TranslationX = v },
			anim.Const(0),
			anim.WithTag(TagEnter),
		))
	}
	return tweens
}

// Reveal scrolls to target with half the batch duration.
func (c *Coordinator) Reveal(target float64) {
	c.supersede(TagReveal)
	if c.instant() {
		c.viewport.SetScrollOffset(target)
		return
	}
	if c.viewport.ScrollOffset() == target && c.State() == anim.Idle {
		return
	}
	c.logger.Debug("starting reveal animation", "target", target)
	g := anim.NewGroup(
		anim.GroupName("reveal"),
		anim.GroupDuration(c.duration/2),
		anim.GroupEasing(c.ease),
	)
	g.Add(anim.NewTween(c.viewport.ScrollOffset, c.viewport.SetScrollOffset, anim.Const(target), anim.WithTag(TagReveal)))
	c.enqueue(g)
}

// supersede ends the tweens with the given tags in groups that have not finished yet.
// Entrances jump to their end position, scroll tweens stop where they are.
// Exit tweens are never touched: a removal always runs to completion.
func (c *Coordinator) supersede(tags ...string) {
	for _, g := range c.groups {
		if g.Done() {
			continue
		}
		for _, tag := range tags {
			for _, t := range g.Tagged(tag) {
				if tag == TagEnter {
					t.Finish()
				} else {
					t.Cancel()
				}
			}
		}
	}
}

func (c *Coordinator) enqueue(g *anim.Group) {
	c.groups = append(c.groups, g)
	g.OnEnd(func() {
		if i := slices.Index(c.groups, g); i >= 0 {
			c.groups = slices.Delete(c.groups, i, i+1)
		}
	})
	c.scheduler.Enqueue(g)
}

// Flush completes every pending animation immediately.
func (c *Coordinator) Flush() {
	c.scheduler.Flush()
}
