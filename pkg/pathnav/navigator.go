// Package pathnav keeps a breadcrumb bar in sync with the current directory
// and animates the transitions between paths.
package pathnav

import (
	"log/slog"
	"math"
	"path"

	"github.com/filetug/crumbtug/pkg/anim"
	"github.com/filetug/crumbtug/pkg/logutil"
	"github.com/filetug/crumbtug/pkg/pathseg"
)

// PathState is the path the bar shows and the one it showed before.
type PathState struct {
	PreviousPath string
	CurrentPath  string
	Segments     []pathseg.Segment
}

// Navigator is a breadcrumb bar state machine that is independent of any screen.
// It must be used from a single goroutine.
type Navigator struct {
	o      navigatorOptions
	logger *slog.Logger

	store       *Store
	coordinator *Coordinator
	tracker     *EdgeTracker
	dispatcher  *Dispatcher

	viewportWidth func() int
	segmentWidth  func(pathseg.Segment) int
	attached      bool

	previousPath  string
	scroll        float64
	itemsWidth    int
	contentWidth  int
	retainedWidth int
	rightPadding  int
	endPadding    int
	revealScroll  int
}

func New(options ...Option) *Navigator {
	n := &Navigator{
		store:   NewStore(),
		tracker: NewEdgeTracker(),
	}
	for _, option := range options {
		option(&n.o)
	}
	n.logger = n.o.logger
	if n.logger == nil {
		n.logger = logutil.NewDiscardLogger()
	}
	n.coordinator = NewCoordinator(n.store, n, n.o.coordinator...)
	n.dispatcher = NewDispatcher(n.Reveal)
	n.store.OnChanged(n.onStoreChanged)
	return n
}

// Attach connects the navigator to the surface that renders it, lays the segments out
// and scrolls to the end without animation.
func (n *Navigator) Attach(viewportWidth func() int, segmentWidth func(pathseg.Segment) int) {
	n.viewportWidth = viewportWidth
	n.segmentWidth = segmentWidth
	n.attached = true
	n.relayout()
	n.ScrollToEnd()
}

func (n *Navigator) Attached() bool {
	return n.attached
}

// Relayout re-measures the segments, for example after the viewport was resized.
func (n *Navigator) Relayout() {
	n.relayout()
	n.SetScrollOffset(n.scroll)
}

// UpdateWithPaths shows next. Pass an empty previous to rebuild the whole bar.
// A non-nil controller replaces the one taps on secondary segments are sent to.
// Invalid paths are rejected and leave the bar untouched.
func (n *Navigator) UpdateWithPaths(previous, next string, controller PathController) error {
	if err := pathseg.Validate(next); err != nil {
		n.logger.Warn("rejected path update", "next", next, "err", err)
		return err
	}

	current := n.store.Path()
	switch {
	case current == "":
		previous = ""
	case previous != "" && path.Clean(previous) != current:
		n.logger.Warn("previous path does not match the bar, diffing against the bar",
			"previous", previous, "bar", current)
		previous = current
	}

	d, err := pathseg.Diff(previous, next)
	if err != nil {
		n.logger.Warn("rejected path update", "next", next, "err", err)
		return err
	}
	if d.FullRebuild() && previous != "" {
		n.logger.Warn("paths share no segment, rebuilding", "previous", previous, "next", next)
	}
	if d.IsEmpty() {
		n.setController(controller)
		return nil
	}
	retainedWidth := n.retainedWidth
	n.retainedWidth = max(n.retainedWidth, n.contentWidth)
	if len(n.store.Pending()) == 0 {
		n.retainedWidth = n.contentWidth
	}
	if err = n.store.ApplyDiff(d); err != nil {
		n.retainedWidth = retainedWidth
		n.logger.Error("failed to apply path diff", "next", next, "err", err)
		return err
	}
	n.previousPath = current
	n.setController(controller)
	return nil
}

func (n *Navigator) setController(c PathController) {
	if c != nil {
		n.dispatcher.SetController(c)
	}
}

func (n *Navigator) onStoreChanged(added, removed []*Entry) {
	n.relayout()
	n.coordinator.Animate(added, removed)
}

// Tap handles a tap on the segment at index i.
func (n *Navigator) Tap(i int) Action {
	entries := n.store.Entries()
	if i < 0 || i >= len(entries) {
		return ActionNone
	}
	return n.dispatcher.Tap(entries[i].Segment)
}

// TapAt handles a tap at viewport column x. It reports false when x is not over a segment.
func (n *Navigator) TapAt(x int) (Action, bool) {
	i := n.IndexAt(x)
	if i < 0 {
		return ActionNone, false
	}
	return n.Tap(i), true
}

// IndexAt returns the index of the live segment drawn at viewport column x, or -1.
func (n *Navigator) IndexAt(x int) int {
	for i, e := range n.store.Entries() {
		left := n.ViewX(e)
		if x >= left && x < left+e.Width {
			return i
		}
	}
	return -1
}

// ViewX returns the viewport column the entry currently starts at.
func (n *Navigator) ViewX(e *Entry) int {
	return int(math.Round(float64(e.X) - n.scroll + e.TranslationX))
}

// Reveal scrolls to max(0, contentWidth - 2·viewportWidth), clamped to the scroll range,
// exposing the segments hidden to the left of the primary one.
func (n *Navigator) Reveal() {
	n.coordinator.Reveal(n.RevealTarget())
}

func (n *Navigator) SetEdgeListener(l RightEdgeRangeListener) {
	n.tracker.SetListener(l)
	n.relayout()
}

func (n *Navigator) ViewportWidth() int {
	if n.viewportWidth == nil {
		return 0
	}
	return max(0, n.viewportWidth())
}

func (n *Navigator) ContentWidth() int {
	return n.contentWidth
}

func (n *Navigator) ScrollOffset() float64 {
	return n.scroll
}

// SetScrollOffset clamps offset to the scroll range and reports the edge proximity when it changed.
func (n *Navigator) SetScrollOffset(offset float64) {
	offset = math.Max(0, math.Min(offset, n.maxScroll()))
	if offset == n.scroll && n.trackerReported() {
		return
	}
	n.scroll = offset
	n.tracker.Update(n.Metrics())
}

// ScrollToEnd jumps to the end of the content without animation.
func (n *Navigator) ScrollToEnd() {
	n.SetScrollOffset(n.maxScroll())
}

// ScrollBy moves the scroll offset by delta cells.
func (n *Navigator) ScrollBy(delta float64) {
	n.SetScrollOffset(n.scroll + delta)
}

func (n *Navigator) trackerReported() bool {
	_, ok := n.tracker.Last()
	return ok
}

func (n *Navigator) Metrics() ScrollMetrics {
	return ScrollMetrics{
		ContentWidth:       n.contentWidth,
		ViewportWidth:      n.ViewportWidth(),
		ScrollOffset:       int(math.Round(n.scroll)),
		RightPadding:       n.rightPadding,
		EdgeRangeThreshold: n.tracker.Range(),
	}
}

// Segments returns the segments of the current path.
func (n *Navigator) Segments() []pathseg.Segment {
	return n.store.Current()
}

func (n *Navigator) Entries() []*Entry {
	return n.store.Entries()
}

// Pending returns the removed entries whose exit animation is still running.
func (n *Navigator) Pending() []*Entry {
	return n.store.Pending()
}

func (n *Navigator) Path() string {
	return n.store.Path()
}

func (n *Navigator) PathState() PathState {
	return PathState{
		PreviousPath: n.previousPath,
		CurrentPath:  n.store.Path(),
		Segments:     n.store.Current(),
	}
}

func (n *Navigator) State() anim.State {
	return n.coordinator.State()
}

func (n *Navigator) Scheduler() *anim.Scheduler {
	return n.coordinator.Scheduler()
}

// Flush completes all running animations.
func (n *Navigator) Flush() {
	n.coordinator.Flush()
}

func (n *Navigator) EdgeTracker() *EdgeTracker {
	return n.tracker
}

func (n *Navigator) Dispatcher() *Dispatcher {
	return n.dispatcher
}
