package pathnav

// RightEdgeRangeListener is told how close the primary segment is to the right edge of the bar.
type RightEdgeRangeListener interface {
	// Range returns the distance, in cells, from the right edge at which offsets start being positive.
	Range() int
	// RangeOffsetChanged receives the number of cells scrolled within the range.
	// A negative offset means the primary segment is not within range yet.
	RangeOffsetChanged(offsetInRange int)
}

type noOpRangeListener struct{}

func (noOpRangeListener) Range() int { return 0 }

func (noOpRangeListener) RangeOffsetChanged(int) {}

type rangeListener struct {
	rangeCells int
	changed    func(offsetInRange int)
}

func (l rangeListener) Range() int {
	return l.rangeCells
}

func (l rangeListener) RangeOffsetChanged(offsetInRange int) {
	if l.changed != nil {
		l.changed(offsetInRange)
	}
}

// NewRangeListener builds a RightEdgeRangeListener from a range and a callback.
func NewRangeListener(rangeCells int, changed func(offsetInRange int)) RightEdgeRangeListener {
	return rangeListener{rangeCells: rangeCells, changed: changed}
}

// ScrollMetrics is a snapshot of the bar geometry, in cells.
type ScrollMetrics struct {
	ContentWidth       int
	ViewportWidth      int
	ScrollOffset       int
	RightPadding       int
	EdgeRangeThreshold int
}

// MaxScroll returns the largest valid scroll offset.
func (m ScrollMetrics) MaxScroll() int {
	return max(0, m.ContentWidth-m.ViewportWidth)
}

// ScrollToEnd returns the scroll offset at which the right edge of the primary segment reaches the right edge of the viewport.
func (m ScrollMetrics) ScrollToEnd() int {
	return m.ContentWidth - m.ViewportWidth - max(m.RightPadding, 0)
}

func (m ScrollMetrics) OffsetInRange() int {
	return m.ScrollToEnd() - m.ScrollOffset + m.EdgeRangeThreshold
}

// EdgeTracker reports ScrollMetrics.OffsetInRange to a listener on every scroll change.
type EdgeTracker struct {
	listener RightEdgeRangeListener
	last     int
	reported bool
}

func NewEdgeTracker() *EdgeTracker {
	return &EdgeTracker{listener: noOpRangeListener{}}
}

// SetListener registers l. A nil listener restores the no-op one.
func (t *EdgeTracker) SetListener(l RightEdgeRangeListener) {
	if l == nil {
		l = noOpRangeListener{}
	}
	t.listener = l
}

func (t *EdgeTracker) Listener() RightEdgeRangeListener {
	return t.listener
}

func (t *EdgeTracker) Range() int {
	return t.listener.Range()
}

// Update computes the offset for m and passes it to the listener.
func (t *EdgeTracker) Update(m ScrollMetrics) int {
	offset := m.OffsetInRange()
	t.last = offset
	t.reported = true
	t.listener.RangeOffsetChanged(offset)
	return offset
}

// Last returns the last reported offset.
func (t *EdgeTracker) Last() (offsetInRange int, ok bool) {
	return t.last, t.reported
}
