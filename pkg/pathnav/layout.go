package pathnav

// relayout positions the live entries and recomputes the content geometry.
//
// The content is padded on the right so that, scrolled to the end, the primary
// segment is the first thing at the left of the viewport. When the primary label
// is so long that it reaches into the edge range, longNamePadding cells are
// reserved at the end of the viewport instead.
func (n *Navigator) relayout() {
	viewportWidth := n.ViewportWidth()
	entries := n.store.Entries()

	x := 0
	for _, e := range entries {
		if n.segmentWidth != nil {
			e.Width = n.segmentWidth(e.Segment)
		}
		e.X = x + n.o.segmentGap
		x = e.Right()
	}
	n.itemsWidth = x

	n.rightPadding = 0
	n.endPadding = 0
	if last := n.store.Primary(); last != nil && viewportWidth > 0 {
		n.rightPadding = viewportWidth - last.Width - n.o.segmentGap
		if last.Width >= viewportWidth-n.o.segmentGap-n.tracker.Range() {
			n.rightPadding -= n.o.longNamePadding
			n.endPadding = n.o.longNamePadding
		}
	}
	n.contentWidth = max(0, n.itemsWidth+n.rightPadding)
	n.revealScroll = n.contentWidth - 2*viewportWidth
}

// scrollExtent is the content width used to clamp scrolling.
// Entries waiting for their exit animation keep the previous extent alive.
func (n *Navigator) scrollExtent() int {
	if len(n.store.Pending()) > 0 {
		return max(n.contentWidth, n.retainedWidth)
	}
	return n.contentWidth
}

func (n *Navigator) maxScroll() float64 {
	return float64(max(0, n.scrollExtent()-n.ViewportWidth()))
}

// RevealTarget returns the scroll offset the reveal action moves to.
func (n *Navigator) RevealTarget() float64 {
	return min(float64(max(0, n.revealScroll)), n.maxScroll())
}

// EndPadding returns the cells reserved at the right end of the viewport.
func (n *Navigator) EndPadding() int {
	return n.endPadding
}
