package crumbtug

import (
	"fmt"

	"github.com/filetug/crumbtug/pkg/pathnav"
	"github.com/rivo/tview"
)

var _ pathnav.RightEdgeRangeListener = (*statusLine)(nil)

// statusLine shows what the bar reports about its right edge, or the last error.
type statusLine struct {
	*tview.TextView
	edgeRange     int
	offsetInRange int
	entries       int
	err           error
}

func newStatusLine(edgeRange int) *statusLine {
	s := &statusLine{
		TextView:  tview.NewTextView().SetDynamicColors(true),
		edgeRange: edgeRange,
	}
	s.render()
	return s
}

func (s *statusLine) Range() int {
	return s.edgeRange
}

func (s *statusLine) RangeOffsetChanged(offsetInRange int) {
	s.offsetInRange = offsetInRange
	s.render()
}

func (s *statusLine) setEntries(n int) {
	s.entries = n
	s.err = nil
	s.render()
}

func (s *statusLine) showError(err error) {
	s.err = err
	s.render()
}

func (s *statusLine) render() {
	if s.err != nil {
		s.SetText(fmt.Sprintf("[red]%s[-]", tview.Escape(s.err.Error())))
		return
	}
	edge := "[gray]away from edge[-]"
	if s.edgeRange > 0 && s.offsetInRange < s.edgeRange {
		edge = fmt.Sprintf("[yellow]edge %d/%d[-]", s.offsetInRange, s.edgeRange)
	}
	s.SetText(fmt.Sprintf("%d entries  %s  [darkgray]Backspace parent  Alt+/ root  Alt+~ home  Alt+x quit[-]", s.entries, edge))
}
