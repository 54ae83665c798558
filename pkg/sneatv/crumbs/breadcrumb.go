package crumbs

import (
	"github.com/filetug/crumbtug/pkg/pathnav"
	"github.com/filetug/crumbtug/pkg/pathseg"
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// Colors of the bar. Zero values fall back to the terminal default.
type Colors struct {
	Primary   tcell.Color
	Secondary tcell.Color
	Separator tcell.Color
}

var DefaultColors = Colors{
	Primary:   tcell.ColorWhite,
	Secondary: tcell.ColorSilver,
	Separator: tcell.ColorGray,
}

// breadcrumb is a segment as it is drawn on one frame.
type breadcrumb struct {
	prefix      string
	title       string
	x           int
	style       tcell.Style
	prefixStyle tcell.Style
}

// segmentText splits the text of a segment into its separator prefix and its title.
func (b *Breadcrumbs) segmentText(s pathseg.Segment) (prefix, title string) {
	if s.Index >= b.separatorStartIdx {
		prefix = b.separator
	}
	return prefix, s.DisplayLabel() + " "
}

func (b *Breadcrumbs) segmentWidth(s pathseg.Segment) int {
	prefix, title := b.segmentText(s)
	return runewidth.StringWidth(prefix) + runewidth.StringWidth(title)
}

func (b *Breadcrumbs) crumb(e *pathnav.Entry, selected bool) breadcrumb {
	prefix, title := b.segmentText(e.Segment)
	c := breadcrumb{
		prefix:      prefix,
		title:       title,
		x:           b.nav.ViewX(e),
		prefixStyle: tcell.StyleDefault.Foreground(b.colors.Separator),
	}
	if e.Segment.IsPrimary && !e.Removing() {
		c.style = tcell.StyleDefault.Foreground(b.colors.Primary).Bold(true)
	} else {
		c.style = tcell.StyleDefault.Foreground(b.colors.Secondary)
	}
	if e.Alpha < 0.5 {
		c.style = c.style.Dim(true)
		c.prefixStyle = c.prefixStyle.Dim(true)
	}
	if selected {
		c.style = c.style.Reverse(true)
	}
	return c
}

// printClipped prints text starting at column col of a row that is limit cells wide.
// It returns the column after the text and whether any of it fell past the limit.
func printClipped(screen tcell.Screen, left, y, limit, col int, text string, style tcell.Style) (int, bool) {
	clipped := false
	for _, r := range text {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		switch {
		case col+w > limit:
			clipped = true
		case col >= 0:
			screen.SetContent(left+col, y, r, nil, style)
		}
		col += w
	}
	return col, clipped
}
