package crumbs

import (
	"context"

	"github.com/filetug/crumbtug/pkg/anim"
	"github.com/filetug/crumbtug/pkg/pathnav"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

const defaultSeparator = "› "

// defaultLongNamePadding is the end padding reserved for a primary label that does not fit.
const defaultLongNamePadding = 1

// Breadcrumbs is a single line bar that shows the segments of a path.
// Scrolled to the end it starts with the current directory, the parents are
// revealed by tapping it or by scrolling left.
type Breadcrumbs struct {
	*tview.Box
	nav        *pathnav.Navigator
	navOptions []pathnav.Option

	separator         string
	separatorStartIdx int
	colors            Colors
	wheelStep         int

	selectedItemIndex int
	nextFocusTarget   tview.Primitive
	prevFocusTarget   tview.Primitive

	width int
}

func NewBreadcrumbs(options ...func(bc *Breadcrumbs)) *Breadcrumbs {
	bc := &Breadcrumbs{
		Box:               tview.NewBox(),
		separator:         defaultSeparator,
		separatorStartIdx: 1,
		colors:            DefaultColors,
		wheelStep:         2,
		navOptions:        []pathnav.Option{pathnav.WithLongNamePadding(defaultLongNamePadding)},
	}
	for _, option := range options {
		option(bc)
	}
	bc.nav = pathnav.New(bc.navOptions...)
	bc.nav.Attach(bc.viewportWidth, bc.segmentWidth)
	return bc
}

// Navigator returns the state machine behind the bar.
func (b *Breadcrumbs) Navigator() *pathnav.Navigator {
	return b.nav
}

// viewportWidth is the inner width seen by the last Draw, so nothing animates before the bar is on screen.
func (b *Breadcrumbs) viewportWidth() int {
	return b.width
}

// SetPath moves the bar from the path it shows to p.
// Taps on parent segments are sent to controller when it is not nil.
func (b *Breadcrumbs) SetPath(p string, controller pathnav.PathController) error {
	if err := b.nav.UpdateWithPaths(b.nav.Path(), p, controller); err != nil {
		return err
	}
	if !b.HasFocus() {
		b.selectedItemIndex = len(b.nav.Entries()) - 1
	}
	b.clampSelection()
	return nil
}

// SetEdgeListener registers the listener told how far the scroll offset is from the right edge.
func (b *Breadcrumbs) SetEdgeListener(l pathnav.RightEdgeRangeListener) {
	b.nav.SetEdgeListener(l)
}

// Animate runs the animation driver until ctx is done.
// post must run its argument on the tview event loop, see tview.Application.QueueUpdateDraw.
func (b *Breadcrumbs) Animate(ctx context.Context, fps int, post func(func())) {
	driver := anim.NewDriver(b.nav.Scheduler(), fps, post)
	if b.nav.Scheduler().State() == anim.Animating {
		driver.Wake()
	}
	go driver.Run(ctx)
}

func (b *Breadcrumbs) resize(width int) {
	if width == b.width {
		return
	}
	b.width = width
	b.nav.Relayout()
	if b.nav.State() == anim.Idle {
		b.nav.ScrollToEnd()
	}
}

func (b *Breadcrumbs) Draw(screen tcell.Screen) {
	b.DrawForSubclass(screen, b)
	x, y, width, height := b.GetInnerRect()
	if width <= 0 || height <= 0 {
		return
	}
	b.resize(width)

	limit := width - b.nav.EndPadding()
	clipped := false
	drawEntry := func(e *pathnav.Entry, selected bool) {
		if e.Alpha <= 0 {
			return
		}
		c := b.crumb(e, selected)
		col, prefixClipped := printClipped(screen, x, y, limit, c.x, c.prefix, c.prefixStyle)
		_, titleClipped := printClipped(screen, x, y, limit, col, c.title, c.style)
		clipped = clipped || prefixClipped || titleClipped
	}
	for _, e := range b.nav.Pending() {
		drawEntry(e, false)
	}
	focused := b.HasFocus()
	for i, e := range b.nav.Entries() {
		drawEntry(e, focused && i == b.selectedItemIndex)
	}
	if clipped && limit < width {
		screen.SetContent(x+limit, y, '…', nil, tcell.StyleDefault.Foreground(b.colors.Separator))
	}
}

func (b *Breadcrumbs) clampSelection() {
	last := len(b.nav.Entries()) - 1
	b.selectedItemIndex = max(0, min(b.selectedItemIndex, last))
}

// tap handles a tap on the segment at index i.
func (b *Breadcrumbs) tap(i int) pathnav.Action {
	b.selectedItemIndex = i
	return b.nav.Tap(i)
}

// GoRoot taps the root segment.
func (b *Breadcrumbs) GoRoot() pathnav.Action {
	if len(b.nav.Entries()) == 0 {
		return pathnav.ActionNone
	}
	return b.tap(0)
}

// TakeFocus prepares the bar to receive the focus from target, which gets it back on Tab.
func (b *Breadcrumbs) TakeFocus(target tview.Primitive) {
	b.nextFocusTarget = target
	b.selectedItemIndex = max(0, len(b.nav.Entries())-2)
}

func (b *Breadcrumbs) SetNextFocusTarget(target tview.Primitive) {
	b.nextFocusTarget = target
}

func (b *Breadcrumbs) SetPrevFocusTarget(target tview.Primitive) {
	b.prevFocusTarget = target
}

func (b *Breadcrumbs) IsLastItemSelected() bool {
	return b.selectedItemIndex == len(b.nav.Entries())-1
}

// SelectedIndex returns the index of the segment the keyboard cursor is on.
func (b *Breadcrumbs) SelectedIndex() int {
	return b.selectedItemIndex
}

// Focus selects the parent of the current directory unless another parent is selected already.
func (b *Breadcrumbs) Focus(delegate func(p tview.Primitive)) {
	n := len(b.nav.Entries())
	if b.selectedItemIndex < 0 || b.selectedItemIndex >= n-1 {
		b.selectedItemIndex = max(0, n-2)
	}
	b.Box.Focus(delegate)
}

// Blur moves the selection back to the current directory.
func (b *Breadcrumbs) Blur() {
	b.selectedItemIndex = max(0, len(b.nav.Entries())-1)
	b.Box.Blur()
}

func (b *Breadcrumbs) InputHandler() func(event *tcell.EventKey, setFocus func(p tview.Primitive)) {
	return b.WrapInputHandler(func(event *tcell.EventKey, setFocus func(p tview.Primitive)) {
		n := len(b.nav.Entries())
		if n == 0 {
			return
		}
		b.clampSelection()
		switch event.Key() {
		case tcell.KeyLeft:
			if b.selectedItemIndex > 0 {
				b.selectedItemIndex--
			}
		case tcell.KeyRight:
			if b.selectedItemIndex < n-1 {
				b.selectedItemIndex++
			}
		case tcell.KeyHome:
			b.selectedItemIndex = 0
		case tcell.KeyEnd:
			b.selectedItemIndex = n - 1
		case tcell.KeyEnter:
			b.tap(b.selectedItemIndex)
		case tcell.KeyTab, tcell.KeyDown:
			if b.nextFocusTarget != nil {
				setFocus(b.nextFocusTarget)
			}
		case tcell.KeyBacktab, tcell.KeyUp:
			if b.prevFocusTarget != nil {
				setFocus(b.prevFocusTarget)
			}
		default:
			// not handled
		}
	})
}

func (b *Breadcrumbs) MouseHandler() func(action tview.MouseAction, event *tcell.EventMouse, setFocus func(p tview.Primitive)) (consumed bool, capture tview.Primitive) {
	return b.WrapMouseHandler(func(action tview.MouseAction, event *tcell.EventMouse, setFocus func(p tview.Primitive)) (consumed bool, capture tview.Primitive) {
		x, y := event.Position()
		if !b.InInnerRect(x, y) {
			return false, nil
		}
		innerX, _, _, _ := b.GetInnerRect()
		switch action {
		case tview.MouseLeftDown:
			setFocus(b)
			if i := b.nav.IndexAt(x - innerX); i >= 0 {
				b.selectedItemIndex = i
			}
			return true, nil
		case tview.MouseLeftClick:
			setFocus(b)
			if i := b.nav.IndexAt(x - innerX); i >= 0 {
				b.tap(i)
			}
			return true, nil
		case tview.MouseScrollUp, tview.MouseScrollLeft:
			b.nav.ScrollBy(-float64(b.wheelStep))
			return true, nil
		case tview.MouseScrollDown, tview.MouseScrollRight:
			b.nav.ScrollBy(float64(b.wheelStep))
			return true, nil
		default:
			return false, nil
		}
	})
}
