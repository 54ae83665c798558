package crumbtug

import "github.com/rivo/tview"

// application is the part of tview.Application the browser uses.
type application interface {
	QueueUpdateDraw(f func())
	SetFocus(p tview.Primitive)
	Stop()
}

type tviewApp struct {
	*tview.Application
}

func (a tviewApp) QueueUpdateDraw(f func()) {
	_ = a.Application.QueueUpdateDraw(f)
}

func (a tviewApp) SetFocus(p tview.Primitive) {
	_ = a.Application.SetFocus(p)
}
