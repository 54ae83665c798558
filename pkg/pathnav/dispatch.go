package pathnav

import "github.com/filetug/crumbtug/pkg/pathseg"

// PathController changes the current directory of the host.
type PathController interface {
	NavigateTo(path string)
}

type PathControllerFunc func(path string)

func (f PathControllerFunc) NavigateTo(path string) {
	f(path)
}

// Action is what a tap on a segment resulted in.
type Action int

const (
	ActionNone Action = iota
	ActionNavigate
	ActionReveal
)

func (a Action) String() string {
	switch a {
	case ActionNavigate:
		return "navigate"
	case ActionReveal:
		return "reveal"
	default:
		return "none"
	}
}

// Dispatcher maps taps to navigation for secondary segments and to reveal for the primary one.
type Dispatcher struct {
	controller PathController
	reveal     func()
}

func NewDispatcher(reveal func()) *Dispatcher {
	return &Dispatcher{reveal: reveal}
}

func (d *Dispatcher) SetController(c PathController) {
	d.controller = c
}

func (d *Dispatcher) Controller() PathController {
	return d.controller
}

// Tap handles a tap on s. Without a controller a secondary tap does nothing.
func (d *Dispatcher) Tap(s pathseg.Segment) Action {
	if s.IsPrimary {
		if d.reveal != nil {
			d.reveal()
		}
		return ActionReveal
	}
	if d.controller == nil {
		return ActionNone
	}
	d.controller.NavigateTo(s.Path)
	return ActionNavigate
}
