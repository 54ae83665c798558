// Package ttestutils helps testing tview primitives on a simulation screen.
package ttestutils

import (
	"strings"

	"github.com/gdamore/tcell/v2"
)

// TB is the part of testing.TB the helpers need.
type TB interface {
	Helper()
	Fatalf(format string, args ...any)
}

// NewSimulationScreen is replaced in tests of this package.
var NewSimulationScreen = tcell.NewSimulationScreen

// ReadLine reads a full line from the screen
func ReadLine(screen tcell.Screen, y, width int) string {
	var b strings.Builder
	for x := 0; x < width; x++ {
		str, _, _ := screen.Get(x, y)
		if str == "" || str == "\x00" {
			// nothing drawn at this cell
			b.WriteRune(' ')
			continue
		}
		b.WriteString(str)
	}
	return b.String()
}

// ReadLines reads height lines starting at the top of the screen.
func ReadLines(screen tcell.Screen, width, height int) []string {
	lines := make([]string, height)
	for y := range lines {
		lines[y] = ReadLine(screen, y, width)
	}
	return lines
}

// NewSimScreen creates a new simulation screen for testing
func NewSimScreen(t TB, charset string, width, height int) tcell.Screen {
	t.Helper()
	s := NewSimulationScreen(charset)
	if err := s.Init(); err != nil {
		t.Fatalf("failed to init simulation screen: %v", err)
	}
	s.SetSize(width, height)
	return s
}
