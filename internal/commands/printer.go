package commands

import (
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/hay-kot/journal/internal/core/config"
	"github.com/hay-kot/journal/internal/core/task"
)

var (
	positionStyle = lipgloss.NewStyle().Bold(true)
	stampStyle    = lipgloss.NewStyle().Faint(true)
)

// taskPrinter renders list lines as "N: <text> [<time>]".
type taskPrinter struct {
	display config.Display
	loc     *time.Location
	styled  bool
}

func newTaskPrinter(display config.Display, styled bool) *taskPrinter {
	return &taskPrinter{display: display, loc: time.Local, styled: styled}
}

func (p *taskPrinter) line(position int, t task.Task) string {
	if !p.styled {
		return strconv.Itoa(position) + ": " + t.Render(p.display.TextWidth, p.display.TimeLayout, p.loc)
	}

	text, stamp := t.Columns(p.display.TextWidth, p.display.TimeLayout, p.loc)
	return positionStyle.Render(strconv.Itoa(position)) + ": " + text + " " + stampStyle.Render("["+stamp+"]")
}
