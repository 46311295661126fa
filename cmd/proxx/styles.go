package main

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"

	"github.com/vancomm/proxx/internal/proxx"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	helpStyle   = lipgloss.NewStyle().Faint(true)
	statusStyle = lipgloss.NewStyle()
	wonStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	lostStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))

	cursorStyle   = lipgloss.NewStyle().Reverse(true)
	unopenedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	emptyStyle    = lipgloss.NewStyle().Faint(true)
	holeStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))

	// Classic minesweeper digit palette.
	countStyles = map[int]lipgloss.Style{
		1: lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		2: lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		3: lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		4: lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
		5: lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
		6: lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
		7: lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
		8: lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
	}
)

// cellGlyph picks the character and style for one cell. Before the
// first click every cell renders unopened; after game over the whole
// board is exposed.
func (m model) cellGlyph(c proxx.Coord, gameOver bool) (string, lipgloss.Style) {
	if m.board == nil {
		return "■", unopenedStyle
	}

	cell := m.board.At(c)
	if !cell.Opened && !gameOver {
		return "■", unopenedStyle
	}

	switch {
	case cell.Hole:
		return "H", holeStyle
	case cell.HolesAround > 0:
		return strconv.Itoa(cell.HolesAround), countStyles[cell.HolesAround]
	default:
		return "·", emptyStyle
	}
}
