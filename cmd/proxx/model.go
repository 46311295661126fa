package main

import (
	"fmt"
	"log/slog"
	"math/rand/v2"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vancomm/proxx/internal/proxx"
)

type model struct {
	size, holes int
	cheat       bool
	rnd         *rand.Rand

	// board stays nil until the first click so that hole placement
	// can exclude the clicked cell.
	board  *proxx.Board
	cursor proxx.Coord
}

func initialModel(size, holes int, cheat bool, rnd *rand.Rand) model {
	return model{
		size:   size,
		holes:  holes,
		cheat:  cheat,
		rnd:    rnd,
		cursor: proxx.Coord{X: size / 2, Y: size / 2},
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) inPlay() bool {
	return m.board == nil || m.board.Status() == proxx.InPlay
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit

		case "up", "k":
			if m.inPlay() && m.cursor.Y > 0 {
				m.cursor.Y--
			}
		case "down", "j":
			if m.inPlay() && m.cursor.Y < m.size-1 {
				m.cursor.Y++
			}
		case "left", "h":
			if m.inPlay() && m.cursor.X > 0 {
				m.cursor.X--
			}
		case "right", "l":
			if m.inPlay() && m.cursor.X < m.size-1 {
				m.cursor.X++
			}

		case "enter", " ":
			return m.click()

		case "n":
			if !m.inPlay() {
				return initialModel(m.size, m.holes, m.cheat, m.rnd), nil
			}
		}
	}
	return m, nil
}

// click opens the cell under the cursor. The first click of a game
// builds the board, so it can never land on a hole.
func (m model) click() (tea.Model, tea.Cmd) {
	if m.board == nil {
		gen := proxx.NewRandomGenerator(m.size, m.holes, m.rnd)
		board, err := proxx.NewBoard(m.size, m.holes, gen, m.cursor)
		if err != nil {
			// Parameters were validated before the program started.
			proxx.Log.Error("unable to build board", slog.Any("error", err))
			return m, tea.Quit
		}
		m.board = board
		return m, nil
	}

	m.board.ClickOn(m.cursor)
	if m.board.Status() != proxx.InPlay {
		proxx.Log.Debug("game over", slog.String("status", m.board.Status().String()))
	}
	return m, nil
}

func (m model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("proxx: find the holes, avoid the black holes"))
	b.WriteString("\n\n")
	b.WriteString(m.viewGrid())
	b.WriteString("\n")
	b.WriteString(m.viewStatus())

	if m.cheat && m.board != nil && m.board.Status() == proxx.InPlay {
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("cheat view"))
		b.WriteString("\n")
		b.WriteString(m.board.RevealedString())
	}

	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render("arrows/hjkl move · enter opens · n new game · q quits"))
	b.WriteString("\n")
	return b.String()
}

func (m model) viewGrid() string {
	var (
		b        strings.Builder
		gameOver = m.board != nil && m.board.Status() != proxx.InPlay
	)
	for y := range m.size {
		for x := range m.size {
			c := proxx.Coord{X: x, Y: y}
			text, style := m.cellGlyph(c, gameOver)
			if c == m.cursor && !gameOver {
				style = cursorStyle
			}
			b.WriteString(style.Render(text) + " ")
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (m model) viewStatus() string {
	if m.board == nil {
		return statusStyle.Render("pick your first cell, it is always safe")
	}
	switch m.board.Status() {
	case proxx.Won:
		return wonStyle.Render("you won! press n for a new game")
	case proxx.Lost:
		return lostStyle.Render("black hole! press n for a new game")
	default:
		return statusStyle.Render(fmt.Sprintf(
			"safe cells left: %d", m.board.Remaining(),
		))
	}
}
