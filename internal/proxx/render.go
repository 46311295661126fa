package proxx

import (
	"fmt"
	"strconv"
	"strings"
)

// Textual board dumps. These are pure reads of cell state, kept around
// for logs, tests and the cheat view.

func (b *Board) header() string {
	var sb strings.Builder
	fmt.Fprint(&sb, "   ")
	for x := range b.width {
		fmt.Fprintf(&sb, "%d ", x)
	}
	fmt.Fprint(&sb, "\n  ")
	fmt.Fprint(&sb, strings.Repeat("-", b.width*2))
	fmt.Fprint(&sb, "\n")
	return sb.String()
}

func (b *Board) dump(cell func(Cell) string) string {
	var sb strings.Builder
	fmt.Fprint(&sb, b.header())
	for y := range b.height {
		fmt.Fprintf(&sb, "%d| ", y)
		for x := range b.width {
			fmt.Fprint(&sb, cell(b.At(Coord{X: x, Y: y}))+" ")
		}
		fmt.Fprint(&sb, "\n")
	}
	return sb.String()
}

// RevealedString renders the board with everything exposed: H for
// holes, digits for numbered cells, . for empty ones.
func (b *Board) RevealedString() string {
	return b.dump(revealedCell)
}

// PlayerString renders the board as the player sees it: * for
// unopened cells, opened ones as in RevealedString.
func (b *Board) PlayerString() string {
	return b.dump(func(c Cell) string {
		if !c.Opened {
			return "*"
		}
		return revealedCell(c)
	})
}

func revealedCell(c Cell) string {
	switch {
	case c.Hole:
		return "H"
	case c.HolesAround > 0:
		return strconv.Itoa(c.HolesAround)
	default:
		return "."
	}
}
