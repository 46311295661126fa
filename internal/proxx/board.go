package proxx

import "log/slog"

var Log *slog.Logger = slog.Default()

// SmallestBoardSize is the largest board side that is still rejected.
// On a 3x3 board a centered hole leaves no safe cell to open, which
// would break the safe-first-click guarantee.
const SmallestBoardSize = 3

type GameStatus int

const (
	InPlay GameStatus = iota
	Lost
	Won
)

func (s GameStatus) String() string {
	switch s {
	case InPlay:
		return "in play"
	case Lost:
		return "lost"
	case Won:
		return "won"
	default:
		return "invalid"
	}
}

// Board owns a square grid of cells and the game state machine. It is
// not safe for concurrent use; a single control flow must drive it.
type Board struct {
	width, height int
	cells         []Cell // row-major, indexed y*width+x
	status        GameStatus
	remaining     int // safe cells still to open
}

// NewBoard builds a board for a game whose first click lands on
// first. Holes are placed by gen, which is told to skip first, so the
// board comes back with the first cell already opened and the game
// still in play. Construction is atomic: on any error no board is
// produced.
func NewBoard(size, holeCount int, gen Generator, first Coord) (*Board, error) {
	if size <= SmallestBoardSize {
		return nil, BoardTooSmallError{Size: size}
	}
	if size*size-SmallestBoardSize*SmallestBoardSize <= holeCount {
		return nil, TooManyHolesError{Size: size, HoleCount: holeCount}
	}

	b := &Board{
		width:     size,
		height:    size,
		cells:     make([]Cell, size*size),
		status:    InPlay,
		remaining: size*size - holeCount,
	}

	holes, err := gen.Generate(first)
	if err != nil {
		return nil, err
	}
	for _, c := range holes {
		b.cells[b.index(c)].Hole = true
	}
	b.countHolesAround()

	Log.Debug("built board",
		slog.Int("size", size),
		slog.Int("holes", holeCount),
		slog.Any("first", first),
	)

	b.ClickOn(first)
	return b, nil
}

func (b *Board) countHolesAround() {
	for y := range b.height {
		for x := range b.width {
			c := Coord{X: x, Y: y}
			if b.cells[b.index(c)].Hole {
				continue
			}
			n := 0
			for _, nb := range b.neighbors(c) {
				if b.cells[b.index(nb)].Hole {
					n++
				}
			}
			b.cells[b.index(c)].HolesAround = n
		}
	}
}

func (b *Board) inBounds(c Coord) bool {
	return 0 <= c.X && c.X < b.width && 0 <= c.Y && c.Y < b.height
}

// panics [AssertionError]
func (b *Board) index(c Coord) int {
	if !b.inBounds(c) {
		panic(AssertionError{"coordinate " + c.String() + " out of bounds"})
	}
	return c.Y*b.width + c.X
}

func (b *Board) neighbors(c Coord) []Coord {
	coords := make([]Coord, 0, len(neighborOffsets))
	for _, d := range neighborOffsets {
		nb := Coord{X: c.X + d.X, Y: c.Y + d.Y}
		if b.inBounds(nb) {
			coords = append(coords, nb)
		}
	}
	return coords
}

// ClickOn opens the cell at c. Clicking a hole loses the game on the
// spot; clicking a safe cell reveals it and flood-fills outward
// through zero-count cells, stopping at numbered ones. Once the board
// is lost or won further clicks do nothing. The coordinate must be in
// bounds: validation is the caller's contract, and a violation panics
// with [AssertionError].
func (b *Board) ClickOn(c Coord) {
	if b.status != InPlay {
		return
	}

	if b.cells[b.index(c)].Hole {
		b.status = Lost
		return
	}

	b.openCells(c)
}

// openCells runs the breadth-first reveal from c over an explicit
// queue. Recursion would work too, but on a large board it can run
// out of stack.
func (b *Board) openCells(c Coord) {
	queue := []Coord{c}

	for len(queue) > 0 {
		c, queue = queue[0], queue[1:]
		cell := &b.cells[b.index(c)]
		b.openCell(cell)

		if cell.HolesAround > 0 {
			continue
		}

		for _, nb := range b.neighbors(c) {
			adjacent := b.cells[b.index(nb)]
			if adjacent.Hole || adjacent.Opened {
				continue
			}
			queue = append(queue, nb)
		}
	}
}

// openCell is idempotent: a cell already open contributes nothing to
// the counter.
func (b *Board) openCell(cell *Cell) {
	if cell.Opened {
		return
	}
	cell.Opened = true
	b.remaining--
	if b.remaining == 0 {
		b.status = Won
	}
}

// At returns the cell state at c.
//
// panics [AssertionError]
func (b *Board) At(c Coord) Cell {
	return b.cells[b.index(c)]
}

func (b *Board) Width() int         { return b.width }
func (b *Board) Height() int        { return b.height }
func (b *Board) Status() GameStatus { return b.status }

// Remaining reports how many safe cells are still unopened.
func (b *Board) Remaining() int { return b.remaining }
