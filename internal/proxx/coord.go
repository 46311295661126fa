package proxx

import "fmt"

// Coord addresses a single cell on the board. 0-indexed, x grows
// right, y grows down. Comparable, so it works as a map key.
type Coord struct {
	X, Y int
}

func (c Coord) String() string {
	return fmt.Sprintf("%d:%d", c.X, c.Y)
}

// Relative positions of the up-to-8 adjacent cells.
var neighborOffsets = [8]Coord{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}
