package proxx

import "fmt"

// BoardTooSmallError is returned when the requested board side is not
// larger than SmallestBoardSize. A board that small can have its only
// safe area swallowed by a single centered hole.
type BoardTooSmallError struct {
	Size int
}

func (e BoardTooSmallError) Error() string {
	return fmt.Sprintf(
		"board size %d is too small: must be larger than %d",
		e.Size, SmallestBoardSize,
	)
}

// TooManyHolesError is returned when the requested hole count would
// leave fewer than SmallestBoardSize^2 safe cells.
type TooManyHolesError struct {
	Size, HoleCount int
}

func (e TooManyHolesError) Error() string {
	return fmt.Sprintf(
		"%d holes is too many for a board of size %d: at least %d cells must stay safe",
		e.HoleCount, e.Size, SmallestBoardSize*SmallestBoardSize,
	)
}

// HoleCountError is returned by a generator that cannot place the
// requested number of holes among its eligible coordinates.
type HoleCountError struct {
	HoleCount, Eligible int
}

func (e HoleCountError) Error() string {
	return fmt.Sprintf(
		"cannot place %d holes among %d eligible cells",
		e.HoleCount, e.Eligible,
	)
}

// AssertionError reports a broken precondition, e.g. an out-of-bounds
// coordinate that the caller was responsible for validating. It is
// used as a panic value, never returned.
type AssertionError struct {
	message string
}

func (e AssertionError) Error() string {
	return e.message
}
