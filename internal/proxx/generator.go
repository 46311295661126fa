package proxx

import "math/rand/v2"

// Generator produces a hole placement for a new board. Implementations
// must return distinct in-bounds coordinates, none equal to skip.
type Generator interface {
	Generate(skip Coord) ([]Coord, error)
}

// RandomGenerator places holes uniformly at random without
// replacement. Sampling from an explicit candidate list avoids the
// pathological cost of rejection sampling at high hole density.
type RandomGenerator struct {
	width, height, holeCount int
	rnd                      *rand.Rand
}

func NewRandomGenerator(size, holeCount int, rnd *rand.Rand) *RandomGenerator {
	return &RandomGenerator{
		width:     size,
		height:    size,
		holeCount: holeCount,
		rnd:       rnd,
	}
}

func (g *RandomGenerator) Generate(skip Coord) ([]Coord, error) {
	candidates := make([]Coord, 0, g.width*g.height-1)
	for y := range g.height {
		for x := range g.width {
			if c := (Coord{X: x, Y: y}); c != skip {
				candidates = append(candidates, c)
			}
		}
	}

	if g.holeCount > len(candidates) {
		return nil, HoleCountError{
			HoleCount: g.holeCount,
			Eligible:  len(candidates),
		}
	}

	// Pick holeCount off the list at random, swapping each pick out
	// of the live range.
	holes := make([]Coord, 0, g.holeCount)
	k := len(candidates)
	for range g.holeCount {
		i := g.rnd.IntN(k)
		holes = append(holes, candidates[i])
		k--
		candidates[i] = candidates[k]
	}
	return holes, nil
}

// FixedGenerator returns a predetermined hole layout, for tests and
// scripted boards.
type FixedGenerator []Coord

func (g FixedGenerator) Generate(skip Coord) ([]Coord, error) {
	holes := make([]Coord, 0, len(g))
	for _, c := range g {
		if c != skip {
			holes = append(holes, c)
		}
	}
	return holes, nil
}
