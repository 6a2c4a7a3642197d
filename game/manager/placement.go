package manager

import (
	"canvas-snake/game/types"

	"golang.org/x/exp/rand"
)

// DefaultMaxAttempts bounds the random sampling before falling back to a scan.
const DefaultMaxAttempts = 64

// PlacementStrategy picks a free cell on grid. occupied reports cells that
// must not be chosen. The boolean is false when the strategy found nothing.
type PlacementStrategy interface {
	Place(grid types.Grid, occupied func(types.Point) bool) (types.Point, bool)
}

// RandomPlacement samples uniformly random cells, giving up after MaxAttempts.
type RandomPlacement struct {
	Rand        *rand.Rand
	MaxAttempts int
}

func NewRandomPlacement(rng *rand.Rand) *RandomPlacement {
	return &RandomPlacement{
		Rand:        rng,
		MaxAttempts: DefaultMaxAttempts,
	}
}

func (rp *RandomPlacement) Place(grid types.Grid, occupied func(types.Point) bool) (types.Point, bool) {
	cols, rows := grid.Columns(), grid.Rows()
	if cols <= 0 || rows <= 0 {
		return types.Point{}, false
	}
	for i := 0; i < rp.MaxAttempts; i++ {
		p := grid.Cell(rp.Rand.Intn(cols), rp.Rand.Intn(rows))
		if !occupied(p) {
			return p, true
		}
	}
	return types.Point{}, false
}

// ScanPlacement walks every cell in row-major order, starting at a random
// cell when Rand is set and at the origin otherwise, and returns the first
// free one.
type ScanPlacement struct {
	Rand *rand.Rand
}

func (sp *ScanPlacement) Place(grid types.Grid, occupied func(types.Point) bool) (types.Point, bool) {
	total := grid.Cells()
	if total <= 0 {
		return types.Point{}, false
	}
	start := 0
	if sp.Rand != nil {
		start = sp.Rand.Intn(total)
	}
	cols := grid.Columns()
	for i := 0; i < total; i++ {
		idx := (start + i) % total
		p := grid.Cell(idx%cols, idx/cols)
		if !occupied(p) {
			return p, true
		}
	}
	return types.Point{}, false
}

// FallbackPlacement asks each strategy in turn and keeps the first answer.
type FallbackPlacement []PlacementStrategy

func (fp FallbackPlacement) Place(grid types.Grid, occupied func(types.Point) bool) (types.Point, bool) {
	for _, s := range fp {
		if p, ok := s.Place(grid, occupied); ok {
			return p, true
		}
	}
	return types.Point{}, false
}

// DefaultPlacement samples randomly and scans when sampling keeps hitting the
// snake, so placement always terminates.
func DefaultPlacement(rng *rand.Rand) PlacementStrategy {
	return FallbackPlacement{
		NewRandomPlacement(rng),
		&ScanPlacement{Rand: rng},
	}
}
