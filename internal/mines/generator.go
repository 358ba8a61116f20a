package mines

import (
	"fmt"
	"hash/maphash"
	"math/rand/v2"
)

const (
	DefaultSide  = 9
	DefaultMines = 10
)

type Params struct {
	Side, Mines int
}

func DefaultParams() Params {
	return Params{Side: DefaultSide, Mines: DefaultMines}
}

func (p Params) Unpack() (side int, mines int) {
	return p.Side, p.Mines
}

// Validate reports params that would leave mine placement without a
// solution: at least one cell must stay free for the first reveal.
func (p Params) Validate() error {
	if p.Side < 1 {
		return fmt.Errorf("invalid board side %d", p.Side)
	}
	if p.Mines < 0 {
		return fmt.Errorf("invalid mine count %d", p.Mines)
	}
	if p.Mines > p.Side*p.Side-1 {
		return fmt.Errorf(
			"too many mines for a %dx%d board (mines = %d, max = %d)",
			p.Side, p.Side, p.Mines, p.Side*p.Side-1,
		)
	}
	return nil
}

// NewRand returns a PCG source for seed, or a randomly seeded one when seed
// is zero.
func NewRand(seed uint64) *rand.Rand {
	if seed == 0 {
		return rand.New(rand.NewPCG(
			new(maphash.Hash).Sum64(), new(maphash.Hash).Sum64(),
		))
	}
	return rand.New(rand.NewPCG(seed, seed))
}

// PlaceMines mines exactly b.Mines distinct cells chosen uniformly at
// random, never the safe cell.
func (b *Board) PlaceMines(safe Point, r *rand.Rand) {
	for placed := 0; placed < b.Mines; {
		p := Point{Row: r.IntN(b.Side), Col: r.IntN(b.Side)}
		if p == safe {
			continue
		}
		c := b.Cell(p)
		if c.Mine {
			continue
		}
		c.Mine = true
		placed++
	}
}

// UpdateAdjacentMines stores the Moore neighborhood mine count of every
// safe cell. Must follow PlaceMines.
func (b *Board) UpdateAdjacentMines() {
	for row := range b.Side {
		for col := range b.Side {
			p := Point{Row: row, Col: col}
			c := b.Cell(p)
			if c.Mine {
				continue
			}
			count := 0
			for n := range b.Neighbors(p) {
				if b.Cell(n).Mine {
					count++
				}
			}
			c.AdjacentMines = count
		}
	}
}
