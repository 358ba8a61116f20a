package mines

import "iter"

type Point struct {
	Row, Col int
}

type Cell struct {
	Mine     bool
	Revealed bool
	Flagged  bool
	// Only meaningful for cells that are not mines.
	AdjacentMines int
}

// Board is a square grid of cells. Mines are absent until PlaceMines.
type Board struct {
	Cells [][]Cell
	Mines int
	Side  int
}

func NewBoard(side, mines int) *Board {
	cells := make([][]Cell, side)
	for row := range cells {
		cells[row] = make([]Cell, side)
	}
	return &Board{
		Cells: cells,
		Mines: mines,
		Side:  side,
	}
}

func (b *Board) InBounds(p Point) bool {
	return 0 <= p.Row && p.Row < b.Side && 0 <= p.Col && p.Col < b.Side
}

func (b *Board) Cell(p Point) *Cell {
	return &b.Cells[p.Row][p.Col]
}

// Neighbors yields the in-bounds cells of the Moore neighborhood of p.
func (b *Board) Neighbors(p Point) iter.Seq[Point] {
	return func(yield func(Point) bool) {
		for dr := -1; dr <= 1; dr++ {
			for dc := -1; dc <= 1; dc++ {
				if dr == 0 && dc == 0 {
					continue
				}
				n := Point{Row: p.Row + dr, Col: p.Col + dc}
				if !b.InBounds(n) {
					continue
				}
				if !yield(n) {
					return
				}
			}
		}
	}
}

func (b *Board) MineCount() (count int) {
	for _, row := range b.Cells {
		for _, c := range row {
			if c.Mine {
				count++
			}
		}
	}
	return
}
