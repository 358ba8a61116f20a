package mines

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParamsValidate(t *testing.T) {
	tests := []struct {
		name   string
		params Params
		valid  bool
	}{
		{name: "default", params: DefaultParams(), valid: true},
		{name: "no mines", params: Params{Side: 3, Mines: 0}, valid: true},
		{name: "one safe cell", params: Params{Side: 3, Mines: 8}, valid: true},
		{name: "no safe cell", params: Params{Side: 3, Mines: 9}, valid: false},
		{name: "empty board", params: Params{Side: 0, Mines: 0}, valid: false},
		{name: "negative mines", params: Params{Side: 3, Mines: -1}, valid: false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			err := test.params.Validate()
			if test.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestNewBoard(t *testing.T) {
	b := NewBoard(9, 10)

	assert.Equal(t, 9, b.Side)
	assert.Equal(t, 10, b.Mines)
	assert.Len(t, b.Cells, 9)
	for _, row := range b.Cells {
		assert.Len(t, row, 9)
		for _, c := range row {
			assert.Equal(t, Cell{}, c)
		}
	}
}

func TestPlaceMines(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		params Params
	}{
		{name: "9x9(10)", params: Params{Side: 9, Mines: 10}},
		{name: "9x9(35)", params: Params{Side: 9, Mines: 35}},
		{name: "9x9(80)", params: Params{Side: 9, Mines: 80}},
		{name: "16x16(40)", params: Params{Side: 16, Mines: 40}},
		{name: "1x1(0)", params: Params{Side: 1, Mines: 0}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			r := rand.New(rand.NewPCG(1, 2))
			for sr := range test.params.Side {
				for sc := range test.params.Side {
					safe := Point{sr, sc}
					b := NewBoard(test.params.Unpack())
					b.PlaceMines(safe, r)
					assert.False(t, b.Cell(safe).Mine, "%s @ %d:%d", test.name, sr, sc)
					assert.Equal(t, test.params.Mines, b.MineCount(), "%s @ %d:%d", test.name, sr, sc)
				}
			}
		})
	}
}

func naiveAdjacentMines(b *Board, row, col int) (count int) {
	for r := row - 1; r <= row+1; r++ {
		for c := col - 1; c <= col+1; c++ {
			if r == row && c == col {
				continue
			}
			if r < 0 || r >= b.Side || c < 0 || c >= b.Side {
				continue
			}
			if b.Cells[r][c].Mine {
				count++
			}
		}
	}
	return
}

func TestUpdateAdjacentMines(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	for range 20 {
		b := NewBoard(9, 30)
		b.PlaceMines(Point{r.IntN(9), r.IntN(9)}, r)
		b.UpdateAdjacentMines()

		for row := range b.Side {
			for col := range b.Side {
				c := b.Cells[row][col]
				if c.Mine {
					continue
				}
				assert.Equal(t, naiveAdjacentMines(b, row, col), c.AdjacentMines,
					"cell %d:%d", row, col)
			}
		}
	}
}

func TestNeighbors(t *testing.T) {
	b := NewBoard(3, 0)

	count := func(p Point) (n int) {
		for range b.Neighbors(p) {
			n++
		}
		return
	}

	assert.Equal(t, 3, count(Point{0, 0}))
	assert.Equal(t, 5, count(Point{0, 1}))
	assert.Equal(t, 8, count(Point{1, 1}))
	assert.Equal(t, 3, count(Point{2, 2}))
}

func TestNewRand(t *testing.T) {
	a, b := NewRand(42), NewRand(42)
	for range 10 {
		assert.Equal(t, a.Uint64(), b.Uint64())
	}
	assert.NotNil(t, NewRand(0))
}
