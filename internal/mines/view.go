package mines

import (
	"fmt"
	"strconv"
	"strings"
)

// CellView is what a player may know about a cell. Mine and AdjacentMines
// stay zero until the cell is revealed.
type CellView struct {
	Revealed      bool
	Flagged       bool
	Mine          bool
	AdjacentMines int
}

func (c CellView) String() string {
	switch {
	case c.Revealed && c.Mine:
		return "*"
	case c.Revealed:
		return strconv.Itoa(c.AdjacentMines)
	case c.Flagged:
		return "F"
	default:
		return "#"
	}
}

// View is a read-only snapshot of a game, taken once per frame.
type View struct {
	Side    int
	Cells   [][]CellView
	Cursor  Point
	Flagged int
	Mines   int
	Over    bool
	Won     bool
}

func (g *Game) View() View {
	cells := make([][]CellView, g.Board.Side)
	for row := range cells {
		cells[row] = make([]CellView, g.Board.Side)
		for col, c := range g.Board.Cells[row] {
			v := CellView{Revealed: c.Revealed, Flagged: c.Flagged}
			if c.Revealed {
				v.Mine = c.Mine
				v.AdjacentMines = c.AdjacentMines
			}
			cells[row][col] = v
		}
	}
	return View{
		Side:    g.Board.Side,
		Cells:   cells,
		Cursor:  g.Selected,
		Flagged: g.Flagged,
		Mines:   g.Board.Mines,
		Over:    g.Over,
		Won:     g.Won,
	}
}

func (v View) FlagsLeft() int {
	return v.Mines - v.Flagged
}

func (v View) Status() string {
	switch {
	case v.Over:
		return "Game Over!"
	case v.Won:
		return "You won!"
	default:
		return ""
	}
}

func (v View) String() string {
	var b strings.Builder
	for row, cells := range v.Cells {
		for col, c := range cells {
			if (Point{Row: row, Col: col}) == v.Cursor {
				fmt.Fprintf(&b, "[%s]", c)
			} else {
				fmt.Fprintf(&b, " %s ", c)
			}
		}
		fmt.Fprint(&b, "\n")
	}
	fmt.Fprintf(&b, "Flags: %d\n", v.FlagsLeft())
	if s := v.Status(); s != "" {
		fmt.Fprintln(&b, s)
	}
	return b.String()
}
