package tui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/vancomm/minesweeper-tui/internal/mines"
)

const (
	cellWidth = 3
	rowHeight = 2
	help      = "arrows move  f flag  r reveal  q quit"
)

var (
	styleDefault = tcell.StyleDefault
	styleHidden  = styleDefault.Foreground(tcell.ColorGray)
	styleFlag    = styleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleMine    = styleDefault.Foreground(tcell.ColorRed).Bold(true)
	styleCursor  = styleDefault.Bold(true)

	digitColors = [...]tcell.Color{
		tcell.ColorGray,
		tcell.ColorBlue,
		tcell.ColorGreen,
		tcell.ColorRed,
		tcell.ColorNavy,
		tcell.ColorMaroon,
		tcell.ColorTeal,
		tcell.ColorPurple,
		tcell.ColorWhite,
	}
)

func cellStyle(c mines.CellView) tcell.Style {
	switch {
	case c.Revealed && c.Mine:
		return styleMine
	case c.Revealed:
		return styleDefault.Foreground(digitColors[c.AdjacentMines])
	case c.Flagged:
		return styleFlag
	default:
		return styleHidden
	}
}

func drawText(s tcell.Screen, x, y int, style tcell.Style, text string) {
	for _, r := range text {
		s.SetContent(x, y, r, nil, style)
		x += runewidth.RuneWidth(r)
	}
}

func drawCentered(s tcell.Screen, y int, style tcell.Style, text string) {
	w, _ := s.Size()
	drawText(s, max(0, (w-runewidth.StringWidth(text))/2), y, style, text)
}

// Draw renders one frame of v centered on s: a flag counter above the grid,
// status and key help below it.
func Draw(s tcell.Screen, v mines.View) {
	s.Clear()

	w, h := s.Size()
	boardW := v.Side * cellWidth
	boardH := v.Side*rowHeight - 1
	x0 := max(0, (w-boardW)/2)
	y0 := max(2, (h-boardH)/2)

	drawCentered(s, y0-2, styleDefault, fmt.Sprintf("Flags: %d", v.FlagsLeft()))

	for row, cells := range v.Cells {
		for col, c := range cells {
			x, y := x0+col*cellWidth, y0+row*rowHeight
			left, right := ' ', ' '
			if (mines.Point{Row: row, Col: col}) == v.Cursor {
				left, right = '[', ']'
			}
			s.SetContent(x, y, left, nil, styleCursor)
			s.SetContent(x+1, y, rune(c.String()[0]), nil, cellStyle(c))
			s.SetContent(x+2, y, right, nil, styleCursor)
		}
	}

	if status := v.Status(); status != "" {
		style := styleFlag
		if v.Over {
			style = styleMine
		}
		drawCentered(s, y0+boardH+1, style, status)
	}
	drawCentered(s, y0+boardH+2, styleHidden, help)

	s.Show()
}
