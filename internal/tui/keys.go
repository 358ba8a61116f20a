package tui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/vancomm/minesweeper-tui/internal/mines"
)

// CommandFor maps a key press to a game command. Ctrl-C is a key like any
// other here, since the terminal runs in raw mode.
func CommandFor(ev *tcell.EventKey) (mines.Command, bool) {
	switch ev.Key() {
	case tcell.KeyUp:
		return mines.MoveUp, true
	case tcell.KeyDown:
		return mines.MoveDown, true
	case tcell.KeyLeft:
		return mines.MoveLeft, true
	case tcell.KeyRight:
		return mines.MoveRight, true
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return mines.Quit, true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'f':
			return mines.ToggleFlag, true
		case 'r':
			return mines.Reveal, true
		case 'q':
			return mines.Quit, true
		}
	}
	return mines.None, false
}
