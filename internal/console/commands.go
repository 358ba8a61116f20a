package console

import (
	"errors"
	"strconv"
	"strings"

	"github.com/vancomm/minesweeper-tui/internal/mines"
)

// show is handled by the console itself and never reaches the game.
const show = "show"

var aliases = map[string]string{
	"u":  "up",
	"d":  "down",
	"l":  "left",
	"rt": "right",
	"f":  "flag",
	"o":  "open",
	"r":  "open",
	"g":  show,
	"q":  "quit",
}

var commands = map[string]mines.Command{
	"up":    mines.MoveUp,
	"down":  mines.MoveDown,
	"left":  mines.MoveLeft,
	"right": mines.MoveRight,
	"flag":  mines.ToggleFlag,
	"open":  mines.Reveal,
	"quit":  mines.Quit,
}

// Maps known commands to the maximum number of arguments
var commandNargs = map[string]int{
	"up":    1,
	"down":  1,
	"left":  1,
	"right": 1,
	"flag":  0,
	"open":  0,
	"quit":  0,
	show:    0,
}

type instruction struct {
	name    string
	command mines.Command
	times   int
}

func parseTimes(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, errors.New("argument must be an int")
	}
	if n < 1 {
		return 0, errors.New("argument must be positive")
	}
	return n, nil
}

func parseLine(line string) (instr instruction, err error) {
	parts := strings.Fields(line)
	name := strings.ToLower(parts[0])
	if full, ok := aliases[name]; ok {
		name = full
	}
	nargs, ok := commandNargs[name]
	if !ok {
		return instr, errors.New("unknown command")
	}
	if len(parts)-1 > nargs {
		return instr, errors.New("invalid number of arguments")
	}
	instr = instruction{name: name, command: commands[name], times: 1}
	if len(parts) == 2 {
		if instr.times, err = parseTimes(parts[1]); err != nil {
			return instruction{}, err
		}
	}
	return instr, nil
}
