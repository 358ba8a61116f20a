// Package console drives a game from a line-oriented text script, one
// command per line, and prints the board as text.
package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/vancomm/minesweeper-tui/internal/mines"
)

type Console struct {
	game *mines.Game
	out  io.Writer
	log  *logrus.Entry
}

func New(game *mines.Game, out io.Writer, log *logrus.Logger) *Console {
	return &Console{
		game: game,
		out:  out,
		log:  log.WithField("session", game.SessionID()),
	}
}

// Run executes commands read from in until quit, EOF or ctx is done, then
// prints the final board. Malformed lines are reported on out and skipped.
//
// Lines are read on a separate goroutine so that cancelling ctx ends Run
// even while in blocks. That goroutine returns once in does.
func (c *Console) Run(ctx context.Context, in io.Reader) error {
	var (
		lines   = make(chan string)
		readErr = make(chan error, 1)
		done    = make(chan struct{})
	)
	defer close(done)

	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-done:
				return
			}
		}
		readErr <- scanner.Err()
	}()

	for lineNo := 1; ; lineNo++ {
		if ctx.Err() != nil {
			c.log.Info("interrupted")
			return c.show()
		}

		var (
			line string
			ok   bool
		)
		select {
		case <-ctx.Done():
			c.log.Info("interrupted")
			return c.show()
		case line, ok = <-lines:
		}
		if !ok {
			if err := <-readErr; err != nil {
				return fmt.Errorf("unable to read commands: %w", err)
			}
			return c.show()
		}

		quit, err := c.exec(lineNo, line)
		if err != nil {
			return err
		}
		if quit {
			return c.show()
		}
	}
}

// exec runs a single script line and reports whether it asked to quit.
func (c *Console) exec(lineNo int, line string) (quit bool, err error) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return false, nil
	}

	instr, err := parseLine(line)
	if err != nil {
		c.log.WithFields(logrus.Fields{
			"line":  lineNo,
			"input": line,
		}).Warn(err)
		_, err = fmt.Fprintf(c.out, "error: line %d: %s: %q\n", lineNo, err, line)
		return false, err
	}

	if instr.name == show {
		return false, c.show()
	}

	for range instr.times {
		if c.game.Execute(instr.command) {
			return true, nil
		}
	}
	return false, nil
}

func (c *Console) show() error {
	_, err := io.WriteString(c.out, c.game.View().String())
	return err
}
