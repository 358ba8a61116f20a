package mines

import (
	"math/rand/v2"

	"github.com/gammazero/deque"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var Log = logrus.New()

type Game struct {
	Board    *Board
	Over     bool /* a mine was revealed */
	Won      bool /* flag count reached mine count */
	Selected Point
	Flagged  int

	firstReveal bool
	sessionID   string
	rnd         *rand.Rand
	log         *logrus.Entry
}

func NewGame(params Params, r *rand.Rand) (*Game, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	sessionID := uuid.NewString()
	g := &Game{
		Board:       NewBoard(params.Unpack()),
		firstReveal: true,
		sessionID:   sessionID,
		rnd:         r,
		log:         Log.WithField("session", sessionID),
	}
	g.log.WithFields(logrus.Fields{
		"side":  params.Side,
		"mines": params.Mines,
	}).Info("new game")
	return g, nil
}

// NewGameWithBoard starts a game on a board whose mines are already placed
// and counted. The first reveal leaves the layout as it is.
func NewGameWithBoard(b *Board) *Game {
	sessionID := uuid.NewString()
	return &Game{
		Board:     b,
		sessionID: sessionID,
		log:       Log.WithField("session", sessionID),
	}
}

func (g *Game) SessionID() string {
	return g.sessionID
}

// RevealCell opens the cell at p. Opening a cell with no adjacent mines
// cascades into its neighbors until numbered cells or the edge are reached.
// Flagged and already revealed cells are left alone.
func (g *Game) RevealCell(p Point) {
	var todo deque.Deque[Point]
	todo.PushBack(p)
	for todo.Len() > 0 {
		q := todo.PopBack()
		c := g.Board.Cell(q)
		if c.Revealed || c.Flagged {
			continue
		}
		c.Revealed = true
		if c.Mine {
			g.Over = true
			g.log.WithFields(logrus.Fields{
				"row": q.Row,
				"col": q.Col,
			}).Info("mine revealed, game over")
			continue
		}
		if c.AdjacentMines == 0 {
			for n := range g.Board.Neighbors(q) {
				todo.PushBack(n)
			}
		}
	}
}

// RevealAdjacentCells chords the revealed numbered cell at p: once as many
// neighbors are flagged as the cell counts mines, every unflagged neighbor
// is revealed. Flags are trusted, so a wrong flag detonates a mine.
func (g *Game) RevealAdjacentCells(p Point) {
	c := g.Board.Cell(p)
	if !c.Revealed || c.AdjacentMines == 0 {
		return
	}
	flagged := 0
	for n := range g.Board.Neighbors(p) {
		if g.Board.Cell(n).Flagged {
			flagged++
		}
	}
	if flagged != c.AdjacentMines {
		return
	}
	for n := range g.Board.Neighbors(p) {
		if !g.Board.Cell(n).Flagged {
			g.RevealCell(n)
		}
	}
}

// ToggleFlag flips the flag on the selected cell. The game counts as won
// as soon as the number of flags equals the number of mines, whether or not
// the flags sit on mines.
func (g *Game) ToggleFlag() {
	c := g.Board.Cell(g.Selected)
	if c.Revealed {
		return
	}
	c.Flagged = !c.Flagged
	if c.Flagged {
		g.Flagged++
	} else {
		g.Flagged--
	}
	if g.Flagged == g.Board.Mines && !g.Won {
		g.Won = true
		g.log.WithField("flagged", g.Flagged).Info("all flags placed, game won")
	}
}

// Reveal acts on the selected cell. The first call lays the mines out
// around it so that the first reveal is never a mine.
func (g *Game) Reveal() {
	p := g.Selected
	if g.firstReveal {
		g.firstReveal = false
		g.Board.PlaceMines(p, g.rnd)
		g.Board.UpdateAdjacentMines()
		g.log.WithFields(logrus.Fields{
			"row": p.Row,
			"col": p.Col,
		}).Info("mines placed")
	}
	if g.Board.Cell(p).Revealed {
		g.RevealAdjacentCells(p)
	} else {
		g.RevealCell(p)
	}
}

func (g *Game) Move(dRow, dCol int) {
	p := Point{Row: g.Selected.Row + dRow, Col: g.Selected.Col + dCol}
	if g.Board.InBounds(p) {
		g.Selected = p
	}
}

// Execute applies c and reports whether it asks to end the session. Game
// over and game won do not stop command processing.
func (g *Game) Execute(c Command) (quit bool) {
	g.log.WithFields(logrus.Fields{
		"command": c.String(),
		"row":     g.Selected.Row,
		"col":     g.Selected.Col,
	}).Debug("command")

	switch c {
	case MoveUp:
		g.Move(-1, 0)
	case MoveDown:
		g.Move(+1, 0)
	case MoveLeft:
		g.Move(0, -1)
	case MoveRight:
		g.Move(0, +1)
	case ToggleFlag:
		g.ToggleFlag()
	case Reveal:
		g.Reveal()
	case Quit:
		return true
	}
	return false
}
