package tui

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/vancomm/minesweeper-tui/internal/mines"
)

const eventBuffer = 16

type App struct {
	screen tcell.Screen
	game   *mines.Game
	poll   time.Duration
	log    *logrus.Entry
}

// New wraps an initialized screen. The caller keeps ownership of the screen
// and finalizes it after Run returns.
func New(screen tcell.Screen, game *mines.Game, poll time.Duration, log *logrus.Logger) *App {
	return &App{
		screen: screen,
		game:   game,
		poll:   poll,
		log:    log.WithField("session", game.SessionID()),
	}
}

// Run draws frames and feeds key presses to the game, one command per
// frame, until the player quits, ctx is done or the screen stops delivering
// events.
func (a *App) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		events = make(chan tcell.Event, eventBuffer)
		quit   = make(chan struct{})
	)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		a.screen.ChannelEvents(events, quit)
		return nil
	})
	g.Go(func() error {
		defer close(quit)
		return a.loop(gCtx, events)
	})

	return g.Wait()
}

func (a *App) loop(ctx context.Context, events <-chan tcell.Event) error {
	for {
		Draw(a.screen, a.game.View())

		select {
		case <-ctx.Done():
			a.log.Info("interrupted")
			return nil
		case ev, ok := <-events:
			if !ok {
				a.log.Info("event source closed")
				return nil
			}
			if a.handle(ev) {
				a.log.Info("quit")
				return nil
			}
		case <-time.After(a.poll):
		}
	}
}

func (a *App) handle(ev tcell.Event) (quit bool) {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		a.screen.Sync()
	case *tcell.EventKey:
		if c, ok := CommandFor(ev); ok {
			return a.game.Execute(c)
		}
	}
	return false
}
