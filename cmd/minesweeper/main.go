package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"

	"github.com/vancomm/minesweeper-tui/internal/config"
	"github.com/vancomm/minesweeper-tui/internal/console"
	"github.com/vancomm/minesweeper-tui/internal/logging"
	"github.com/vancomm/minesweeper-tui/internal/mines"
	"github.com/vancomm/minesweeper-tui/internal/tui"
)

var (
	log = logrus.New()

	configPath string
	headless   bool

	newScreen = tcell.NewScreen
)

func init() {
	const usage = "config file path"
	flag.StringVar(&configPath, "config", "", usage)
	flag.StringVar(&configPath, "c", "", usage+" (shorthand)")
	flag.BoolVar(&headless, "headless", false, "read commands from stdin instead of the keyboard")
}

func runTerminal(ctx context.Context, cfg *config.Config, game *mines.Game) error {
	screen, err := newScreen()
	if err != nil {
		return fmt.Errorf("unable to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("unable to init screen: %w", err)
	}
	defer screen.Fini()

	return tui.New(screen, game, cfg.PollInterval, log).Run(ctx)
}

func main() {
	mainCtx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt, syscall.SIGTERM,
	)
	defer stop()

	flag.Parse()

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatal("unable to load config: ", err)
	}

	if err := logging.Setup(log, cfg, !headless); err != nil {
		log.Fatal("unable to set up logging: ", err)
	}
	mines.Log = log

	log.Info("starting up, mode = ", cfg.Mode)
	log.WithFields(cfg.Fields()).Debug("config")

	game, err := mines.NewGame(mines.DefaultParams(), mines.NewRand(cfg.Seed))
	if err != nil {
		log.Fatal("unable to create game: ", err)
	}

	if headless {
		err = console.New(game, os.Stdout, log).Run(mainCtx, os.Stdin)
	} else {
		err = runTerminal(mainCtx, cfg, game)
	}
	if err != nil {
		// the screen is released by now
		log.SetOutput(os.Stderr)
		log.Fatal("exit reason: ", err)
	}
	log.Info("bye")
}
