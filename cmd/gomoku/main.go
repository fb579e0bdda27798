package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/jask/gomoku/internal/config"
	"github.com/jask/gomoku/internal/database"
	"github.com/jask/gomoku/internal/database/repository"
	"github.com/jask/gomoku/internal/game"
	"github.com/jask/gomoku/internal/logging"
	"github.com/jask/gomoku/internal/players"
	"github.com/jask/gomoku/internal/service"
	"github.com/jask/gomoku/internal/tui"
)

func main() {
	if err := newCommand().Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newCommand() *cli.Command {
	playFlags := []cli.Flag{
		&cli.IntFlag{Name: "size", Aliases: []string{"s"}, Usage: "intersections per side (15 or 19)"},
		&cli.IntFlag{Name: "game-time", Usage: "minutes per player per game, 0 for no limit"},
		&cli.IntFlag{Name: "move-time", Usage: "seconds per move, 0 for no limit"},
		&cli.StringFlag{Name: "player1", Usage: "black player"},
		&cli.StringFlag{Name: "player2", Usage: "white player"},
		&cli.BoolFlag{Name: "exact-five", Usage: "overlines do not win"},
		&cli.StringFlag{Name: "level", Aliases: []string{"l"}, Usage: "log file level"},
	}
	return &cli.Command{
		Name:   "gomoku",
		Usage:  "five in a row in the terminal",
		Flags:  playFlags,
		Action: play,
		Commands: []*cli.Command{
			{
				Name:   "play",
				Usage:  "start the board (default)",
				Flags:  playFlags,
				Action: play,
			},
			{
				Name:  "history",
				Usage: "show recent games and standings",
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "limit", Aliases: []string{"n"}, Value: 10, Usage: "number of recent games"},
					&cli.BoolFlag{Name: "clear", Usage: "delete all recorded games"},
				},
				Action: history,
			},
			{
				Name:   "players",
				Usage:  "list available players",
				Action: listPlayers,
			},
		},
	}
}

var errNoTerminal = errors.New("the board needs an interactive terminal, try gomoku history")

func play(ctx context.Context, c *cli.Command) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errNoTerminal
	}
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	applyFlags(&cfg, c)

	registry := players.Default()
	for _, name := range []string{cfg.Players.One, cfg.Players.Two} {
		if _, err := registry.New(name); err != nil {
			return err
		}
	}

	pane := logging.NewPaneWriter(256)
	log, closeLog, err := logging.New(logging.Options{Level: cfg.Log.Level, Path: cfg.Log.Path, Pane: pane})
	if err != nil {
		return err
	}
	defer closeLog()

	db, err := database.OpenMigrated(cfg.Database.Path)
	if err != nil {
		return err
	}
	defer db.Close()

	settings := game.NewSettings(snapshotFrom(cfg))
	ctrl := game.New(settings, registry, log,
		game.WithRecorder(&service.Recorder{DB: db, Games: repository.NewGameRepo(db)}))

	app := tui.New(ctx, tui.Options{
		Controller: ctrl,
		Registry:   registry,
		Logger:     log,
		Logs:       pane.Lines(),
	})
	_, runErr := tea.NewProgram(app, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	app.Close()

	if err := ctrl.Stop(); err != nil && !errors.Is(err, game.ErrNotRunning) {
		log.Warnf("stop game: %v", err)
	}
	if err := config.Save(withSnapshot(cfg, settings.Snapshot())); err != nil {
		log.Warnf("save config: %v", err)
	}
	return runErr
}

func history(ctx context.Context, c *cli.Command) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	db, err := database.OpenMigrated(cfg.Database.Path)
	if err != nil {
		return err
	}
	defer db.Close()

	h := &service.History{DB: db, Games: repository.NewGameRepo(db)}
	if c.Bool("clear") {
		if err := h.Clear(ctx); err != nil {
			return err
		}
		fmt.Println("history cleared")
		return nil
	}
	sum, err := h.Summary(ctx, int(c.Int("limit")))
	if err != nil {
		return err
	}
	fmt.Println(renderSummary(sum))
	return nil
}

func listPlayers(ctx context.Context, c *cli.Command) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	for _, name := range players.Default().Available() {
		var seats []string
		if name == cfg.Players.One {
			seats = append(seats, "black")
		}
		if name == cfg.Players.Two {
			seats = append(seats, "white")
		}
		if len(seats) > 0 {
			fmt.Printf("%s (%s)\n", name, joinSeats(seats))
			continue
		}
		fmt.Println(name)
	}
	return nil
}

func joinSeats(seats []string) string {
	if len(seats) == 2 {
		return seats[0] + ", " + seats[1]
	}
	return seats[0]
}
