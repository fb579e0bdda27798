package main

import (
	"time"

	"github.com/urfave/cli/v3"

	"github.com/jask/gomoku/internal/config"
	"github.com/jask/gomoku/internal/game"
)

// applyFlags overrides config values with the flags set on the command line.
func applyFlags(cfg *config.Config, c *cli.Command) {
	if c.IsSet("size") {
		cfg.Game.Size = int(c.Int("size"))
	}
	if c.IsSet("game-time") {
		cfg.Game.GameTimeMinutes = int(c.Int("game-time"))
	}
	if c.IsSet("move-time") {
		cfg.Game.MoveTimeSeconds = int(c.Int("move-time"))
	}
	if c.IsSet("player1") {
		cfg.Players.One = c.String("player1")
	}
	if c.IsSet("player2") {
		cfg.Players.Two = c.String("player2")
	}
	if c.IsSet("exact-five") {
		cfg.Game.ExactFive = c.Bool("exact-five")
	}
	if c.IsSet("level") {
		cfg.Log.Level = c.String("level")
	}
}

func snapshotFrom(cfg config.Config) game.Snapshot {
	return game.Snapshot{
		Size:      cfg.Game.Size,
		GameTime:  time.Duration(max(cfg.Game.GameTimeMinutes, 0)) * time.Minute,
		MoveTime:  time.Duration(max(cfg.Game.MoveTimeSeconds, 0)) * time.Second,
		Player1:   cfg.Players.One,
		Player2:   cfg.Players.Two,
		ExactFive: cfg.Game.ExactFive,
	}
}

// withSnapshot copies the rules the session ended with back into cfg.
func withSnapshot(cfg config.Config, s game.Snapshot) config.Config {
	cfg.Game.Size = s.Size
	cfg.Game.GameTimeMinutes = int(s.GameTime / time.Minute)
	cfg.Game.MoveTimeSeconds = int(s.MoveTime / time.Second)
	cfg.Game.ExactFive = s.ExactFive
	cfg.Players.One = s.Player1
	cfg.Players.Two = s.Player2
	return cfg
}
