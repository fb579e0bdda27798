package main

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"

	"github.com/jask/gomoku/internal/config"
	"github.com/jask/gomoku/internal/database/repository"
	"github.com/jask/gomoku/internal/game"
	"github.com/jask/gomoku/internal/service"
)

func baseConfig() config.Config {
	var cfg config.Config
	cfg.Game.Size = 15
	cfg.Game.GameTimeMinutes = 5
	cfg.Players.One = "Human"
	cfg.Players.Two = "Greedy"
	cfg.Log.Level = "info"
	return cfg
}

func TestApplyFlags(t *testing.T) {
	cfg := baseConfig()
	cmd := &cli.Command{
		Name:  "gomoku",
		Flags: newCommand().Flags,
		Action: func(_ context.Context, c *cli.Command) error {
			applyFlags(&cfg, c)
			return nil
		},
	}
	err := cmd.Run(context.Background(), []string{"gomoku", "--size", "19", "--move-time", "30", "--player2", "Random", "--exact-five"})
	require.NoError(t, err)

	require.Equal(t, 19, cfg.Game.Size)
	require.Equal(t, 5, cfg.Game.GameTimeMinutes)
	require.Equal(t, 30, cfg.Game.MoveTimeSeconds)
	require.Equal(t, "Human", cfg.Players.One)
	require.Equal(t, "Random", cfg.Players.Two)
	require.True(t, cfg.Game.ExactFive)
}

func TestSnapshotRoundTrip(t *testing.T) {
	cfg := baseConfig()
	snap := snapshotFrom(cfg)
	require.Equal(t, 5*time.Minute, snap.GameTime)
	require.Zero(t, snap.MoveTime)

	snap.MoveTime = time.Minute
	snap.Player1 = "Random"
	got := withSnapshot(cfg, snap)
	require.Equal(t, 60, got.Game.MoveTimeSeconds)
	require.Equal(t, "Random", got.Players.One)
	require.Equal(t, cfg.Log, got.Log)
}

func TestSnapshotClampsNegativeTimes(t *testing.T) {
	cfg := baseConfig()
	cfg.Game.GameTimeMinutes = -3
	require.False(t, snapshotFrom(cfg).GameTimingEnabled())
}

func TestRenderSummary(t *testing.T) {
	require.Equal(t, "No games recorded yet.", renderSummary(service.Summary{}))

	out := renderSummary(service.Summary{
		Recent: []repository.Game{{
			ID: "g1", FinishedAt: time.Now(), BoardSize: 15, Player1: "Human", Player2: "Greedy",
			Winner: 2, Reason: string(game.ReasonTimeout), MoveCount: 31, GameTimeMS: 300_000,
		}},
		Standings: []repository.Standing{{Player: "Greedy", Played: 1, Wins: 1}},
	})
	require.Contains(t, out, "white, timeout")
	require.Contains(t, out, "05:00 game, no limit move")
	require.True(t, strings.Contains(out, "Greedy"))
	require.Contains(t, out, "Drawn")
}
