package service

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/jask/gomoku/internal/board"
	"github.com/jask/gomoku/internal/database"
	"github.com/jask/gomoku/internal/database/repository"
	"github.com/jask/gomoku/internal/game"
)

func setup(t *testing.T) (*sql.DB, *repository.GameRepo) {
	t.Helper()
	db, err := database.OpenMigrated(filepath.Join(t.TempDir(), "gomoku.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db, repository.NewGameRepo(db)
}

func sampleRecord(id string, winner int, reason game.Reason) game.Record {
	start := time.Date(2026, 5, 2, 9, 30, 0, 0, time.UTC)
	return game.Record{
		ID:         id,
		StartedAt:  start,
		FinishedAt: start.Add(90 * time.Second),
		Rules: game.Snapshot{
			Size: 19, GameTime: 10 * time.Minute, MoveTime: 30 * time.Second,
			Player1: "Human", Player2: "Greedy",
		},
		Result: game.Result{GameID: id, Winner: winner, Reason: reason, Moves: 2},
		Moves: []game.Move{
			{Number: 1, Player: 1, Point: board.Point{Row: 9, Col: 9}, Elapsed: 1500 * time.Millisecond},
			{Number: 2, Player: 2, Point: board.Point{Row: 9, Col: 10}, Elapsed: 20 * time.Millisecond},
		},
	}
}

func TestRecorderStoresGameAndMoves(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	db, repo := setup(t)
	rec := &Recorder{DB: db, Games: repo}

	require.NoError(t, rec.Record(ctx, sampleRecord("g-1", 2, game.ReasonFive)))

	g, err := repo.Get(ctx, "g-1")
	require.NoError(t, err)
	require.NotNil(t, g)
	require.Equal(t, 19, g.BoardSize)
	require.Equal(t, "five", g.Reason)
	require.Equal(t, int64(600_000), g.GameTimeMS)
	require.Equal(t, int64(30_000), g.MoveTimeMS)
	require.Equal(t, 2, g.MoveCount)

	moves, err := repo.Moves(ctx, "g-1")
	require.NoError(t, err)
	require.Len(t, moves, 2)
	require.Equal(t, int64(1500), moves[0].ElapsedMS)
	require.Equal(t, 10, moves[1].Col)
}

func TestRecorderDuplicateRollsBack(t *testing.T) {
	ctx := context.Background()
	db, repo := setup(t)
	rec := &Recorder{DB: db, Games: repo}

	require.NoError(t, rec.Record(ctx, sampleRecord("dup", 1, game.ReasonFive)))
	require.Error(t, rec.Record(ctx, sampleRecord("dup", 1, game.ReasonFive)))

	moves, err := repo.Moves(ctx, "dup")
	require.NoError(t, err)
	require.Len(t, moves, 2)
}

func TestRecorderWithoutDB(t *testing.T) {
	require.Error(t, (&Recorder{}).Record(context.Background(), game.Record{}))
}

func TestHistorySummaryAndClear(t *testing.T) {
	ctx := context.Background()
	db, repo := setup(t)
	rec := &Recorder{DB: db, Games: repo}
	hist := &History{DB: db, Games: repo}

	require.NoError(t, rec.Record(ctx, sampleRecord("a", 1, game.ReasonFive)))
	require.NoError(t, rec.Record(ctx, sampleRecord("b", 2, game.ReasonTimeout)))

	sum, err := hist.Summary(ctx, 0)
	require.NoError(t, err)
	require.Len(t, sum.Recent, 2)
	require.Len(t, sum.Standings, 2)
	for _, s := range sum.Standings {
		require.Equal(t, 2, s.Played)
		require.Equal(t, 1, s.Wins)
	}

	require.NoError(t, hist.Clear(ctx))
	sum, err = hist.Summary(ctx, 5)
	require.NoError(t, err)
	require.Empty(t, sum.Recent)
	require.Empty(t, sum.Standings)
}
