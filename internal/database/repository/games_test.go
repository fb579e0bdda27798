package repository_test

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/jask/gomoku/internal/database"
	"github.com/jask/gomoku/internal/database/repository"
)

func openDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := database.OpenMigrated(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func insertGame(t *testing.T, repo *repository.GameRepo, db *sql.DB, g repository.Game, moves ...repository.Move) {
	t.Helper()
	ctx := context.Background()
	require.NoError(t, database.WithTx(ctx, db, func(tx *sql.Tx) error {
		if err := repo.Insert(ctx, tx, g); err != nil {
			return err
		}
		return repo.InsertMoves(ctx, tx, g.ID, moves)
	}))
}

func TestGameRepoInsertAndRead(t *testing.T) {
	ctx := context.Background()
	db := openDB(t)
	repo := repository.NewGameRepo(db)

	start := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	g := repository.Game{
		ID: "g1", StartedAt: start, FinishedAt: start.Add(time.Minute), BoardSize: 15,
		Player1: "Human", Player2: "Greedy", Winner: 2, Reason: "five", MoveCount: 2,
		GameTimeMS: 300_000, ExactFive: true,
	}
	insertGame(t, repo, db, g,
		repository.Move{Number: 1, Player: 1, Row: 7, Col: 7, ElapsedMS: 1200},
		repository.Move{Number: 2, Player: 2, Row: 7, Col: 8, ElapsedMS: 5},
	)

	got, err := repo.Get(ctx, "g1")
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, g.Player2, got.Player2)
	require.True(t, got.ExactFive)
	require.True(t, g.FinishedAt.Equal(got.FinishedAt))

	moves, err := repo.Moves(ctx, "g1")
	require.NoError(t, err)
	require.Len(t, moves, 2)
	require.Equal(t, repository.Move{GameID: "g1", Number: 2, Player: 2, Row: 7, Col: 8, ElapsedMS: 5}, moves[1])

	missing, err := repo.Get(ctx, "nope")
	require.NoError(t, err)
	require.Nil(t, missing)
}

func TestGameRepoRecentNewestFirst(t *testing.T) {
	ctx := context.Background()
	db := openDB(t)
	repo := repository.NewGameRepo(db)

	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	for i, id := range []string{"a", "b", "c"} {
		insertGame(t, repo, db, repository.Game{
			ID: id, StartedAt: base, FinishedAt: base.Add(time.Duration(i) * time.Hour),
			BoardSize: 15, Player1: "Human", Player2: "Random", Reason: "draw",
		})
	}

	games, err := repo.Recent(ctx, 2)
	require.NoError(t, err)
	require.Len(t, games, 2)
	require.Equal(t, "c", games[0].ID)
	require.Equal(t, "b", games[1].ID)
}

func TestGameRepoStandings(t *testing.T) {
	ctx := context.Background()
	db := openDB(t)
	repo := repository.NewGameRepo(db)

	now := time.Now().UTC()
	add := func(id, p1, p2 string, winner int, reason string) {
		insertGame(t, repo, db, repository.Game{
			ID: id, StartedAt: now, FinishedAt: now, BoardSize: 15,
			Player1: p1, Player2: p2, Winner: winner, Reason: reason,
		})
	}
	add("1", "Human", "Greedy", 2, "five")
	add("2", "Greedy", "Human", 1, "timeout")
	add("3", "Human", "Random", 1, "five")
	add("4", "Human", "Greedy", 0, "draw")
	add("5", "Human", "Greedy", 0, "aborted")

	got, err := repo.Standings(ctx)
	require.NoError(t, err)
	require.Equal(t, []repository.Standing{
		{Player: "Greedy", Played: 3, Wins: 2, Losses: 0, Draws: 1},
		{Player: "Human", Played: 4, Wins: 1, Losses: 2, Draws: 1},
		{Player: "Random", Played: 1, Wins: 0, Losses: 1, Draws: 0},
	}, got)
}

func TestGameRepoClear(t *testing.T) {
	ctx := context.Background()
	db := openDB(t)
	repo := repository.NewGameRepo(db)

	now := time.Now().UTC()
	insertGame(t, repo, db, repository.Game{ID: "x", StartedAt: now, FinishedAt: now, BoardSize: 19, Player1: "a", Player2: "b", Reason: "five", Winner: 1},
		repository.Move{Number: 1, Player: 1})
	require.NoError(t, repo.Clear(ctx, db))

	games, err := repo.Recent(ctx, 10)
	require.NoError(t, err)
	require.Empty(t, games)
}
