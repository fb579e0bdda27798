package repository

import (
	"context"
	"database/sql"
	"time"
)

// Execer is satisfied by *sql.DB and *sql.Tx.
type Execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// Game represents a finished game row.
type Game struct {
	ID         string
	StartedAt  time.Time
	FinishedAt time.Time
	BoardSize  int
	Player1    string
	Player2    string
	Winner     int
	Reason     string
	MoveCount  int
	GameTimeMS int64
	MoveTimeMS int64
	ExactFive  bool
}

// Move represents one stone of a game.
type Move struct {
	GameID    string
	Number    int
	Player    int
	Row       int
	Col       int
	ElapsedMS int64
}

// Standing aggregates results per player name. Aborted games are ignored.
type Standing struct {
	Player string
	Played int
	Wins   int
	Losses int
	Draws  int
}
