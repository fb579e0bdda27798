package service

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jask/gomoku/internal/database"
	"github.com/jask/gomoku/internal/database/repository"
	"github.com/jask/gomoku/internal/game"
)

// Recorder stores finished games. It implements game.Recorder.
type Recorder struct {
	DB    *sql.DB
	Games *repository.GameRepo
}

func (r *Recorder) Record(ctx context.Context, rec game.Record) error {
	if r.DB == nil || r.Games == nil {
		return fmt.Errorf("recorder: db not configured")
	}
	g := repository.Game{
		ID:         rec.ID,
		StartedAt:  rec.StartedAt,
		FinishedAt: rec.FinishedAt,
		BoardSize:  rec.Rules.Size,
		Player1:    rec.Rules.Player1,
		Player2:    rec.Rules.Player2,
		Winner:     rec.Result.Winner,
		Reason:     string(rec.Result.Reason),
		MoveCount:  len(rec.Moves),
		GameTimeMS: rec.Rules.GameTime.Milliseconds(),
		MoveTimeMS: rec.Rules.MoveTime.Milliseconds(),
		ExactFive:  rec.Rules.ExactFive,
	}
	moves := make([]repository.Move, 0, len(rec.Moves))
	for _, m := range rec.Moves {
		moves = append(moves, repository.Move{
			GameID:    rec.ID,
			Number:    m.Number,
			Player:    m.Player,
			Row:       m.Point.Row,
			Col:       m.Point.Col,
			ElapsedMS: m.Elapsed.Milliseconds(),
		})
	}
	return database.WithTx(ctx, r.DB, func(tx *sql.Tx) error {
		if err := r.Games.Insert(ctx, tx, g); err != nil {
			return fmt.Errorf("insert game %s: %w", g.ID, err)
		}
		if err := r.Games.InsertMoves(ctx, tx, g.ID, moves); err != nil {
			return fmt.Errorf("insert moves for %s: %w", g.ID, err)
		}
		return nil
	})
}
