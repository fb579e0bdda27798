package service

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jask/gomoku/internal/database"
	"github.com/jask/gomoku/internal/database/repository"
)

// History answers questions about past games for the CLI.
type History struct {
	DB    *sql.DB
	Games *repository.GameRepo
}

// Summary is the history report: recent games and standings.
type Summary struct {
	Recent    []repository.Game
	Standings []repository.Standing
}

func (h *History) Summary(ctx context.Context, limit int) (Summary, error) {
	if limit <= 0 {
		limit = 10
	}
	recent, err := h.Games.Recent(ctx, limit)
	if err != nil {
		return Summary{}, fmt.Errorf("recent games: %w", err)
	}
	standings, err := h.Games.Standings(ctx)
	if err != nil {
		return Summary{}, fmt.Errorf("standings: %w", err)
	}
	return Summary{Recent: recent, Standings: standings}, nil
}

// Clear wipes all recorded games. It keeps the schema intact.
func (h *History) Clear(ctx context.Context) error {
	if h.DB == nil {
		return fmt.Errorf("history: db not configured")
	}
	if err := database.WithTx(ctx, h.DB, func(tx *sql.Tx) error {
		return h.Games.Clear(ctx, tx)
	}); err != nil {
		return err
	}
	_, _ = h.DB.ExecContext(ctx, "VACUUM")
	return nil
}
