package repository

import (
	"context"
	"database/sql"
)

// GameRepo handles games and their moves.
type GameRepo struct {
	db *sql.DB
}

func NewGameRepo(db *sql.DB) *GameRepo { return &GameRepo{db: db} }

func (r *GameRepo) Insert(ctx context.Context, ex Execer, g Game) error {
	_, err := ex.ExecContext(ctx, `
	INSERT INTO games(
	 id, started_at, finished_at, board_size, player1, player2, winner, reason, move_count,
	 game_time_ms, move_time_ms, exact_five)
	VALUES(?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?);
	`,
		g.ID, g.StartedAt.UTC(), g.FinishedAt.UTC(), g.BoardSize, g.Player1, g.Player2, g.Winner, g.Reason,
		g.MoveCount, g.GameTimeMS, g.MoveTimeMS, g.ExactFive)
	return err
}

func (r *GameRepo) InsertMoves(ctx context.Context, ex Execer, gameID string, moves []Move) error {
	for _, m := range moves {
		if _, err := ex.ExecContext(ctx, `
		INSERT INTO moves(game_id, number, player, pos_row, pos_col, elapsed_ms)
		VALUES(?, ?, ?, ?, ?, ?);
		`, gameID, m.Number, m.Player, m.Row, m.Col, m.ElapsedMS); err != nil {
			return err
		}
	}
	return nil
}

// Get returns nil when the game does not exist.
func (r *GameRepo) Get(ctx context.Context, id string) (*Game, error) {
	row := r.db.QueryRowContext(ctx, `
	SELECT id, started_at, finished_at, board_size, player1, player2, winner, reason, move_count,
	 game_time_ms, move_time_ms, exact_five
	FROM games WHERE id = ?`, id)
	g, err := scanGame(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &g, nil
}

// Recent lists finished games, newest first.
func (r *GameRepo) Recent(ctx context.Context, limit int) ([]Game, error) {
	rows, err := r.db.QueryContext(ctx, `
	SELECT id, started_at, finished_at, board_size, player1, player2, winner, reason, move_count,
	 game_time_ms, move_time_ms, exact_five
	FROM games ORDER BY finished_at DESC, id LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Game
	for rows.Next() {
		g, err := scanGame(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, g)
	}
	return out, rows.Err()
}

func (r *GameRepo) Moves(ctx context.Context, gameID string) ([]Move, error) {
	rows, err := r.db.QueryContext(ctx, `
	SELECT game_id, number, player, pos_row, pos_col, elapsed_ms
	FROM moves WHERE game_id = ? ORDER BY number`, gameID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Move
	for rows.Next() {
		var m Move
		if err := rows.Scan(&m.GameID, &m.Number, &m.Player, &m.Row, &m.Col, &m.ElapsedMS); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

func (r *GameRepo) Standings(ctx context.Context) ([]Standing, error) {
	rows, err := r.db.QueryContext(ctx, `
	SELECT name,
	 COUNT(*),
	 SUM(CASE WHEN winner = seat THEN 1 ELSE 0 END),
	 SUM(CASE WHEN winner != 0 AND winner != seat THEN 1 ELSE 0 END),
	 SUM(CASE WHEN winner = 0 THEN 1 ELSE 0 END)
	FROM (
	 SELECT player1 AS name, 1 AS seat, winner, reason FROM games
	 UNION ALL
	 SELECT player2 AS name, 2 AS seat, winner, reason FROM games
	)
	WHERE reason != 'aborted'
	GROUP BY name
	ORDER BY 3 DESC, name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Standing
	for rows.Next() {
		var s Standing
		if err := rows.Scan(&s.Player, &s.Played, &s.Wins, &s.Losses, &s.Draws); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// Clear deletes every game and move.
func (r *GameRepo) Clear(ctx context.Context, ex Execer) error {
	if _, err := ex.ExecContext(ctx, `DELETE FROM moves`); err != nil {
		return err
	}
	_, err := ex.ExecContext(ctx, `DELETE FROM games`)
	return err
}

type scanner interface {
	Scan(dest ...any) error
}

func scanGame(s scanner) (Game, error) {
	var g Game
	err := s.Scan(&g.ID, &g.StartedAt, &g.FinishedAt, &g.BoardSize, &g.Player1, &g.Player2, &g.Winner,
		&g.Reason, &g.MoveCount, &g.GameTimeMS, &g.MoveTimeMS, &g.ExactFive)
	return g, err
}
