package storage

import (
	"database/sql"
	"fmt"
	"time"
)

// LeaderboardEntry is one submitted score.
type LeaderboardEntry struct {
	ID        int64
	PlayerID  string
	Initials  string
	Score     int
	CreatedAt time.Time
}

// AddEntry records a leaderboard submission.
func (s *Store) AddEntry(e LeaderboardEntry) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO leaderboard (player_id, initials, score) VALUES (?, ?, ?)",
		e.PlayerID, e.Initials, e.Score,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save leaderboard entry: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// TopEntries returns the best leaderboard entries, highest score first.
// Ties keep submission order.
func (s *Store) TopEntries(limit int) ([]LeaderboardEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, player_id, initials, score, created_at
		 FROM leaderboard
		 ORDER BY score DESC, id ASC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query leaderboard: %w", err)
	}
	defer rows.Close()

	var entries []LeaderboardEntry
	for rows.Next() {
		var e LeaderboardEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.PlayerID, &e.Initials, &e.Score, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// HighScore returns the best score recorded for a player.
// Returns 0 if the player has none.
func (s *Store) HighScore(playerID string) (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow(
		"SELECT score FROM high_scores WHERE player_id = ?",
		playerID,
	).Scan(&score)

	if err == sql.ErrNoRows {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}

	return int(score.Int64), nil
}

// SaveHighScore stores score for a player unless a higher one is already
// recorded. Returns the stored best.
func (s *Store) SaveHighScore(playerID string, score int) (int, error) {
	_, err := s.db.Exec(
		`INSERT INTO high_scores (player_id, score) VALUES (?, ?)
		 ON CONFLICT(player_id) DO UPDATE SET
		   score = MAX(high_scores.score, excluded.score),
		   updated_at = CURRENT_TIMESTAMP`,
		playerID, score,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save high score: %w", err)
	}
	return s.HighScore(playerID)
}
