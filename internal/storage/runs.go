package storage

import (
	"fmt"
	"time"
)

// RunRecord is one finished run in the local history.
type RunRecord struct {
	ID         int64
	PlayerID   string
	Score      int
	OrbsEarned int
	Ticks      int
	CreatedAt  time.Time
}

// SaveRun records a finished run. Returns the ID of the inserted record.
func (s *Store) SaveRun(r RunRecord) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO runs (player_id, score, orbs_earned, ticks) VALUES (?, ?, ?, ?)",
		r.PlayerID, r.Score, r.OrbsEarned, r.Ticks,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save run: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// RecentRuns returns the player's latest runs, newest first.
func (s *Store) RecentRuns(playerID string, limit int) ([]RunRecord, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, player_id, score, orbs_earned, ticks, created_at
		 FROM runs
		 WHERE player_id = ?
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		playerID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []RunRecord
	for rows.Next() {
		var r RunRecord
		var createdAt any
		if err := rows.Scan(&r.ID, &r.PlayerID, &r.Score, &r.OrbsEarned, &r.Ticks, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.CreatedAt = parseTime(createdAt)
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return runs, nil
}

// RunStats contains aggregated statistics for a player's runs.
type RunStats struct {
	PlayerID   string
	Runs       int
	BestScore  int
	AvgScore   float64
	TotalOrbs  int64
	LastPlayed time.Time
}

// GetRunStats retrieves aggregated statistics for a player.
func (s *Store) GetRunStats(playerID string) (*RunStats, error) {
	stats := &RunStats{PlayerID: playerID}

	var lastPlayed any
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0),
		        COALESCE(SUM(orbs_earned), 0), MAX(created_at)
		 FROM runs WHERE player_id = ?`,
		playerID,
	).Scan(&stats.Runs, &stats.BestScore, &stats.AvgScore, &stats.TotalOrbs, &lastPlayed)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get run stats: %w", err)
	}
	stats.LastPlayed = parseTime(lastPlayed)

	return stats, nil
}

// ClearRuns deletes the player's run history.
func (s *Store) ClearRuns(playerID string) error {
	_, err := s.db.Exec("DELETE FROM runs WHERE player_id = ?", playerID)
	if err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}
