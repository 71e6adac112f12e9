package cloud

import (
	"context"
	"fmt"

	"github.com/vovakirdan/foxrun/internal/storage"
)

// Local serves the cloud API from a SQLite store. It backs the HTTP
// handler and single-machine play.
type Local struct {
	store *storage.Store
}

// NewLocal creates a service over store.
func NewLocal(store *storage.Store) *Local {
	return &Local{store: store}
}

func (l *Local) LoadHighScore(ctx context.Context, playerID string) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	score, err := l.store.HighScore(playerID)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return score, nil
}

func (l *Local) SaveHighScore(ctx context.Context, playerID string, score int) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if playerID == "" || score < 0 {
		return ErrInvalid
	}
	if _, err := l.store.SaveHighScore(playerID, score); err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return nil
}

func (l *Local) SubmitEntry(ctx context.Context, e Entry) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if e.Score < 0 {
		return ErrInvalid
	}
	_, err := l.store.AddEntry(storage.LeaderboardEntry{
		PlayerID: e.PlayerID,
		Initials: SanitizeInitials(e.Initials),
		Score:    e.Score,
	})
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return nil
}

func (l *Local) Leaderboard(ctx context.Context, limit int) ([]Entry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	rows, err := l.store.TopEntries(clampLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	entries := make([]Entry, 0, len(rows))
	for _, r := range rows {
		entries = append(entries, Entry{
			PlayerID:  r.PlayerID,
			Initials:  SanitizeInitials(r.Initials),
			Score:     max(r.Score, 0),
			CreatedAt: r.CreatedAt,
		})
	}
	return entries, nil
}
