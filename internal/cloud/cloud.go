// Package cloud provides the best-effort high-score and leaderboard service.
//
// The simulation never waits on it: calls go through a Dispatcher that runs
// them in the background and optionally reports completions.
package cloud

import (
	"context"
	"errors"
	"strings"
	"time"
)

// MaxLeaderboard is the largest leaderboard page served.
const MaxLeaderboard = 100

// MaxInitials is the maximum initials length in runes.
const MaxInitials = 5

// AnonymousInitials replaces empty initials.
const AnonymousInitials = "???"

var (
	// ErrUnavailable means the backend could not be reached or failed.
	ErrUnavailable = errors.New("cloud: service unavailable")
	// ErrQueueFull means the dispatcher dropped a call.
	ErrQueueFull = errors.New("cloud: dispatch queue full")
	// ErrInvalid means the request was rejected as malformed.
	ErrInvalid = errors.New("cloud: invalid request")
)

// Entry is one leaderboard submission.
type Entry struct {
	PlayerID  string    `json:"player_id"`
	Initials  string    `json:"initials"`
	Score     int       `json:"score"`
	CreatedAt time.Time `json:"created_at"`
}

// Service is a high-score and leaderboard backend.
type Service interface {
	LoadHighScore(ctx context.Context, playerID string) (int, error)
	SaveHighScore(ctx context.Context, playerID string, score int) error
	SubmitEntry(ctx context.Context, e Entry) error
	Leaderboard(ctx context.Context, limit int) ([]Entry, error)
}

// SanitizeInitials trims whitespace, keeps at most MaxInitials runes and
// falls back to AnonymousInitials when nothing is left.
func SanitizeInitials(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return AnonymousInitials
	}
	r := []rune(s)
	if len(r) > MaxInitials {
		r = r[:MaxInitials]
	}
	return string(r)
}

// clampLimit bounds a requested leaderboard size.
func clampLimit(limit int) int {
	if limit <= 0 || limit > MaxLeaderboard {
		return MaxLeaderboard
	}
	return limit
}
