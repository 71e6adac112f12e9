package cloud

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"
)

type highScoreBody struct {
	PlayerID string `json:"player_id,omitempty"`
	Score    int    `json:"score"`
}

type leaderboardBody struct {
	Entries []Entry `json:"entries"`
}

type errorBody struct {
	Error string `json:"error"`
}

// NewHandler exposes svc over HTTP:
//
//	GET  /v1/players/{id}/highscore
//	PUT  /v1/players/{id}/highscore   {"score": n}
//	GET  /v1/leaderboard?limit=n
//	POST /v1/leaderboard              {"player_id", "initials", "score"}
func NewHandler(svc Service, logger *log.Logger) http.Handler {
	if logger == nil {
		logger = log.Default()
	}
	h := &handler{svc: svc, logger: logger}
	mux := http.NewServeMux()
	mux.HandleFunc("GET /v1/players/{id}/highscore", h.getHighScore)
	mux.HandleFunc("PUT /v1/players/{id}/highscore", h.putHighScore)
	mux.HandleFunc("GET /v1/leaderboard", h.getLeaderboard)
	mux.HandleFunc("POST /v1/leaderboard", h.postEntry)
	return mux
}

type handler struct {
	svc    Service
	logger *log.Logger
}

func (h *handler) getHighScore(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	score, err := h.svc.LoadHighScore(r.Context(), id)
	if err != nil {
		h.fail(w, err)
		return
	}
	h.reply(w, http.StatusOK, highScoreBody{PlayerID: id, Score: score})
}

func (h *handler) putHighScore(w http.ResponseWriter, r *http.Request) {
	var body highScoreBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		h.fail(w, fmt.Errorf("%w: %v", ErrInvalid, err))
		return
	}
	if err := h.svc.SaveHighScore(r.Context(), r.PathValue("id"), body.Score); err != nil {
		h.fail(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *handler) getLeaderboard(w http.ResponseWriter, r *http.Request) {
	limit := MaxLeaderboard
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			h.fail(w, fmt.Errorf("%w: limit %q", ErrInvalid, v))
			return
		}
		limit = n
	}

	entries, err := h.svc.Leaderboard(r.Context(), limit)
	if err != nil {
		h.fail(w, err)
		return
	}
	h.reply(w, http.StatusOK, leaderboardBody{Entries: entries})
}

func (h *handler) postEntry(w http.ResponseWriter, r *http.Request) {
	var e Entry
	if err := json.NewDecoder(r.Body).Decode(&e); err != nil {
		h.fail(w, fmt.Errorf("%w: %v", ErrInvalid, err))
		return
	}
	if err := h.svc.SubmitEntry(r.Context(), e); err != nil {
		h.fail(w, err)
		return
	}
	w.WriteHeader(http.StatusCreated)
}

func (h *handler) reply(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Warn("cannot write response", "error", err)
	}
}

func (h *handler) fail(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	if errors.Is(err, ErrInvalid) {
		status = http.StatusBadRequest
	} else {
		h.logger.Error("cloud request failed", "error", err)
	}
	h.reply(w, status, errorBody{Error: err.Error()})
}

// HTTPClient talks to a remote Handler.
type HTTPClient struct {
	base   string
	client *http.Client
}

// NewHTTPClient creates a client for the API at baseURL. A nil client uses
// one with a 10 second timeout.
func NewHTTPClient(baseURL string, client *http.Client) *HTTPClient {
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	return &HTTPClient{base: strings.TrimRight(baseURL, "/"), client: client}
}

func (c *HTTPClient) LoadHighScore(ctx context.Context, playerID string) (int, error) {
	var body highScoreBody
	err := c.do(ctx, http.MethodGet, "/v1/players/"+url.PathEscape(playerID)+"/highscore", nil, &body)
	return body.Score, err
}

func (c *HTTPClient) SaveHighScore(ctx context.Context, playerID string, score int) error {
	return c.do(ctx, http.MethodPut, "/v1/players/"+url.PathEscape(playerID)+"/highscore",
		highScoreBody{Score: score}, nil)
}

func (c *HTTPClient) SubmitEntry(ctx context.Context, e Entry) error {
	e.Initials = SanitizeInitials(e.Initials)
	return c.do(ctx, http.MethodPost, "/v1/leaderboard", e, nil)
}

func (c *HTTPClient) Leaderboard(ctx context.Context, limit int) ([]Entry, error) {
	var body leaderboardBody
	err := c.do(ctx, http.MethodGet, "/v1/leaderboard?limit="+strconv.Itoa(clampLimit(limit)), nil, &body)
	return body.Entries, err
}

func (c *HTTPClient) do(ctx context.Context, method, path string, in, out any) error {
	var payload *bytes.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("cloud: encode request: %w", err)
		}
		payload = bytes.NewReader(data)
	} else {
		payload = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.base+path, payload)
	if err != nil {
		return fmt.Errorf("cloud: build request: %w", err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusBadRequest:
		var e errorBody
		_ = json.NewDecoder(resp.Body).Decode(&e)
		return fmt.Errorf("%w: %s", ErrInvalid, e.Error)
	case resp.StatusCode >= 300:
		return fmt.Errorf("%w: %s %s: status %d", ErrUnavailable, method, path, resp.StatusCode)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("cloud: decode response: %w", err)
	}
	return nil
}
