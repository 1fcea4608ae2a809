package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/ruzibekov24/farosat-gramm-bot/internal/api/apierr"
	"github.com/ruzibekov24/farosat-gramm-bot/internal/api/response"
	"github.com/ruzibekov24/farosat-gramm-bot/internal/metrics"
	"github.com/ruzibekov24/farosat-gramm-bot/internal/services/leaderboard"
	"github.com/ruzibekov24/farosat-gramm-bot/internal/services/ledger"
)

const defaultTopN = 10

// ScoreHandler handles score and leaderboard endpoints
type ScoreHandler struct {
	ledger      *ledger.Service
	leaderboard *leaderboard.Service
}

// NewScoreHandler creates a new score handler
func NewScoreHandler(ledger *ledger.Service, leaderboard *leaderboard.Service) *ScoreHandler {
	return &ScoreHandler{
		ledger:      ledger,
		leaderboard: leaderboard,
	}
}

// GetScore handles GET /api/v1/chats/{chat_id}/scores/{user_id}
func (h *ScoreHandler) GetScore(w http.ResponseWriter, r *http.Request) {
	chatID, err := pathInt64(r, "chat_id")
	if err != nil {
		apierr.WriteError(w, err)
		return
	}
	userID, err := pathInt64(r, "user_id")
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	score, err := h.ledger.GetScore(r.Context(), userID, chatID)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, map[string]int64{
		"user_id": userID,
		"chat_id": chatID,
		"score":   score,
	})
}

// TopInChat handles GET /api/v1/chats/{chat_id}/top
func (h *ScoreHandler) TopInChat(w http.ResponseWriter, r *http.Request) {
	chatID, err := pathInt64(r, "chat_id")
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	rows, err := h.leaderboard.TopInChat(r.Context(), chatID, queryN(r))
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, map[string]any{"rows": rows})
}

// TopGlobal handles GET /api/v1/top
func (h *ScoreHandler) TopGlobal(w http.ResponseWriter, r *http.Request) {
	rows, err := h.leaderboard.TopGlobal(r.Context(), queryN(r))
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, map[string]any{"rows": rows})
}

// AdjustRequest is the body for POST /api/v1/chats/{chat_id}/adjust
type AdjustRequest struct {
	UserID int64 `json:"user_id"`
	Amount int64 `json:"amount"`
}

// Adjust handles POST /api/v1/chats/{chat_id}/adjust. The route is behind
// the bearer-token middleware; the ledger itself does not authorize.
func (h *ScoreHandler) Adjust(w http.ResponseWriter, r *http.Request) {
	chatID, err := pathInt64(r, "chat_id")
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	var req AdjustRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError("invalid request body"))
		return
	}
	if req.UserID == 0 {
		apierr.WriteError(w, apierr.NewInvalidRequestError("user_id is required"))
		return
	}

	score, err := h.ledger.Adjust(r.Context(), req.UserID, chatID, req.Amount)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	metrics.ObserveAdjustment()
	response.JSON(w, http.StatusOK, map[string]int64{
		"user_id": req.UserID,
		"chat_id": chatID,
		"score":   score,
	})
}

func pathInt64(r *http.Request, name string) (int64, error) {
	v, err := strconv.ParseInt(mux.Vars(r)[name], 10, 64)
	if err != nil {
		return 0, apierr.NewInvalidRequestError(name + " must be an integer")
	}
	return v, nil
}

func queryN(r *http.Request) int {
	raw := r.URL.Query().Get("n")
	if raw == "" {
		return defaultTopN
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return defaultTopN
	}
	return n
}
