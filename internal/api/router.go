package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/ruzibekov24/farosat-gramm-bot/internal/api/handler"
	"github.com/ruzibekov24/farosat-gramm-bot/internal/api/middleware"
	"github.com/ruzibekov24/farosat-gramm-bot/internal/services/leaderboard"
	"github.com/ruzibekov24/farosat-gramm-bot/internal/services/ledger"
)

// RouterConfig holds configuration for the ops API router
type RouterConfig struct {
	Logger      *slog.Logger
	Ledger      *ledger.Service
	Leaderboard *leaderboard.Service
	// OpsToken guards the mutating endpoints. With an empty token those
	// endpoints reject every request.
	OpsToken string
}

// NewRouter creates the ops API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	scoreHandler := handler.NewScoreHandler(cfg.Ledger, cfg.Leaderboard)

	authMiddleware := middleware.Auth(cfg.OpsToken)
	loggingMiddleware := middleware.Logging(cfg.Logger)
	recoveryMiddleware := middleware.Recovery(cfg.Logger)

	// Prometheus metrics outside the API prefix
	r.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(recoveryMiddleware)
	api.Use(loggingMiddleware)

	// Read-only routes
	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)
	api.HandleFunc("/top", scoreHandler.TopGlobal).Methods(http.MethodGet)
	api.HandleFunc("/chats/{chat_id}/top", scoreHandler.TopInChat).Methods(http.MethodGet)
	api.HandleFunc("/chats/{chat_id}/scores/{user_id}", scoreHandler.GetScore).Methods(http.MethodGet)

	// Privileged routes
	privileged := api.NewRoute().Subrouter()
	privileged.Use(authMiddleware)
	privileged.HandleFunc("/chats/{chat_id}/adjust", scoreHandler.Adjust).Methods(http.MethodPost)

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
