package httpapi

import (
	"net/http"

	"github.com/coachpad/matchtime/internal/platform/logging"
)

// NewRouter builds the HTTP routing table for the match time API.
// Method-qualified patterns require Go 1.22+.
func NewRouter(h *Handler, logger *logging.Logger, corsOrigins []string) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthz", h.Healthz)

	mux.HandleFunc("GET /v1/matches", h.ListMatches)
	mux.HandleFunc("POST /v1/matches", h.CreateMatch)
	mux.HandleFunc("GET /v1/matches/{matchID}/report", h.GetMatchReport)
	mux.HandleFunc("GET /v1/matches/{matchID}/players", h.ListPlayerPlayingTimes)
	mux.HandleFunc("GET /v1/matches/{matchID}/stoppages", h.ListStoppageBreakdown)

	mux.HandleFunc("POST /v1/matches/{matchID}/periods/{period}/start", h.StartPeriod)
	mux.HandleFunc("POST /v1/matches/{matchID}/periods/{period}/end", h.EndPeriod)
	mux.HandleFunc("POST /v1/matches/{matchID}/stoppages", h.AppendStoppage)
	mux.HandleFunc("POST /v1/matches/{matchID}/substitutions", h.AppendSubstitution)
	mux.HandleFunc("POST /v1/matches/{matchID}/cards", h.RecordCard)
	mux.HandleFunc("POST /v1/matches/{matchID}/cards/{cardID}/serve", h.ServeCard)
	mux.HandleFunc("POST /v1/matches/{matchID}/goals", h.RecordGoal)
	mux.HandleFunc("POST /v1/matches/{matchID}/finish", h.FinishMatch)
	mux.HandleFunc("POST /v1/matches/{matchID}/merge", h.MergeEvents)

	var handler http.Handler = mux
	handler = recoverPanic(logger, handler)
	handler = CORS(corsOrigins, handler)
	handler = RequestLogging(logger, handler)
	return handler
}
