package status

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rudism/pushover-to-gotify/internal/logger"
	"github.com/rudism/pushover-to-gotify/internal/stream"
)

type Handler struct {
	session SessionReporter
	cursor  CursorReporter
	logger  *logger.Logger
}

func NewHandler(session SessionReporter, cursor CursorReporter, logger *logger.Logger) *Handler {
	return &Handler{session: session, cursor: cursor, logger: logger}
}

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)

	router.Get("/api/status", h.status)

	return router
}

type statusResponse struct {
	Stream stream.Status `json:"stream"`
	Cursor int64         `json:"cursor"`
}

func (h *Handler) status(w http.ResponseWriter, _ *http.Request) {
	resp := statusResponse{
		Stream: h.session.Status(),
		Cursor: h.cursor.Current(),
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		h.logger.Error().Err(err).Msg("write status response")
	}
}
