package rest

import (
	"net/http"

	"github.com/heartmarshall/flashcards-backend/internal/transport/middleware"
)

// Handlers groups everything the router mounts.
type Handlers struct {
	Health     *HealthHandler
	Flashcards *FlashcardHandler
	Documents  *DocumentHandler
	// GenerationLimit wraps the endpoints that call the completion API.
	GenerationLimit middleware.Middleware
}

// NewRouter registers all routes. Cross-cutting middleware is applied by the caller.
func NewRouter(h Handlers) *http.ServeMux {
	limit := h.GenerationLimit
	if limit == nil {
		limit = middleware.Chain()
	}

	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)
	mux.HandleFunc("GET /health", h.Health.Health)

	mux.Handle("POST /api/flashcards/generate", limit(http.HandlerFunc(h.Flashcards.Generate)))
	mux.Handle("POST /api/flashcards/regenerate", limit(http.HandlerFunc(h.Flashcards.Regenerate)))
	mux.HandleFunc("POST /api/flashcards/approve-bulk", h.Flashcards.ApproveBulk)
	mux.HandleFunc("POST /api/flashcards/{id}/approve", h.Flashcards.Approve)
	mux.HandleFunc("POST /api/flashcards/{id}/disable", h.Flashcards.Disable)
	mux.HandleFunc("PATCH /api/flashcards/{id}", h.Flashcards.Update)
	mux.HandleFunc("POST /api/flashcards", h.Flashcards.CreateManual)

	mux.Handle("POST /api/documents", limit(http.HandlerFunc(h.Documents.Create)))
	mux.HandleFunc("GET /api/documents/{id}", h.Documents.Get)
	mux.HandleFunc("DELETE /api/documents/{id}", h.Documents.Delete)
	mux.HandleFunc("GET /api/documents/{id}/flashcards", h.Flashcards.ListByDocument)
	mux.HandleFunc("POST /api/documents/{id}/approve-flashcards", h.Flashcards.ApproveByDocument)

	return mux
}
