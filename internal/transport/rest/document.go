package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/flashcards-backend/internal/domain"
	"github.com/heartmarshall/flashcards-backend/internal/service/document"
)

type documentService interface {
	CreateDocument(ctx context.Context, input document.CreateDocumentInput) (*document.CreateDocumentResult, error)
	GetDocument(ctx context.Context, id uuid.UUID) (*domain.Document, error)
	DeleteDocument(ctx context.Context, id uuid.UUID) error
}

// DocumentHandler serves the document endpoints.
type DocumentHandler struct {
	svc documentService
	log *slog.Logger
}

// NewDocumentHandler creates a DocumentHandler.
func NewDocumentHandler(svc documentService, logger *slog.Logger) *DocumentHandler {
	return &DocumentHandler{svc: svc, log: logger.With("handler", "document")}
}

type createDocumentResponse struct {
	Document          documentResponse            `json:"document"`
	Flashcards        []domain.FlashcardProposal  `json:"flashcards"`
	GenerationWarning *document.GenerationWarning `json:"generation_warning,omitempty"`
}

// Create handles POST /api/documents. A failed generation still answers 201
// with a generation_warning.
func (h *DocumentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input document.CreateDocumentInput
	if err := decodeJSON(w, r, &input); err != nil {
		writeBadRequest(w, r, err.Error())
		return
	}

	result, err := h.svc.CreateDocument(r.Context(), input)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, createDocumentResponse{
		Document:          toDocumentResponse(result.Document),
		Flashcards:        proposalsOrEmpty(result.Flashcards),
		GenerationWarning: result.GenerationWarning,
	})
}

// Get handles GET /api/documents/{id}.
func (h *DocumentHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeBadRequest(w, r, err.Error())
		return
	}

	doc, err := h.svc.GetDocument(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toDocumentResponse(doc))
}

// Delete handles DELETE /api/documents/{id}.
func (h *DocumentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeBadRequest(w, r, err.Error())
		return
	}

	if err := h.svc.DeleteDocument(r.Context(), id); err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
