package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/heartmarshall/flashcards-backend/internal/domain"
	"github.com/heartmarshall/flashcards-backend/internal/service/flashcard"
	"github.com/heartmarshall/flashcards-backend/internal/service/generation"
)

type generationService interface {
	GenerateFlashcards(ctx context.Context, input generation.GenerateInput) (*generation.GenerateResult, error)
	RegenerateFlashcards(ctx context.Context, input generation.RegenerateInput) (*generation.RegenerateResult, error)
}

type flashcardService interface {
	ApproveOne(ctx context.Context, id uuid.UUID) (*domain.Flashcard, error)
	ApproveBulk(ctx context.Context, input flashcard.ApproveBulkInput) (*flashcard.ApproveResult, error)
	ApproveByDocument(ctx context.Context, documentID uuid.UUID) (*flashcard.ApproveResult, error)
	UpdateFlashcard(ctx context.Context, input flashcard.UpdateFlashcardInput) (*flashcard.UpdateResult, error)
	Disable(ctx context.Context, id uuid.UUID) (*domain.Flashcard, error)
	CreateManual(ctx context.Context, input flashcard.CreateManualInput) (*domain.Flashcard, error)
	ListByDocument(ctx context.Context, input flashcard.ListInput) ([]domain.Flashcard, error)
}

// FlashcardHandler serves the flashcard generation and review endpoints.
type FlashcardHandler struct {
	generation generationService
	flashcards flashcardService
	log        *slog.Logger
}

// NewFlashcardHandler creates a FlashcardHandler.
func NewFlashcardHandler(gen generationService, flashcards flashcardService, logger *slog.Logger) *FlashcardHandler {
	return &FlashcardHandler{
		generation: gen,
		flashcards: flashcards,
		log:        logger.With("handler", "flashcard"),
	}
}

type approveResponse struct {
	ApprovedCount int                 `json:"approved_count"`
	Flashcards    []flashcardResponse `json:"flashcards"`
}

type updateResponse struct {
	Flashcard  flashcardResponse `json:"flashcard"`
	NewVersion bool              `json:"new_version"`
}

type listResponse struct {
	Flashcards []flashcardResponse `json:"flashcards"`
}

// Generate handles POST /api/flashcards/generate.
func (h *FlashcardHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var input generation.GenerateInput
	if err := decodeJSON(w, r, &input); err != nil {
		writeBadRequest(w, r, err.Error())
		return
	}

	result, err := h.generation.GenerateFlashcards(r.Context(), input)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	result.Flashcards = proposalsOrEmpty(result.Flashcards)
	writeJSON(w, http.StatusOK, result)
}

// Regenerate handles POST /api/flashcards/regenerate.
func (h *FlashcardHandler) Regenerate(w http.ResponseWriter, r *http.Request) {
	var input generation.RegenerateInput
	if err := decodeJSON(w, r, &input); err != nil {
		writeBadRequest(w, r, err.Error())
		return
	}

	result, err := h.generation.RegenerateFlashcards(r.Context(), input)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	result.Flashcards = proposalsOrEmpty(result.Flashcards)
	writeJSON(w, http.StatusOK, result)
}

// Approve handles POST /api/flashcards/{id}/approve.
func (h *FlashcardHandler) Approve(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeBadRequest(w, r, err.Error())
		return
	}

	card, err := h.flashcards.ApproveOne(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toFlashcardResponse(card))
}

// ApproveBulk handles POST /api/flashcards/approve-bulk.
func (h *FlashcardHandler) ApproveBulk(w http.ResponseWriter, r *http.Request) {
	var input flashcard.ApproveBulkInput
	if err := decodeJSON(w, r, &input); err != nil {
		writeBadRequest(w, r, err.Error())
		return
	}

	result, err := h.flashcards.ApproveBulk(r.Context(), input)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, approveResponse{
		ApprovedCount: result.ApprovedCount,
		Flashcards:    toFlashcardResponses(result.Flashcards),
	})
}

// ApproveByDocument handles POST /api/documents/{id}/approve-flashcards.
func (h *FlashcardHandler) ApproveByDocument(w http.ResponseWriter, r *http.Request) {
	docID, err := pathID(r, "id")
	if err != nil {
		writeBadRequest(w, r, err.Error())
		return
	}

	result, err := h.flashcards.ApproveByDocument(r.Context(), docID)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, approveResponse{
		ApprovedCount: result.ApprovedCount,
		Flashcards:    toFlashcardResponses(result.Flashcards),
	})
}

// Update handles PATCH /api/flashcards/{id}.
func (h *FlashcardHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeBadRequest(w, r, err.Error())
		return
	}

	var body struct {
		FrontModified *string `json:"front_modified"`
		BackModified  *string `json:"back_modified"`
	}
	if err := decodeJSON(w, r, &body); err != nil {
		writeBadRequest(w, r, err.Error())
		return
	}

	result, err := h.flashcards.UpdateFlashcard(r.Context(), flashcard.UpdateFlashcardInput{
		ID:            id,
		FrontModified: body.FrontModified,
		BackModified:  body.BackModified,
	})
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, updateResponse{
		Flashcard:  toFlashcardResponse(result.Flashcard),
		NewVersion: result.NewVersion,
	})
}

// Disable handles POST /api/flashcards/{id}/disable.
func (h *FlashcardHandler) Disable(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeBadRequest(w, r, err.Error())
		return
	}

	card, err := h.flashcards.Disable(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toFlashcardResponse(card))
}

// CreateManual handles POST /api/flashcards.
func (h *FlashcardHandler) CreateManual(w http.ResponseWriter, r *http.Request) {
	var input flashcard.CreateManualInput
	if err := decodeJSON(w, r, &input); err != nil {
		writeBadRequest(w, r, err.Error())
		return
	}

	card, err := h.flashcards.CreateManual(r.Context(), input)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toFlashcardResponse(card))
}

// ListByDocument handles GET /api/documents/{id}/flashcards.
// Optional query parameters: source, is_approved, include_disabled.
func (h *FlashcardHandler) ListByDocument(w http.ResponseWriter, r *http.Request) {
	docID, err := pathID(r, "id")
	if err != nil {
		writeBadRequest(w, r, err.Error())
		return
	}

	input := flashcard.ListInput{DocumentID: docID}
	q := r.URL.Query()
	if v := q.Get("source"); v != "" {
		src := domain.FlashcardSource(v)
		input.Source = &src
	}
	if v := q.Get("is_approved"); v != "" {
		approved, err := strconv.ParseBool(v)
		if err != nil {
			writeBadRequest(w, r, "is_approved must be a boolean")
			return
		}
		input.IsApproved = &approved
	}
	if v := q.Get("include_disabled"); v != "" {
		include, err := strconv.ParseBool(v)
		if err != nil {
			writeBadRequest(w, r, "include_disabled must be a boolean")
			return
		}
		input.IncludeDisabled = include
	}

	cards, err := h.flashcards.ListByDocument(r.Context(), input)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, listResponse{Flashcards: toFlashcardResponses(cards)})
}
