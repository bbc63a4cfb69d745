package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/flashcards-backend/internal/domain"
	"github.com/heartmarshall/flashcards-backend/internal/service/generation"
	"github.com/heartmarshall/flashcards-backend/pkg/ctxutil"
)

// maxBodyBytes leaves room for the largest accepted document plus JSON overhead.
const maxBodyBytes = 1 << 20

type errorResponse struct {
	Error     string       `json:"error"`
	Condition string       `json:"condition,omitempty"`
	Fields    []fieldError `json:"fields,omitempty"`
	RequestID string       `json:"request_id,omitempty"`
}

type fieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// writeServiceError maps service errors to HTTP statuses. Unexpected errors
// are logged and hidden behind a generic 500.
func writeServiceError(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) {
	resp := errorResponse{RequestID: ctxutil.RequestIDFromCtx(r.Context())}

	var (
		validationErr *domain.ValidationError
		stateErr      *domain.InvalidStateError
	)
	status := http.StatusInternalServerError

	switch {
	case errors.As(err, &validationErr):
		status = http.StatusBadRequest
		resp.Error = "validation failed"
		for _, fe := range validationErr.Errors {
			resp.Fields = append(resp.Fields, fieldError{Field: fe.Field, Message: fe.Message})
		}
	case errors.Is(err, domain.ErrUnauthorized):
		status = http.StatusUnauthorized
		resp.Error = "unauthorized"
	case errors.Is(err, domain.ErrDocumentNotFound):
		status = http.StatusNotFound
		resp.Error = "document not found"
	case errors.Is(err, domain.ErrNotFound):
		status = http.StatusNotFound
		resp.Error = "not found"
	case errors.As(err, &stateErr):
		status = http.StatusConflict
		resp.Error = "invalid state"
		resp.Condition = stateErr.Condition
	case errors.Is(err, domain.ErrInvalidState), errors.Is(err, domain.ErrAlreadyExists):
		status = http.StatusConflict
		resp.Error = err.Error()
	case errors.Is(err, generation.ErrGeneration):
		status = http.StatusBadGateway
		resp.Error = "flashcard generation failed"
		log.WarnContext(r.Context(), "generation failed",
			slog.String("request_id", resp.RequestID),
			slog.String("error", err.Error()),
		)
	default:
		resp.Error = "internal server error"
		if errors.Is(err, generation.ErrPersist) {
			resp.Error = "generated flashcards could not be saved"
		}
		log.ErrorContext(r.Context(), "request failed",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("request_id", resp.RequestID),
			slog.String("error", err.Error()),
		)
	}

	writeJSON(w, status, resp)
}

func writeBadRequest(w http.ResponseWriter, r *http.Request, message string) {
	writeJSON(w, http.StatusBadRequest, errorResponse{
		Error:     message,
		RequestID: ctxutil.RequestIDFromCtx(r.Context()),
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

// decodeJSON reads a single JSON object from the body into dst.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		var maxErr *http.MaxBytesError
		switch {
		case errors.As(err, &maxErr):
			return fmt.Errorf("request body exceeds %d bytes", maxErr.Limit)
		case errors.Is(err, io.EOF):
			return errors.New("request body is empty")
		default:
			return fmt.Errorf("invalid request body: %w", err)
		}
	}
	if dec.More() {
		return errors.New("request body must contain a single JSON object")
	}
	return nil
}

func pathID(r *http.Request, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(r.PathValue(name))
	if err != nil {
		return uuid.Nil, fmt.Errorf("%s must be a valid UUID", name)
	}
	return id, nil
}
