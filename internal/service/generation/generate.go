package generation

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/flashcards-backend/internal/adapter/llm"
	"github.com/heartmarshall/flashcards-backend/internal/domain"
	"github.com/heartmarshall/flashcards-backend/pkg/ctxutil"
)

var errNoFlashcards = errors.New("model returned no flashcards")

// GenerateFlashcards asks the model for flashcards covering the input text,
// stores them as pending AI flashcards and returns the proposals.
// With ForceRegenerate and a document, the document's earlier AI flashcards
// are replaced as in RegenerateFlashcards.
func (s *Service) GenerateFlashcards(ctx context.Context, input GenerateInput) (*GenerateResult, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(s.limits); err != nil {
		return nil, err
	}

	if input.ForceRegenerate && input.DocumentID != nil {
		res, err := s.RegenerateFlashcards(ctx, RegenerateInput{
			Text:       input.Text,
			DocumentID: input.DocumentID,
			TopicID:    input.TopicID,
		})
		if err != nil {
			return nil, err
		}
		return &GenerateResult{Flashcards: res.Flashcards}, nil
	}

	if input.DocumentID != nil {
		if err := s.ensureDocument(ctx, userID, *input.DocumentID); err != nil {
			return nil, err
		}
	}

	text, err := s.resolveText(ctx, userID, input.Text, input.DocumentID)
	if err != nil {
		return nil, err
	}

	proposals, err := s.generate(ctx, userID, text, input.TopicID, input.DocumentID)
	if err != nil {
		return nil, err
	}

	return &GenerateResult{Flashcards: proposals}, nil
}

// resolveText returns text, or the document content when text is empty.
func (s *Service) resolveText(ctx context.Context, userID uuid.UUID, text string, documentID *uuid.UUID) (string, error) {
	if trimmed := strings.TrimSpace(text); trimmed != "" {
		return trimmed, nil
	}

	content, err := s.documents.GetContent(ctx, userID, *documentID)
	if err != nil {
		return "", fmt.Errorf("get document content: %w", err)
	}
	return content, nil
}

// generate runs the model on text, stores the proposals in one batch and
// returns them.
func (s *Service) generate(ctx context.Context, userID uuid.UUID, text string, topicID, documentID *uuid.UUID) ([]domain.FlashcardProposal, error) {
	completion, err := s.llm.Chat(ctx, s.prompt.System, text, &llm.Params{
		ResponseFormat: s.prompt.ResponseFormat,
	})
	if err != nil {
		return nil, &GenerationError{Err: err}
	}

	pairs, err := parseFlashcards(completion.Content())
	if err != nil {
		return nil, &GenerationError{Err: err}
	}

	proposals := make([]domain.FlashcardProposal, 0, len(pairs))
	seen := make(map[string]struct{}, len(pairs))
	for _, p := range pairs {
		front := strings.TrimSpace(p.FrontOriginal)
		back := strings.TrimSpace(p.BackOriginal)
		if front == "" || back == "" {
			continue
		}
		// Repeated questions keep their first answer.
		key := domain.NormalizeText(front)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		proposals = append(proposals, domain.FlashcardProposal{
			FrontOriginal: Truncate(front, domain.MaxFrontLength),
			BackOriginal:  Truncate(back, domain.MaxBackLength),
			TopicID:       topicID,
			DocumentID:    documentID,
			Source:        domain.FlashcardSourceAI,
			IsApproved:    false,
		})
	}
	if len(proposals) == 0 {
		return nil, &GenerationError{Err: errNoFlashcards}
	}

	if _, err := s.flashcards.InsertMany(ctx, userID, proposals); err != nil {
		return nil, &PersistError{Count: len(proposals), Err: err}
	}

	attrs := []any{
		slog.String("user_id", userID.String()),
		slog.Int("count", len(proposals)),
		slog.String("model", completion.Model),
		slog.Int("total_tokens", completion.Usage.TotalTokens),
	}
	if documentID != nil {
		attrs = append(attrs, slog.String("document_id", documentID.String()))
	}
	s.log.InfoContext(ctx, "flashcards generated", attrs...)

	return proposals, nil
}

type flashcardPair struct {
	FrontOriginal string `json:"front_original"`
	BackOriginal  string `json:"back_original"`
}

// parseFlashcards decodes {"flashcards":[{front_original, back_original}]}.
func parseFlashcards(content string) ([]flashcardPair, error) {
	var body struct {
		Flashcards []flashcardPair `json:"flashcards"`
	}
	if err := json.Unmarshal([]byte(stripCodeFence(content)), &body); err != nil {
		return nil, fmt.Errorf("decode model output: %w", err)
	}
	if len(body.Flashcards) == 0 {
		return nil, errNoFlashcards
	}
	return body.Flashcards, nil
}

// stripCodeFence removes a ```json fence some models wrap around JSON output.
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[i+1:]
	}
	return strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(s), "```"))
}
