// Package document implements document persistence on PostgreSQL.
package document

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/flashcards-backend/internal/adapter/postgres"
	"github.com/heartmarshall/flashcards-backend/internal/domain"
)

const table = "documents"

const existsSQL = `SELECT EXISTS(SELECT 1 FROM documents WHERE id = $1 AND user_id = $2)`

var columns = []string{"id", "user_id", "topic_id", "name", "content", "created_at", "updated_at"}

// Repo provides document persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new document repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Create stores a new document owned by userID.
func (r *Repo) Create(ctx context.Context, userID uuid.UUID, name, content string, topicID *uuid.UUID) (*domain.Document, error) {
	query, args, err := postgres.Builder().
		Insert(table).
		Columns("user_id", "topic_id", "name", "content").
		Values(userID, topicID, name, content).
		Suffix("RETURNING id, user_id, topic_id, name, content, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert document: %w", err)
	}

	var d domain.Document
	err = postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...).
		Scan(&d.ID, &d.UserID, &d.TopicID, &d.Name, &d.Content, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		return nil, postgres.MapError(err, "document create", userID)
	}
	return &d, nil
}

// GetByID returns a document by primary key filtered by user_id.
// A missing document yields domain.ErrDocumentNotFound.
func (r *Repo) GetByID(ctx context.Context, userID, id uuid.UUID) (*domain.Document, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id, "user_id": userID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select document: %w", err)
	}

	var d domain.Document
	err = postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...).
		Scan(&d.ID, &d.UserID, &d.TopicID, &d.Name, &d.Content, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		return nil, notFoundAsDocument(postgres.MapError(err, "document", id), id)
	}
	return &d, nil
}

// GetContent returns only the text of a document.
func (r *Repo) GetContent(ctx context.Context, userID, id uuid.UUID) (string, error) {
	query, args, err := postgres.Builder().
		Select("content").
		From(table).
		Where(squirrel.Eq{"id": id, "user_id": userID}).
		ToSql()
	if err != nil {
		return "", fmt.Errorf("build select document content: %w", err)
	}

	var content string
	if err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...).Scan(&content); err != nil {
		return "", notFoundAsDocument(postgres.MapError(err, "document", id), id)
	}
	return content, nil
}

// Exists reports whether the user owns a document with the given id.
func (r *Repo) Exists(ctx context.Context, userID, id uuid.UUID) (bool, error) {
	var exists bool
	err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, existsSQL, id, userID).Scan(&exists)
	if err != nil {
		return false, postgres.MapError(err, "document", id)
	}
	return exists, nil
}

// Delete removes a document; its flashcards go with it.
func (r *Repo) Delete(ctx context.Context, userID, id uuid.UUID) error {
	query, args, err := postgres.Builder().
		Delete(table).
		Where(squirrel.Eq{"id": id, "user_id": userID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete document: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "document", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("document %s: %w", id, domain.ErrDocumentNotFound)
	}
	return nil
}

func notFoundAsDocument(err error, id uuid.UUID) error {
	if errors.Is(err, domain.ErrNotFound) && !errors.Is(err, domain.ErrDocumentNotFound) {
		return fmt.Errorf("%w: %s", domain.ErrDocumentNotFound, id)
	}
	return err
}
