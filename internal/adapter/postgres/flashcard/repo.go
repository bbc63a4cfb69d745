// Package flashcard implements flashcard persistence on PostgreSQL.
// Queries are built with squirrel and executed on the querier carried by the
// context, so every method joins an outer transaction when there is one.
package flashcard

import (
	"context"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/flashcards-backend/internal/adapter/postgres"
	"github.com/heartmarshall/flashcards-backend/internal/domain"
)

const table = "flashcards"

var columns = []string{
	"id", "user_id", "document_id", "topic_id",
	"front_original", "back_original", "front_modified", "back_modified",
	"source", "is_approved", "is_disabled", "modification_percentage",
	"created_at", "updated_at",
}

var returning = "RETURNING " + strings.Join(columns, ", ")

// Repo provides flashcard persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new flashcard repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// pendingAI matches AI flashcards that can still be approved.
func pendingAI(userID uuid.UUID) squirrel.Eq {
	return squirrel.Eq{
		"user_id":     userID,
		"source":      string(domain.FlashcardSourceAI),
		"is_approved": false,
		"is_disabled": false,
	}
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// InsertMany stores all proposals in one multi-row INSERT and returns the rows.
func (r *Repo) InsertMany(ctx context.Context, userID uuid.UUID, proposals []domain.FlashcardProposal) ([]domain.Flashcard, error) {
	if len(proposals) == 0 {
		return []domain.Flashcard{}, nil
	}

	insert := postgres.Builder().
		Insert(table).
		Columns("user_id", "document_id", "topic_id", "front_original", "back_original", "source", "is_approved")
	for _, p := range proposals {
		insert = insert.Values(userID, p.DocumentID, p.TopicID, p.FrontOriginal, p.BackOriginal, string(p.Source), p.IsApproved)
	}

	cards, err := r.queryMany(ctx, insert.Suffix(returning))
	if err != nil {
		return nil, postgres.MapError(err, "flashcards insert", userID)
	}
	return cards, nil
}

// Create stores a user-authored flashcard. Manual flashcards skip review and
// are stored approved.
func (r *Repo) Create(ctx context.Context, userID uuid.UUID, in domain.ManualFlashcard) (*domain.Flashcard, error) {
	insert := postgres.Builder().
		Insert(table).
		Columns("user_id", "document_id", "topic_id", "front_original", "back_original", "source", "is_approved").
		Values(userID, in.DocumentID, in.TopicID, in.FrontOriginal, in.BackOriginal, string(domain.FlashcardSourceManual), true).
		Suffix(returning)

	card, err := r.queryOne(ctx, insert)
	if err != nil {
		return nil, postgres.MapError(err, "flashcard create", userID)
	}
	return card, nil
}

// DeleteAIByDocument removes the AI flashcards of a document and returns how
// many were removed. Manual flashcards are never touched.
func (r *Repo) DeleteAIByDocument(ctx context.Context, userID, documentID uuid.UUID) (int, error) {
	query, args, err := postgres.Builder().
		Delete(table).
		Where(squirrel.Eq{
			"user_id":     userID,
			"document_id": documentID,
			"source":      string(domain.FlashcardSourceAI),
		}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build delete flashcards: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, query, args...)
	if err != nil {
		return 0, postgres.MapError(err, "document flashcards", documentID)
	}
	return int(tag.RowsAffected()), nil
}

// ApproveMany approves the pending AI flashcards among ids in a single UPDATE.
// Rows that are not pending are left alone and omitted from the result.
func (r *Repo) ApproveMany(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) ([]domain.Flashcard, error) {
	if len(ids) == 0 {
		return []domain.Flashcard{}, nil
	}

	update := approveBuilder().
		Where(pendingAI(userID)).
		Where(squirrel.Eq{"id": ids})

	cards, err := r.queryMany(ctx, update)
	if err != nil {
		return nil, postgres.MapError(err, "flashcards approve", userID)
	}
	return cards, nil
}

// ApproveByDocument approves every pending AI flashcard of a document in a
// single UPDATE.
func (r *Repo) ApproveByDocument(ctx context.Context, userID, documentID uuid.UUID) ([]domain.Flashcard, error) {
	update := approveBuilder().
		Where(pendingAI(userID)).
		Where(squirrel.Eq{"document_id": documentID})

	cards, err := r.queryMany(ctx, update)
	if err != nil {
		return nil, postgres.MapError(err, "document flashcards approve", documentID)
	}
	return cards, nil
}

func approveBuilder() squirrel.UpdateBuilder {
	return postgres.Builder().
		Update(table).
		Set("is_approved", true).
		Set("updated_at", squirrel.Expr("now()")).
		Suffix(returning)
}

// Update applies a user edit. Nil fields keep their stored value.
func (r *Repo) Update(ctx context.Context, userID, id uuid.UUID, upd domain.FlashcardUpdate) (*domain.Flashcard, error) {
	update := postgres.Builder().
		Update(table).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id, "user_id": userID}).
		Suffix(returning)

	if upd.FrontModified != nil {
		update = update.Set("front_modified", *upd.FrontModified)
	}
	if upd.BackModified != nil {
		update = update.Set("back_modified", *upd.BackModified)
	}
	if upd.ModificationPercentage != nil {
		update = update.Set("modification_percentage", *upd.ModificationPercentage)
	}
	if upd.IsDisabled != nil {
		update = update.Set("is_disabled", *upd.IsDisabled)
	}

	card, err := r.queryOne(ctx, update)
	if err != nil {
		return nil, postgres.MapError(err, "flashcard", id)
	}
	return card, nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a flashcard by primary key filtered by user_id.
func (r *Repo) GetByID(ctx context.Context, userID, id uuid.UUID) (*domain.Flashcard, error) {
	query := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id, "user_id": userID})

	card, err := r.queryOne(ctx, query)
	if err != nil {
		return nil, postgres.MapError(err, "flashcard", id)
	}
	return card, nil
}

// ListByDocument returns the flashcards of a document, oldest first.
// Disabled flashcards are excluded unless the filter asks for them.
func (r *Repo) ListByDocument(ctx context.Context, userID, documentID uuid.UUID, filter domain.FlashcardFilter) ([]domain.Flashcard, error) {
	query := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"user_id": userID, "document_id": documentID}).
		OrderBy("created_at ASC", "id ASC")

	if filter.Source != nil {
		query = query.Where(squirrel.Eq{"source": string(*filter.Source)})
	}
	if filter.IsApproved != nil {
		query = query.Where(squirrel.Eq{"is_approved": *filter.IsApproved})
	}
	if !filter.IncludeDisabled {
		query = query.Where(squirrel.Eq{"is_disabled": false})
	}

	cards, err := r.queryMany(ctx, query)
	if err != nil {
		return nil, postgres.MapError(err, "document flashcards", documentID)
	}
	return cards, nil
}

// ---------------------------------------------------------------------------
// Scanning
// ---------------------------------------------------------------------------

func (r *Repo) queryOne(ctx context.Context, b squirrel.Sqlizer) (*domain.Flashcard, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	card, err := scanFlashcard(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, err
	}
	return &card, nil
}

func (r *Repo) queryMany(ctx context.Context, b squirrel.Sqlizer) ([]domain.Flashcard, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}

	cards, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Flashcard, error) {
		return scanFlashcard(row)
	})
	if err != nil {
		return nil, err
	}
	if cards == nil {
		cards = []domain.Flashcard{}
	}
	return cards, nil
}

func scanFlashcard(row pgx.Row) (domain.Flashcard, error) {
	var (
		c      domain.Flashcard
		source string
	)
	err := row.Scan(
		&c.ID, &c.UserID, &c.DocumentID, &c.TopicID,
		&c.FrontOriginal, &c.BackOriginal, &c.FrontModified, &c.BackModified,
		&source, &c.IsApproved, &c.IsDisabled, &c.ModificationPercentage,
		&c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return domain.Flashcard{}, err
	}
	c.Source = domain.FlashcardSource(source)
	return c, nil
}
