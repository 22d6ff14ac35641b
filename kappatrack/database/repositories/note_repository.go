package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/uptrace/bun"

	"github.com/kappatrack/kappatrack/kappatrack/database/models"
)

type NoteRepository interface {
	// GetByUserID returns nil without an error when the user has no note.
	GetByUserID(ctx context.Context, userID int64) (*models.UserNote, error)
	Upsert(ctx context.Context, userID int64, content string) (*models.UserNote, error)
}

type noteRepository struct {
	db *bun.DB
}

func NewNoteRepository(db *bun.DB) NoteRepository {
	return &noteRepository{db: db}
}

func (r *noteRepository) GetByUserID(ctx context.Context, userID int64) (*models.UserNote, error) {
	note := new(models.UserNote)
	err := r.db.NewSelect().
		Model(note).
		Where("user_id = ?", userID).
		Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get note: %w", err)
	}
	return note, nil
}

func (r *noteRepository) Upsert(ctx context.Context, userID int64, content string) (*models.UserNote, error) {
	existing, err := r.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if existing != nil {
		existing.Content = content
		existing.UpdatedAt = time.Now()
		if _, err := r.db.NewUpdate().
			Model(existing).
			Column("content", "updated_at").
			WherePK().
			Exec(ctx); err != nil {
			return nil, fmt.Errorf("failed to update note: %w", err)
		}
		return existing, nil
	}

	note := &models.UserNote{
		UserID:    userID,
		Content:   content,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if _, err := r.db.NewInsert().Model(note).Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to create note: %w", err)
	}
	return note, nil
}
