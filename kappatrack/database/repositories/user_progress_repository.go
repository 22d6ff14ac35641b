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

type UserProgressRepository interface {
	// GetByUserID returns nil without an error when the user has no
	// aggregate document yet; callers substitute the zero default.
	GetByUserID(ctx context.Context, userID int64) (*models.UserProgress, error)
	Create(ctx context.Context, progress *models.UserProgress) error
	// Update writes the named columns of an existing document.
	Update(ctx context.Context, progress *models.UserProgress, columns ...string) error
}

type userProgressRepository struct {
	db *bun.DB
}

func NewUserProgressRepository(db *bun.DB) UserProgressRepository {
	return &userProgressRepository{db: db}
}

func (r *userProgressRepository) GetByUserID(ctx context.Context, userID int64) (*models.UserProgress, error) {
	progress := new(models.UserProgress)
	err := r.db.NewSelect().
		Model(progress).
		Where("user_id = ?", userID).
		Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user progress: %w", err)
	}
	return progress, nil
}

func (r *userProgressRepository) Create(ctx context.Context, progress *models.UserProgress) error {
	progress.CreatedAt = time.Now()
	progress.UpdatedAt = time.Now()
	if _, err := r.db.NewInsert().Model(progress).Exec(ctx); err != nil {
		return fmt.Errorf("failed to create user progress: %w", err)
	}
	return nil
}

func (r *userProgressRepository) Update(ctx context.Context, progress *models.UserProgress, columns ...string) error {
	progress.UpdatedAt = time.Now()
	_, err := r.db.NewUpdate().
		Model(progress).
		Column(append(columns, "updated_at")...).
		WherePK().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to update user progress: %w", err)
	}
	return nil
}
