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

type LightkeeperProgressRepository interface {
	GetAllByUserID(ctx context.Context, userID int64) ([]*models.UserLightkeeperProgress, error)
	// GetByUserAndQuest returns nil without an error when no row exists.
	GetByUserAndQuest(ctx context.Context, userID int64, questName string) (*models.UserLightkeeperProgress, error)
	Create(ctx context.Context, progress *models.UserLightkeeperProgress) error
	Update(ctx context.Context, progress *models.UserLightkeeperProgress, columns ...string) error
}

type lightkeeperProgressRepository struct {
	db *bun.DB
}

func NewLightkeeperProgressRepository(db *bun.DB) LightkeeperProgressRepository {
	return &lightkeeperProgressRepository{db: db}
}

func (r *lightkeeperProgressRepository) GetAllByUserID(ctx context.Context, userID int64) ([]*models.UserLightkeeperProgress, error) {
	var rows []*models.UserLightkeeperProgress
	err := r.db.NewSelect().
		Model(&rows).
		Where("user_id = ?", userID).
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get lightkeeper progress: %w", err)
	}
	return rows, nil
}

func (r *lightkeeperProgressRepository) GetByUserAndQuest(ctx context.Context, userID int64, questName string) (*models.UserLightkeeperProgress, error) {
	progress := new(models.UserLightkeeperProgress)
	err := r.db.NewSelect().
		Model(progress).
		Where("user_id = ? AND quest_name = ?", userID, questName).
		Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get lightkeeper quest progress: %w", err)
	}
	return progress, nil
}

func (r *lightkeeperProgressRepository) Create(ctx context.Context, progress *models.UserLightkeeperProgress) error {
	progress.CreatedAt = time.Now()
	progress.UpdatedAt = time.Now()
	if _, err := r.db.NewInsert().Model(progress).Exec(ctx); err != nil {
		return fmt.Errorf("failed to create lightkeeper progress: %w", err)
	}
	return nil
}

func (r *lightkeeperProgressRepository) Update(ctx context.Context, progress *models.UserLightkeeperProgress, columns ...string) error {
	progress.UpdatedAt = time.Now()
	_, err := r.db.NewUpdate().
		Model(progress).
		Column(append(columns, "updated_at")...).
		WherePK().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to update lightkeeper progress: %w", err)
	}
	return nil
}
