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

type TaskProgressRepository interface {
	GetAllByUserID(ctx context.Context, userID int64) ([]*models.UserTaskProgress, error)
	// Toggle flips the row presence for (userID, taskKey) and reports the
	// resulting completion state.
	Toggle(ctx context.Context, userID int64, taskKey string) (bool, error)
}

type taskProgressRepository struct {
	db *bun.DB
}

func NewTaskProgressRepository(db *bun.DB) TaskProgressRepository {
	return &taskProgressRepository{db: db}
}

func (r *taskProgressRepository) GetAllByUserID(ctx context.Context, userID int64) ([]*models.UserTaskProgress, error) {
	var rows []*models.UserTaskProgress
	err := r.db.NewSelect().
		Model(&rows).
		Where("user_id = ?", userID).
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get task progress: %w", err)
	}
	return rows, nil
}

func (r *taskProgressRepository) Toggle(ctx context.Context, userID int64, taskKey string) (bool, error) {
	existing := new(models.UserTaskProgress)
	err := r.db.NewSelect().
		Model(existing).
		Where("user_id = ? AND task_key = ?", userID, taskKey).
		Scan(ctx)

	switch {
	case err == nil:
		if _, err := r.db.NewDelete().
			Model((*models.UserTaskProgress)(nil)).
			Where("id = ?", existing.ID).
			Exec(ctx); err != nil {
			return false, fmt.Errorf("failed to delete task progress: %w", err)
		}
		return false, nil

	case errors.Is(err, sql.ErrNoRows):
		row := &models.UserTaskProgress{
			UserID:    userID,
			TaskKey:   taskKey,
			Completed: true,
			CreatedAt: time.Now(),
		}
		if _, err := r.db.NewInsert().Model(row).Exec(ctx); err != nil {
			return false, fmt.Errorf("failed to insert task progress: %w", err)
		}
		return true, nil

	default:
		return false, fmt.Errorf("failed to look up task progress: %w", err)
	}
}
