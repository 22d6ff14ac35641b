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

type CollectorProgressRepository interface {
	GetAllByUserID(ctx context.Context, userID int64) ([]*models.UserCollectorProgress, error)
	// Toggle flips the found flag for (userID, itemName) by row presence
	// and reports whether the item is now marked found.
	Toggle(ctx context.Context, userID int64, itemName string) (bool, error)
}

type collectorProgressRepository struct {
	db *bun.DB
}

func NewCollectorProgressRepository(db *bun.DB) CollectorProgressRepository {
	return &collectorProgressRepository{db: db}
}

func (r *collectorProgressRepository) GetAllByUserID(ctx context.Context, userID int64) ([]*models.UserCollectorProgress, error) {
	var rows []*models.UserCollectorProgress
	err := r.db.NewSelect().
		Model(&rows).
		Where("user_id = ?", userID).
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get collector progress: %w", err)
	}
	return rows, nil
}

func (r *collectorProgressRepository) Toggle(ctx context.Context, userID int64, itemName string) (bool, error) {
	existing := new(models.UserCollectorProgress)
	err := r.db.NewSelect().
		Model(existing).
		Where("user_id = ? AND item_name = ?", userID, itemName).
		Scan(ctx)

	switch {
	case err == nil:
		if _, err := r.db.NewDelete().
			Model((*models.UserCollectorProgress)(nil)).
			Where("id = ?", existing.ID).
			Exec(ctx); err != nil {
			return false, fmt.Errorf("failed to delete collector progress: %w", err)
		}
		return false, nil

	case errors.Is(err, sql.ErrNoRows):
		row := &models.UserCollectorProgress{
			UserID:    userID,
			ItemName:  itemName,
			CreatedAt: time.Now(),
		}
		if _, err := r.db.NewInsert().Model(row).Exec(ctx); err != nil {
			return false, fmt.Errorf("failed to insert collector progress: %w", err)
		}
		return true, nil

	default:
		return false, fmt.Errorf("failed to look up collector progress: %w", err)
	}
}
