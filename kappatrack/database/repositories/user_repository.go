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

type UserRepository interface {
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetByExternalID(ctx context.Context, externalID string) (*models.User, error)
	// EnsureUser returns the user for an external identity, creating the
	// row on first sight and refreshing the profile fields otherwise.
	EnsureUser(ctx context.Context, externalID, username, avatar string) (*models.User, error)
}

type userRepository struct {
	db *bun.DB
}

func NewUserRepository(db *bun.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	user := new(models.User)
	err := r.db.NewSelect().
		Model(user).
		Where("id = ?", id).
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (r *userRepository) GetByExternalID(ctx context.Context, externalID string) (*models.User, error) {
	user := new(models.User)
	err := r.db.NewSelect().
		Model(user).
		Where("external_id = ?", externalID).
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (r *userRepository) EnsureUser(ctx context.Context, externalID, username, avatar string) (*models.User, error) {
	user, err := r.GetByExternalID(ctx, externalID)
	if err == nil {
		if user.Username != username || user.Avatar != avatar {
			user.Username = username
			user.Avatar = avatar
			user.UpdatedAt = time.Now()
			if _, err := r.db.NewUpdate().
				Model(user).
				Column("username", "avatar", "updated_at").
				WherePK().
				Exec(ctx); err != nil {
				return nil, fmt.Errorf("failed to update user: %w", err)
			}
		}
		return user, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	user = &models.User{
		ExternalID: externalID,
		Username:   username,
		Avatar:     avatar,
		CreatedAt:  time.Now(),
		UpdatedAt:  time.Now(),
	}
	if _, err := r.db.NewInsert().Model(user).Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return user, nil
}
