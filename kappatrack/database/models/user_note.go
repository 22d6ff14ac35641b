package models

import (
	"time"

	"github.com/uptrace/bun"
)

// UserNote is the free-text notepad, one row per user, upserted in place.
type UserNote struct {
	bun.BaseModel `bun:"table:user_notes,alias:un"`

	ID        int64     `bun:"id,pk,autoincrement" json:"id"`
	UserID    int64     `bun:"user_id,notnull,unique" json:"userId"`
	Content   string    `bun:"content,notnull,default:''" json:"content"`
	CreatedAt time.Time `bun:"created_at,notnull" json:"createdAt"`
	UpdatedAt time.Time `bun:"updated_at,notnull" json:"updatedAt"`
}
