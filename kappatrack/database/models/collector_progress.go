package models

import (
	"time"

	"github.com/uptrace/bun"
)

// UserCollectorProgress marks one collector item as found. Row presence is
// the flag; there is no stored boolean.
type UserCollectorProgress struct {
	bun.BaseModel `bun:"table:user_collector_progress,alias:ucp"`

	ID        int64     `bun:"id,pk,autoincrement" json:"id"`
	UserID    int64     `bun:"user_id,notnull" json:"userId"`
	ItemName  string    `bun:"item_name,notnull" json:"itemName"`
	CreatedAt time.Time `bun:"created_at,notnull" json:"createdAt"`
}
