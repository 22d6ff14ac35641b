package models

import (
	"time"

	"github.com/uptrace/bun"
)

// User is created lazily on the first authenticated request and referenced
// by every progress row. ExternalID is the identity provider's subject.
type User struct {
	bun.BaseModel `bun:"table:users,alias:u"`

	ID         int64     `bun:"id,pk,autoincrement" json:"id"`
	ExternalID string    `bun:"external_id,notnull,unique" json:"externalId"`
	Username   string    `bun:"username,notnull" json:"username"`
	Avatar     string    `bun:"avatar" json:"avatar,omitempty"`
	CreatedAt  time.Time `bun:"created_at,notnull" json:"createdAt"`
	UpdatedAt  time.Time `bun:"updated_at,notnull" json:"updatedAt"`
}
