package models

import (
	"time"

	"github.com/uptrace/bun"
)

// UserTaskProgress marks one Kappa task as completed for one user. Row
// presence is the completion flag: toggling off deletes the row, so at most
// one row exists per (user, task key).
type UserTaskProgress struct {
	bun.BaseModel `bun:"table:user_task_progress,alias:utp"`

	ID        int64     `bun:"id,pk,autoincrement" json:"id"`
	UserID    int64     `bun:"user_id,notnull" json:"userId"`
	TaskKey   string    `bun:"task_key,notnull" json:"taskKey"`
	Completed bool      `bun:"completed,notnull,default:true" json:"completed"`
	CreatedAt time.Time `bun:"created_at,notnull" json:"createdAt"`
}
