package models

import (
	"time"

	"github.com/uptrace/bun"
)

// UserLightkeeperProgress tracks one Lightkeeper quest for one user.
// SubTasksCompleted holds indices into the static quest's sub-task list and
// is kept sorted. The row is created lazily on the first toggle of either
// the quest or one of its sub-tasks.
type UserLightkeeperProgress struct {
	bun.BaseModel `bun:"table:user_lightkeeper_progress,alias:ulp"`

	ID                int64     `bun:"id,pk,autoincrement" json:"id"`
	UserID            int64     `bun:"user_id,notnull" json:"userId"`
	QuestName         string    `bun:"quest_name,notnull" json:"questName"`
	Completed         bool      `bun:"completed,notnull,default:false" json:"completed"`
	SubTasksCompleted []int     `bun:"sub_tasks_completed,array" json:"subTasksCompleted"`
	CreatedAt         time.Time `bun:"created_at,notnull" json:"createdAt"`
	UpdatedAt         time.Time `bun:"updated_at,notnull" json:"updatedAt"`
}
