package models

import (
	"time"

	"github.com/kappatrack/kappatrack/kappatrack/database/models"
)

// UserSession represents a user session for web authentication. UserID is
// the internal database id; ExternalID is the OAuth provider's subject.
type UserSession struct {
	UserID     int64     `json:"user_id"`
	ExternalID string    `json:"external_id"`
	Username   string    `json:"username"`
	Avatar     string    `json:"avatar"`
	ExpiresAt  time.Time `json:"expires_at"`
}

// TaskToggleRequest flips one Kappa task by its "Trader:Name" key.
type TaskToggleRequest struct {
	TaskKey string `json:"task_key"`
}

// BossTaskToggleRequest flips one boss chain task by name.
type BossTaskToggleRequest struct {
	TaskName string `json:"task_name"`
}

// PrestigeUpdateRequest replaces the stored prestige profile.
type PrestigeUpdateRequest struct {
	Profile models.PrestigeProfile `json:"profile"`
}

// HideoutUpdateRequest replaces the stored hideout counters.
type HideoutUpdateRequest struct {
	Progress models.HideoutProgress `json:"progress"`
}

// CollectorToggleRequest flips one collector item's found state.
type CollectorToggleRequest struct {
	ItemName string `json:"item_name"`
}

// LightkeeperQuestToggleRequest flips a quest's completion. InitialState,
// when set, is the state a freshly created row starts in.
type LightkeeperQuestToggleRequest struct {
	QuestName    string `json:"quest_name"`
	InitialState *bool  `json:"initial_state,omitempty"`
}

// LightkeeperSubTaskToggleRequest flips one sub-task index of a quest.
type LightkeeperSubTaskToggleRequest struct {
	QuestName string `json:"quest_name"`
	Index     int    `json:"index"`
}

// NoteSaveRequest replaces the user's note content.
type NoteSaveRequest struct {
	Content string `json:"content"`
}
