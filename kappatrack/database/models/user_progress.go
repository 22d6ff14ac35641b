package models

import (
	"time"

	"github.com/uptrace/bun"
)

// HideoutProgress stores the user's current hideout counters keyed by the
// display names in the static requirement tables.
type HideoutProgress struct {
	Items   map[string]int `json:"items"`
	Skills  map[string]int `json:"skills"`
	Traders map[string]int `json:"traders"`
}

// PrestigeProfile mirrors the prestige requirement table shape: what the
// user currently has, compared field by field against the thresholds.
type PrestigeProfile struct {
	CurrentPrestige    int      `json:"currentPrestige"`
	Level              int      `json:"level"`
	Strength           int      `json:"strength"`
	Endurance          int      `json:"endurance"`
	Charisma           int      `json:"charisma"`
	IntelligenceCenter int      `json:"intelligenceCenter"`
	Security           int      `json:"security"`
	RestSpace          int      `json:"restSpace"`
	Roubles            int64    `json:"roubles"`
	CollectorComplete  bool     `json:"collectorComplete"`
	Figurines          []string `json:"figurines"`
	ScavsKilled        int      `json:"scavsKilled"`
	PMCsKilled         int      `json:"pmcsKilled"`
	LabsExtracted      bool     `json:"labsExtracted"`
}

// UserProgress is the per-user aggregate document: boss task set, hideout
// counters and prestige profile. One row per user, created lazily with
// zeroed defaults on first write.
type UserProgress struct {
	bun.BaseModel `bun:"table:user_progress,alias:up"`

	ID                 int64           `bun:"id,pk,autoincrement" json:"id"`
	UserID             int64           `bun:"user_id,notnull,unique" json:"userId"`
	CompletedTasks     []string        `bun:"completed_tasks,array" json:"completedTasks"`
	CompletedBossTasks []string        `bun:"completed_boss_tasks,array" json:"completedBossTasks"`
	HideoutProgress    HideoutProgress `bun:"hideout_progress,type:jsonb" json:"hideoutProgress"`
	PrestigeProgress   PrestigeProfile `bun:"prestige_progress,type:jsonb" json:"prestigeProgress"`
	CreatedAt          time.Time       `bun:"created_at,notnull" json:"createdAt"`
	UpdatedAt          time.Time       `bun:"updated_at,notnull" json:"updatedAt"`
}

// NewUserProgress returns the zero-valued document for a user.
func NewUserProgress(userID int64) *UserProgress {
	return &UserProgress{
		UserID:             userID,
		CompletedTasks:     []string{},
		CompletedBossTasks: []string{},
		HideoutProgress:    DefaultHideoutProgress(),
		PrestigeProgress:   DefaultPrestigeProfile(),
	}
}

// DefaultHideoutProgress returns empty counter maps.
func DefaultHideoutProgress() HideoutProgress {
	return HideoutProgress{
		Items:   map[string]int{},
		Skills:  map[string]int{},
		Traders: map[string]int{},
	}
}

// DefaultPrestigeProfile returns the all-zero profile served for users with
// no stored progress.
func DefaultPrestigeProfile() PrestigeProfile {
	return PrestigeProfile{
		CurrentPrestige: 1,
		Figurines:       []string{},
	}
}
