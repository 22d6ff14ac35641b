package services

import (
	"context"
	"fmt"

	"github.com/kappatrack/kappatrack/kappatrack/database/models"
	"github.com/kappatrack/kappatrack/kappatrack/database/repositories"
	"github.com/kappatrack/kappatrack/kappatrack/gamedata"
	"github.com/kappatrack/kappatrack/kappatrack/requirements"
)

// HideoutSummary groups the Cultist Circle requirement checks per category
// alongside the combined result.
type HideoutSummary struct {
	Traders requirements.Result `json:"traders"`
	Skills  requirements.Result `json:"skills"`
	Items   requirements.Result `json:"items"`
	Overall requirements.Result `json:"overall"`
}

type HideoutService struct {
	progressRepo repositories.UserProgressRepository
}

func NewHideoutService(progressRepo repositories.UserProgressRepository) *HideoutService {
	return &HideoutService{progressRepo: progressRepo}
}

// Get returns the stored hideout counters, or empty maps when the user has
// no aggregate document yet.
func (s *HideoutService) Get(ctx context.Context, userID int64) (models.HideoutProgress, error) {
	progress, err := s.progressRepo.GetByUserID(ctx, userID)
	if err != nil {
		return models.HideoutProgress{}, fmt.Errorf("failed to load hideout progress: %w", err)
	}
	if progress == nil {
		return models.DefaultHideoutProgress(), nil
	}
	return normalizeHideout(progress.HideoutProgress), nil
}

// Update replaces the stored hideout counters, creating the aggregate
// document when absent. Negative counters are clamped to zero.
func (s *HideoutService) Update(ctx context.Context, userID int64, hideout models.HideoutProgress) error {
	hideout = normalizeHideout(hideout)
	for _, table := range []map[string]int{hideout.Items, hideout.Skills, hideout.Traders} {
		for name, value := range table {
			if value < 0 {
				table[name] = 0
			}
		}
	}

	progress, err := s.progressRepo.GetByUserID(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to load hideout progress: %w", err)
	}
	if progress == nil {
		progress = models.NewUserProgress(userID)
		progress.HideoutProgress = hideout
		return s.progressRepo.Create(ctx, progress)
	}
	progress.HideoutProgress = hideout
	return s.progressRepo.Update(ctx, progress, "hideout_progress")
}

// Summary evaluates the user's counters against the static requirement
// tables, per category and combined.
func (s *HideoutService) Summary(ctx context.Context, userID int64) (HideoutSummary, error) {
	hideout, err := s.Get(ctx, userID)
	if err != nil {
		return HideoutSummary{}, err
	}
	return summarizeHideout(hideout), nil
}

// DefaultHideoutSummary evaluates empty counters against the requirement
// tables. This is the view an anonymous caller gets.
func DefaultHideoutSummary() HideoutSummary {
	return summarizeHideout(models.DefaultHideoutProgress())
}

func summarizeHideout(hideout models.HideoutProgress) HideoutSummary {
	traders := evaluateTable(gamedata.HideoutTraderLevels(), hideout.Traders)
	skills := evaluateTable(gamedata.HideoutSkillLevels(), hideout.Skills)
	items := evaluateTable(gamedata.HideoutItems(), hideout.Items)

	var combined []requirements.Check
	combined = append(combined, traders.Checks...)
	combined = append(combined, skills.Checks...)
	combined = append(combined, items.Checks...)

	return HideoutSummary{
		Traders: traders,
		Skills:  skills,
		Items:   items,
		Overall: requirements.Evaluate(combined),
	}
}

func evaluateTable(required map[string]int, have map[string]int) requirements.Result {
	checks := make([]requirements.Check, 0, len(required))
	for _, name := range gamedata.SortedKeys(required) {
		checks = append(checks, requirements.Threshold(name, have[name], required[name]))
	}
	return requirements.Evaluate(checks)
}

func normalizeHideout(hideout models.HideoutProgress) models.HideoutProgress {
	if hideout.Items == nil {
		hideout.Items = map[string]int{}
	}
	if hideout.Skills == nil {
		hideout.Skills = map[string]int{}
	}
	if hideout.Traders == nil {
		hideout.Traders = map[string]int{}
	}
	return hideout
}
