package services

import (
	"context"
	"fmt"

	"github.com/kappatrack/kappatrack/kappatrack/database/models"
	"github.com/kappatrack/kappatrack/kappatrack/database/repositories"
	"github.com/kappatrack/kappatrack/kappatrack/gamedata"
	"github.com/kappatrack/kappatrack/kappatrack/requirements"
)

type PrestigeService struct {
	progressRepo repositories.UserProgressRepository
}

func NewPrestigeService(progressRepo repositories.UserProgressRepository) *PrestigeService {
	return &PrestigeService{progressRepo: progressRepo}
}

// GetProfile returns the stored prestige profile, or the zero default when
// the user has no aggregate document yet.
func (s *PrestigeService) GetProfile(ctx context.Context, userID int64) (models.PrestigeProfile, error) {
	progress, err := s.progressRepo.GetByUserID(ctx, userID)
	if err != nil {
		return models.PrestigeProfile{}, fmt.Errorf("failed to load prestige profile: %w", err)
	}
	if progress == nil {
		return models.DefaultPrestigeProfile(), nil
	}
	return progress.PrestigeProgress, nil
}

// UpdateProfile replaces the stored prestige profile, creating the aggregate
// document when absent. Negative counters are clamped to zero.
func (s *PrestigeService) UpdateProfile(ctx context.Context, userID int64, profile models.PrestigeProfile) error {
	profile = normalizePrestige(profile)
	progress, err := s.progressRepo.GetByUserID(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to load prestige profile: %w", err)
	}
	if progress == nil {
		progress = models.NewUserProgress(userID)
		progress.PrestigeProgress = profile
		return s.progressRepo.Create(ctx, progress)
	}
	progress.PrestigeProgress = profile
	return s.progressRepo.Update(ctx, progress, "prestige_progress")
}

// Requirements returns the static thresholds for one prestige level.
func (s *PrestigeService) Requirements(level int) (gamedata.PrestigeRequirement, error) {
	req, ok := gamedata.PrestigeRequirementFor(level)
	if !ok {
		return gamedata.PrestigeRequirement{}, fmt.Errorf("prestige level %d: %w", level, ErrNotFound)
	}
	return req, nil
}

// CalculateCompletion evaluates the user's profile against one prestige
// level's thresholds. Users with no stored profile are evaluated against the
// zero default, so the collector check still applies while the kill-count
// checks pass vacuously when the level does not require kills.
func (s *PrestigeService) CalculateCompletion(ctx context.Context, userID int64, level int) (requirements.Result, error) {
	req, ok := gamedata.PrestigeRequirementFor(level)
	if !ok {
		return requirements.Result{}, fmt.Errorf("prestige level %d: %w", level, ErrNotFound)
	}
	profile, err := s.GetProfile(ctx, userID)
	if err != nil {
		return requirements.Result{}, err
	}
	return requirements.Evaluate(prestigeChecks(profile, req)), nil
}

// DefaultCompletion evaluates the zero-valued profile against one level's
// thresholds. This is the result an anonymous caller gets.
func DefaultCompletion(level int) (requirements.Result, error) {
	req, ok := gamedata.PrestigeRequirementFor(level)
	if !ok {
		return requirements.Result{}, fmt.Errorf("prestige level %d: %w", level, ErrNotFound)
	}
	return requirements.Evaluate(prestigeChecks(models.DefaultPrestigeProfile(), req)), nil
}

func prestigeChecks(profile models.PrestigeProfile, req gamedata.PrestigeRequirement) []requirements.Check {
	return []requirements.Check{
		requirements.Threshold("level", profile.Level, req.Level),
		requirements.Threshold("strength", profile.Strength, req.Strength),
		requirements.Threshold("endurance", profile.Endurance, req.Endurance),
		requirements.Threshold("charisma", profile.Charisma, req.Charisma),
		requirements.Threshold("intelligenceCenter", profile.IntelligenceCenter, req.IntelligenceCenter),
		requirements.Threshold("security", profile.Security, req.Security),
		requirements.Threshold("restSpace", profile.RestSpace, req.RestSpace),
		requirements.Threshold("roubles", profile.Roubles, req.Roubles),
		requirements.Flag("collectorComplete", true, profile.CollectorComplete),
		requirements.Subset("figurines", req.Figurines, profile.Figurines),
		requirements.OptionalThreshold("scavsKilled", profile.ScavsKilled, req.ScavsKilled),
		requirements.OptionalThreshold("pmcsKilled", profile.PMCsKilled, req.PMCsKilled),
		requirements.Flag("labsExtracted", req.LabsExtracted, profile.LabsExtracted),
	}
}

func normalizePrestige(profile models.PrestigeProfile) models.PrestigeProfile {
	if profile.Figurines == nil {
		profile.Figurines = []string{}
	}
	for _, counter := range []*int{
		&profile.CurrentPrestige, &profile.Level,
		&profile.Strength, &profile.Endurance, &profile.Charisma,
		&profile.IntelligenceCenter, &profile.Security, &profile.RestSpace,
		&profile.ScavsKilled, &profile.PMCsKilled,
	} {
		if *counter < 0 {
			*counter = 0
		}
	}
	if profile.Roubles < 0 {
		profile.Roubles = 0
	}
	return profile
}
