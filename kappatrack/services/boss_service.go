package services

import (
	"context"
	"fmt"

	"github.com/kappatrack/kappatrack/kappatrack/database/models"
	"github.com/kappatrack/kappatrack/kappatrack/database/repositories"
	"github.com/kappatrack/kappatrack/kappatrack/gamedata"
	"github.com/kappatrack/kappatrack/kappatrack/requirements"
)

// BossTaskStatus is one task in a boss chain joined with completion state.
type BossTaskStatus struct {
	Name      string `json:"name"`
	Final     bool   `json:"final"`
	Completed bool   `json:"completed"`
}

// BossStatus is a boss chain evaluated against the user's completed set. The
// final task is listed first, followed by its prerequisites in chain order.
type BossStatus struct {
	Boss              string           `json:"boss"`
	Tasks             []BossTaskStatus `json:"tasks"`
	FinalTaskUnlocked bool             `json:"finalTaskUnlocked"`
	Completed         int              `json:"completed"`
	TotalRequired     int              `json:"totalRequired"`
}

type BossService struct {
	progressRepo repositories.UserProgressRepository
}

func NewBossService(progressRepo repositories.UserProgressRepository) *BossService {
	return &BossService{progressRepo: progressRepo}
}

func (s *BossService) completedSet(ctx context.Context, userID int64) (map[string]bool, error) {
	progress, err := s.progressRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load boss progress: %w", err)
	}
	set := make(map[string]bool)
	if progress != nil {
		for _, name := range progress.CompletedBossTasks {
			set[name] = true
		}
	}
	return set, nil
}

// GetBossData evaluates every boss chain for the user, in the fixed boss
// display order.
func (s *BossService) GetBossData(ctx context.Context, userID int64) ([]BossStatus, error) {
	set, err := s.completedSet(ctx, userID)
	if err != nil {
		return nil, err
	}

	statuses := make([]BossStatus, 0, len(gamedata.Bosses()))
	for _, chain := range gamedata.Bosses() {
		statuses = append(statuses, evaluateChain(chain, set))
	}
	return statuses, nil
}

// GetBoss evaluates a single boss chain.
func (s *BossService) GetBoss(ctx context.Context, userID int64, boss string) (BossStatus, error) {
	chain, ok := gamedata.Boss(boss)
	if !ok {
		return BossStatus{}, fmt.Errorf("boss %q: %w", boss, ErrNotFound)
	}
	set, err := s.completedSet(ctx, userID)
	if err != nil {
		return BossStatus{}, err
	}
	return evaluateChain(chain, set), nil
}

func evaluateChain(chain gamedata.BossChain, completed map[string]bool) BossStatus {
	checks := make([]requirements.Check, 0, len(chain.Prerequisites))
	tasks := make([]BossTaskStatus, 0, chain.TotalRequired)
	tasks = append(tasks, BossTaskStatus{
		Name:      chain.FinalTask,
		Final:     true,
		Completed: completed[chain.FinalTask],
	})
	for _, name := range chain.Prerequisites {
		checks = append(checks, requirements.Membership(name, completed))
		tasks = append(tasks, BossTaskStatus{Name: name, Completed: completed[name]})
	}
	prereqs := requirements.Evaluate(checks)

	done := prereqs.Completed
	if completed[chain.FinalTask] {
		done++
	}
	return BossStatus{
		Boss:              chain.Boss,
		Tasks:             tasks,
		FinalTaskUnlocked: prereqs.Completed == prereqs.Total,
		Completed:         done,
		TotalRequired:     chain.TotalRequired,
	}
}

// DefaultBossData evaluates every chain with nothing completed. This is the
// view an anonymous caller gets.
func DefaultBossData() []BossStatus {
	statuses := make([]BossStatus, 0, len(gamedata.Bosses()))
	for _, chain := range gamedata.Bosses() {
		statuses = append(statuses, evaluateChain(chain, nil))
	}
	return statuses
}

// DefaultBoss evaluates a single chain with nothing completed.
func DefaultBoss(boss string) (BossStatus, error) {
	chain, ok := gamedata.Boss(boss)
	if !ok {
		return BossStatus{}, fmt.Errorf("boss %q: %w", boss, ErrNotFound)
	}
	return evaluateChain(chain, nil), nil
}

// CompletedForBoss returns the subset of a boss chain's tasks the user has
// completed, in chain order with the final task first.
func (s *BossService) CompletedForBoss(ctx context.Context, userID int64, boss string) ([]string, error) {
	chain, ok := gamedata.Boss(boss)
	if !ok {
		return nil, fmt.Errorf("boss %q: %w", boss, ErrNotFound)
	}
	set, err := s.completedSet(ctx, userID)
	if err != nil {
		return nil, err
	}

	completed := make([]string, 0, chain.TotalRequired)
	if set[chain.FinalTask] {
		completed = append(completed, chain.FinalTask)
	}
	for _, name := range chain.Prerequisites {
		if set[name] {
			completed = append(completed, name)
		}
	}
	return completed, nil
}

// ToggleTask flips a boss task in the user's completed set and returns the
// new state. The aggregate document is created on first use.
func (s *BossService) ToggleTask(ctx context.Context, userID int64, taskName string) (bool, error) {
	if !knownBossTask(taskName) {
		return false, fmt.Errorf("boss task %q: %w", taskName, ErrNotFound)
	}

	progress, err := s.progressRepo.GetByUserID(ctx, userID)
	if err != nil {
		return false, fmt.Errorf("failed to load boss progress: %w", err)
	}
	if progress == nil {
		progress = models.NewUserProgress(userID)
		progress.CompletedBossTasks = []string{taskName}
		if err := s.progressRepo.Create(ctx, progress); err != nil {
			return false, err
		}
		return true, nil
	}

	next := make([]string, 0, len(progress.CompletedBossTasks)+1)
	removed := false
	for _, name := range progress.CompletedBossTasks {
		if name == taskName {
			removed = true
			continue
		}
		next = append(next, name)
	}
	if !removed {
		next = append(next, taskName)
	}
	progress.CompletedBossTasks = next
	if err := s.progressRepo.Update(ctx, progress, "completed_boss_tasks"); err != nil {
		return false, err
	}
	return !removed, nil
}

func knownBossTask(name string) bool {
	for _, chain := range gamedata.Bosses() {
		if chain.FinalTask == name {
			return true
		}
		for _, task := range chain.Prerequisites {
			if task == name {
				return true
			}
		}
	}
	return false
}
