package services

import (
	"context"
	"fmt"
	"sort"

	"github.com/kappatrack/kappatrack/kappatrack/database/models"
	"github.com/kappatrack/kappatrack/kappatrack/database/repositories"
	"github.com/kappatrack/kappatrack/kappatrack/gamedata"
)

// LightkeeperQuestWithProgress is a static quest joined with the user's
// completion state.
type LightkeeperQuestWithProgress struct {
	Name              string             `json:"name"`
	WikiURL           string             `json:"wikiUrl"`
	Trader            string             `json:"trader"`
	Location          string             `json:"location"`
	SubTasks          []gamedata.SubTask `json:"subTasks"`
	Completed         bool               `json:"completed"`
	SubTasksCompleted []int              `json:"subTasksCompleted"`
}

type LightkeeperService struct {
	progressRepo repositories.LightkeeperProgressRepository
}

func NewLightkeeperService(progressRepo repositories.LightkeeperProgressRepository) *LightkeeperService {
	return &LightkeeperService{progressRepo: progressRepo}
}

// List returns every Lightkeeper quest in chain order with the user's state
// joined in. Quests without a progress row read as untouched.
func (s *LightkeeperService) List(ctx context.Context, userID int64) ([]LightkeeperQuestWithProgress, error) {
	rows, err := s.progressRepo.GetAllByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load lightkeeper progress: %w", err)
	}
	byQuest := make(map[string]*models.UserLightkeeperProgress, len(rows))
	for _, row := range rows {
		byQuest[row.QuestName] = row
	}

	quests := gamedata.LightkeeperQuests()
	out := make([]LightkeeperQuestWithProgress, 0, len(quests))
	for _, quest := range quests {
		entry := LightkeeperQuestWithProgress{
			Name:              quest.Name,
			WikiURL:           quest.WikiURL,
			Trader:            quest.Trader,
			Location:          quest.Location,
			SubTasks:          quest.SubTasks,
			SubTasksCompleted: []int{},
		}
		if row, ok := byQuest[quest.Name]; ok {
			entry.Completed = row.Completed
			if row.SubTasksCompleted != nil {
				entry.SubTasksCompleted = row.SubTasksCompleted
			}
		}
		out = append(out, entry)
	}
	return out, nil
}

// ToggleQuest flips a quest's completion and returns the new state. When no
// progress row exists yet, the quest is created with initialState when given,
// completed otherwise.
func (s *LightkeeperService) ToggleQuest(ctx context.Context, userID int64, questName string, initialState *bool) (bool, error) {
	if _, ok := gamedata.LightkeeperQuestByName(questName); !ok {
		return false, fmt.Errorf("lightkeeper quest %q: %w", questName, ErrNotFound)
	}

	row, err := s.progressRepo.GetByUserAndQuest(ctx, userID, questName)
	if err != nil {
		return false, fmt.Errorf("failed to load lightkeeper progress: %w", err)
	}
	if row == nil {
		state := true
		if initialState != nil {
			state = *initialState
		}
		row = &models.UserLightkeeperProgress{
			UserID:            userID,
			QuestName:         questName,
			Completed:         state,
			SubTasksCompleted: []int{},
		}
		if err := s.progressRepo.Create(ctx, row); err != nil {
			return false, err
		}
		return state, nil
	}

	row.Completed = !row.Completed
	if err := s.progressRepo.Update(ctx, row, "completed"); err != nil {
		return false, err
	}
	return row.Completed, nil
}

// ToggleSubTask flips one sub-task index of a quest and returns the updated
// index set. Toggling a sub-task before the quest row exists creates the row
// with the quest itself not completed.
func (s *LightkeeperService) ToggleSubTask(ctx context.Context, userID int64, questName string, index int) ([]int, error) {
	quest, ok := gamedata.LightkeeperQuestByName(questName)
	if !ok {
		return nil, fmt.Errorf("lightkeeper quest %q: %w", questName, ErrNotFound)
	}
	if index < 0 || index >= len(quest.SubTasks) {
		return nil, fmt.Errorf("sub-task %d of %q: %w", index, questName, ErrNotFound)
	}

	row, err := s.progressRepo.GetByUserAndQuest(ctx, userID, questName)
	if err != nil {
		return nil, fmt.Errorf("failed to load lightkeeper progress: %w", err)
	}
	if row == nil {
		row = &models.UserLightkeeperProgress{
			UserID:            userID,
			QuestName:         questName,
			Completed:         false,
			SubTasksCompleted: []int{index},
		}
		if err := s.progressRepo.Create(ctx, row); err != nil {
			return nil, err
		}
		return row.SubTasksCompleted, nil
	}

	next := make([]int, 0, len(row.SubTasksCompleted)+1)
	removed := false
	for _, done := range row.SubTasksCompleted {
		if done == index {
			removed = true
			continue
		}
		next = append(next, done)
	}
	if !removed {
		next = append(next, index)
	}
	sort.Ints(next)
	row.SubTasksCompleted = next
	if err := s.progressRepo.Update(ctx, row, "sub_tasks_completed"); err != nil {
		return nil, err
	}
	return row.SubTasksCompleted, nil
}
