package services

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/kappatrack/kappatrack/kappatrack/database/repositories"
	"github.com/kappatrack/kappatrack/kappatrack/gamedata"
)

// TaskStatusFilter selects which completion states a task listing includes.
type TaskStatusFilter string

const (
	TaskStatusAll        TaskStatusFilter = "all"
	TaskStatusCompleted  TaskStatusFilter = "completed"
	TaskStatusIncomplete TaskStatusFilter = "incomplete"
)

// TaskFilter narrows a task listing. Zero values mean no filtering.
type TaskFilter struct {
	Status TaskStatusFilter
	Trader string
	Search string
}

// TaskWithProgress is a static task definition joined with the user's state.
type TaskWithProgress struct {
	Key       string `json:"key"`
	Name      string `json:"name"`
	Trader    string `json:"trader"`
	Order     int    `json:"order"`
	Completed bool   `json:"completed"`
}

type TaskService struct {
	progressRepo repositories.TaskProgressRepository
}

func NewTaskService(progressRepo repositories.TaskProgressRepository) *TaskService {
	return &TaskService{progressRepo: progressRepo}
}

// List returns the user's Kappa task checklist with filters applied, always
// sorted by the static task order.
func (s *TaskService) List(ctx context.Context, userID int64, filter TaskFilter) ([]TaskWithProgress, error) {
	rows, err := s.progressRepo.GetAllByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load task progress: %w", err)
	}

	completed := make(map[string]bool, len(rows))
	for _, row := range rows {
		if row.Completed {
			completed[row.TaskKey] = true
		}
	}

	search := strings.ToLower(strings.TrimSpace(filter.Search))
	tasks := make([]TaskWithProgress, 0, len(gamedata.Tasks()))
	for _, task := range gamedata.Tasks() {
		if filter.Trader != "" && task.Trader != filter.Trader {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(task.Name), search) {
			continue
		}
		done := completed[task.Key()]
		switch filter.Status {
		case TaskStatusCompleted:
			if !done {
				continue
			}
		case TaskStatusIncomplete:
			if done {
				continue
			}
		}
		tasks = append(tasks, TaskWithProgress{
			Key:       task.Key(),
			Name:      task.Name,
			Trader:    task.Trader,
			Order:     task.Order,
			Completed: done,
		})
	}

	sort.Slice(tasks, func(i, j int) bool { return tasks[i].Order < tasks[j].Order })
	return tasks, nil
}

// Toggle flips a task's completion and returns the new state.
func (s *TaskService) Toggle(ctx context.Context, userID int64, taskKey string) (bool, error) {
	if _, ok := gamedata.TaskByKey(taskKey); !ok {
		return false, fmt.Errorf("task %q: %w", taskKey, ErrNotFound)
	}
	return s.progressRepo.Toggle(ctx, userID, taskKey)
}

// Traders returns the distinct trader names for filter dropdowns.
func (s *TaskService) Traders() []string {
	return gamedata.Traders()
}
