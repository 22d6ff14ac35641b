package services

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kappatrack/kappatrack/kappatrack/gamedata"
)

func TestTaskToggleFlipsState(t *testing.T) {
	svc := NewTaskService(newFakeTaskProgressRepo())
	ctx := context.Background()
	key := gamedata.Tasks()[0].Key()

	completed, err := svc.Toggle(ctx, 1, key)
	require.NoError(t, err)
	assert.True(t, completed)

	completed, err = svc.Toggle(ctx, 1, key)
	require.NoError(t, err)
	assert.False(t, completed, "second toggle reverts the first")
}

func TestTaskToggleUnknownKey(t *testing.T) {
	svc := NewTaskService(newFakeTaskProgressRepo())

	_, err := svc.Toggle(context.Background(), 1, "Prapor:No Such Task")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestTaskListFilters(t *testing.T) {
	repo := newFakeTaskProgressRepo()
	svc := NewTaskService(repo)
	ctx := context.Background()

	first := gamedata.Tasks()[0]
	_, err := svc.Toggle(ctx, 1, first.Key())
	require.NoError(t, err)

	tests := []struct {
		name   string
		filter TaskFilter
		check  func(t *testing.T, tasks []TaskWithProgress)
	}{
		{
			name:   "all",
			filter: TaskFilter{Status: TaskStatusAll},
			check: func(t *testing.T, tasks []TaskWithProgress) {
				assert.Len(t, tasks, len(gamedata.Tasks()))
			},
		},
		{
			name:   "completed only",
			filter: TaskFilter{Status: TaskStatusCompleted},
			check: func(t *testing.T, tasks []TaskWithProgress) {
				require.Len(t, tasks, 1)
				assert.Equal(t, first.Key(), tasks[0].Key)
			},
		},
		{
			name:   "incomplete only",
			filter: TaskFilter{Status: TaskStatusIncomplete},
			check: func(t *testing.T, tasks []TaskWithProgress) {
				assert.Len(t, tasks, len(gamedata.Tasks())-1)
				for _, task := range tasks {
					assert.False(t, task.Completed)
				}
			},
		},
		{
			name:   "trader filter",
			filter: TaskFilter{Status: TaskStatusAll, Trader: "Therapist"},
			check: func(t *testing.T, tasks []TaskWithProgress) {
				require.NotEmpty(t, tasks)
				for _, task := range tasks {
					assert.Equal(t, "Therapist", task.Trader)
				}
			},
		},
		{
			name:   "search is case-insensitive",
			filter: TaskFilter{Status: TaskStatusAll, Search: "SHOOTER"},
			check: func(t *testing.T, tasks []TaskWithProgress) {
				require.NotEmpty(t, tasks)
				for _, task := range tasks {
					assert.Contains(t, task.Name, "Shooter")
				}
			},
		},
		{
			name:   "search and trader combined",
			filter: TaskFilter{Status: TaskStatusAll, Trader: "Therapist", Search: "sanitary"},
			check: func(t *testing.T, tasks []TaskWithProgress) {
				require.Len(t, tasks, 2)
				assert.Equal(t, "Sanitary Standards - Part 1", tasks[0].Name)
				assert.Equal(t, "Sanitary Standards - Part 2", tasks[1].Name)
				for _, task := range tasks {
					assert.Equal(t, "Therapist", task.Trader)
				}
			},
		},
		{
			name:   "trader narrows a cross-trader search",
			filter: TaskFilter{Status: TaskStatusAll, Trader: "Therapist", Search: "part"},
			check: func(t *testing.T, tasks []TaskWithProgress) {
				require.NotEmpty(t, tasks)
				for _, task := range tasks {
					assert.Equal(t, "Therapist", task.Trader)
					assert.Contains(t, strings.ToLower(task.Name), "part")
				}

				unscoped, err := svc.List(ctx, 1, TaskFilter{Status: TaskStatusAll, Search: "part"})
				require.NoError(t, err)
				assert.Greater(t, len(unscoped), len(tasks))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tasks, err := svc.List(ctx, 1, tt.filter)
			require.NoError(t, err)
			for i := 1; i < len(tasks); i++ {
				assert.LessOrEqual(t, tasks[i-1].Order, tasks[i].Order, "listing must stay in task order")
			}
			tt.check(t, tasks)
		})
	}
}
