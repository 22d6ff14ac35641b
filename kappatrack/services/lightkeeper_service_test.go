package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kappatrack/kappatrack/kappatrack/gamedata"
)

// questWithSubTasks returns a static quest that has sub-task data.
func questWithSubTasks(t *testing.T) gamedata.LightkeeperQuest {
	t.Helper()
	for _, quest := range gamedata.LightkeeperQuests() {
		if len(quest.SubTasks) >= 2 {
			return quest
		}
	}
	t.Fatal("no quest with sub-tasks in static data")
	return gamedata.LightkeeperQuest{}
}

func TestLightkeeperToggleQuest(t *testing.T) {
	repo := newFakeLightkeeperRepo()
	svc := NewLightkeeperService(repo)
	ctx := context.Background()
	quest := gamedata.LightkeeperQuests()[0]

	completed, err := svc.ToggleQuest(ctx, 1, quest.Name, nil)
	require.NoError(t, err)
	assert.True(t, completed, "first toggle without initial state completes the quest")

	completed, err = svc.ToggleQuest(ctx, 1, quest.Name, nil)
	require.NoError(t, err)
	assert.False(t, completed)
}

func TestLightkeeperToggleQuestInitialState(t *testing.T) {
	svc := NewLightkeeperService(newFakeLightkeeperRepo())
	ctx := context.Background()
	quest := gamedata.LightkeeperQuests()[1]

	initial := false
	completed, err := svc.ToggleQuest(ctx, 1, quest.Name, &initial)
	require.NoError(t, err)
	assert.False(t, completed, "explicit initial state wins on row creation")
}

func TestLightkeeperToggleSubTaskSynthesizesParent(t *testing.T) {
	repo := newFakeLightkeeperRepo()
	svc := NewLightkeeperService(repo)
	ctx := context.Background()
	quest := questWithSubTasks(t)

	indices, err := svc.ToggleSubTask(ctx, 1, quest.Name, 1)
	require.NoError(t, err)
	assert.Equal(t, []int{1}, indices)

	row := repo.byQuest[quest.Name]
	require.NotNil(t, row, "parent row created by sub-task toggle")
	assert.False(t, row.Completed, "synthesized parent starts incomplete")

	// Indices stay sorted as more sub-tasks complete
	indices, err = svc.ToggleSubTask(ctx, 1, quest.Name, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1}, indices)

	// Toggling again removes the index
	indices, err = svc.ToggleSubTask(ctx, 1, quest.Name, 1)
	require.NoError(t, err)
	assert.Equal(t, []int{0}, indices)
}

func TestLightkeeperNotFound(t *testing.T) {
	svc := NewLightkeeperService(newFakeLightkeeperRepo())
	ctx := context.Background()
	quest := questWithSubTasks(t)

	_, err := svc.ToggleQuest(ctx, 1, "Not A Quest", nil)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.ToggleSubTask(ctx, 1, "Not A Quest", 0)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.ToggleSubTask(ctx, 1, quest.Name, len(quest.SubTasks))
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.ToggleSubTask(ctx, 1, quest.Name, -1)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLightkeeperList(t *testing.T) {
	svc := NewLightkeeperService(newFakeLightkeeperRepo())
	ctx := context.Background()
	quest := questWithSubTasks(t)

	_, err := svc.ToggleSubTask(ctx, 1, quest.Name, 0)
	require.NoError(t, err)

	quests, err := svc.List(ctx, 1)
	require.NoError(t, err)
	require.Len(t, quests, len(gamedata.LightkeeperQuests()))

	var found bool
	for _, entry := range quests {
		require.NotNil(t, entry.SubTasksCompleted, entry.Name)
		if entry.Name == quest.Name {
			found = true
			assert.False(t, entry.Completed)
			assert.Equal(t, []int{0}, entry.SubTasksCompleted)
		} else {
			assert.Empty(t, entry.SubTasksCompleted)
		}
	}
	assert.True(t, found)
}
