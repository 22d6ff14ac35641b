package services

import (
	"context"

	"github.com/kappatrack/kappatrack/kappatrack/database/models"
)

// In-memory repository fakes. Each mirrors the toggle and lazy-create
// behavior of its Postgres counterpart.

type fakeTaskProgressRepo struct {
	completed map[string]bool
}

func newFakeTaskProgressRepo() *fakeTaskProgressRepo {
	return &fakeTaskProgressRepo{completed: map[string]bool{}}
}

func (f *fakeTaskProgressRepo) GetAllByUserID(_ context.Context, userID int64) ([]*models.UserTaskProgress, error) {
	var rows []*models.UserTaskProgress
	for key := range f.completed {
		rows = append(rows, &models.UserTaskProgress{UserID: userID, TaskKey: key, Completed: true})
	}
	return rows, nil
}

func (f *fakeTaskProgressRepo) Toggle(_ context.Context, _ int64, taskKey string) (bool, error) {
	if f.completed[taskKey] {
		delete(f.completed, taskKey)
		return false, nil
	}
	f.completed[taskKey] = true
	return true, nil
}

type fakeUserProgressRepo struct {
	byUser map[int64]*models.UserProgress
}

func newFakeUserProgressRepo() *fakeUserProgressRepo {
	return &fakeUserProgressRepo{byUser: map[int64]*models.UserProgress{}}
}

func (f *fakeUserProgressRepo) GetByUserID(_ context.Context, userID int64) (*models.UserProgress, error) {
	return f.byUser[userID], nil
}

func (f *fakeUserProgressRepo) Create(_ context.Context, progress *models.UserProgress) error {
	f.byUser[progress.UserID] = progress
	return nil
}

func (f *fakeUserProgressRepo) Update(_ context.Context, progress *models.UserProgress, _ ...string) error {
	f.byUser[progress.UserID] = progress
	return nil
}

type fakeCollectorRepo struct {
	found map[string]bool
}

func newFakeCollectorRepo() *fakeCollectorRepo {
	return &fakeCollectorRepo{found: map[string]bool{}}
}

func (f *fakeCollectorRepo) GetAllByUserID(_ context.Context, userID int64) ([]*models.UserCollectorProgress, error) {
	var rows []*models.UserCollectorProgress
	for name := range f.found {
		rows = append(rows, &models.UserCollectorProgress{UserID: userID, ItemName: name})
	}
	return rows, nil
}

func (f *fakeCollectorRepo) Toggle(_ context.Context, _ int64, itemName string) (bool, error) {
	if f.found[itemName] {
		delete(f.found, itemName)
		return false, nil
	}
	f.found[itemName] = true
	return true, nil
}

type fakeLightkeeperRepo struct {
	byQuest map[string]*models.UserLightkeeperProgress
}

func newFakeLightkeeperRepo() *fakeLightkeeperRepo {
	return &fakeLightkeeperRepo{byQuest: map[string]*models.UserLightkeeperProgress{}}
}

func (f *fakeLightkeeperRepo) GetAllByUserID(_ context.Context, _ int64) ([]*models.UserLightkeeperProgress, error) {
	var rows []*models.UserLightkeeperProgress
	for _, row := range f.byQuest {
		rows = append(rows, row)
	}
	return rows, nil
}

func (f *fakeLightkeeperRepo) GetByUserAndQuest(_ context.Context, _ int64, questName string) (*models.UserLightkeeperProgress, error) {
	return f.byQuest[questName], nil
}

func (f *fakeLightkeeperRepo) Create(_ context.Context, progress *models.UserLightkeeperProgress) error {
	f.byQuest[progress.QuestName] = progress
	return nil
}

func (f *fakeLightkeeperRepo) Update(_ context.Context, progress *models.UserLightkeeperProgress, _ ...string) error {
	f.byQuest[progress.QuestName] = progress
	return nil
}

type fakeNoteRepo struct {
	byUser map[int64]*models.UserNote
}

func newFakeNoteRepo() *fakeNoteRepo {
	return &fakeNoteRepo{byUser: map[int64]*models.UserNote{}}
}

func (f *fakeNoteRepo) GetByUserID(_ context.Context, userID int64) (*models.UserNote, error) {
	return f.byUser[userID], nil
}

func (f *fakeNoteRepo) Upsert(_ context.Context, userID int64, content string) (*models.UserNote, error) {
	note := &models.UserNote{UserID: userID, Content: content}
	f.byUser[userID] = note
	return note, nil
}
