package models

import (
	"github.com/kappatrack/kappatrack/kappatrack/database/repositories"
)

// Repositories groups all repository interfaces for easy injection
type Repositories struct {
	User         repositories.UserRepository
	TaskProgress repositories.TaskProgressRepository
	UserProgress repositories.UserProgressRepository
	Collector    repositories.CollectorProgressRepository
	Lightkeeper  repositories.LightkeeperProgressRepository
	Note         repositories.NoteRepository
}

// NewRepositories creates a new repositories group from individual repositories
func NewRepositories(
	user repositories.UserRepository,
	taskProgress repositories.TaskProgressRepository,
	userProgress repositories.UserProgressRepository,
	collector repositories.CollectorProgressRepository,
	lightkeeper repositories.LightkeeperProgressRepository,
	note repositories.NoteRepository,
) *Repositories {
	return &Repositories{
		User:         user,
		TaskProgress: taskProgress,
		UserProgress: userProgress,
		Collector:    collector,
		Lightkeeper:  lightkeeper,
		Note:         note,
	}
}
