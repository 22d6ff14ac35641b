package services

import "errors"

var (
	// ErrNotFound covers unknown static entities: task keys, boss names,
	// collector items, prestige levels, Lightkeeper quests and sub-task
	// indices outside the quest's range.
	ErrNotFound = errors.New("not found")
)
