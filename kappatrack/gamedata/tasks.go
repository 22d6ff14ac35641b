package gamedata

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"sort"
)

//go:embed tasks.json
var tasksJSON []byte

// TaskDefinition is one trader task of the Kappa checklist. Identity is the
// composite "Trader:Name" key; Order drives all list sorting.
type TaskDefinition struct {
	Name   string `json:"name"`
	Trader string `json:"trader"`
	Order  int    `json:"order"`
}

// Key returns the composite identifier used for progress rows.
func (t TaskDefinition) Key() string {
	return t.Trader + ":" + t.Name
}

var (
	taskDefinitions = mustLoadTasks()
	tasksByKey      = indexTasks(taskDefinitions)
)

func indexTasks(tasks []TaskDefinition) map[string]TaskDefinition {
	index := make(map[string]TaskDefinition, len(tasks))
	for _, task := range tasks {
		index[task.Key()] = task
	}
	return index
}

func mustLoadTasks() []TaskDefinition {
	var byTrader map[string][]struct {
		Name  string `json:"name"`
		Order int    `json:"order"`
	}
	if err := json.Unmarshal(tasksJSON, &byTrader); err != nil {
		panic(fmt.Sprintf("gamedata: bad tasks.json: %v", err))
	}

	var tasks []TaskDefinition
	for trader, entries := range byTrader {
		for _, entry := range entries {
			tasks = append(tasks, TaskDefinition{
				Name:   entry.Name,
				Trader: trader,
				Order:  entry.Order,
			})
		}
	}
	sort.Slice(tasks, func(i, j int) bool { return tasks[i].Order < tasks[j].Order })
	return tasks
}

// Tasks returns every task definition sorted by order.
func Tasks() []TaskDefinition {
	return taskDefinitions
}

// TaskByKey resolves a "Trader:Name" key to its definition.
func TaskByKey(key string) (TaskDefinition, bool) {
	task, ok := tasksByKey[key]
	return task, ok
}

// Traders returns the distinct trader names in task order.
func Traders() []string {
	seen := make(map[string]bool)
	var traders []string
	for _, task := range taskDefinitions {
		if !seen[task.Trader] {
			seen[task.Trader] = true
			traders = append(traders, task.Trader)
		}
	}
	return traders
}
