package gamedata

import (
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTasksSortedAndUnique(t *testing.T) {
	tasks := Tasks()
	require.NotEmpty(t, tasks)

	seen := make(map[string]bool, len(tasks))
	for i, task := range tasks {
		assert.NotEmpty(t, task.Name)
		assert.NotEmpty(t, task.Trader)
		assert.False(t, seen[task.Key()], "duplicate task key %q", task.Key())
		seen[task.Key()] = true
		if i > 0 {
			assert.LessOrEqual(t, tasks[i-1].Order, task.Order)
		}
	}
}

func TestTaskByKey(t *testing.T) {
	first := Tasks()[0]

	task, ok := TaskByKey(first.Key())
	require.True(t, ok)
	assert.Equal(t, first, task)

	_, ok = TaskByKey("Prapor:No Such Task")
	assert.False(t, ok)
}

func TestTraders(t *testing.T) {
	traders := Traders()
	assert.Contains(t, traders, "Prapor")
	assert.Contains(t, traders, "Jaeger")

	seen := make(map[string]bool)
	for _, trader := range traders {
		assert.False(t, seen[trader])
		seen[trader] = true
	}
}

func TestBossChainTotals(t *testing.T) {
	bosses := Bosses()
	require.Len(t, bosses, 6)

	for _, chain := range bosses {
		assert.Equal(t, len(chain.Prerequisites)+1, chain.TotalRequired, chain.Boss)
		assert.NotEmpty(t, chain.FinalTask, chain.Boss)
		assert.NotEmpty(t, chain.Prerequisites, chain.Boss)
	}
}

func TestBossOrder(t *testing.T) {
	var names []string
	for _, chain := range Bosses() {
		names = append(names, chain.Boss)
	}
	assert.Equal(t, []string{"Killa", "Goons", "Tagilla", "Shturman", "Reshala", "Glukhar"}, names)
}

func TestBossLookup(t *testing.T) {
	chain, ok := Boss("Killa")
	require.True(t, ok)
	assert.Equal(t, "The Huntsman Path - Sellout", chain.FinalTask)

	_, ok = Boss("Kaban")
	assert.False(t, ok)
}

func TestCollectorItems(t *testing.T) {
	items := CollectorItems()
	require.NotEmpty(t, items)

	for i, item := range items {
		assert.NotEmpty(t, item.Name)
		if i > 0 {
			assert.Less(t, items[i-1].Order, item.Order)
		}
	}
}

func TestPrestigeRequirements(t *testing.T) {
	levels := PrestigeLevels()
	assert.Equal(t, []int{1, 2}, levels)

	req, ok := PrestigeRequirementFor(1)
	require.True(t, ok)
	assert.Equal(t, 55, req.Level)
	assert.Len(t, req.Figurines, 10)
	assert.True(t, req.LabsExtracted)

	req2, ok := PrestigeRequirementFor(2)
	require.True(t, ok)
	for _, figurine := range req2.Figurines {
		assert.True(t, strings.HasSuffix(figurine, "(FIR)"), figurine)
	}

	_, ok = PrestigeRequirementFor(3)
	assert.False(t, ok)
}

func TestHideoutTables(t *testing.T) {
	assert.NotEmpty(t, HideoutTraderLevels())
	assert.NotEmpty(t, HideoutSkillLevels())
	assert.NotEmpty(t, HideoutItems())

	for name, level := range HideoutTraderLevels() {
		assert.Positive(t, level, name)
	}
}

func TestSortedKeys(t *testing.T) {
	keys := SortedKeys(HideoutItems())
	assert.Len(t, keys, len(HideoutItems()))
	assert.True(t, sort.StringsAreSorted(keys))
}

func TestLightkeeperQuests(t *testing.T) {
	quests := LightkeeperQuests()
	require.NotEmpty(t, quests)

	seen := make(map[string]bool, len(quests))
	for _, quest := range quests {
		assert.NotEmpty(t, quest.Name)
		assert.False(t, seen[quest.Name], "duplicate quest %q", quest.Name)
		seen[quest.Name] = true
		assert.True(t, strings.HasPrefix(quest.WikiURL, "https://escapefromtarkov.fandom.com/wiki/"), quest.Name)
	}
}

func TestLightkeeperQuestByName(t *testing.T) {
	quest, ok := LightkeeperQuestByName("Network Provider - Part 1")
	require.True(t, ok)
	assert.Equal(t, "Network Provider - Part 1", quest.Name)

	_, ok = LightkeeperQuestByName("Not A Quest")
	assert.False(t, ok)
}

func TestLightkeeperSubTaskCounts(t *testing.T) {
	counts := map[string]int{
		"First in Line":               3,
		"Shortage":                    3,
		"Acquaintance":                7,
		"Sanitary Standards - Part 1": 1,
		"Supplier":                    2,
		"Painkiller":                  4,
		"Sanitary Standards - Part 2": 2,
		"What’s on the Flash Drive?":  2,
		"Ice Cream Cones":             3,
		"Farming - Part 2":            8,
		"Spa Tour - Part 3":           8,
		"Spa Tour - Part 7":           10,
		"The Punisher - Part 2":       7,
		"The Punisher - Part 4":       5,
		"Network Provider - Part 1":   16,
	}

	for name, want := range counts {
		quest, ok := LightkeeperQuestByName(name)
		require.True(t, ok, name)
		assert.Len(t, quest.SubTasks, want, name)
	}

	// Part 1 asks for four of each hand-in item
	quest, _ := LightkeeperQuestByName("Network Provider - Part 1")
	perItem := make(map[string]int, 4)
	for _, sub := range quest.SubTasks {
		perItem[sub.Item]++
		assert.True(t, sub.FoundInRaid, sub.Item)
	}
	assert.Equal(t, map[string]int{
		"Electronic components":                      4,
		"Military COFDM Wireless Signal Transmitter": 4,
		"Gas analyzer":                               4,
		"Broken GPhone smartphone":                   4,
	}, perItem)
}
