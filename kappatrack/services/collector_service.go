package services

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/sahilm/fuzzy"

	"github.com/kappatrack/kappatrack/kappatrack/database/repositories"
	"github.com/kappatrack/kappatrack/kappatrack/gamedata"
)

// CollectorItemWithProgress is a static collector item joined with whether
// the user has found it.
type CollectorItemWithProgress struct {
	Name  string `json:"name"`
	Order int    `json:"order"`
	Img   string `json:"img"`
	Found bool   `json:"found"`
}

type CollectorService struct {
	progressRepo repositories.CollectorProgressRepository
}

func NewCollectorService(progressRepo repositories.CollectorProgressRepository) *CollectorService {
	return &CollectorService{progressRepo: progressRepo}
}

type collectorItemSource []gamedata.CollectorItem

func (s collectorItemSource) String(i int) string { return s[i].Name }
func (s collectorItemSource) Len() int            { return len(s) }

// List returns the collector checklist, optionally narrowed by a fuzzy name
// search. Results always come back in display order regardless of match rank.
func (s *CollectorService) List(ctx context.Context, userID int64, search string) ([]CollectorItemWithProgress, error) {
	rows, err := s.progressRepo.GetAllByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load collector progress: %w", err)
	}
	found := make(map[string]bool, len(rows))
	for _, row := range rows {
		found[row.ItemName] = true
	}

	items := gamedata.CollectorItems()
	search = strings.TrimSpace(search)
	if search != "" {
		matches := fuzzy.FindFrom(search, collectorItemSource(items))
		matched := make([]gamedata.CollectorItem, 0, len(matches))
		for _, match := range matches {
			matched = append(matched, items[match.Index])
		}
		sort.Slice(matched, func(i, j int) bool { return matched[i].Order < matched[j].Order })
		items = matched
	}

	out := make([]CollectorItemWithProgress, 0, len(items))
	for _, item := range items {
		out = append(out, CollectorItemWithProgress{
			Name:  item.Name,
			Order: item.Order,
			Img:   item.Img,
			Found: found[item.Name],
		})
	}
	return out, nil
}

// Toggle flips an item's found state and returns the new state.
func (s *CollectorService) Toggle(ctx context.Context, userID int64, itemName string) (bool, error) {
	if !knownCollectorItem(itemName) {
		return false, fmt.Errorf("collector item %q: %w", itemName, ErrNotFound)
	}
	return s.progressRepo.Toggle(ctx, userID, itemName)
}

func knownCollectorItem(name string) bool {
	for _, item := range gamedata.CollectorItems() {
		if item.Name == name {
			return true
		}
	}
	return false
}
