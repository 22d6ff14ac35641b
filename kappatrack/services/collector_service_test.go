package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kappatrack/kappatrack/kappatrack/gamedata"
)

func TestCollectorToggle(t *testing.T) {
	svc := NewCollectorService(newFakeCollectorRepo())
	ctx := context.Background()
	name := gamedata.CollectorItems()[0].Name

	found, err := svc.Toggle(ctx, 1, name)
	require.NoError(t, err)
	assert.True(t, found)

	found, err = svc.Toggle(ctx, 1, name)
	require.NoError(t, err)
	assert.False(t, found)

	_, err = svc.Toggle(ctx, 1, "Golden Toilet")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCollectorList(t *testing.T) {
	svc := NewCollectorService(newFakeCollectorRepo())
	ctx := context.Background()

	first := gamedata.CollectorItems()[0]
	_, err := svc.Toggle(ctx, 1, first.Name)
	require.NoError(t, err)

	items, err := svc.List(ctx, 1, "")
	require.NoError(t, err)
	require.Len(t, items, len(gamedata.CollectorItems()))
	assert.True(t, items[0].Found)
	for i := 1; i < len(items); i++ {
		assert.Less(t, items[i-1].Order, items[i].Order)
		assert.False(t, items[i].Found)
	}
}

func TestCollectorListSearch(t *testing.T) {
	svc := NewCollectorService(newFakeCollectorRepo())
	ctx := context.Background()

	target := gamedata.CollectorItems()[0].Name

	items, err := svc.List(ctx, 1, target)
	require.NoError(t, err)
	require.NotEmpty(t, items)

	names := make([]string, 0, len(items))
	for i, item := range items {
		names = append(names, item.Name)
		if i > 0 {
			assert.Less(t, items[i-1].Order, item.Order, "matches come back in display order")
		}
	}
	assert.Contains(t, names, target)
}
