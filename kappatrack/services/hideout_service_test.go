package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kappatrack/kappatrack/kappatrack/database/models"
	"github.com/kappatrack/kappatrack/kappatrack/gamedata"
)

func TestHideoutGetDefaults(t *testing.T) {
	svc := NewHideoutService(newFakeUserProgressRepo())

	progress, err := svc.Get(context.Background(), 1)
	require.NoError(t, err)
	assert.NotNil(t, progress.Items)
	assert.NotNil(t, progress.Skills)
	assert.NotNil(t, progress.Traders)
	assert.Empty(t, progress.Items)
}

func TestHideoutUpdateClampsNegatives(t *testing.T) {
	svc := NewHideoutService(newFakeUserProgressRepo())
	ctx := context.Background()

	err := svc.Update(ctx, 1, models.HideoutProgress{
		Skills: map[string]int{"Endurance": -5},
	})
	require.NoError(t, err)

	progress, err := svc.Get(ctx, 1)
	require.NoError(t, err)
	assert.Zero(t, progress.Skills["Endurance"])
}

func TestHideoutSummary(t *testing.T) {
	svc := NewHideoutService(newFakeUserProgressRepo())
	ctx := context.Background()

	traders := map[string]int{}
	for name, level := range gamedata.HideoutTraderLevels() {
		traders[name] = level
	}
	require.NoError(t, svc.Update(ctx, 1, models.HideoutProgress{Traders: traders}))

	summary, err := svc.Summary(ctx, 1)
	require.NoError(t, err)

	assert.Equal(t, summary.Traders.Total, summary.Traders.Completed)
	assert.InDelta(t, 100.0, summary.Traders.Percentage, 0.001)
	assert.Zero(t, summary.Skills.Completed)
	assert.Zero(t, summary.Items.Completed)

	wantTotal := len(gamedata.HideoutTraderLevels()) + len(gamedata.HideoutSkillLevels()) + len(gamedata.HideoutItems())
	assert.Equal(t, wantTotal, summary.Overall.Total)
	assert.Equal(t, summary.Traders.Completed, summary.Overall.Completed)
}

func TestDefaultHideoutSummaryNothingMet(t *testing.T) {
	summary := DefaultHideoutSummary()

	wantTotal := len(gamedata.HideoutTraderLevels()) + len(gamedata.HideoutSkillLevels()) + len(gamedata.HideoutItems())
	assert.Equal(t, wantTotal, summary.Overall.Total)
	assert.Zero(t, summary.Overall.Completed)
	assert.Zero(t, summary.Overall.Percentage)
}
