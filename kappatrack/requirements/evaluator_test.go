package requirements

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestThreshold(t *testing.T) {
	tests := []struct {
		name string
		have int
		want int
		met  bool
	}{
		{name: "below", have: 10, want: 20, met: false},
		{name: "exact", have: 20, want: 20, met: true},
		{name: "above", have: 30, want: 20, met: true},
		{name: "zero requirement", have: 0, want: 0, met: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.met, Threshold("level", tt.have, tt.want).Met)
		})
	}
}

func TestOptionalThreshold(t *testing.T) {
	assert.True(t, OptionalThreshold("scavsKilled", 0, 0).Met, "zero requirement never applies")
	assert.False(t, OptionalThreshold("scavsKilled", 10, 50).Met)
	assert.True(t, OptionalThreshold("scavsKilled", 50, 50).Met)
}

func TestFlag(t *testing.T) {
	assert.True(t, Flag("labsExtracted", false, false).Met, "not required")
	assert.False(t, Flag("labsExtracted", true, false).Met)
	assert.True(t, Flag("labsExtracted", true, true).Met)
}

func TestSubset(t *testing.T) {
	tests := []struct {
		name     string
		required []string
		have     []string
		met      bool
	}{
		{name: "empty requirement", required: nil, have: nil, met: true},
		{name: "missing one", required: []string{"a", "b"}, have: []string{"a"}, met: false},
		{name: "exact", required: []string{"a", "b"}, have: []string{"b", "a"}, met: true},
		{name: "superset", required: []string{"a"}, have: []string{"a", "b"}, met: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.met, Subset("figurines", tt.required, tt.have).Met)
		})
	}
}

func TestMembership(t *testing.T) {
	set := map[string]bool{"Acquaintance": true}
	assert.True(t, Membership("Acquaintance", set).Met)
	assert.False(t, Membership("Only Business", set).Met)
}

func TestEvaluate(t *testing.T) {
	result := Evaluate([]Check{
		{Name: "a", Met: true},
		{Name: "b", Met: false},
		{Name: "c", Met: false},
		{Name: "d", Met: true},
	})

	assert.Equal(t, 2, result.Completed)
	assert.Equal(t, 4, result.Total)
	assert.InDelta(t, 50.0, result.Percentage, 0.001)
	assert.Len(t, result.Checks, 4)
}

func TestEvaluateEmpty(t *testing.T) {
	result := Evaluate(nil)

	assert.Equal(t, 0, result.Completed)
	assert.Equal(t, 0, result.Total)
	assert.Zero(t, result.Percentage)
}
