package app_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"danube_tours/internal/app"
	"danube_tours/internal/domain"
)

func TestResolvePrice(t *testing.T) {
	tiers := []domain.PriceVariation{
		{Persons: "1-2", Price: 10},
		{Persons: "3-6", Price: 8},
	}

	tests := []struct {
		name  string
		size  domain.PartySize
		want  int
		found bool
	}{
		{"lower tier", 2, 10, true},
		{"upper tier", 5, 8, true},
		{"boundary of upper tier", 6, 8, true},
		{"above all tiers", 7, 0, false},
		{"zero size", 0, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := app.ResolvePrice(tt.size, tiers)
			assert.Equal(t, tt.found, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolvePrice_FirstCoveringTierWins(t *testing.T) {
	tiers := []domain.PriceVariation{
		{Persons: "1-4", Price: 50},
		{Persons: "3-6", Price: 40},
	}
	got, ok := app.ResolvePrice(3, tiers)
	assert.True(t, ok)
	assert.Equal(t, 50, got, "overlapping tiers resolve in authored order")
}

func TestResolvePrice_SingleValueAndMalformedTiers(t *testing.T) {
	tiers := []domain.PriceVariation{
		{Persons: "garbage", Price: 99},
		{Persons: "4", Price: 25},
	}
	got, ok := app.ResolvePrice(4, tiers)
	assert.True(t, ok)
	assert.Equal(t, 25, got)

	_, ok = app.ResolvePrice(3, tiers)
	assert.False(t, ok, "malformed tier must be skipped, not matched")
}

func TestTotalPrice(t *testing.T) {
	tiers := []domain.PriceVariation{
		{Persons: "1-2", Price: 10},
		{Persons: "3-6", Price: 8},
	}

	total, ok := app.TotalPrice(5, tiers)
	assert.True(t, ok)
	assert.Equal(t, 40, total)

	_, ok = app.TotalPrice(9, tiers)
	assert.False(t, ok)
}
