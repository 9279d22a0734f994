package pricing_test

import (
	"context"
	"testing"
	"time"

	"github.com/scrapzee/scrapzee-cli/application/pricing"
	"github.com/scrapzee/scrapzee-cli/model"
	"github.com/scrapzee/scrapzee-cli/repository/backend"
	apperrors "github.com/scrapzee/scrapzee-cli/utils/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var loadedCategories = []model.Category{
	{ID: 1, Name: "Paper", BasePrice: 12.5, Unit: "kg"},
	{ID: 2, Name: "Plastic", BasePrice: 8, Unit: "kg"},
	{ID: 5, Name: "E-Waste", BasePrice: 25, Unit: "kg"},
}

func TestPreviewEstimate(t *testing.T) {
	tests := []struct {
		name     string
		quantity float64
		category model.Category
		want     string
	}{
		{name: "whole result", quantity: 10, category: model.Category{BasePrice: 5}, want: "50.00"},
		{name: "fractional quantity", quantity: 2.5, category: model.Category{BasePrice: 12.5}, want: "31.25"},
		{name: "zero quantity", quantity: 0, category: model.Category{BasePrice: 45}, want: "0.00"},
		{name: "rounds for display", quantity: 1.234, category: model.Category{BasePrice: 1}, want: "1.23"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := pricing.PreviewEstimate(tt.quantity, tt.category)
			assert.Equal(t, tt.want, pricing.FormatAmount(got))
		})
	}
}

func TestCategoryLabel(t *testing.T) {
	tests := []struct {
		name string
		id   int64
		want string
	}{
		{name: "known id", id: 2, want: "Plastic"},
		{name: "unknown id falls back", id: 3, want: "Category 3"},
		{name: "unknown id in empty list", id: 7, want: "Category 7"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			categories := loadedCategories
			if tt.id == 7 {
				categories = nil
			}
			assert.Equal(t, tt.want, pricing.CategoryLabel(categories, tt.id))
		})
	}
}

func TestFindCategory(t *testing.T) {
	cat, ok := pricing.FindCategory(loadedCategories, 5)
	require.True(t, ok)
	assert.Equal(t, "E-Waste", cat.Name)

	_, ok = pricing.FindCategory(loadedCategories, 42)
	assert.False(t, ok)
}

type historyGateway struct {
	backend.Gateway
	historyFn func(ctx context.Context, categoryID int64) (*model.PriceHistoryResponse, error)
}

func (g *historyGateway) PriceHistory(ctx context.Context, categoryID int64) (*model.PriceHistoryResponse, error) {
	return g.historyFn(ctx, categoryID)
}

func TestPricingApp_History(t *testing.T) {
	entries := []model.PriceHistoryEntry{
		{Price: 13, ChangedAt: model.APITime{Time: time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)}, Reason: "Market adjustment"},
		{Price: 12.5, ChangedAt: model.APITime{Time: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}, Reason: "Initial creation"},
	}

	t.Run("passes through the backend history", func(t *testing.T) {
		app := pricing.NewPricingApp(&historyGateway{
			historyFn: func(_ context.Context, categoryID int64) (*model.PriceHistoryResponse, error) {
				assert.EqualValues(t, 1, categoryID)
				return &model.PriceHistoryResponse{History: entries}, nil
			},
		})
		got, err := app.History(context.Background(), 1)
		require.NoError(t, err)
		assert.Equal(t, entries, got)
	})

	t.Run("propagates gateway errors", func(t *testing.T) {
		app := pricing.NewPricingApp(&historyGateway{
			historyFn: func(context.Context, int64) (*model.PriceHistoryResponse, error) {
				return nil, apperrors.Rejected("Category not found")
			},
		})
		_, err := app.History(context.Background(), 99)
		require.Error(t, err)
		assert.EqualError(t, err, "Category not found")
	})
}
