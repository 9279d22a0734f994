package pricing

import (
	"context"
	"fmt"

	"github.com/scrapzee/scrapzee-cli/model"
	"github.com/scrapzee/scrapzee-cli/repository/backend"
)

type PricingApp interface {
	History(ctx context.Context, categoryID int64) ([]model.PriceHistoryEntry, error)
}

type pricingAppImpl struct {
	gateway backend.Gateway
}

func NewPricingApp(gateway backend.Gateway) PricingApp {
	return &pricingAppImpl{gateway: gateway}
}

// History returns past price points for a category, newest first.
func (s *pricingAppImpl) History(ctx context.Context, categoryID int64) ([]model.PriceHistoryEntry, error) {
	res, err := s.gateway.PriceHistory(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	return res.History, nil
}

// PreviewEstimate is the client-side price preview: quantity times the
// category base price. Display-only; the backend's stored estimate is
// authoritative and is never recomputed from this.
func PreviewEstimate(quantity float64, category model.Category) float64 {
	return quantity * category.BasePrice
}

// FormatAmount renders a price for display with two decimals.
func FormatAmount(v float64) string {
	return fmt.Sprintf("%.2f", v)
}

// CategoryLabel resolves a category id against loaded reference data. Ids
// outside the loaded list get a synthesized label instead of failing.
func CategoryLabel(categories []model.Category, id int64) string {
	for _, c := range categories {
		if c.ID == id {
			return c.Name
		}
	}
	return fmt.Sprintf("Category %d", id)
}

// FindCategory returns the loaded category with the given id, if any.
func FindCategory(categories []model.Category, id int64) (model.Category, bool) {
	for _, c := range categories {
		if c.ID == id {
			return c, true
		}
	}
	return model.Category{}, false
}
