package backend

import (
	"context"
	"fmt"
	"net/http"

	"github.com/scrapzee/scrapzee-cli/model"
)

func (g *httpGateway) Categories(ctx context.Context) (*model.CategoriesResponse, error) {
	var res model.CategoriesResponse
	if err := g.do(ctx, http.MethodGet, "/pricing/categories", "", nil, nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (g *httpGateway) PriceHistory(ctx context.Context, categoryID int64) (*model.PriceHistoryResponse, error) {
	var res model.PriceHistoryResponse
	path := fmt.Sprintf("/pricing/history/%d", categoryID)
	if err := g.do(ctx, http.MethodGet, path, "", nil, nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}
