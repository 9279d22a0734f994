package backend

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/scrapzee/scrapzee-cli/constant"
	"github.com/scrapzee/scrapzee-cli/model"
)

func (g *httpGateway) Dashboard(ctx context.Context, token string) (*model.DashboardSnapshot, error) {
	var res model.DashboardSnapshot
	if err := g.do(ctx, http.MethodGet, "/users/dashboard", token, nil, nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (g *httpGateway) Profile(ctx context.Context, token string) (*model.ProfileResponse, error) {
	var res model.ProfileResponse
	if err := g.do(ctx, http.MethodGet, "/users/profile", token, nil, nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (g *httpGateway) UpdateProfile(ctx context.Context, token string, form *model.UpdateProfileForm) (*model.MessageResponse, error) {
	var res model.MessageResponse
	if err := g.do(ctx, http.MethodPost, "/users/profile", token, nil, form, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (g *httpGateway) Requests(ctx context.Context, token string, status constant.RequestStatus) (*model.RequestsResponse, error) {
	var query url.Values
	if status != "" {
		query = url.Values{"status": {string(status)}}
	}

	var res model.RequestsResponse
	if err := g.do(ctx, http.MethodGet, "/users/requests", token, query, nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (g *httpGateway) Request(ctx context.Context, token string, id int64) (*model.RequestRecord, error) {
	var res model.RequestRecord
	path := fmt.Sprintf("/users/requests/%d", id)
	if err := g.do(ctx, http.MethodGet, path, token, nil, nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (g *httpGateway) CreateRequest(ctx context.Context, token string, form *model.CreateRequestForm) (*model.CreateRequestResponse, error) {
	var res model.CreateRequestResponse
	if err := g.do(ctx, http.MethodPost, "/users/requests", token, nil, form, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (g *httpGateway) UpdateRequestStatus(ctx context.Context, token string, id int64, req *model.StatusUpdateRequest) (*model.MessageResponse, error) {
	var res model.MessageResponse
	path := fmt.Sprintf("/users/requests/%d/status", id)
	if err := g.do(ctx, http.MethodPut, path, token, nil, req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}
