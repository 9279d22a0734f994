package backend

import (
	"context"
	"net/http"

	"github.com/scrapzee/scrapzee-cli/model"
)

func (g *httpGateway) Login(ctx context.Context, form *model.LoginForm) (*model.AuthResponse, error) {
	var res model.AuthResponse
	if err := g.do(ctx, http.MethodPost, "/auth/login", "", nil, form, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (g *httpGateway) Register(ctx context.Context, form *model.RegisterForm) (*model.AuthResponse, error) {
	var res model.AuthResponse
	if err := g.do(ctx, http.MethodPost, "/auth/register", "", nil, form, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (g *httpGateway) Verify(ctx context.Context, token string) (*model.VerifyResponse, error) {
	var res model.VerifyResponse
	if err := g.do(ctx, http.MethodGet, "/auth/verify", token, nil, nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}
