package profile

import (
	"context"

	"github.com/scrapzee/scrapzee-cli/constant"
	"github.com/scrapzee/scrapzee-cli/model"
	"github.com/scrapzee/scrapzee-cli/repository/backend"
	"github.com/scrapzee/scrapzee-cli/utils/errors"
	validatorx "github.com/scrapzee/scrapzee-cli/utils/validator"
)

// TokenSource supplies the bearer credential of the active session.
type TokenSource interface {
	Token() string
}

type ProfileApp interface {
	Get(ctx context.Context) (*model.ProfileResponse, error)
	Update(ctx context.Context, form *model.UpdateProfileForm) (*model.MessageResponse, error)
}

type profileAppImpl struct {
	gateway backend.Gateway
	tokens  TokenSource
}

func NewProfileApp(gateway backend.Gateway, tokens TokenSource) ProfileApp {
	return &profileAppImpl{gateway: gateway, tokens: tokens}
}

// Get returns the identity record plus the extended profile. The profile is
// nil until the user first saves one.
func (s *profileAppImpl) Get(ctx context.Context) (*model.ProfileResponse, error) {
	token := s.tokens.Token()
	if token == "" {
		return nil, errors.SetCustomError(constant.ErrUnauthorized)
	}
	return s.gateway.Profile(ctx, token)
}

// Update saves the edit buffer. Empty fields are omitted from the payload so
// stored values survive partial edits.
func (s *profileAppImpl) Update(ctx context.Context, form *model.UpdateProfileForm) (*model.MessageResponse, error) {
	token := s.tokens.Token()
	if token == "" {
		return nil, errors.SetCustomError(constant.ErrUnauthorized)
	}

	if err := validatorx.ValidateStruct(form); err != nil {
		return nil, errors.InvalidForm(err.Error())
	}

	return s.gateway.UpdateProfile(ctx, token, form)
}
