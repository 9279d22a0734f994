package requests

import (
	"context"

	"github.com/scrapzee/scrapzee-cli/constant"
	"github.com/scrapzee/scrapzee-cli/model"
	"github.com/scrapzee/scrapzee-cli/repository/backend"
	"github.com/scrapzee/scrapzee-cli/utils/errors"
	"github.com/scrapzee/scrapzee-cli/utils/logger"
	validatorx "github.com/scrapzee/scrapzee-cli/utils/validator"
	"go.uber.org/zap"
)

// TokenSource supplies the bearer credential of the active session. The
// session controller implements it.
type TokenSource interface {
	Token() string
}

// RequestsApp covers the pickup-request lifecycle available to the user:
// create, list, fetch one, cancel. Each operation is one request/response
// exchange; its error is returned to the caller and never touches the
// session-wide error slot.
type RequestsApp interface {
	Create(ctx context.Context, form *model.CreateRequestForm) (*model.CreateRequestResponse, error)
	List(ctx context.Context, status constant.RequestStatus) ([]model.RequestRecord, error)
	Get(ctx context.Context, id int64) (*model.RequestRecord, error)
	Cancel(ctx context.Context, id int64) (*model.RequestRecord, error)
}

type requestsAppImpl struct {
	gateway backend.Gateway
	tokens  TokenSource
}

func NewRequestsApp(gateway backend.Gateway, tokens TokenSource) RequestsApp {
	return &requestsAppImpl{gateway: gateway, tokens: tokens}
}

func (s *requestsAppImpl) bearer() (string, error) {
	token := s.tokens.Token()
	if token == "" {
		return "", errors.SetCustomError(constant.ErrUnauthorized)
	}
	return token, nil
}

// Create validates the draft and submits it. The returned estimated price is
// the backend's figure, which may differ from the client-side preview.
func (s *requestsAppImpl) Create(ctx context.Context, form *model.CreateRequestForm) (*model.CreateRequestResponse, error) {
	token, err := s.bearer()
	if err != nil {
		return nil, err
	}

	if err := validatorx.ValidateStruct(form); err != nil {
		return nil, errors.InvalidForm(err.Error())
	}

	res, err := s.gateway.CreateRequest(ctx, token, form)
	if err != nil {
		return nil, err
	}
	logger.Info("pickup request created", zap.Int64("request_id", res.RequestID))
	return res, nil
}

// List returns the user's requests, newest first, optionally filtered by
// status.
func (s *requestsAppImpl) List(ctx context.Context, status constant.RequestStatus) ([]model.RequestRecord, error) {
	token, err := s.bearer()
	if err != nil {
		return nil, err
	}

	res, err := s.gateway.Requests(ctx, token, status)
	if err != nil {
		return nil, err
	}
	return res.Requests, nil
}

func (s *requestsAppImpl) Get(ctx context.Context, id int64) (*model.RequestRecord, error) {
	token, err := s.bearer()
	if err != nil {
		return nil, err
	}
	return s.gateway.Request(ctx, token, id)
}

// Cancel performs the one transition the user owns: pending -> cancelled.
// Any other current status is refused before the backend is called. The
// updated record is re-fetched so the caller sees the backend's view.
func (s *requestsAppImpl) Cancel(ctx context.Context, id int64) (*model.RequestRecord, error) {
	token, err := s.bearer()
	if err != nil {
		return nil, err
	}

	record, err := s.gateway.Request(ctx, token, id)
	if err != nil {
		return nil, err
	}
	if !record.Status.Cancellable() {
		return nil, errors.SetCustomError(constant.ErrNotCancellable)
	}

	update := &model.StatusUpdateRequest{
		Status: constant.StatusCancelled,
		Notes:  "Cancelled by user",
	}
	if _, err := s.gateway.UpdateRequestStatus(ctx, token, id, update); err != nil {
		return nil, err
	}

	updated, err := s.gateway.Request(ctx, token, id)
	if err != nil {
		// the transition succeeded; report it even if the re-fetch failed
		record.Status = constant.StatusCancelled
		return record, nil
	}
	return updated, nil
}
