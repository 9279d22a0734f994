package requests_test

import (
	"context"
	"testing"

	"github.com/scrapzee/scrapzee-cli/application/requests"
	"github.com/scrapzee/scrapzee-cli/constant"
	"github.com/scrapzee/scrapzee-cli/model"
	"github.com/scrapzee/scrapzee-cli/repository/backend"
	apperrors "github.com/scrapzee/scrapzee-cli/utils/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticToken string

func (s staticToken) Token() string { return string(s) }

type fakeGateway struct {
	backend.Gateway

	requestFn      func(ctx context.Context, token string, id int64) (*model.RequestRecord, error)
	requestsFn     func(ctx context.Context, token string, status constant.RequestStatus) (*model.RequestsResponse, error)
	createFn       func(ctx context.Context, token string, form *model.CreateRequestForm) (*model.CreateRequestResponse, error)
	updateStatusFn func(ctx context.Context, token string, id int64, update *model.StatusUpdateRequest) (*model.MessageResponse, error)

	statusUpdates []model.StatusUpdateRequest
}

func (f *fakeGateway) Request(ctx context.Context, token string, id int64) (*model.RequestRecord, error) {
	return f.requestFn(ctx, token, id)
}

func (f *fakeGateway) Requests(ctx context.Context, token string, status constant.RequestStatus) (*model.RequestsResponse, error) {
	return f.requestsFn(ctx, token, status)
}

func (f *fakeGateway) CreateRequest(ctx context.Context, token string, form *model.CreateRequestForm) (*model.CreateRequestResponse, error) {
	return f.createFn(ctx, token, form)
}

func (f *fakeGateway) UpdateRequestStatus(ctx context.Context, token string, id int64, update *model.StatusUpdateRequest) (*model.MessageResponse, error) {
	f.statusUpdates = append(f.statusUpdates, *update)
	if f.updateStatusFn != nil {
		return f.updateStatusFn(ctx, token, id, update)
	}
	return &model.MessageResponse{Message: "Status updated successfully"}, nil
}

func recordWithStatus(id int64, status constant.RequestStatus) *model.RequestRecord {
	return &model.RequestRecord{ID: id, CategoryID: 1, Quantity: 10, PickupAddress: "12 MG Road", Status: status}
}

func TestRequestsApp_Create(t *testing.T) {
	estimate := 125.0

	tests := []struct {
		name     string
		token    string
		form     model.CreateRequestForm
		wantErr  constant.ErrorType
		wantCall bool
	}{
		{
			name:     "valid form is submitted",
			token:    "tok",
			form:     model.CreateRequestForm{CategoryID: 1, Quantity: 10, PickupAddress: "12 MG Road", PickupDate: "2026-09-15"},
			wantCall: true,
		},
		{
			name:    "missing address is refused locally",
			token:   "tok",
			form:    model.CreateRequestForm{CategoryID: 1, Quantity: 10},
			wantErr: constant.ErrInvalidForm,
		},
		{
			name:    "zero quantity is refused locally",
			token:   "tok",
			form:    model.CreateRequestForm{CategoryID: 1, Quantity: 0, PickupAddress: "12 MG Road"},
			wantErr: constant.ErrInvalidForm,
		},
		{
			name:    "no session",
			token:   "",
			form:    model.CreateRequestForm{CategoryID: 1, Quantity: 10, PickupAddress: "12 MG Road"},
			wantErr: constant.ErrUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called := false
			gw := &fakeGateway{
				createFn: func(_ context.Context, token string, form *model.CreateRequestForm) (*model.CreateRequestResponse, error) {
					called = true
					assert.Equal(t, "tok", token)
					return &model.CreateRequestResponse{Message: "Request created successfully", RequestID: 7, EstimatedPrice: &estimate}, nil
				},
			}
			app := requests.NewRequestsApp(gw, staticToken(tt.token))

			res, err := app.Create(context.Background(), &tt.form)
			assert.Equal(t, tt.wantCall, called)

			if tt.wantErr != constant.Successful {
				require.Error(t, err)
				assert.Equal(t, tt.wantErr, apperrors.TypeOf(err))
				return
			}
			require.NoError(t, err)
			assert.EqualValues(t, 7, res.RequestID)
			require.NotNil(t, res.EstimatedPrice)
			assert.Equal(t, estimate, *res.EstimatedPrice)
		})
	}
}

func TestRequestsApp_List(t *testing.T) {
	gw := &fakeGateway{
		requestsFn: func(_ context.Context, token string, status constant.RequestStatus) (*model.RequestsResponse, error) {
			assert.Equal(t, constant.StatusPending, status)
			return &model.RequestsResponse{Requests: []model.RequestRecord{*recordWithStatus(1, constant.StatusPending)}}, nil
		},
	}
	app := requests.NewRequestsApp(gw, staticToken("tok"))

	records, err := app.List(context.Background(), constant.StatusPending)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.EqualValues(t, 1, records[0].ID)
}

func TestRequestsApp_Cancel(t *testing.T) {
	tests := []struct {
		name       string
		status     constant.RequestStatus
		wantErr    constant.ErrorType
		wantUpdate bool
	}{
		{name: "pending can be cancelled", status: constant.StatusPending, wantUpdate: true},
		{name: "accepted cannot", status: constant.StatusAccepted, wantErr: constant.ErrNotCancellable},
		{name: "completed cannot", status: constant.StatusCompleted, wantErr: constant.ErrNotCancellable},
		{name: "cancelled cannot be cancelled again", status: constant.StatusCancelled, wantErr: constant.ErrNotCancellable},
		{name: "unknown status cannot", status: constant.RequestStatus("on_hold"), wantErr: constant.ErrNotCancellable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			current := tt.status
			gw := &fakeGateway{}
			gw.requestFn = func(_ context.Context, _ string, id int64) (*model.RequestRecord, error) {
				return recordWithStatus(id, current), nil
			}
			gw.updateStatusFn = func(_ context.Context, _ string, _ int64, update *model.StatusUpdateRequest) (*model.MessageResponse, error) {
				current = update.Status
				return &model.MessageResponse{Message: "Status updated successfully"}, nil
			}
			app := requests.NewRequestsApp(gw, staticToken("tok"))

			record, err := app.Cancel(context.Background(), 4)

			if tt.wantErr != constant.Successful {
				require.Error(t, err)
				assert.Equal(t, tt.wantErr, apperrors.TypeOf(err))
				assert.Empty(t, gw.statusUpdates, "the backend must not be asked to transition")
				return
			}

			require.NoError(t, err)
			assert.Equal(t, constant.StatusCancelled, record.Status)
			require.Len(t, gw.statusUpdates, 1)
			assert.Equal(t, constant.StatusCancelled, gw.statusUpdates[0].Status)
		})
	}
}

func TestRequestsApp_CancelSurvivesRefetchFailure(t *testing.T) {
	fetches := 0
	gw := &fakeGateway{}
	gw.requestFn = func(_ context.Context, _ string, id int64) (*model.RequestRecord, error) {
		fetches++
		if fetches == 1 {
			return recordWithStatus(id, constant.StatusPending), nil
		}
		return nil, apperrors.Connectivity(context.DeadlineExceeded)
	}
	app := requests.NewRequestsApp(gw, staticToken("tok"))

	record, err := app.Cancel(context.Background(), 4)
	require.NoError(t, err, "the transition itself succeeded")
	assert.Equal(t, constant.StatusCancelled, record.Status)
}
