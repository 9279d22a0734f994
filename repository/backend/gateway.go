package backend

import (
	"context"
	"net/http"

	"github.com/scrapzee/scrapzee-cli/constant"
	"github.com/scrapzee/scrapzee-cli/model"
	"golang.org/x/time/rate"
)

// Gateway is the full REST surface of the Scrapzee backend, one method per
// endpoint. Implementations translate transport and HTTP failures into the
// client error taxonomy; callers never see a raw *url.Error or status code.
type Gateway interface {
	// auth service
	Login(ctx context.Context, form *model.LoginForm) (*model.AuthResponse, error)
	Register(ctx context.Context, form *model.RegisterForm) (*model.AuthResponse, error)
	Verify(ctx context.Context, token string) (*model.VerifyResponse, error)

	// pricing service
	Categories(ctx context.Context) (*model.CategoriesResponse, error)
	PriceHistory(ctx context.Context, categoryID int64) (*model.PriceHistoryResponse, error)

	// user service
	Dashboard(ctx context.Context, token string) (*model.DashboardSnapshot, error)
	Profile(ctx context.Context, token string) (*model.ProfileResponse, error)
	UpdateProfile(ctx context.Context, token string, form *model.UpdateProfileForm) (*model.MessageResponse, error)
	Requests(ctx context.Context, token string, status constant.RequestStatus) (*model.RequestsResponse, error)
	Request(ctx context.Context, token string, id int64) (*model.RequestRecord, error)
	CreateRequest(ctx context.Context, token string, form *model.CreateRequestForm) (*model.CreateRequestResponse, error)
	UpdateRequestStatus(ctx context.Context, token string, id int64, req *model.StatusUpdateRequest) (*model.MessageResponse, error)
}

type httpGateway struct {
	baseURL string
	client  *http.Client
	limiter *rate.Limiter
}

// NewHTTPGateway returns a Gateway talking to baseURL (including the /api
// prefix). A zero rateLimit disables client-side throttling.
func NewHTTPGateway(baseURL string, client *http.Client, rateLimit float64, rateBurst int) Gateway {
	if client == nil {
		client = http.DefaultClient
	}

	var limiter *rate.Limiter
	if rateLimit > 0 {
		if rateBurst < 1 {
			rateBurst = 1
		}
		limiter = rate.NewLimiter(rate.Limit(rateLimit), rateBurst)
	}

	return &httpGateway{
		baseURL: baseURL,
		client:  client,
		limiter: limiter,
	}
}
