package session_test

import (
	"context"
	"sync/atomic"
	"testing"

	"github.com/scrapzee/scrapzee-cli/application/session"
	"github.com/scrapzee/scrapzee-cli/constant"
	"github.com/scrapzee/scrapzee-cli/model"
	"github.com/scrapzee/scrapzee-cli/repository/tokenstore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestController_DashboardFetchedOncePerSession(t *testing.T) {
	var calls int64
	gw := &fakeGateway{
		loginFn: authOK("tok-1"),
		dashboardFn: func(_ context.Context, token string) (*model.DashboardSnapshot, error) {
			atomic.AddInt64(&calls, 1)
			return &model.DashboardSnapshot{
				Stats: model.DashboardStats{TotalRequests: 3},
			}, nil
		},
	}
	c := session.NewController(gw, tokenstore.NewMemoryStore())
	c.SetLoginForm(model.LoginForm{Email: "a@b.com", Password: "secret1"})
	require.NoError(t, c.Login(context.Background()))
	c.Wait()

	require.NotNil(t, c.Dashboard())
	assert.Equal(t, 3, c.Dashboard().Stats.TotalRequests)
	assert.EqualValues(t, 1, atomic.LoadInt64(&calls))

	// moving between pages must not re-trigger the fetch
	c.NavigateTo(constant.PagePricing)
	c.NavigateTo(constant.PageDashboard)
	c.NavigateTo(constant.PageProfile)
	c.Wait()
	assert.EqualValues(t, 1, atomic.LoadInt64(&calls))

	// a new session is a new identity and fetches again
	c.Logout()
	c.SetLoginForm(model.LoginForm{Email: "a@b.com", Password: "secret1"})
	require.NoError(t, c.Login(context.Background()))
	c.Wait()
	assert.EqualValues(t, 2, atomic.LoadInt64(&calls))
}

func TestController_DashboardNeverFetchedWithoutSession(t *testing.T) {
	var calls int64
	gw := &fakeGateway{
		dashboardFn: func(context.Context, string) (*model.DashboardSnapshot, error) {
			atomic.AddInt64(&calls, 1)
			return &model.DashboardSnapshot{}, nil
		},
	}
	c := session.NewController(gw, tokenstore.NewMemoryStore())

	c.NavigateTo(constant.PageDashboard)
	c.RefreshDashboard(context.Background())
	c.Wait()

	assert.Zero(t, atomic.LoadInt64(&calls))
	assert.Nil(t, c.Dashboard())
}

func TestController_StaleDashboardDiscardedAfterLogout(t *testing.T) {
	release := make(chan struct{})
	gw := &fakeGateway{
		loginFn: authOK("tok-1"),
		dashboardFn: func(_ context.Context, token string) (*model.DashboardSnapshot, error) {
			<-release
			return &model.DashboardSnapshot{
				Stats: model.DashboardStats{TotalRequests: 99},
			}, nil
		},
	}
	c := session.NewController(gw, tokenstore.NewMemoryStore())
	c.SetLoginForm(model.LoginForm{Email: "a@b.com", Password: "secret1"})
	require.NoError(t, c.Login(context.Background()))

	// the fetch is in flight; sign out before it completes
	c.Logout()
	close(release)
	c.Wait()

	assert.Nil(t, c.Dashboard(), "response from the previous identity must be dropped")
	assert.False(t, c.DashboardLoading())
	assert.Equal(t, constant.PageHome, c.Page())
}

func TestController_DashboardFailureStaysSilent(t *testing.T) {
	gw := &fakeGateway{
		loginFn: authOK("tok-1"),
		dashboardFn: func(context.Context, string) (*model.DashboardSnapshot, error) {
			return nil, connectivityErr()
		},
	}
	c := session.NewController(gw, tokenstore.NewMemoryStore())
	c.SetLoginForm(model.LoginForm{Email: "a@b.com", Password: "secret1"})
	require.NoError(t, c.Login(context.Background()))
	c.Wait()

	assert.Nil(t, c.Dashboard())
	assert.False(t, c.DashboardLoading())
	assert.Empty(t, c.LastError(), "background failures never surface as banners")
	assert.Equal(t, constant.PageDashboard, c.Page(), "the session itself is unaffected")
}
