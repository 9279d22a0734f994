package session_test

import (
	"context"
	"io"
	"testing"

	"github.com/scrapzee/scrapzee-cli/application/session"
	"github.com/scrapzee/scrapzee-cli/constant"
	"github.com/scrapzee/scrapzee-cli/model"
	"github.com/scrapzee/scrapzee-cli/repository/backend"
	"github.com/scrapzee/scrapzee-cli/repository/tokenstore"
	apperrors "github.com/scrapzee/scrapzee-cli/utils/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func connectivityErr() error { return apperrors.Connectivity(io.ErrUnexpectedEOF) }

// fakeGateway overrides just the endpoints a test touches. Calling anything
// else panics via the embedded nil interface, which is what we want.
type fakeGateway struct {
	backend.Gateway

	loginFn      func(ctx context.Context, form *model.LoginForm) (*model.AuthResponse, error)
	registerFn   func(ctx context.Context, form *model.RegisterForm) (*model.AuthResponse, error)
	verifyFn     func(ctx context.Context, token string) (*model.VerifyResponse, error)
	categoriesFn func(ctx context.Context) (*model.CategoriesResponse, error)
	dashboardFn  func(ctx context.Context, token string) (*model.DashboardSnapshot, error)
}

func (f *fakeGateway) Login(ctx context.Context, form *model.LoginForm) (*model.AuthResponse, error) {
	return f.loginFn(ctx, form)
}

func (f *fakeGateway) Register(ctx context.Context, form *model.RegisterForm) (*model.AuthResponse, error) {
	return f.registerFn(ctx, form)
}

func (f *fakeGateway) Verify(ctx context.Context, token string) (*model.VerifyResponse, error) {
	return f.verifyFn(ctx, token)
}

func (f *fakeGateway) Categories(ctx context.Context) (*model.CategoriesResponse, error) {
	if f.categoriesFn == nil {
		return &model.CategoriesResponse{}, nil
	}
	return f.categoriesFn(ctx)
}

func (f *fakeGateway) Dashboard(ctx context.Context, token string) (*model.DashboardSnapshot, error) {
	if f.dashboardFn == nil {
		return &model.DashboardSnapshot{}, nil
	}
	return f.dashboardFn(ctx, token)
}

var testUser = &model.User{ID: 1, Email: "a@b.com", FullName: "Test User", Role: "user"}

func authOK(token string) func(context.Context, *model.LoginForm) (*model.AuthResponse, error) {
	return func(context.Context, *model.LoginForm) (*model.AuthResponse, error) {
		return &model.AuthResponse{Token: token, User: testUser}, nil
	}
}

func TestController_NavigationGuard(t *testing.T) {
	tests := []struct {
		name   string
		target constant.Page
		want   constant.Page
	}{
		{name: "home stays home", target: constant.PageHome, want: constant.PageHome},
		{name: "login reachable", target: constant.PageLogin, want: constant.PageLogin},
		{name: "register reachable", target: constant.PageRegister, want: constant.PageRegister},
		{name: "pricing reachable", target: constant.PagePricing, want: constant.PagePricing},
		{name: "dashboard resolves to home", target: constant.PageDashboard, want: constant.PageHome},
		{name: "profile resolves to home", target: constant.PageProfile, want: constant.PageHome},
		{name: "requests resolves to home", target: constant.PageRequests, want: constant.PageHome},
		{name: "unknown page resolves to home", target: constant.Page("settings"), want: constant.PageHome},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := session.NewController(&fakeGateway{}, tokenstore.NewMemoryStore())
			got := c.NavigateTo(tt.target)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.want, c.Page())
		})
	}
}

func TestController_NavigationGuard_Sequences(t *testing.T) {
	// whatever the user does before signing in, only the public pages show
	c := session.NewController(&fakeGateway{}, tokenstore.NewMemoryStore())

	public := map[constant.Page]bool{
		constant.PageHome:     true,
		constant.PageLogin:    true,
		constant.PageRegister: true,
		constant.PagePricing:  true,
	}

	sequence := []constant.Page{
		constant.PagePricing, constant.PageDashboard, constant.PageLogin,
		constant.PageRequests, constant.PageRegister, constant.PageProfile,
		constant.Page("nonsense"), constant.PageHome, constant.PageDashboard,
	}
	for _, target := range sequence {
		got := c.NavigateTo(target)
		assert.True(t, public[got], "page %q reachable without a session", got)
	}
}

func TestController_Login(t *testing.T) {
	tests := []struct {
		name      string
		form      model.LoginForm
		loginFn   func(context.Context, *model.LoginForm) (*model.AuthResponse, error)
		wantErr   bool
		wantMsg   string
		wantPage  constant.Page
		wantToken string
	}{
		{
			name:      "success installs session and lands on dashboard",
			form:      model.LoginForm{Email: "a@b.com", Password: "secret1"},
			loginFn:   authOK("tok-1"),
			wantPage:  constant.PageDashboard,
			wantToken: "tok-1",
		},
		{
			name: "rejected credentials surface the server message verbatim",
			form: model.LoginForm{Email: "a@b.com", Password: "wrong1"},
			loginFn: func(context.Context, *model.LoginForm) (*model.AuthResponse, error) {
				return nil, apperrors.Unauthorized("Invalid credentials")
			},
			wantErr:  true,
			wantMsg:  "Invalid credentials",
			wantPage: constant.PageLogin,
		},
		{
			name: "network failure surfaces the generic connectivity message",
			form: model.LoginForm{Email: "a@b.com", Password: "secret1"},
			loginFn: func(context.Context, *model.LoginForm) (*model.AuthResponse, error) {
				return nil, connectivityErr()
			},
			wantErr:  true,
			wantMsg:  constant.ErrorTypeMessage[constant.ErrConnectivity],
			wantPage: constant.PageLogin,
		},
		{
			name:     "invalid form never reaches the backend",
			form:     model.LoginForm{Email: "not-an-email", Password: "x"},
			loginFn:  nil, // a call would panic
			wantErr:  true,
			wantPage: constant.PageLogin,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := tokenstore.NewMemoryStore()
			c := session.NewController(&fakeGateway{loginFn: tt.loginFn}, store)
			c.NavigateTo(constant.PageLogin)
			c.SetLoginForm(tt.form)

			err := c.Login(context.Background())
			c.Wait()

			assert.False(t, c.AuthLoading(), "loading flag must clear on every path")
			assert.Equal(t, tt.wantPage, c.Page())

			if tt.wantErr {
				require.Error(t, err)
				if tt.wantMsg != "" {
					assert.Equal(t, tt.wantMsg, c.LastError())
				}
				assert.Empty(t, c.Token())
				assert.Nil(t, c.User())
				// buffer retained for correction
				assert.Equal(t, tt.form, c.LoginForm())
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantToken, c.Token())
			require.NotNil(t, c.User())
			assert.Equal(t, "a@b.com", c.User().Email)
			assert.Equal(t, model.LoginForm{}, c.LoginForm(), "buffer cleared on success")

			saved, _ := store.Load()
			assert.Equal(t, tt.wantToken, saved, "token persisted")
		})
	}
}

func TestController_Register(t *testing.T) {
	gw := &fakeGateway{
		registerFn: func(_ context.Context, form *model.RegisterForm) (*model.AuthResponse, error) {
			if form.Email == "taken@b.com" {
				return nil, apperrors.Rejected("Email already registered")
			}
			return &model.AuthResponse{Token: "tok-r", User: testUser}, nil
		},
	}

	t.Run("duplicate email", func(t *testing.T) {
		c := session.NewController(gw, tokenstore.NewMemoryStore())
		c.SetRegisterForm(model.RegisterForm{FullName: "X", Email: "taken@b.com", Password: "secret1"})
		err := c.Register(context.Background())
		require.Error(t, err)
		assert.Equal(t, "Email already registered", c.LastError())
		assert.Empty(t, c.Token())
	})

	t.Run("success", func(t *testing.T) {
		store := tokenstore.NewMemoryStore()
		c := session.NewController(gw, store)
		c.SetRegisterForm(model.RegisterForm{FullName: "X", Email: "a@b.com", Password: "secret1"})
		require.NoError(t, c.Register(context.Background()))
		c.Wait()

		assert.Equal(t, constant.PageDashboard, c.Page())
		assert.Equal(t, model.RegisterForm{}, c.RegisterForm())
		saved, _ := store.Load()
		assert.Equal(t, "tok-r", saved)
	})
}

func TestController_Logout(t *testing.T) {
	for _, from := range []constant.Page{constant.PageDashboard, constant.PageProfile, constant.PagePricing} {
		t.Run("from "+string(from), func(t *testing.T) {
			store := tokenstore.NewMemoryStore()
			c := session.NewController(&fakeGateway{loginFn: authOK("tok")}, store)
			c.SetLoginForm(model.LoginForm{Email: "a@b.com", Password: "secret1"})
			require.NoError(t, c.Login(context.Background()))
			c.Wait()
			c.NavigateTo(from)

			c.Logout()
			c.Logout() // idempotent

			assert.Equal(t, constant.PageHome, c.Page())
			assert.Empty(t, c.Token())
			assert.Nil(t, c.User())
			assert.Nil(t, c.Dashboard())
			assert.Empty(t, c.LastError())
			saved, _ := store.Load()
			assert.Empty(t, saved, "durable storage cleared")
		})
	}
}

func TestController_Startup(t *testing.T) {
	categories := []model.Category{{ID: 1, Name: "Paper", BasePrice: 12.5, Unit: "kg"}}

	t.Run("valid stored token becomes a session", func(t *testing.T) {
		store := tokenstore.NewMemoryStore()
		require.NoError(t, store.Save("stored-token"))

		gw := &fakeGateway{
			verifyFn: func(_ context.Context, token string) (*model.VerifyResponse, error) {
				assert.Equal(t, "stored-token", token)
				return &model.VerifyResponse{Valid: true, User: testUser}, nil
			},
			categoriesFn: func(context.Context) (*model.CategoriesResponse, error) {
				return &model.CategoriesResponse{Categories: categories}, nil
			},
		}
		c := session.NewController(gw, store)
		c.Start(context.Background())
		c.Wait()

		assert.True(t, c.Authenticated())
		assert.Equal(t, constant.PageDashboard, c.Page())
		assert.Equal(t, categories, c.Categories())
	})

	t.Run("rejected stored token ends in the logout state", func(t *testing.T) {
		store := tokenstore.NewMemoryStore()
		require.NoError(t, store.Save("expired-token"))

		gw := &fakeGateway{
			verifyFn: func(context.Context, string) (*model.VerifyResponse, error) {
				return nil, apperrors.Unauthorized("Token expired")
			},
		}
		c := session.NewController(gw, store)
		c.Start(context.Background())
		c.Wait()

		assert.False(t, c.Authenticated())
		assert.Equal(t, constant.PageHome, c.Page())
		assert.Empty(t, c.Token())
		saved, _ := store.Load()
		assert.Empty(t, saved)
	})

	t.Run("unreachable backend ends in the logout state, categories stay empty", func(t *testing.T) {
		store := tokenstore.NewMemoryStore()
		require.NoError(t, store.Save("some-token"))

		gw := &fakeGateway{
			verifyFn: func(context.Context, string) (*model.VerifyResponse, error) {
				return nil, connectivityErr()
			},
			categoriesFn: func(context.Context) (*model.CategoriesResponse, error) {
				return nil, connectivityErr()
			},
		}
		c := session.NewController(gw, store)
		c.Start(context.Background())
		c.Wait()

		assert.False(t, c.Authenticated())
		assert.Equal(t, constant.PageHome, c.Page())
		assert.Empty(t, c.Categories())
		assert.Empty(t, c.LastError(), "background failures stay silent")
	})

	t.Run("no stored token skips verification", func(t *testing.T) {
		gw := &fakeGateway{
			// verifyFn nil: a call would panic
			categoriesFn: func(context.Context) (*model.CategoriesResponse, error) {
				return &model.CategoriesResponse{Categories: categories}, nil
			},
		}
		c := session.NewController(gw, tokenstore.NewMemoryStore())
		c.Start(context.Background())
		c.Wait()

		assert.False(t, c.Authenticated())
		assert.Equal(t, constant.PageHome, c.Page())
		assert.Equal(t, categories, c.Categories())
	})
}
