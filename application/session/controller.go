package session

import (
	"sync"

	"github.com/scrapzee/scrapzee-cli/constant"
	"github.com/scrapzee/scrapzee-cli/model"
	"github.com/scrapzee/scrapzee-cli/repository/backend"
	"github.com/scrapzee/scrapzee-cli/repository/tokenstore"
	"github.com/scrapzee/scrapzee-cli/utils/logger"
	"go.uber.org/zap"
)

// Controller owns every piece of client-side mutable state: the current
// page, the session (token + user), reference data, the dashboard snapshot,
// loading flags, the last surfaced error and the draft form buffers. All
// mutation goes through its methods; a single mutex serializes them.
//
// authGen is bumped on every session identity change (login, register,
// verification, logout). Background completions capture the generation they
// were issued under and discard their result if it moved, so a response
// arriving after logout can never repopulate a cleared session.
type Controller struct {
	mu sync.Mutex
	wg sync.WaitGroup

	gateway backend.Gateway
	store   tokenstore.Store

	page       constant.Page
	token      string
	user       *model.User
	categories []model.Category
	dashboard  *model.DashboardSnapshot

	authLoading       bool
	categoriesLoading bool
	dashboardLoading  bool

	lastError string
	authGen   uint64

	loginForm    model.LoginForm
	registerForm model.RegisterForm
	requestForm  model.CreateRequestForm
}

func NewController(gateway backend.Gateway, store tokenstore.Store) *Controller {
	return &Controller{
		gateway: gateway,
		store:   store,
		page:    constant.PageHome,
	}
}

// NavigateTo moves to the requested page, subject to the session guard:
// without a token only home, login, register and pricing are reachable, any
// other target resolves to home. Explicit navigation clears the displayed
// error. The resulting page is returned.
func (c *Controller) NavigateTo(target constant.Page) constant.Page {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.lastError = ""

	if !target.Valid() {
		target = constant.PageHome
	}
	if target.RequiresAuth() && c.token == "" {
		target = constant.PageHome
	}

	c.page = target
	return c.page
}

// Logout tears the session down: durable storage cleared, token, user and
// dashboard snapshot dropped, error cleared, page back to home. Safe to call
// at any time, from any page, repeatedly.
func (c *Controller) Logout() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.logoutLocked()
}

func (c *Controller) logoutLocked() {
	if err := c.store.Clear(); err != nil {
		logger.Warn("clearing token storage", zap.Error(err))
	}
	c.token = ""
	c.user = nil
	c.dashboard = nil
	c.dashboardLoading = false
	c.lastError = ""
	c.page = constant.PageHome
	c.authGen++
}

// installSessionLocked activates a verified identity and kicks off the
// dashboard refresh tied to it. Caller holds the mutex.
func (c *Controller) installSessionLocked(token string, user *model.User) {
	c.token = token
	c.user = user
	c.authGen++
	c.spawnDashboardRefreshLocked()
}

// Wait blocks until in-flight background refreshes complete. Deterministic
// shutdown for one-shot commands and tests.
func (c *Controller) Wait() {
	c.wg.Wait()
}

// Authenticated reports whether a verified session is active.
func (c *Controller) Authenticated() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.token != "" && c.user != nil
}

func (c *Controller) Page() constant.Page {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.page
}

func (c *Controller) Token() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.token
}

func (c *Controller) User() *model.User {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.user == nil {
		return nil
	}
	u := *c.user
	return &u
}

func (c *Controller) Categories() []model.Category {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]model.Category, len(c.categories))
	copy(out, c.categories)
	return out
}

func (c *Controller) Dashboard() *model.DashboardSnapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.dashboard
}

func (c *Controller) LastError() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastError
}

func (c *Controller) AuthLoading() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.authLoading
}

func (c *Controller) CategoriesLoading() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.categoriesLoading
}

func (c *Controller) DashboardLoading() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.dashboardLoading
}

// SetRequestForm replaces the new-request draft buffer.
func (c *Controller) SetRequestForm(form model.CreateRequestForm) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.requestForm = form
}

func (c *Controller) RequestForm() model.CreateRequestForm {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.requestForm
}

// ClearRequestForm resets the new-request buffer after a successful
// submission.
func (c *Controller) ClearRequestForm() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.requestForm = model.CreateRequestForm{}
}
