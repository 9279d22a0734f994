package session

import (
	"context"

	"github.com/scrapzee/scrapzee-cli/constant"
	"github.com/scrapzee/scrapzee-cli/utils/logger"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Start runs the startup protocol once: read the persisted token, verify it
// against the auth service, and fetch pricing categories. Verification and
// the category fetch run concurrently and write disjoint state, so either
// completion order is fine. A failed verification performs the full logout
// transition; a failed category fetch just leaves the list empty.
func (c *Controller) Start(ctx context.Context) {
	token, err := c.store.Load()
	if err != nil {
		logger.Warn("reading token storage", zap.Error(err))
		token = ""
	}

	if token != "" {
		c.mu.Lock()
		// tentative until verified
		c.token = token
		c.mu.Unlock()
	}

	g, gctx := errgroup.WithContext(ctx)
	if token != "" {
		g.Go(func() error {
			c.verifyToken(gctx, token)
			return nil
		})
	}
	g.Go(func() error {
		c.RefreshCategories(gctx)
		return nil
	})
	_ = g.Wait()
}

// verifyToken promotes a persisted token into a full session, or tears it
// down. Any failure, rejection or transport, ends in the logout end state.
func (c *Controller) verifyToken(ctx context.Context, token string) {
	res, err := c.gateway.Verify(ctx, token)
	if err != nil || res.User == nil {
		if err != nil {
			logger.Info("stored token rejected", zap.Error(err))
		}
		c.Logout()
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.token != token {
		// a logout or re-login raced the verification; drop the result
		return
	}
	c.installSessionLocked(token, res.User)
	c.page = constant.PageDashboard
}

// RefreshCategories fetches the pricing reference data. Best-effort: on
// failure the previous list (possibly empty) is kept and no error is
// surfaced.
func (c *Controller) RefreshCategories(ctx context.Context) {
	c.mu.Lock()
	c.categoriesLoading = true
	c.mu.Unlock()

	res, err := c.gateway.Categories(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.categoriesLoading = false
	if err != nil {
		logger.Warn("fetching categories", zap.Error(err))
		return
	}
	c.categories = res.Categories
}
