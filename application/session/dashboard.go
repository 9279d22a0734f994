package session

import (
	"context"

	"github.com/scrapzee/scrapzee-cli/utils/logger"
	"go.uber.org/zap"
)

// spawnDashboardRefreshLocked launches the snapshot fetch tied to the
// identity that just became active. Exactly one fetch fires per generation;
// it never fires without both token and user present. Caller holds the
// mutex.
func (c *Controller) spawnDashboardRefreshLocked() {
	if c.token == "" || c.user == nil {
		return
	}

	gen := c.authGen
	token := c.token
	c.dashboardLoading = true

	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		c.fetchDashboard(context.Background(), token, gen)
	}()
}

// RefreshDashboard re-fetches the snapshot for the active session on demand.
// No-op while unauthenticated.
func (c *Controller) RefreshDashboard(ctx context.Context) {
	c.mu.Lock()
	if c.token == "" || c.user == nil {
		c.mu.Unlock()
		return
	}
	gen := c.authGen
	token := c.token
	c.dashboardLoading = true
	c.mu.Unlock()

	c.fetchDashboard(ctx, token, gen)
}

// fetchDashboard applies the snapshot only if the session generation it was
// issued under is still current. A completion racing a logout is discarded
// silently, never surfaced, never written.
func (c *Controller) fetchDashboard(ctx context.Context, token string, gen uint64) {
	snap, err := c.gateway.Dashboard(ctx, token)

	c.mu.Lock()
	defer c.mu.Unlock()

	if gen != c.authGen {
		logger.Debug("discarding stale dashboard response", zap.Uint64("generation", gen))
		return
	}

	c.dashboardLoading = false
	if err != nil {
		// best-effort: dashboard degrades to "unable to load"
		logger.Warn("fetching dashboard", zap.Error(err))
		return
	}
	c.dashboard = snap
}
