package model

import "github.com/scrapzee/scrapzee-cli/constant"

// DashboardStats are the aggregate counters shown at the top of the
// dashboard.
type DashboardStats struct {
	TotalRequests     int     `json:"total_requests"`
	PendingRequests   int     `json:"pending_requests"`
	CompletedRequests int     `json:"completed_requests"`
	TotalEarnings     float64 `json:"total_earnings"`
}

// RecentRequest is the trimmed request summary in the dashboard feed.
type RecentRequest struct {
	ID             int64                  `json:"id"`
	CategoryID     int64                  `json:"category_id"`
	Status         constant.RequestStatus `json:"status"`
	EstimatedPrice *float64               `json:"estimated_price"`
	CreatedAt      APITime                `json:"created_at"`
}

// DashboardSnapshot exists only while authenticated and is re-fetched
// whenever the session identity changes.
type DashboardSnapshot struct {
	Stats          DashboardStats  `json:"stats"`
	RecentRequests []RecentRequest `json:"recent_requests"`
}
