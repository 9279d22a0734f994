package model

import "github.com/scrapzee/scrapzee-cli/constant"

// RequestRecord is a scrap pickup request as the backend reports it. The
// estimated price is the backend's authoritative figure; the client-side
// preview is display-only and never written back.
type RequestRecord struct {
	ID               int64                  `json:"id"`
	CategoryID       int64                  `json:"category_id"`
	Quantity         float64                `json:"quantity"`
	EstimatedPrice   *float64               `json:"estimated_price"`
	PickupAddress    string                 `json:"pickup_address"`
	PickupDate       APITime                `json:"pickup_date"`
	Status           constant.RequestStatus `json:"status"`
	Notes            string                 `json:"notes"`
	AssignedDealerID *int64                 `json:"assigned_dealer_id,omitempty"`
	CreatedAt        APITime                `json:"created_at"`
}

type RequestsResponse struct {
	Requests []RequestRecord `json:"requests"`
}

// CreateRequestForm is the new-request draft buffer. PickupDate travels as an
// ISO date string because the backend parses it with fromisoformat.
type CreateRequestForm struct {
	CategoryID    int64   `json:"category_id" validate:"required,gt=0"`
	Quantity      float64 `json:"quantity" validate:"required,gt=0"`
	PickupAddress string  `json:"pickup_address" validate:"required"`
	PickupDate    string  `json:"pickup_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Notes         string  `json:"notes,omitempty"`
}

// CreateRequestResponse is the creation acknowledgment. EstimatedPrice may be
// null when the pricing service was unreachable server-side.
type CreateRequestResponse struct {
	Message        string   `json:"message"`
	RequestID      int64    `json:"request_id"`
	EstimatedPrice *float64 `json:"estimated_price"`
}

// StatusUpdateRequest asks the backend for a status transition.
type StatusUpdateRequest struct {
	Status constant.RequestStatus `json:"status"`
	Notes  string                 `json:"notes,omitempty"`
}
