package http

import "github.com/google/uuid"

// NewOrder is the body of POST /api/v1/orders.
type NewOrder struct {
	Table *string        `json:"table"`
	Notes string         `json:"notes"`
	Lines []NewOrderLine `json:"lines"`
}

type NewOrderLine struct {
	MenuItemID uuid.UUID `json:"menuItemId"`
	Quantity   int       `json:"quantity"`
	Notes      string    `json:"notes"`
}

// StatusUpdate is the body of PATCH /api/v1/kitchen/orders/:id/status.
type StatusUpdate struct {
	Status string `json:"status"`
}

// Error is the body of every non-2xx JSON response.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
