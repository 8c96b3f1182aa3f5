package request

import (
	"github.com/google/uuid"

	"github.com/heartmarshall/worktrack-backend/internal/domain"
)

// RequestDetails is a request plus the values derived for the viewing actor.
type RequestDetails struct {
	Request            *domain.Request
	AllowedTransitions []domain.Status
	UnreadComments     int
	CanComment         bool
	Amount             int64
}

// FulfillmentSummary is the derived fulfillment state of a jig request.
type FulfillmentSummary struct {
	RequestID uuid.UUID
	Status    domain.Status
	Ordered   int
	Received  int
	Remaining int
	UnitPrice int64
	CoreCost  int64
	Amount    int64
}
