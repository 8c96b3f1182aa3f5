package workflow

import (
	"github.com/heartmarshall/worktrack-backend/internal/domain"
)

// ApplyQuantityChange receives (delta > 0) or returns (delta < 0) stock on a
// jig request. The result must stay within [0, OrderedQuantity]; otherwise
// req is unchanged and a *domain.QuantityError is returned. History is not
// touched here.
func ApplyQuantityChange(req *domain.Request, delta int) error {
	if req.Kind != domain.RequestKindJig || req.Jig == nil {
		return domain.NewValidationError("kind", "quantity changes apply to jig requests only")
	}
	if delta == 0 {
		return domain.NewValidationError("delta", "must not be zero")
	}

	next := req.Jig.ReceivedQuantity + delta
	if next < 0 || next > req.OrderedQuantity {
		return &domain.QuantityError{
			Ordered:  req.OrderedQuantity,
			Received: req.Jig.ReceivedQuantity,
			Delta:    delta,
		}
	}

	req.Jig.ReceivedQuantity = next
	return nil
}

// Amount is the money owed on a jig request.
//
//	IN_PROGRESS, RECEIVING: received * unitPrice
//	COMPLETED:              ordered * unitPrice + coreCost
//	otherwise:              0
func Amount(status domain.Status, received, ordered int, unitPrice, coreCost int64) int64 {
	switch status {
	case domain.JigStatusInProgress, domain.JigStatusReceiving:
		return int64(received) * unitPrice
	case domain.JigStatusCompleted:
		return int64(ordered)*unitPrice + coreCost
	}
	return 0
}

// RequestAmount applies Amount to a jig request; other kinds owe nothing.
func RequestAmount(req *domain.Request) int64 {
	if req.Kind != domain.RequestKindJig || req.Jig == nil {
		return 0
	}
	return Amount(req.Status, req.Jig.ReceivedQuantity, req.OrderedQuantity, req.Jig.UnitPrice, req.Jig.CoreCost)
}
