package request

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/worktrack-backend/internal/domain"
	"github.com/heartmarshall/worktrack-backend/internal/service/request/workflow"
)

// GetRequest returns a request together with the values derived for actor:
// the transitions actor may command, the unread comment count and the amount.
func (s *Service) GetRequest(ctx context.Context, actor domain.Actor, id uuid.UUID) (*RequestDetails, error) {
	if err := checkActor(actor); err != nil {
		return nil, err
	}
	if id == uuid.Nil {
		return nil, domain.NewValidationError("request_id", "required")
	}

	req, err := s.requests.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get request: %w", err)
	}

	return &RequestDetails{
		Request:            req,
		AllowedTransitions: workflow.AllowedTargets(req, actor.Role),
		UnreadComments:     workflow.UnreadCount(req, actor.ID),
		CanComment:         workflow.CanComment(req.Kind, actor.Role),
		Amount:             workflow.RequestAmount(req),
	}, nil
}

// ListRequests returns a page of requests and the total count for the filter.
func (s *Service) ListRequests(ctx context.Context, actor domain.Actor, input ListRequestsInput) ([]*domain.Request, int, error) {
	if err := checkActor(actor); err != nil {
		return nil, 0, err
	}
	if err := input.Validate(); err != nil {
		return nil, 0, err
	}

	limit := input.Limit
	if limit == 0 {
		limit = defaultListLimit
	}

	requests, total, err := s.requests.List(ctx, domain.RequestFilter{
		Kind:   input.Kind,
		Status: input.Status,
		Limit:  limit,
		Offset: input.Offset,
	})
	if err != nil {
		return nil, 0, fmt.Errorf("list requests: %w", err)
	}

	return requests, total, nil
}

// ListHistory returns the request's history in append order, optionally
// narrowed by status and actor name.
func (s *Service) ListHistory(ctx context.Context, actor domain.Actor, input HistoryInput) ([]domain.HistoryEntry, error) {
	if err := checkActor(actor); err != nil {
		return nil, err
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	req, err := s.requests.GetByID(ctx, input.RequestID)
	if err != nil {
		return nil, fmt.Errorf("get request: %w", err)
	}

	return workflow.FilterHistory(req.History, domain.HistoryFilter{
		Status:    input.Status,
		ActorName: input.ActorName,
	}), nil
}

// Fulfillment summarises the received quantity and amount of a jig request.
func (s *Service) Fulfillment(ctx context.Context, actor domain.Actor, id uuid.UUID) (*FulfillmentSummary, error) {
	if err := checkActor(actor); err != nil {
		return nil, err
	}
	if id == uuid.Nil {
		return nil, domain.NewValidationError("request_id", "required")
	}

	req, err := s.requests.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get request: %w", err)
	}
	if req.Kind != domain.RequestKindJig || req.Jig == nil {
		return nil, domain.NewValidationError("request_id", "fulfillment applies to jig requests only")
	}

	return &FulfillmentSummary{
		RequestID: req.ID,
		Status:    req.Status,
		Ordered:   req.OrderedQuantity,
		Received:  req.Jig.ReceivedQuantity,
		Remaining: req.OrderedQuantity - req.Jig.ReceivedQuantity,
		UnitPrice: req.Jig.UnitPrice,
		CoreCost:  req.Jig.CoreCost,
		Amount:    workflow.RequestAmount(req),
	}, nil
}
