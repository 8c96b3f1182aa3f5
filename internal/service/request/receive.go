package request

import (
	"context"
	"log/slog"
	"time"

	"github.com/heartmarshall/worktrack-backend/internal/domain"
	"github.com/heartmarshall/worktrack-backend/internal/service/request/workflow"
)

// ReceiveOrReturn changes the received quantity of a jig request by
// input.Delta (positive receives, negative returns). The status follows the
// quantity: a first partial receive enters RECEIVING, returning everything
// goes back to IN_PROGRESS and, with AutoComplete, a full receive completes
// the request. Each implicit move is recorded in the history.
func (s *Service) ReceiveOrReturn(ctx context.Context, actor domain.Actor, input QuantityChangeInput) (*domain.Request, error) {
	if err := checkActor(actor); err != nil {
		return nil, err
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var from domain.Status
	updated, err := s.mutate(ctx, input.RequestID, func(req *domain.Request, now time.Time) error {
		if req.Kind != domain.RequestKindJig {
			return domain.NewValidationError("request_id", "quantity changes apply to jig requests only")
		}
		if !actor.Role.AtLeast(domain.RoleManager) {
			return &domain.PermissionError{Action: "receive or return", Required: domain.RoleManager, Actual: actor.Role}
		}
		if req.Status != domain.JigStatusInProgress && req.Status != domain.JigStatusReceiving {
			return &domain.TransitionError{Kind: req.Kind, From: req.Status, To: domain.JigStatusReceiving}
		}

		from = req.Status
		if err := workflow.ApplyQuantityChange(req, input.Delta); err != nil {
			return err
		}
		return s.followQuantity(req, actor, now)
	})
	if err != nil {
		s.metrics.CommandFailed("receive_or_return", err)
		return nil, err
	}

	s.metrics.QuantityChanged(input.Delta)
	if updated.Status != from {
		s.metrics.Transition(updated.Kind, from, updated.Status)
	}

	s.log.InfoContext(ctx, "jig quantity changed",
		slog.String("request_id", updated.ID.String()),
		slog.Int("delta", input.Delta),
		slog.Int("received", updated.Jig.ReceivedQuantity),
		slog.Int("ordered", updated.OrderedQuantity),
		slog.String("status", updated.Status.String()),
		slog.String("actor", actor.Name),
	)

	return updated, nil
}

// followQuantity applies the implicit status change implied by the new
// received quantity, if any.
func (s *Service) followQuantity(req *domain.Request, actor domain.Actor, now time.Time) error {
	received := req.Jig.ReceivedQuantity

	var (
		to     domain.Status
		reason string
	)
	switch {
	case received == req.OrderedQuantity && s.opts.AutoComplete:
		to, reason = domain.JigStatusCompleted, workflow.ReasonReceived
	case received > 0 && req.Status == domain.JigStatusInProgress:
		to, reason = domain.JigStatusReceiving, workflow.ReasonReceiving
	case received == 0 && req.Status == domain.JigStatusReceiving:
		to, reason = domain.JigStatusInProgress, workflow.ReasonReceiveUndone
	default:
		return nil
	}

	_, err := workflow.SystemTransition(req, actor.Name, to, reason, now)
	return err
}
