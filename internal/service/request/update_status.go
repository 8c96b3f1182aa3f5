package request

import (
	"context"
	"log/slog"
	"time"

	"github.com/heartmarshall/worktrack-backend/internal/domain"
	"github.com/heartmarshall/worktrack-backend/internal/service/request/workflow"
)

// UpdateStatus moves a request along an explicit edge of its kind's state
// machine and records the change in the history.
func (s *Service) UpdateStatus(ctx context.Context, actor domain.Actor, input UpdateStatusInput) (*domain.Request, error) {
	if err := checkActor(actor); err != nil {
		return nil, err
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var from domain.Status
	updated, err := s.mutate(ctx, input.RequestID, func(req *domain.Request, now time.Time) error {
		from = req.Status
		_, err := workflow.Transition(req, actor, input.Target, input.Reason, now)
		return err
	})
	if err != nil {
		s.metrics.CommandFailed("update_status", err)
		return nil, err
	}

	s.metrics.Transition(updated.Kind, from, updated.Status)
	s.log.InfoContext(ctx, "request status changed",
		slog.String("request_id", updated.ID.String()),
		slog.String("from", from.String()),
		slog.String("to", updated.Status.String()),
		slog.String("actor", actor.Name),
	)

	return updated, nil
}
