package request

import (
	"context"
	"log/slog"
	"maps"
	"time"

	"github.com/heartmarshall/worktrack-backend/internal/domain"
)

// UpdateWorkData replaces the opaque work-stage payload of a sample request.
// It does not touch the status or the history.
func (s *Service) UpdateWorkData(ctx context.Context, actor domain.Actor, input UpdateWorkDataInput) (*domain.Request, error) {
	if err := checkActor(actor); err != nil {
		return nil, err
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	updated, err := s.mutate(ctx, input.RequestID, func(req *domain.Request, _ time.Time) error {
		if req.Kind != domain.RequestKindSample {
			return domain.NewValidationError("request_id", "work data applies to sample requests only")
		}
		if !actor.Role.AtLeast(domain.RoleManager) {
			return &domain.PermissionError{Action: "update work data", Required: domain.RoleManager, Actual: actor.Role}
		}
		req.Sample = &domain.SampleDetails{WorkData: maps.Clone(input.Payload)}
		return nil
	})
	if err != nil {
		s.metrics.CommandFailed("update_work_data", err)
		return nil, err
	}

	s.log.InfoContext(ctx, "sample work data updated",
		slog.String("request_id", updated.ID.String()),
		slog.Int("keys", len(input.Payload)),
		slog.String("actor", actor.Name),
	)

	return updated, nil
}
