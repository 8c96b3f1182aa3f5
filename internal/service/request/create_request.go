package request

import (
	"context"
	"fmt"
	"log/slog"
	"maps"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/worktrack-backend/internal/domain"
	"github.com/heartmarshall/worktrack-backend/internal/service/request/workflow"
)

// CreateRequest registers a new request in its kind's initial status and
// seeds the history with the creation entry. Any authenticated actor may create.
func (s *Service) CreateRequest(ctx context.Context, actor domain.Actor, input CreateRequestInput) (*domain.Request, error) {
	if err := checkActor(actor); err != nil {
		return nil, err
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	now := s.now()
	requestedAt := now
	if input.RequestedAt != nil {
		requestedAt = input.RequestedAt.UTC()
	}

	req := &domain.Request{
		ID:              uuid.New(),
		Kind:            input.Kind,
		Title:           strings.TrimSpace(input.Title),
		RequesterName:   strings.TrimSpace(input.RequesterName),
		AuthorID:        actor.ID,
		AuthorName:      actor.Name,
		OrderedQuantity: input.OrderedQuantity,
		RequestedAt:     requestedAt,
		Comments:        []domain.Comment{},
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	switch input.Kind {
	case domain.RequestKindJig:
		req.Jig = &domain.JigDetails{
			UnitPrice: input.UnitPrice,
			CoreCost:  input.CoreCost,
			Vendor:    strings.TrimSpace(input.Vendor),
			DueDate:   input.DueDate,
		}
	case domain.RequestKindProduction:
		subKind := input.SubKind
		if subKind == "" {
			subKind = domain.ProductionSubKindStandard
		}
		req.Production = &domain.ProductionDetails{SubKind: subKind, Line: strings.TrimSpace(input.Line)}
	case domain.RequestKindSample:
		workData := maps.Clone(input.WorkData)
		if workData == nil {
			workData = map[string]any{}
		}
		req.Sample = &domain.SampleDetails{WorkData: workData}
	}

	workflow.Append(req, input.Kind.InitialStatus(), actor.Name, workflow.ReasonCreated, now)

	var created *domain.Request
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var createErr error
		created, createErr = s.requests.Create(txCtx, req)
		if createErr != nil {
			return fmt.Errorf("create request: %w", createErr)
		}
		return nil
	})
	if err != nil {
		s.metrics.CommandFailed("create_request", err)
		return nil, err
	}

	s.log.InfoContext(ctx, "request created",
		slog.String("request_id", created.ID.String()),
		slog.String("kind", created.Kind.String()),
		slog.String("actor", actor.Name),
	)

	return created, nil
}
