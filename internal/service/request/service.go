package request

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/worktrack-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type requestRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Request, error)
	// GetByIDForUpdate must lock the request until the surrounding transaction ends.
	GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*domain.Request, error)
	Create(ctx context.Context, req *domain.Request) (*domain.Request, error)
	// Save persists req if its Version is still current and returns the stored copy.
	Save(ctx context.Context, req *domain.Request) (*domain.Request, error)
	List(ctx context.Context, filter domain.RequestFilter) ([]*domain.Request, int, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type metricsRecorder interface {
	Transition(kind domain.RequestKind, from, to domain.Status)
	QuantityChanged(delta int)
	CommandFailed(command string, err error)
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Options tunes orchestrator policy.
type Options struct {
	// AutoComplete moves a jig request to COMPLETED once the full ordered
	// quantity has been received.
	AutoComplete bool
}

// Service is the lifecycle orchestrator: every command loads one request
// under lock, applies the workflow rules and saves it in one transaction.
type Service struct {
	requests requestRepo
	tx       txManager
	metrics  metricsRecorder
	opts     Options
	log      *slog.Logger
	now      func() time.Time
}

// NewService creates a new request Service.
func NewService(
	log *slog.Logger,
	requests requestRepo,
	tx txManager,
	metrics metricsRecorder,
	opts Options,
) *Service {
	return &Service{
		requests: requests,
		tx:       tx,
		metrics:  metrics,
		opts:     opts,
		log:      log.With("service", "request"),
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// checkActor rejects commands without a usable identity.
func checkActor(actor domain.Actor) error {
	if actor.ID == uuid.Nil || !actor.Role.IsValid() {
		return domain.ErrUnauthorized
	}
	return nil
}

// mutate loads the request for update, applies fn and saves the result, all
// inside one transaction. If fn fails nothing is written.
func (s *Service) mutate(ctx context.Context, id uuid.UUID, fn func(req *domain.Request, now time.Time) error) (*domain.Request, error) {
	now := s.now()

	var saved *domain.Request
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		req, err := s.requests.GetByIDForUpdate(txCtx, id)
		if err != nil {
			return fmt.Errorf("get request: %w", err)
		}

		if err := fn(req, now); err != nil {
			return err
		}

		req.UpdatedAt = now
		saved, err = s.requests.Save(txCtx, req)
		if err != nil {
			return fmt.Errorf("save request: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return saved, nil
}
