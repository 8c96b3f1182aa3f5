package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/worktrack-backend/internal/adapter/memory"
	"github.com/heartmarshall/worktrack-backend/internal/adapter/postgres"
	requestrepo "github.com/heartmarshall/worktrack-backend/internal/adapter/postgres/request"
	"github.com/heartmarshall/worktrack-backend/internal/config"
	"github.com/heartmarshall/worktrack-backend/internal/domain"
	"github.com/heartmarshall/worktrack-backend/migrations"
)

type requestStore interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Request, error)
	GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*domain.Request, error)
	Create(ctx context.Context, req *domain.Request) (*domain.Request, error)
	Save(ctx context.Context, req *domain.Request) (*domain.Request, error)
	List(ctx context.Context, filter domain.RequestFilter) ([]*domain.Request, int, error)
}

type txRunner interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type pinger interface {
	Ping(ctx context.Context) error
}

// storage bundles the collaborators one storage driver provides.
type storage struct {
	driver   string
	requests requestStore
	tx       txRunner
	health   pinger
	close    func()
}

func newMemoryStorage() *storage {
	store := memory.New()
	return &storage{
		driver:   config.StorageDriverMemory,
		requests: store,
		tx:       store,
		health:   store,
		close:    func() {},
	}
}

func openStorage(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*storage, error) {
	switch cfg.Storage.Driver {
	case config.StorageDriverMemory:
		logger.Warn("using in-memory storage, data is lost on restart")
		return newMemoryStorage(), nil

	case config.StorageDriverPostgres:
		pool, err := postgres.NewPool(ctx, cfg.Database)
		if err != nil {
			return nil, fmt.Errorf("connect to database: %w", err)
		}
		if cfg.Storage.Migrate {
			if err := postgres.Migrate(ctx, pool, migrations.FS, logger); err != nil {
				pool.Close()
				return nil, err
			}
		}
		return &storage{
			driver:   config.StorageDriverPostgres,
			requests: requestrepo.New(pool),
			tx:       postgres.NewTxManager(pool),
			health:   pool,
			close:    pool.Close,
		}, nil
	}

	return nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
}
