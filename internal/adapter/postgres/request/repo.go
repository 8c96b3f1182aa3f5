// Package request implements the request repository using PostgreSQL.
// Each request is one row: identity and filter columns plus a JSONB document
// holding history, comments and the kind-specific details.
package request

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/worktrack-backend/internal/adapter/postgres"
	"github.com/heartmarshall/worktrack-backend/internal/domain"
)

const entity = "request"

// Repo provides request persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new request repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// ---------------------------------------------------------------------------
// SQL
// ---------------------------------------------------------------------------

const selectColumns = `id, kind, status, title, document, version, created_at, updated_at`

const getByIDSQL = `SELECT ` + selectColumns + ` FROM requests WHERE id = $1`

const getByIDForUpdateSQL = getByIDSQL + ` FOR UPDATE`

const insertSQL = `
INSERT INTO requests (id, kind, status, title, document, version, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, 1, $6, $7)
RETURNING version, created_at, updated_at`

const updateSQL = `
UPDATE requests
SET status = $2, title = $3, document = $4, version = version + 1, updated_at = $5
WHERE id = $1 AND version = $6
RETURNING version, updated_at`

const existsSQL = `SELECT EXISTS(SELECT 1 FROM requests WHERE id = $1)`

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a request by primary key.
// Returns domain.ErrNotFound if the request does not exist.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Request, error) {
	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, getByIDSQL, id)
	req, err := scanRequest(row)
	if err != nil {
		return nil, postgres.MapError(err, entity, id)
	}
	return req, nil
}

// GetByIDForUpdate returns a request and locks its row until the surrounding
// transaction ends. It must run inside TxManager.RunInTx.
func (r *Repo) GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*domain.Request, error) {
	if !postgres.InTx(ctx) {
		return nil, fmt.Errorf("%s %s: lock requested outside a transaction", entity, id)
	}

	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, getByIDForUpdateSQL, id)
	req, err := scanRequest(row)
	if err != nil {
		return nil, postgres.MapError(err, entity, id)
	}
	return req, nil
}

// List returns a page of requests matching filter, newest first, and the
// total number of matches.
func (r *Repo) List(ctx context.Context, filter domain.RequestFilter) ([]*domain.Request, int, error) {
	where := squirrel.Eq{}
	if filter.Kind != nil {
		where["kind"] = filter.Kind.String()
	}
	if filter.Status != nil {
		where["status"] = filter.Status.String()
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)

	countSQL, countArgs, err := psql.Select("count(*)").From("requests").Where(where).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build count query: %w", err)
	}
	var total int
	if err := q.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count requests: %w", err)
	}

	sel := psql.Select(selectColumns).From("requests").Where(where).OrderBy("created_at DESC", "id")
	if filter.Limit > 0 {
		sel = sel.Limit(uint64(filter.Limit))
	}
	if filter.Offset > 0 {
		sel = sel.Offset(uint64(filter.Offset))
	}
	listSQL, listArgs, err := sel.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list query: %w", err)
	}

	rows, err := q.Query(ctx, listSQL, listArgs...)
	if err != nil {
		return nil, 0, fmt.Errorf("list requests: %w", err)
	}
	defer rows.Close()

	requests := make([]*domain.Request, 0)
	for rows.Next() {
		req, err := scanRequest(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan request: %w", err)
		}
		requests = append(requests, req)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("list requests: %w", err)
	}

	return requests, total, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new request at version 1.
// Returns domain.ErrAlreadyExists if the ID is taken.
func (r *Repo) Create(ctx context.Context, req *domain.Request) (*domain.Request, error) {
	doc, err := encodeDocument(req)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	createdAt, updatedAt := req.CreatedAt, req.UpdatedAt
	if createdAt.IsZero() {
		createdAt = now
	}
	if updatedAt.IsZero() {
		updatedAt = createdAt
	}

	out := req.Clone()
	err = postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, insertSQL,
		req.ID, req.Kind.String(), req.Status.String(), req.Title, doc, createdAt, updatedAt,
	).Scan(&out.Version, &out.CreatedAt, &out.UpdatedAt)
	if err != nil {
		return nil, postgres.MapError(err, entity, req.ID)
	}

	return out, nil
}

// Save writes req back if its Version is still the stored one and bumps the
// version. Returns domain.ErrConflict when another writer got there first and
// domain.ErrNotFound when the row is gone.
func (r *Repo) Save(ctx context.Context, req *domain.Request) (*domain.Request, error) {
	doc, err := encodeDocument(req)
	if err != nil {
		return nil, err
	}

	updatedAt := req.UpdatedAt
	if updatedAt.IsZero() {
		updatedAt = time.Now().UTC()
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)

	out := req.Clone()
	err = q.QueryRow(ctx, updateSQL,
		req.ID, req.Status.String(), req.Title, doc, updatedAt, req.Version,
	).Scan(&out.Version, &out.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		var exists bool
		if existsErr := q.QueryRow(ctx, existsSQL, req.ID).Scan(&exists); existsErr != nil {
			return nil, postgres.MapError(existsErr, entity, req.ID)
		}
		if !exists {
			return nil, fmt.Errorf("%s %s: %w", entity, req.ID, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("%s %s: version %d is stale: %w", entity, req.ID, req.Version, domain.ErrConflict)
	}
	if err != nil {
		return nil, postgres.MapError(err, entity, req.ID)
	}

	return out, nil
}

// ---------------------------------------------------------------------------
// Scanning
// ---------------------------------------------------------------------------

func scanRequest(row pgx.Row) (*domain.Request, error) {
	var (
		req          domain.Request
		kind, status string
		doc          []byte
	)
	if err := row.Scan(&req.ID, &kind, &status, &req.Title, &doc, &req.Version, &req.CreatedAt, &req.UpdatedAt); err != nil {
		return nil, err
	}
	req.Kind = domain.RequestKind(kind)
	req.Status = domain.Status(status)

	if err := decodeDocument(doc, &req); err != nil {
		return nil, err
	}
	return &req, nil
}
