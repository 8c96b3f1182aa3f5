package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/worktrack-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// NewRequest builds an unsaved request of the given kind sitting in status,
// with a single history entry and the kind's details filled in.
func NewRequest(kind domain.RequestKind, status domain.Status) *domain.Request {
	now := time.Now().UTC().Truncate(time.Microsecond)
	suffix := uniqueSuffix()

	r := &domain.Request{
		ID:              uuid.New(),
		Kind:            kind,
		Status:          status,
		Title:           "request " + suffix,
		RequesterName:   "requester " + suffix,
		AuthorID:        uuid.New(),
		AuthorName:      "author " + suffix,
		OrderedQuantity: 100,
		RequestedAt:     now,
		History: []domain.HistoryEntry{
			{At: now, Status: status, ActorName: "author " + suffix, Reason: "seed"},
		},
		Comments:  []domain.Comment{},
		CreatedAt: now,
		UpdatedAt: now,
	}

	switch kind {
	case domain.RequestKindJig:
		r.Jig = &domain.JigDetails{UnitPrice: 1500, CoreCost: 20000, Vendor: "vendor " + suffix}
	case domain.RequestKindProduction:
		r.Production = &domain.ProductionDetails{SubKind: domain.ProductionSubKindStandard, Line: "L1"}
	case domain.RequestKindSample:
		r.Sample = &domain.SampleDetails{WorkData: map[string]any{}}
	}
	return r
}

// SeedRequest inserts a request row directly and returns the request as stored.
func SeedRequest(t *testing.T, pool *pgxpool.Pool, kind domain.RequestKind, status domain.Status) *domain.Request {
	t.Helper()

	r := NewRequest(kind, status)
	doc := `{"requester_name":"` + r.RequesterName + `","author_name":"` + r.AuthorName +
		`","ordered_quantity":100,"history":[],"comments":[]}`

	_, err := pool.Exec(context.Background(),
		`INSERT INTO requests (id, kind, status, title, document, version, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5::jsonb, 1, $6, $7)`,
		r.ID, string(r.Kind), string(r.Status), r.Title, doc, r.CreatedAt, r.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedRequest insert: %v", err)
	}

	r.Version = 1
	r.History = []domain.HistoryEntry{}
	r.Jig, r.Production, r.Sample = nil, nil, nil
	return r
}
