package workflow

import (
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/worktrack-backend/internal/domain"
)

var (
	t0      = time.Date(2026, 5, 4, 9, 0, 0, 0, time.UTC)
	admin   = domain.Actor{ID: uuid.New(), Name: "김관리", Role: domain.RoleAdmin}
	manager = domain.Actor{ID: uuid.New(), Name: "박팀장", Role: domain.RoleManager}
	member  = domain.Actor{ID: uuid.New(), Name: "이사원", Role: domain.RoleMember}
)

// newRequest builds a request of kind in status with a one-entry history.
func newRequest(kind domain.RequestKind, status domain.Status) *domain.Request {
	req := &domain.Request{
		ID:              uuid.New(),
		Kind:            kind,
		Status:          status,
		OrderedQuantity: 100,
		History: []domain.HistoryEntry{
			{At: t0, Status: status, ActorName: "seed", Reason: ReasonCreated},
		},
	}
	switch kind {
	case domain.RequestKindJig:
		req.Jig = &domain.JigDetails{UnitPrice: 1500, CoreCost: 20000}
	case domain.RequestKindProduction:
		req.Production = &domain.ProductionDetails{SubKind: domain.ProductionSubKindStandard}
	case domain.RequestKindSample:
		req.Sample = &domain.SampleDetails{}
	}
	return req
}

func statusMatchesHistory(req *domain.Request) bool {
	last, ok := req.LastHistory()
	return ok && last.Status == req.Status
}
