// Package workflow implements the request lifecycle rules: per-kind
// transition tables, the audit ledger, comment read tracking and jig
// fulfillment arithmetic. Functions here are pure over *domain.Request;
// persistence and serialization belong to the caller.
package workflow

import (
	"strings"
	"time"

	"github.com/heartmarshall/worktrack-backend/internal/domain"
)

// Reasons recorded when the caller leaves the reason empty or the
// transition is implied by another command.
const (
	ReasonCreated       = "요청 등록"
	ReasonAccepted      = "접수됨"
	ReasonReceiving     = "입고 진행"
	ReasonReceiveUndone = "입고 취소"
	ReasonReceived      = "입고 완료"
)

// Rule describes one declared edge of a state machine.
type Rule struct {
	MinRole       domain.Role
	DefaultReason string
	// Implicit edges are only taken by the orchestrator as a side effect of
	// another command; they are never accepted from UpdateStatus.
	Implicit bool
}

type edge struct {
	from, to domain.Status
}

type table map[edge]Rule

func (t table) add(role domain.Role, from []domain.Status, to ...domain.Status) {
	for _, f := range from {
		for _, s := range to {
			if f == s {
				continue
			}
			t[edge{f, s}] = Rule{MinRole: role}
		}
	}
}

var tables = map[domain.RequestKind]table{
	domain.RequestKindJig:        jigTable(),
	domain.RequestKindProduction: productionTable(),
	domain.RequestKindSample:     sampleTable(),
}

func jigTable() table {
	t := table{}
	t.add(domain.RoleAdmin, []domain.Status{domain.JigStatusRequest},
		domain.JigStatusInProgress, domain.JigStatusHold, domain.JigStatusRejected)
	t.add(domain.RoleManager,
		[]domain.Status{domain.JigStatusInProgress, domain.JigStatusHold, domain.JigStatusReceiving},
		domain.JigStatusCompleted, domain.JigStatusHold, domain.JigStatusRejected)
	t.add(domain.RoleManager, []domain.Status{domain.JigStatusHold}, domain.JigStatusInProgress)

	t[edge{domain.JigStatusRequest, domain.JigStatusInProgress}] = Rule{
		MinRole: domain.RoleAdmin, DefaultReason: ReasonAccepted,
	}
	t[edge{domain.JigStatusInProgress, domain.JigStatusReceiving}] = Rule{
		MinRole: domain.RoleManager, DefaultReason: ReasonReceiving, Implicit: true,
	}
	t[edge{domain.JigStatusReceiving, domain.JigStatusInProgress}] = Rule{
		MinRole: domain.RoleManager, DefaultReason: ReasonReceiveUndone, Implicit: true,
	}
	return t
}

func productionTable() table {
	t := table{}
	t.add(domain.RoleManager, []domain.Status{domain.ProductionStatusRequested},
		domain.ProductionStatusInProgress, domain.ProductionStatusHold)
	t.add(domain.RoleManager, []domain.Status{domain.ProductionStatusInProgress}, domain.ProductionStatusCompleted)
	t.add(domain.RoleManager,
		[]domain.Status{domain.ProductionStatusRequested, domain.ProductionStatusInProgress, domain.ProductionStatusHold},
		domain.ProductionStatusRejected)

	t[edge{domain.ProductionStatusRequested, domain.ProductionStatusInProgress}] = Rule{
		MinRole: domain.RoleManager, DefaultReason: ReasonAccepted,
	}
	return t
}

func sampleTable() table {
	t := table{}
	t.add(domain.RoleManager, []domain.Status{domain.SampleStatusReceived}, domain.SampleStatusInProgress)
	t.add(domain.RoleManager, []domain.Status{domain.SampleStatusInProgress}, domain.SampleStatusCompleted)
	t.add(domain.RoleManager,
		[]domain.Status{domain.SampleStatusReceived, domain.SampleStatusInProgress},
		domain.SampleStatusOnHold, domain.SampleStatusRejected)
	t.add(domain.RoleManager, []domain.Status{domain.SampleStatusOnHold}, domain.SampleStatusInProgress)

	t[edge{domain.SampleStatusReceived, domain.SampleStatusInProgress}] = Rule{
		MinRole: domain.RoleManager, DefaultReason: ReasonAccepted,
	}
	return t
}

// Lookup returns the rule for (kind, from, to) if that edge is declared.
func Lookup(kind domain.RequestKind, from, to domain.Status) (Rule, bool) {
	rule, ok := tables[kind][edge{from, to}]
	return rule, ok
}

// ReasonRequired reports whether entering status needs a non-empty reason.
// Jig and production share the wire values "HOLD" and "REJECTED" with each
// other and with sample's "REJECTED", so one case per value covers all kinds.
func ReasonRequired(status domain.Status) bool {
	switch status {
	case domain.JigStatusHold, domain.JigStatusRejected, domain.SampleStatusOnHold:
		return true
	}
	return false
}

// AllowedTargets lists the statuses actor may command from the request's
// current status, in the kind's declaration order.
func AllowedTargets(req *domain.Request, role domain.Role) []domain.Status {
	var out []domain.Status
	for _, to := range req.Kind.Statuses() {
		rule, ok := Lookup(req.Kind, req.Status, to)
		if ok && !rule.Implicit && role.AtLeast(rule.MinRole) {
			out = append(out, to)
		}
	}
	return out
}

// Transition moves req to status `to` on behalf of actor and appends the
// matching history entry. On error req is left untouched.
func Transition(req *domain.Request, actor domain.Actor, to domain.Status, reason string, at time.Time) (domain.HistoryEntry, error) {
	invalid := &domain.TransitionError{Kind: req.Kind, From: req.Status, To: to}

	if !req.Kind.HasStatus(to) {
		return domain.HistoryEntry{}, invalid
	}

	rule, ok := Lookup(req.Kind, req.Status, to)
	if !ok || rule.Implicit {
		return domain.HistoryEntry{}, invalid
	}

	if !actor.Role.AtLeast(rule.MinRole) {
		return domain.HistoryEntry{}, &domain.PermissionError{
			Action:   "transition to " + to.String(),
			Required: rule.MinRole,
			Actual:   actor.Role,
		}
	}

	reason = strings.TrimSpace(reason)
	if reason == "" {
		if ReasonRequired(to) {
			return domain.HistoryEntry{}, domain.NewValidationError("reason", "required for "+to.String())
		}
		reason = rule.DefaultReason
	}

	return Append(req, to, actor.Name, reason, at), nil
}

// SystemTransition applies an edge implied by another command (fulfillment
// progress). Role checks are the caller's responsibility; the edge itself
// must still be declared.
func SystemTransition(req *domain.Request, actorName string, to domain.Status, reason string, at time.Time) (domain.HistoryEntry, error) {
	rule, ok := Lookup(req.Kind, req.Status, to)
	if !ok {
		return domain.HistoryEntry{}, &domain.TransitionError{Kind: req.Kind, From: req.Status, To: to}
	}
	if reason == "" {
		reason = rule.DefaultReason
	}
	return Append(req, to, actorName, reason, at), nil
}
