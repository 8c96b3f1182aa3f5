package workflow

import (
	"time"

	"github.com/heartmarshall/worktrack-backend/internal/domain"
)

// Append records a transition to status at the end of req.History and makes
// it the current status. Entries are never edited or removed afterwards.
func Append(req *domain.Request, status domain.Status, actorName, reason string, at time.Time) domain.HistoryEntry {
	entry := domain.HistoryEntry{
		At:        at,
		Status:    status,
		ActorName: actorName,
		Reason:    reason,
	}
	req.History = append(req.History, entry)
	req.Status = status
	return entry
}

// FilterHistory returns the entries matching f, oldest first. The input is not modified.
func FilterHistory(history []domain.HistoryEntry, f domain.HistoryFilter) []domain.HistoryEntry {
	out := make([]domain.HistoryEntry, 0, len(history))
	for _, h := range history {
		if f.Status != nil && h.Status != *f.Status {
			continue
		}
		if f.ActorName != nil && h.ActorName != *f.ActorName {
			continue
		}
		out = append(out, h)
	}
	return out
}
