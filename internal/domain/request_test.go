package domain

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestRequest_Clone_IsDeep(t *testing.T) {
	t.Parallel()

	reader := uuid.New()
	due := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	orig := &Request{
		ID:      uuid.New(),
		Kind:    RequestKindJig,
		Status:  JigStatusInProgress,
		History: []HistoryEntry{{Status: JigStatusRequest}, {Status: JigStatusInProgress}},
		Comments: []Comment{
			{ID: uuid.New(), Text: "first", ReadBy: []uuid.UUID{reader}},
		},
		Jig: &JigDetails{ReceivedQuantity: 10, DueDate: &due},
	}

	c := orig.Clone()
	c.History = append(c.History, HistoryEntry{Status: JigStatusHold})
	c.Comments[0].ReadBy = append(c.Comments[0].ReadBy, uuid.New())
	c.Jig.ReceivedQuantity = 99
	*c.Jig.DueDate = due.AddDate(0, 1, 0)

	if len(orig.History) != 2 {
		t.Errorf("orig history mutated: len %d", len(orig.History))
	}
	if len(orig.Comments[0].ReadBy) != 1 {
		t.Errorf("orig readBy mutated: len %d", len(orig.Comments[0].ReadBy))
	}
	if orig.Jig.ReceivedQuantity != 10 {
		t.Errorf("orig received mutated: %d", orig.Jig.ReceivedQuantity)
	}
	if !orig.Jig.DueDate.Equal(due) {
		t.Errorf("orig due date mutated: %v", orig.Jig.DueDate)
	}
}

func TestRequest_LastHistory(t *testing.T) {
	t.Parallel()

	r := &Request{}
	if _, ok := r.LastHistory(); ok {
		t.Fatal("expected no history")
	}
	r.History = []HistoryEntry{{Status: SampleStatusReceived}, {Status: SampleStatusInProgress}}
	last, ok := r.LastHistory()
	if !ok || last.Status != SampleStatusInProgress {
		t.Errorf("LastHistory() = %v, %v", last, ok)
	}
}

func TestComment_HasRead(t *testing.T) {
	t.Parallel()

	u := uuid.New()
	c := Comment{ReadBy: []uuid.UUID{u}}
	if !c.HasRead(u) {
		t.Error("HasRead(reader) = false")
	}
	if c.HasRead(uuid.New()) {
		t.Error("HasRead(stranger) = true")
	}
}
