package domain

import (
	"maps"
	"slices"
	"time"

	"github.com/google/uuid"
)

// Request is a tracked unit of work. Exactly one of Jig, Production or Sample
// is set, matching Kind.
type Request struct {
	ID              uuid.UUID
	Kind            RequestKind
	Status          Status
	Title           string
	RequesterName   string
	AuthorID        uuid.UUID
	AuthorName      string
	OrderedQuantity int
	RequestedAt     time.Time
	History         []HistoryEntry
	Comments        []Comment
	Version         int64
	CreatedAt       time.Time
	UpdatedAt       time.Time

	Jig        *JigDetails
	Production *ProductionDetails
	Sample     *SampleDetails
}

// HistoryEntry is one immutable record of the request's audit trail.
type HistoryEntry struct {
	At        time.Time
	Status    Status
	ActorName string
	Reason    string
}

// Comment is an immutable note on a request. Only ReadBy changes, and it only grows.
type Comment struct {
	ID         uuid.UUID
	AuthorName string
	Text       string
	CreatedAt  time.Time
	ReadBy     []uuid.UUID
}

// HasRead reports whether userID is in ReadBy.
func (c *Comment) HasRead(userID uuid.UUID) bool {
	return slices.Contains(c.ReadBy, userID)
}

// JigDetails holds the fulfillment state of a jig request.
type JigDetails struct {
	ReceivedQuantity int
	UnitPrice        int64
	CoreCost         int64
	Vendor           string
	DueDate          *time.Time
}

// ProductionDetails holds production-specific fields.
type ProductionDetails struct {
	SubKind ProductionSubKind
	Line    string
}

// SampleDetails holds the opaque work-stage payload of a sample request.
type SampleDetails struct {
	WorkData map[string]any
}

// LastHistory returns the most recent history entry, or false if history is empty.
func (r *Request) LastHistory() (HistoryEntry, bool) {
	if len(r.History) == 0 {
		return HistoryEntry{}, false
	}
	return r.History[len(r.History)-1], true
}

// Clone returns a deep copy so mutations on the copy never leak into r.
func (r *Request) Clone() *Request {
	if r == nil {
		return nil
	}
	c := *r
	c.History = slices.Clone(r.History)
	c.Comments = make([]Comment, len(r.Comments))
	for i, cm := range r.Comments {
		cm.ReadBy = slices.Clone(cm.ReadBy)
		c.Comments[i] = cm
	}
	if r.Jig != nil {
		j := *r.Jig
		if r.Jig.DueDate != nil {
			d := *r.Jig.DueDate
			j.DueDate = &d
		}
		c.Jig = &j
	}
	if r.Production != nil {
		p := *r.Production
		c.Production = &p
	}
	if r.Sample != nil {
		c.Sample = &SampleDetails{WorkData: maps.Clone(r.Sample.WorkData)}
	}
	return &c
}
