package request

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/worktrack-backend/internal/domain"
)

// document is the JSONB body of a requests row. Columns duplicated outside
// the document (kind, status, title, timestamps, version) are authoritative.
type document struct {
	RequesterName   string         `json:"requester_name"`
	AuthorID        uuid.UUID      `json:"author_id"`
	AuthorName      string         `json:"author_name"`
	OrderedQuantity int            `json:"ordered_quantity"`
	RequestedAt     time.Time      `json:"requested_at"`
	History         []historyDoc   `json:"history"`
	Comments        []commentDoc   `json:"comments"`
	Jig             *jigDoc        `json:"jig,omitempty"`
	Production      *productionDoc `json:"production,omitempty"`
	Sample          *sampleDoc     `json:"sample,omitempty"`
}

type historyDoc struct {
	At        time.Time `json:"at"`
	Status    string    `json:"status"`
	ActorName string    `json:"actor_name"`
	Reason    string    `json:"reason"`
}

type commentDoc struct {
	ID         uuid.UUID   `json:"id"`
	AuthorName string      `json:"author_name"`
	Text       string      `json:"text"`
	CreatedAt  time.Time   `json:"created_at"`
	ReadBy     []uuid.UUID `json:"read_by"`
}

type jigDoc struct {
	ReceivedQuantity int        `json:"received_quantity"`
	UnitPrice        int64      `json:"unit_price"`
	CoreCost         int64      `json:"core_cost"`
	Vendor           string     `json:"vendor,omitempty"`
	DueDate          *time.Time `json:"due_date,omitempty"`
}

type productionDoc struct {
	SubKind string `json:"sub_kind"`
	Line    string `json:"line,omitempty"`
}

type sampleDoc struct {
	WorkData map[string]any `json:"work_data"`
}

func encodeDocument(r *domain.Request) ([]byte, error) {
	doc := document{
		RequesterName:   r.RequesterName,
		AuthorID:        r.AuthorID,
		AuthorName:      r.AuthorName,
		OrderedQuantity: r.OrderedQuantity,
		RequestedAt:     r.RequestedAt,
		History:         make([]historyDoc, len(r.History)),
		Comments:        make([]commentDoc, len(r.Comments)),
	}
	for i, h := range r.History {
		doc.History[i] = historyDoc{At: h.At, Status: h.Status.String(), ActorName: h.ActorName, Reason: h.Reason}
	}
	for i, c := range r.Comments {
		readBy := c.ReadBy
		if readBy == nil {
			readBy = []uuid.UUID{}
		}
		doc.Comments[i] = commentDoc{ID: c.ID, AuthorName: c.AuthorName, Text: c.Text, CreatedAt: c.CreatedAt, ReadBy: readBy}
	}
	if r.Jig != nil {
		doc.Jig = &jigDoc{
			ReceivedQuantity: r.Jig.ReceivedQuantity,
			UnitPrice:        r.Jig.UnitPrice,
			CoreCost:         r.Jig.CoreCost,
			Vendor:           r.Jig.Vendor,
			DueDate:          r.Jig.DueDate,
		}
	}
	if r.Production != nil {
		doc.Production = &productionDoc{SubKind: r.Production.SubKind.String(), Line: r.Production.Line}
	}
	if r.Sample != nil {
		doc.Sample = &sampleDoc{WorkData: r.Sample.WorkData}
	}

	b, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("encode request document: %w", err)
	}
	return b, nil
}

// decodeDocument fills the document-held fields of r from raw.
func decodeDocument(raw []byte, r *domain.Request) error {
	var doc document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("decode request document: %w", err)
	}

	r.RequesterName = doc.RequesterName
	r.AuthorID = doc.AuthorID
	r.AuthorName = doc.AuthorName
	r.OrderedQuantity = doc.OrderedQuantity
	r.RequestedAt = doc.RequestedAt

	r.History = make([]domain.HistoryEntry, len(doc.History))
	for i, h := range doc.History {
		r.History[i] = domain.HistoryEntry{At: h.At, Status: domain.Status(h.Status), ActorName: h.ActorName, Reason: h.Reason}
	}
	r.Comments = make([]domain.Comment, len(doc.Comments))
	for i, c := range doc.Comments {
		readBy := c.ReadBy
		if readBy == nil {
			readBy = []uuid.UUID{}
		}
		r.Comments[i] = domain.Comment{ID: c.ID, AuthorName: c.AuthorName, Text: c.Text, CreatedAt: c.CreatedAt, ReadBy: readBy}
	}

	if doc.Jig != nil {
		r.Jig = &domain.JigDetails{
			ReceivedQuantity: doc.Jig.ReceivedQuantity,
			UnitPrice:        doc.Jig.UnitPrice,
			CoreCost:         doc.Jig.CoreCost,
			Vendor:           doc.Jig.Vendor,
			DueDate:          doc.Jig.DueDate,
		}
	}
	if doc.Production != nil {
		r.Production = &domain.ProductionDetails{SubKind: domain.ProductionSubKind(doc.Production.SubKind), Line: doc.Production.Line}
	}
	if doc.Sample != nil {
		workData := doc.Sample.WorkData
		if workData == nil {
			workData = map[string]any{}
		}
		r.Sample = &domain.SampleDetails{WorkData: workData}
	}
	return nil
}
