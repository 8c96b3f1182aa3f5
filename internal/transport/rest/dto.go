package rest

import (
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/worktrack-backend/internal/domain"
	"github.com/heartmarshall/worktrack-backend/internal/service/request"
)

// ---------------------------------------------------------------------------
// Request bodies
// ---------------------------------------------------------------------------

type createRequestBody struct {
	Kind            string         `json:"kind"`
	Title           string         `json:"title"`
	RequesterName   string         `json:"requesterName"`
	OrderedQuantity int            `json:"orderedQuantity"`
	RequestedAt     *time.Time     `json:"requestedAt,omitempty"`
	UnitPrice       int64          `json:"unitPrice,omitempty"`
	CoreCost        int64          `json:"coreCost,omitempty"`
	Vendor          string         `json:"vendor,omitempty"`
	DueDate         *time.Time     `json:"dueDate,omitempty"`
	SubKind         string         `json:"subKind,omitempty"`
	Line            string         `json:"line,omitempty"`
	WorkData        map[string]any `json:"workData,omitempty"`
}

type updateStatusBody struct {
	Status string `json:"status"`
	Reason string `json:"reason"`
}

type addCommentBody struct {
	Text string `json:"text"`
}

type markReadBody struct {
	UserID *uuid.UUID `json:"userId,omitempty"`
}

type quantityBody struct {
	Delta int `json:"delta"`
}

type workDataBody struct {
	Payload map[string]any `json:"payload"`
}

// ---------------------------------------------------------------------------
// Responses
// ---------------------------------------------------------------------------

type requestResponse struct {
	ID              string            `json:"id"`
	Kind            string            `json:"kind"`
	Status          string            `json:"status"`
	Title           string            `json:"title"`
	RequesterName   string            `json:"requesterName"`
	AuthorID        string            `json:"authorId"`
	AuthorName      string            `json:"authorName"`
	OrderedQuantity int               `json:"orderedQuantity"`
	RequestedAt     time.Time         `json:"requestedAt"`
	Version         int64             `json:"version"`
	CreatedAt       time.Time         `json:"createdAt"`
	UpdatedAt       time.Time         `json:"updatedAt"`
	History         []historyResponse `json:"history"`
	Comments        []commentResponse `json:"comments"`
	Jig             *jigResponse      `json:"jig,omitempty"`
	Production      *productionResp   `json:"production,omitempty"`
	Sample          *sampleResponse   `json:"sample,omitempty"`
}

type historyResponse struct {
	At        time.Time `json:"at"`
	Status    string    `json:"status"`
	ActorName string    `json:"actorName"`
	Reason    string    `json:"reason"`
}

type commentResponse struct {
	ID         string    `json:"id"`
	AuthorName string    `json:"authorName"`
	Text       string    `json:"text"`
	CreatedAt  time.Time `json:"createdAt"`
	ReadBy     []string  `json:"readBy"`
}

type jigResponse struct {
	ReceivedQuantity int        `json:"receivedQuantity"`
	UnitPrice        int64      `json:"unitPrice"`
	CoreCost         int64      `json:"coreCost"`
	Vendor           string     `json:"vendor,omitempty"`
	DueDate          *time.Time `json:"dueDate,omitempty"`
}

type productionResp struct {
	SubKind string `json:"subKind"`
	Line    string `json:"line,omitempty"`
}

type sampleResponse struct {
	WorkData map[string]any `json:"workData"`
}

type requestDetailsResponse struct {
	requestResponse
	AllowedTransitions []string `json:"allowedTransitions"`
	UnreadComments     int      `json:"unreadComments"`
	CanComment         bool     `json:"canComment"`
	Amount             int64    `json:"amount"`
}

type requestListResponse struct {
	Items  []requestResponse `json:"items"`
	Total  int               `json:"total"`
	Limit  int               `json:"limit"`
	Offset int               `json:"offset"`
}

type markReadResponse struct {
	Changed int `json:"changed"`
}

type fulfillmentResponse struct {
	RequestID string `json:"requestId"`
	Status    string `json:"status"`
	Ordered   int    `json:"ordered"`
	Received  int    `json:"received"`
	Remaining int    `json:"remaining"`
	UnitPrice int64  `json:"unitPrice"`
	CoreCost  int64  `json:"coreCost"`
	Amount    int64  `json:"amount"`
}

// ---------------------------------------------------------------------------
// Mapping
// ---------------------------------------------------------------------------

func toRequestResponse(req *domain.Request) requestResponse {
	resp := requestResponse{
		ID:              req.ID.String(),
		Kind:            req.Kind.String(),
		Status:          req.Status.String(),
		Title:           req.Title,
		RequesterName:   req.RequesterName,
		AuthorID:        req.AuthorID.String(),
		AuthorName:      req.AuthorName,
		OrderedQuantity: req.OrderedQuantity,
		RequestedAt:     req.RequestedAt,
		Version:         req.Version,
		CreatedAt:       req.CreatedAt,
		UpdatedAt:       req.UpdatedAt,
		History:         toHistoryResponses(req.History),
		Comments:        make([]commentResponse, 0, len(req.Comments)),
	}
	for i := range req.Comments {
		resp.Comments = append(resp.Comments, toCommentResponse(&req.Comments[i]))
	}

	switch {
	case req.Jig != nil:
		resp.Jig = &jigResponse{
			ReceivedQuantity: req.Jig.ReceivedQuantity,
			UnitPrice:        req.Jig.UnitPrice,
			CoreCost:         req.Jig.CoreCost,
			Vendor:           req.Jig.Vendor,
			DueDate:          req.Jig.DueDate,
		}
	case req.Production != nil:
		resp.Production = &productionResp{
			SubKind: req.Production.SubKind.String(),
			Line:    req.Production.Line,
		}
	case req.Sample != nil:
		resp.Sample = &sampleResponse{WorkData: req.Sample.WorkData}
	}
	return resp
}

func toRequestDetailsResponse(d *request.RequestDetails) requestDetailsResponse {
	allowed := make([]string, 0, len(d.AllowedTransitions))
	for _, s := range d.AllowedTransitions {
		allowed = append(allowed, s.String())
	}
	return requestDetailsResponse{
		requestResponse:    toRequestResponse(d.Request),
		AllowedTransitions: allowed,
		UnreadComments:     d.UnreadComments,
		CanComment:         d.CanComment,
		Amount:             d.Amount,
	}
}

func toHistoryResponses(entries []domain.HistoryEntry) []historyResponse {
	out := make([]historyResponse, 0, len(entries))
	for _, h := range entries {
		out = append(out, historyResponse{
			At:        h.At,
			Status:    h.Status.String(),
			ActorName: h.ActorName,
			Reason:    h.Reason,
		})
	}
	return out
}

func toCommentResponse(c *domain.Comment) commentResponse {
	readBy := make([]string, 0, len(c.ReadBy))
	for _, id := range c.ReadBy {
		readBy = append(readBy, id.String())
	}
	return commentResponse{
		ID:         c.ID.String(),
		AuthorName: c.AuthorName,
		Text:       c.Text,
		CreatedAt:  c.CreatedAt,
		ReadBy:     readBy,
	}
}

func toFulfillmentResponse(f *request.FulfillmentSummary) fulfillmentResponse {
	return fulfillmentResponse{
		RequestID: f.RequestID.String(),
		Status:    f.Status.String(),
		Ordered:   f.Ordered,
		Received:  f.Received,
		Remaining: f.Remaining,
		UnitPrice: f.UnitPrice,
		CoreCost:  f.CoreCost,
		Amount:    f.Amount,
	}
}
