package rest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/worktrack-backend/internal/domain"
	"github.com/heartmarshall/worktrack-backend/internal/service/request"
	"github.com/heartmarshall/worktrack-backend/pkg/ctxutil"
)

// requestService defines the minimal interface needed by RequestHandler.
type requestService interface {
	CreateRequest(ctx context.Context, actor domain.Actor, input request.CreateRequestInput) (*domain.Request, error)
	GetRequest(ctx context.Context, actor domain.Actor, id uuid.UUID) (*request.RequestDetails, error)
	ListRequests(ctx context.Context, actor domain.Actor, input request.ListRequestsInput) ([]*domain.Request, int, error)
	UpdateStatus(ctx context.Context, actor domain.Actor, input request.UpdateStatusInput) (*domain.Request, error)
	AddComment(ctx context.Context, actor domain.Actor, input request.AddCommentInput) (*domain.Comment, error)
	MarkCommentsRead(ctx context.Context, actor domain.Actor, input request.MarkReadInput) (int, error)
	ReceiveOrReturn(ctx context.Context, actor domain.Actor, input request.QuantityChangeInput) (*domain.Request, error)
	UpdateWorkData(ctx context.Context, actor domain.Actor, input request.UpdateWorkDataInput) (*domain.Request, error)
	ListHistory(ctx context.Context, actor domain.Actor, input request.HistoryInput) ([]domain.HistoryEntry, error)
	Fulfillment(ctx context.Context, actor domain.Actor, id uuid.UUID) (*request.FulfillmentSummary, error)
}

// RequestHandler serves the work request REST endpoints.
type RequestHandler struct {
	svc          requestService
	log          *slog.Logger
	maxBodyBytes int64
}

// NewRequestHandler creates a RequestHandler. Request bodies larger than
// maxBodyBytes are rejected with 413.
func NewRequestHandler(svc requestService, logger *slog.Logger, maxBodyBytes int64) *RequestHandler {
	return &RequestHandler{svc: svc, log: logger.With("handler", "request"), maxBodyBytes: maxBodyBytes}
}

// actorFrom returns the authenticated actor or the zero Actor, which the
// service rejects as unauthorized.
func actorFrom(r *http.Request) domain.Actor {
	actor, _ := ctxutil.ActorFromCtx(r.Context())
	return actor
}

// Create handles POST /requests.
func (h *RequestHandler) Create(w http.ResponseWriter, r *http.Request) {
	var body createRequestBody
	if err := decodeJSON(w, r, h.maxBodyBytes, &body); err != nil {
		h.handleError(w, r, err)
		return
	}

	req, err := h.svc.CreateRequest(r.Context(), actorFrom(r), request.CreateRequestInput{
		Kind:            domain.RequestKind(body.Kind),
		Title:           body.Title,
		RequesterName:   body.RequesterName,
		OrderedQuantity: body.OrderedQuantity,
		RequestedAt:     body.RequestedAt,
		UnitPrice:       body.UnitPrice,
		CoreCost:        body.CoreCost,
		Vendor:          body.Vendor,
		DueDate:         body.DueDate,
		SubKind:         domain.ProductionSubKind(body.SubKind),
		Line:            body.Line,
		WorkData:        body.WorkData,
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	w.Header().Set("Location", "/requests/"+req.ID.String())
	writeJSON(w, http.StatusCreated, toRequestResponse(req))
}

// List handles GET /requests.
func (h *RequestHandler) List(w http.ResponseWriter, r *http.Request) {
	limit, err := queryInt(r, "limit")
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	offset, err := queryInt(r, "offset")
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	input := request.ListRequestsInput{Limit: limit, Offset: offset}
	if v := queryString(r, "kind"); v != nil {
		kind := domain.RequestKind(*v)
		input.Kind = &kind
	}
	if v := queryString(r, "status"); v != nil {
		status := domain.Status(*v)
		input.Status = &status
	}

	items, total, err := h.svc.ListRequests(r.Context(), actorFrom(r), input)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	resp := requestListResponse{
		Items:  make([]requestResponse, 0, len(items)),
		Total:  total,
		Limit:  limit,
		Offset: offset,
	}
	for _, req := range items {
		resp.Items = append(resp.Items, toRequestResponse(req))
	}
	writeJSON(w, http.StatusOK, resp)
}

// Get handles GET /requests/{id}.
func (h *RequestHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	details, err := h.svc.GetRequest(r.Context(), actorFrom(r), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toRequestDetailsResponse(details))
}

// UpdateStatus handles POST /requests/{id}/status.
func (h *RequestHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	var body updateStatusBody
	if err := decodeJSON(w, r, h.maxBodyBytes, &body); err != nil {
		h.handleError(w, r, err)
		return
	}

	req, err := h.svc.UpdateStatus(r.Context(), actorFrom(r), request.UpdateStatusInput{
		RequestID: id,
		Target:    domain.Status(body.Status),
		Reason:    body.Reason,
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toRequestResponse(req))
}

// AddComment handles POST /requests/{id}/comments.
func (h *RequestHandler) AddComment(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	var body addCommentBody
	if err := decodeJSON(w, r, h.maxBodyBytes, &body); err != nil {
		h.handleError(w, r, err)
		return
	}

	comment, err := h.svc.AddComment(r.Context(), actorFrom(r), request.AddCommentInput{
		RequestID: id,
		Text:      body.Text,
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toCommentResponse(comment))
}

// MarkCommentsRead handles POST /requests/{id}/comments/read.
func (h *RequestHandler) MarkCommentsRead(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	var body markReadBody
	if err := decodeOptionalJSON(w, r, h.maxBodyBytes, &body); err != nil {
		h.handleError(w, r, err)
		return
	}

	input := request.MarkReadInput{RequestID: id}
	if body.UserID != nil {
		input.UserID = *body.UserID
	}

	changed, err := h.svc.MarkCommentsRead(r.Context(), actorFrom(r), input)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, markReadResponse{Changed: changed})
}

// ChangeQuantity handles POST /requests/{id}/quantity.
func (h *RequestHandler) ChangeQuantity(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	var body quantityBody
	if err := decodeJSON(w, r, h.maxBodyBytes, &body); err != nil {
		h.handleError(w, r, err)
		return
	}

	req, err := h.svc.ReceiveOrReturn(r.Context(), actorFrom(r), request.QuantityChangeInput{
		RequestID: id,
		Delta:     body.Delta,
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toRequestResponse(req))
}

// Fulfillment handles GET /requests/{id}/fulfillment.
func (h *RequestHandler) Fulfillment(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	summary, err := h.svc.Fulfillment(r.Context(), actorFrom(r), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toFulfillmentResponse(summary))
}

// UpdateWorkData handles PUT /requests/{id}/work-data.
func (h *RequestHandler) UpdateWorkData(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	var body workDataBody
	if err := decodeJSON(w, r, h.maxBodyBytes, &body); err != nil {
		h.handleError(w, r, err)
		return
	}

	req, err := h.svc.UpdateWorkData(r.Context(), actorFrom(r), request.UpdateWorkDataInput{
		RequestID: id,
		Payload:   body.Payload,
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toRequestResponse(req))
}

// History handles GET /requests/{id}/history.
func (h *RequestHandler) History(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	input := request.HistoryInput{RequestID: id, ActorName: queryString(r, "actor")}
	if v := queryString(r, "status"); v != nil {
		status := domain.Status(*v)
		input.Status = &status
	}

	entries, err := h.svc.ListHistory(r.Context(), actorFrom(r), input)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toHistoryResponses(entries))
}

func (h *RequestHandler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	var ve *domain.ValidationError
	switch {
	case errors.As(err, &ve):
		resp := errorResponse{Error: "validation failed", Fields: make([]fieldError, 0, len(ve.Errors))}
		for _, fe := range ve.Errors {
			resp.Fields = append(resp.Fields, fieldError{Field: fe.Field, Message: fe.Message})
		}
		writeJSON(w, http.StatusBadRequest, resp)
	case errors.Is(err, errBodyTooLarge):
		writeError(w, http.StatusRequestEntityTooLarge, err.Error())
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, "unauthorized")
	case errors.Is(err, domain.ErrForbidden):
		writeError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "not found")
	case errors.Is(err, domain.ErrInvalidTransition):
		writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, domain.ErrConflict):
		writeError(w, http.StatusConflict, "request was modified concurrently, reload and retry")
	case errors.Is(err, domain.ErrAlreadyExists):
		writeError(w, http.StatusConflict, "already exists")
	case errors.Is(err, domain.ErrQuantityOutOfRange):
		writeError(w, http.StatusUnprocessableEntity, err.Error())
	default:
		h.log.ErrorContext(r.Context(), "internal error",
			slog.String("error", err.Error()),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
		)
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}
