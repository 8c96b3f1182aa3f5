package request

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/heartmarshall/worktrack-backend/internal/domain"
)

// CreateRequestInput holds the parameters for registering a new request.
type CreateRequestInput struct {
	Kind            domain.RequestKind
	Title           string
	RequesterName   string
	OrderedQuantity int
	RequestedAt     *time.Time

	// Jig fields.
	UnitPrice int64
	CoreCost  int64
	Vendor    string
	DueDate   *time.Time

	// Production fields.
	SubKind domain.ProductionSubKind
	Line    string

	// Sample fields.
	WorkData map[string]any
}

// Validate checks all fields and collects all errors.
func (i CreateRequestInput) Validate() error {
	var errs []domain.FieldError

	if !i.Kind.IsValid() {
		errs = append(errs, domain.FieldError{Field: "kind", Message: "must be JIG, PRODUCTION or SAMPLE"})
	}

	title := strings.TrimSpace(i.Title)
	if title == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	}
	if utf8.RuneCountInString(title) > 200 {
		errs = append(errs, domain.FieldError{Field: "title", Message: "max 200 characters"})
	}
	if strings.TrimSpace(i.RequesterName) == "" {
		errs = append(errs, domain.FieldError{Field: "requester_name", Message: "required"})
	}
	if i.OrderedQuantity < 0 {
		errs = append(errs, domain.FieldError{Field: "ordered_quantity", Message: "must be >= 0"})
	}
	if i.UnitPrice < 0 {
		errs = append(errs, domain.FieldError{Field: "unit_price", Message: "must be >= 0"})
	}
	if i.CoreCost < 0 {
		errs = append(errs, domain.FieldError{Field: "core_cost", Message: "must be >= 0"})
	}
	if i.SubKind != "" && !i.SubKind.IsValid() {
		errs = append(errs, domain.FieldError{Field: "sub_kind", Message: "must be STANDARD or LOGISTICS_TRANSFER"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

const maxReasonLength = 500

// UpdateStatusInput holds the parameters for a status change command.
type UpdateStatusInput struct {
	RequestID uuid.UUID
	Target    domain.Status
	Reason    string
}

// Validate checks all fields and collects all errors.
func (i UpdateStatusInput) Validate() error {
	var errs []domain.FieldError
	if i.RequestID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "request_id", Message: "required"})
	}
	if i.Target == "" {
		errs = append(errs, domain.FieldError{Field: "status", Message: "required"})
	}
	if utf8.RuneCountInString(i.Reason) > maxReasonLength {
		errs = append(errs, domain.FieldError{Field: "reason", Message: "max 500 characters"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// AddCommentInput holds the parameters for adding a comment.
type AddCommentInput struct {
	RequestID uuid.UUID
	Text      string
}

// Validate checks request_id only; text rules live in the workflow.
func (i AddCommentInput) Validate() error {
	if i.RequestID == uuid.Nil {
		return domain.NewValidationError("request_id", "required")
	}
	return nil
}

// MarkReadInput holds the parameters for marking a thread read.
type MarkReadInput struct {
	RequestID uuid.UUID
	UserID    uuid.UUID // uuid.Nil means the acting user
}

// Validate checks all fields and collects all errors.
func (i MarkReadInput) Validate() error {
	if i.RequestID == uuid.Nil {
		return domain.NewValidationError("request_id", "required")
	}
	return nil
}

// QuantityChangeInput holds the parameters for a receive (Delta > 0) or
// return (Delta < 0) on a jig request.
type QuantityChangeInput struct {
	RequestID uuid.UUID
	Delta     int
}

// Validate checks all fields and collects all errors.
func (i QuantityChangeInput) Validate() error {
	var errs []domain.FieldError
	if i.RequestID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "request_id", Message: "required"})
	}
	if i.Delta == 0 {
		errs = append(errs, domain.FieldError{Field: "delta", Message: "must not be zero"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateWorkDataInput replaces the work-stage payload of a sample request.
type UpdateWorkDataInput struct {
	RequestID uuid.UUID
	Payload   map[string]any
}

// Validate checks all fields and collects all errors.
func (i UpdateWorkDataInput) Validate() error {
	var errs []domain.FieldError
	if i.RequestID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "request_id", Message: "required"})
	}
	if i.Payload == nil {
		errs = append(errs, domain.FieldError{Field: "payload", Message: "required"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ListRequestsInput holds list filters and pagination.
type ListRequestsInput struct {
	Kind   *domain.RequestKind
	Status *domain.Status
	Limit  int
	Offset int
}

const (
	defaultListLimit = 50
	maxListLimit     = 200
)

// Validate checks all fields and collects all errors.
func (i ListRequestsInput) Validate() error {
	var errs []domain.FieldError
	if i.Kind != nil && !i.Kind.IsValid() {
		errs = append(errs, domain.FieldError{Field: "kind", Message: "invalid"})
	}
	if i.Kind != nil && i.Status != nil && !i.Kind.HasStatus(*i.Status) {
		errs = append(errs, domain.FieldError{Field: "status", Message: "not a status of " + i.Kind.String()})
	}
	if i.Limit < 0 || i.Limit > maxListLimit {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must be between 0 and 200"})
	}
	if i.Offset < 0 {
		errs = append(errs, domain.FieldError{Field: "offset", Message: "must be >= 0"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// HistoryInput selects a request's history entries.
type HistoryInput struct {
	RequestID uuid.UUID
	Status    *domain.Status
	ActorName *string
}

// Validate checks all fields and collects all errors.
func (i HistoryInput) Validate() error {
	if i.RequestID == uuid.Nil {
		return domain.NewValidationError("request_id", "required")
	}
	return nil
}
