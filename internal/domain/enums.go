package domain

// RequestKind identifies one of the fixed request variants.
type RequestKind string

const (
	RequestKindJig        RequestKind = "JIG"
	RequestKindProduction RequestKind = "PRODUCTION"
	RequestKindSample     RequestKind = "SAMPLE"
)

func (k RequestKind) String() string { return string(k) }

func (k RequestKind) IsValid() bool {
	switch k {
	case RequestKindJig, RequestKindProduction, RequestKindSample:
		return true
	}
	return false
}

// Status is the lifecycle state of a request. Each kind accepts only its own
// closed subset (see Statuses).
type Status string

// Jig request statuses.
const (
	JigStatusRequest    Status = "REQUEST"
	JigStatusInProgress Status = "IN_PROGRESS"
	JigStatusReceiving  Status = "RECEIVING"
	JigStatusHold       Status = "HOLD"
	JigStatusCompleted  Status = "COMPLETED"
	JigStatusRejected   Status = "REJECTED"
)

// Production request statuses.
const (
	ProductionStatusRequested  Status = "REQUESTED"
	ProductionStatusInProgress Status = "IN_PROGRESS"
	ProductionStatusHold       Status = "HOLD"
	ProductionStatusCompleted  Status = "COMPLETED"
	ProductionStatusRejected   Status = "REJECTED"
)

// Sample request statuses.
const (
	SampleStatusReceived   Status = "RECEIVED"
	SampleStatusInProgress Status = "IN_PROGRESS"
	SampleStatusOnHold     Status = "ON_HOLD"
	SampleStatusCompleted  Status = "COMPLETED"
	SampleStatusRejected   Status = "REJECTED"
)

func (s Status) String() string { return string(s) }

var kindStatuses = map[RequestKind][]Status{
	RequestKindJig: {
		JigStatusRequest, JigStatusInProgress, JigStatusReceiving,
		JigStatusHold, JigStatusCompleted, JigStatusRejected,
	},
	RequestKindProduction: {
		ProductionStatusRequested, ProductionStatusInProgress, ProductionStatusHold,
		ProductionStatusCompleted, ProductionStatusRejected,
	},
	RequestKindSample: {
		SampleStatusReceived, SampleStatusInProgress, SampleStatusOnHold,
		SampleStatusCompleted, SampleStatusRejected,
	},
}

// Statuses returns the closed status set of a kind. Nil for unknown kinds.
func (k RequestKind) Statuses() []Status {
	return append([]Status(nil), kindStatuses[k]...)
}

// HasStatus reports whether s belongs to the status set of k.
func (k RequestKind) HasStatus(s Status) bool {
	for _, st := range kindStatuses[k] {
		if st == s {
			return true
		}
	}
	return false
}

// InitialStatus is the status a freshly created request of kind k starts in.
func (k RequestKind) InitialStatus() Status {
	switch k {
	case RequestKindJig:
		return JigStatusRequest
	case RequestKindProduction:
		return ProductionStatusRequested
	case RequestKindSample:
		return SampleStatusReceived
	}
	return ""
}

// IsTerminal reports whether no transition may leave s.
// All kinds share the wire values "COMPLETED" and "REJECTED" for their
// terminal statuses, so matching the jig constants covers every kind.
func (s Status) IsTerminal() bool {
	return s == JigStatusCompleted || s == JigStatusRejected
}

// ProductionSubKind distinguishes rendering variants of production requests.
// It never changes the transition table.
type ProductionSubKind string

const (
	ProductionSubKindStandard          ProductionSubKind = "STANDARD"
	ProductionSubKindLogisticsTransfer ProductionSubKind = "LOGISTICS_TRANSFER"
)

func (p ProductionSubKind) String() string { return string(p) }

func (p ProductionSubKind) IsValid() bool {
	switch p {
	case ProductionSubKindStandard, ProductionSubKindLogisticsTransfer:
		return true
	}
	return false
}
