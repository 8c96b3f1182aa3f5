package domain

// RequestFilter contains filtering/pagination parameters for request listings.
type RequestFilter struct {
	Kind   *RequestKind
	Status *Status
	Limit  int
	Offset int
}

// HistoryFilter narrows a request's history. Nil fields match everything.
type HistoryFilter struct {
	Status    *Status
	ActorName *string
}
