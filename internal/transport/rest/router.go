package rest

import "net/http"

// Routes groups the handlers mounted by NewRouter.
type Routes struct {
	Requests *RequestHandler
	Health   *HealthHandler

	// Metrics is mounted at MetricsPath when non-nil.
	Metrics     http.Handler
	MetricsPath string
}

// NewRouter registers every endpoint on a method-aware ServeMux.
func NewRouter(rt Routes) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /requests", rt.Requests.Create)
	mux.HandleFunc("GET /requests", rt.Requests.List)
	mux.HandleFunc("GET /requests/{id}", rt.Requests.Get)
	mux.HandleFunc("POST /requests/{id}/status", rt.Requests.UpdateStatus)
	mux.HandleFunc("POST /requests/{id}/comments", rt.Requests.AddComment)
	mux.HandleFunc("POST /requests/{id}/comments/read", rt.Requests.MarkCommentsRead)
	mux.HandleFunc("POST /requests/{id}/quantity", rt.Requests.ChangeQuantity)
	mux.HandleFunc("GET /requests/{id}/fulfillment", rt.Requests.Fulfillment)
	mux.HandleFunc("PUT /requests/{id}/work-data", rt.Requests.UpdateWorkData)
	mux.HandleFunc("GET /requests/{id}/history", rt.Requests.History)

	mux.HandleFunc("GET /live", rt.Health.Live)
	mux.HandleFunc("GET /ready", rt.Health.Ready)
	mux.HandleFunc("GET /health", rt.Health.Health)

	if rt.Metrics != nil {
		mux.Handle("GET "+rt.MetricsPath, rt.Metrics)
	}

	return mux
}
