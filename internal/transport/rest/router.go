package rest

import (
	"net/http"

	"github.com/heartmarshall/curator-backend/internal/transport/middleware"
)

// Routes lists the handlers mounted by NewMux.
type Routes struct {
	Health   *HealthHandler
	Auth     *AuthHandler
	Content  *ContentHandler
	Category *CategoryHandler
	Admin    *AdminHandler
	Analysis *AnalysisHandler
	Metrics  http.Handler
	// AnalyzeLimit guards the analysis endpoint, which calls the model
	// synchronously on every request.
	AnalyzeLimit middleware.Middleware
}

// NewMux registers every route. Identity comes from middleware.Auth, which
// must wrap the returned mux.
func NewMux(rt Routes) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", rt.Health.Live)
	mux.HandleFunc("GET /ready", rt.Health.Ready)
	mux.HandleFunc("GET /health", rt.Health.Health)
	if rt.Metrics != nil {
		mux.Handle("GET /metrics", rt.Metrics)
	}

	mux.HandleFunc("POST /register", rt.Auth.Register)
	mux.HandleFunc("POST /auth/login", rt.Auth.Login)

	mux.HandleFunc("GET /content", rt.Content.List)
	mux.HandleFunc("POST /content", rt.Content.Create)
	mux.HandleFunc("GET /content/{id}", rt.Content.Get)
	mux.HandleFunc("PUT /content/{id}", rt.Content.Update)
	mux.HandleFunc("PATCH /content/{id}", rt.Content.Update)
	mux.HandleFunc("DELETE /content/{id}", rt.Content.Delete)

	mux.HandleFunc("GET /categories", rt.Category.List)
	mux.HandleFunc("POST /categories", rt.Category.Create)
	mux.HandleFunc("GET /categories/{id}", rt.Category.Get)
	mux.HandleFunc("PUT /categories/{id}", rt.Category.Update)
	mux.HandleFunc("DELETE /categories/{id}", rt.Category.Delete)

	mux.Handle("GET /users", middleware.Wrap(rt.Admin.ListUsers, middleware.RequireAdmin))
	mux.Handle("GET /users/{id}", middleware.Wrap(rt.Admin.GetUser, middleware.RequireAdmin))
	mux.Handle("GET /analytics", middleware.Wrap(rt.Admin.Analytics, middleware.RequireAdmin))

	mux.Handle("POST /ai/analyze", middleware.Wrap(rt.Analysis.Analyze, middleware.RequireUser, rt.AnalyzeLimit))

	return mux
}
