package rest

import (
	"context"
	"net/http"
	"time"
)

const pingTimeout = 3 * time.Second

// dbPinger defines the minimal interface for DB health checks.
type dbPinger interface {
	Ping(ctx context.Context) error
}

// LLMStatus describes the language model provider for /health. The provider
// is never called by a health check.
type LLMStatus struct {
	Provider   string
	Configured bool
	// BreakerState reports the circuit breaker state; nil without a breaker.
	BreakerState func() string
}

// HealthHandler serves health check endpoints.
type HealthHandler struct {
	db      dbPinger
	version string
	llm     *LLMStatus
}

// HealthOption configures optional components of a HealthHandler.
type HealthOption func(*HealthHandler)

// WithLLM adds the language model provider to /health.
func WithLLM(s LLMStatus) HealthOption {
	return func(h *HealthHandler) { h.llm = &s }
}

// NewHealthHandler creates a HealthHandler.
func NewHealthHandler(db dbPinger, version string, opts ...HealthOption) *HealthHandler {
	h := &HealthHandler{db: db, version: version}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// HealthResponse is the JSON response for /health and /ready.
type HealthResponse struct {
	Status     string                `json:"status"`
	Version    string                `json:"version,omitempty"`
	Components map[string]CompStatus `json:"components,omitempty"`
	Timestamp  time.Time             `json:"timestamp"`
}

// CompStatus is the status of an individual component.
type CompStatus struct {
	Status   string `json:"status"`
	Latency  string `json:"latency,omitempty"`
	Provider string `json:"provider,omitempty"`
}

// Component and overall states.
const (
	statusOK            = "ok"
	statusDown          = "down"
	statusDegraded      = "degraded"
	statusNotConfigured = "not_configured"
)

// Live is the liveness probe. Always returns 200.
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: statusOK, Timestamp: time.Now()})
}

// Ready is the readiness probe: 200 when the database answers, 503 otherwise.
// The language model is not part of readiness since content is served
// without analysis when it is missing.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	if _, err := h.pingDB(r.Context()); err != nil {
		writeJSON(w, http.StatusServiceUnavailable, HealthResponse{Status: statusDown, Timestamp: time.Now()})
		return
	}
	writeJSON(w, http.StatusOK, HealthResponse{Status: statusOK, Timestamp: time.Now()})
}

// Health reports every component. A down database yields 503; a missing or
// tripped language model only degrades the overall status.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	components := make(map[string]CompStatus, 2)
	overall := statusOK

	if latency, err := h.pingDB(r.Context()); err != nil {
		components["database"] = CompStatus{Status: statusDown}
		overall = statusDown
	} else {
		components["database"] = CompStatus{Status: statusOK, Latency: latency.String()}
	}

	if h.llm != nil {
		llm := h.llmComponent()
		components["llm"] = llm
		if llm.Status != statusOK && overall == statusOK {
			overall = statusDegraded
		}
	}

	status := http.StatusOK
	if overall == statusDown {
		status = http.StatusServiceUnavailable
	}

	writeJSON(w, status, HealthResponse{
		Status:     overall,
		Version:    h.version,
		Components: components,
		Timestamp:  time.Now(),
	})
}

func (h *HealthHandler) pingDB(ctx context.Context) (time.Duration, error) {
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	start := time.Now()
	err := h.db.Ping(ctx)
	return time.Since(start), err
}

func (h *HealthHandler) llmComponent() CompStatus {
	c := CompStatus{Status: statusOK, Provider: h.llm.Provider}
	switch {
	case !h.llm.Configured:
		c.Status = statusNotConfigured
	case h.llm.BreakerState != nil && h.llm.BreakerState() == "open":
		c.Status = statusDegraded
	}
	return c
}
