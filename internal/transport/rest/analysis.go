package rest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/curator-backend/internal/domain"
)

type analysisService interface {
	Analyze(ctx context.Context, text string) (string, error)
}

// AnalysisHandler serves the standalone analysis endpoint.
type AnalysisHandler struct {
	svc analysisService
	log *slog.Logger
}

// NewAnalysisHandler creates an AnalysisHandler.
func NewAnalysisHandler(svc analysisService, logger *slog.Logger) *AnalysisHandler {
	return &AnalysisHandler{svc: svc, log: logger.With("handler", "analysis")}
}

type analyzeRequest struct {
	Text string `json:"text"`
}

type analyzeResponse struct {
	AIResult string `json:"ai_result"`
}

type providerErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details"`
}

// Analyze handles POST /ai/analyze. Error bodies keep the wording existing
// clients match on.
func (h *AnalysisHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	liftWriteDeadline(w)

	var req analyzeRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Text is required.")
		return
	}

	out, err := h.svc.Analyze(r.Context(), req.Text)
	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, analyzeResponse{AIResult: out})
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, "Text is required.")
	case errors.Is(err, domain.ErrProviderNotConfigured):
		writeError(w, http.StatusInternalServerError, "GROQ API key not set.")
	case errors.Is(err, domain.ErrProviderUnavailable):
		writeJSON(w, http.StatusInternalServerError, providerErrorResponse{
			Error:   "GROQ API error",
			Details: err.Error(),
		})
	default:
		handleError(h.log, w, r, err)
	}
}
