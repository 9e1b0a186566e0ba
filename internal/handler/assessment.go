package handler

import (
	"errors"
	"net/http"

	"github.com/careerpath/careerpath-go/internal/middleware"
	"github.com/careerpath/careerpath-go/internal/model"
	"github.com/careerpath/careerpath-go/internal/service"
)

// AssessmentHandler handles HTTP requests for AI career analysis.
type AssessmentHandler struct {
	service *service.AssessmentService
}

// NewAssessmentHandler creates a new AssessmentHandler.
func NewAssessmentHandler(svc *service.AssessmentService) *AssessmentHandler {
	return &AssessmentHandler{service: svc}
}

// HandleAnalyze handles POST /api/assessment/analyze requests.
func (h *AssessmentHandler) HandleAnalyze(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	var req model.ProfileRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	resp, err := h.service.Analyze(r.Context(), user.ID, req)
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
			return
		}
		writeJSON(w, http.StatusInternalServerError, errorResponse(err.Error()))
		return
	}

	writeJSON(w, http.StatusOK, resp)
}
