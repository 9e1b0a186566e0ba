package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/careerpath/careerpath-go/internal/middleware"
	"github.com/careerpath/careerpath-go/internal/model"
	"github.com/careerpath/careerpath-go/internal/service"
)

// ProfileHandler handles HTTP requests for the caller's academic profile.
type ProfileHandler struct {
	service *service.ProfileService
}

// NewProfileHandler creates a new ProfileHandler.
func NewProfileHandler(svc *service.ProfileService) *ProfileHandler {
	return &ProfileHandler{service: svc}
}

// HandleSave handles POST /api/profile requests.
func (h *ProfileHandler) HandleSave(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	var req model.ProfileRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if _, err := h.service.Save(r.Context(), user.ID, req); err != nil {
		if errors.Is(err, service.ErrValidation) {
			writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
			return
		}
		slog.Error("saving profile failed", "user_id", user.ID, "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	writeJSON(w, http.StatusOK, model.MessageResponse{Message: "Profile created successfully"})
}

// HandleGet handles GET /api/profile requests.
func (h *ProfileHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	profile, err := h.service.Get(r.Context(), user.ID)
	if err != nil {
		if errors.Is(err, service.ErrProfileNotFound) {
			writeJSON(w, http.StatusNotFound, errorResponse("Profile not found"))
			return
		}
		slog.Error("loading profile failed", "user_id", user.ID, "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	writeJSON(w, http.StatusOK, profile)
}
