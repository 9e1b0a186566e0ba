package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/careerpath/careerpath-go/internal/middleware"
	"github.com/careerpath/careerpath-go/internal/model"
	"github.com/careerpath/careerpath-go/internal/service"
)

// ChatHandler handles HTTP requests for the counselor chat.
type ChatHandler struct {
	service *service.ChatService
}

// NewChatHandler creates a new ChatHandler.
func NewChatHandler(svc *service.ChatService) *ChatHandler {
	return &ChatHandler{service: svc}
}

// HandleSend handles POST /api/chat requests.
func (h *ChatHandler) HandleSend(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	var req model.ChatRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	resp, err := h.service.Send(r.Context(), user, req)
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

// HandleHistory handles GET /api/chat/history requests.
func (h *ChatHandler) HandleHistory(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	history, err := h.service.History(r.Context(), user.ID)
	if err != nil {
		slog.Error("loading chat history failed", "user_id", user.ID, "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	writeJSON(w, http.StatusOK, history)
}
