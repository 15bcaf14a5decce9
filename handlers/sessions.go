// Copyright (c) 2025 BOTANIQ.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"net/http"

	"github.com/botaniq-vr/server/middleware"
	"github.com/botaniq-vr/server/models"
	"github.com/botaniq-vr/server/services"
)

type SessionHandler struct {
	sessions *services.SessionService
}

func NewSessionHandler(db *sql.DB) *SessionHandler {
	return &SessionHandler{sessions: services.NewSessionService(db)}
}

// CreateSession handles POST /api/session/create
func (h *SessionHandler) CreateSession(w http.ResponseWriter, r *http.Request) {
	var req models.CreateSessionRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	sess, err := h.sessions.Create(r.Context(), req.Username, req.Password)
	if err != nil {
		fail(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusCreated, models.SessionResponse{
		Success:         true,
		SessionCode:     sess.SessionCode,
		SurveyCompleted: sess.SurveyCompleted,
	})
}

// Login handles POST /api/session/login
func (h *SessionHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	sess, err := h.sessions.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		fail(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.SessionResponse{
		Success:         true,
		SessionCode:     sess.SessionCode,
		SurveyCompleted: sess.SurveyCompleted,
	})
}
