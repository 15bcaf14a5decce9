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

type SurveyHandler struct {
	survey *services.SurveyService
}

func NewSurveyHandler(db *sql.DB) *SurveyHandler {
	return &SurveyHandler{survey: services.NewSurveyService(db)}
}

// SubmitSurvey handles POST /api/survey/submit
func (h *SurveyHandler) SubmitSurvey(w http.ResponseWriter, r *http.Request) {
	var req models.SubmitSurveyRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid survey payload")
		return
	}

	totalScore, err := h.survey.Submit(r.Context(), req.SessionCode, req.Answers)
	if err != nil {
		fail(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.SubmitSurveyResponse{
		Success:    true,
		TotalScore: totalScore,
		Message:    "Survey submitted successfully",
	})
}
