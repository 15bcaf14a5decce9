// Copyright (c) 2025 BOTANIQ.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import (
	"encoding/json"
	"time"
)

// Answer value bounds for the fixed-form survey
const (
	AnswerMin = 0
	AnswerMax = 5
)

// SessionCodeLength is the length of the public session code handed to the
// VR client after signup.
const SessionCodeLength = 8

// Request types

type CreateSessionRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// question_id -> raw answer value; values are coerced to integers in [0,5]
type SubmitSurveyRequest struct {
	SessionCode string                     `json:"session_code"`
	Answers     map[string]json.RawMessage `json:"answers"`
}

// Response types

type SessionResponse struct {
	Success         bool   `json:"success"`
	SessionCode     string `json:"session_code"`
	SurveyCompleted bool   `json:"survey_completed"`
}

type SubmitSurveyResponse struct {
	Success    bool   `json:"success"`
	TotalScore int    `json:"total_score"`
	Message    string `json:"message"`
}

// Domain types

type Session struct {
	SessionCode     string    `json:"session_code"`
	Username        string    `json:"username"`
	PasswordHash    string    `json:"-"` // Never expose in JSON
	SurveyCompleted bool      `json:"survey_completed"`
	CreatedAt       time.Time `json:"created_at"`
}

type SurveyAnswer struct {
	SessionCode string `json:"session_code"`
	QuestionID  string `json:"question_id"`
	AnswerValue int    `json:"answer_value"`
}

type SurveyScore struct {
	SessionCode string `json:"session_code"`
	TotalScore  int    `json:"total_score"`
}

// Error response

// Every failure carries success:false and a human-readable message; callers
// distinguish error kinds by message text and HTTP status only.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
