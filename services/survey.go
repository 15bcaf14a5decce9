// Copyright (c) 2025 BOTANIQ.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package services

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"log/slog"
	"strconv"
	"strings"

	"github.com/botaniq-vr/server/models"
)

// SurveyService handles the one-shot survey submission for a session.
type SurveyService struct {
	db *sql.DB
}

func NewSurveyService(db *sql.DB) *SurveyService {
	return &SurveyService{db: db}
}

// Submit validates a batch of answers and atomically persists the answer
// rows, the total score, and the completion flag in one transaction. A
// session can complete its survey exactly once; any failure leaves the
// session untouched.
func (s *SurveyService) Submit(ctx context.Context, sessionCode string, answers map[string]json.RawMessage) (int, error) {
	if sessionCode == "" || len(answers) == 0 {
		return 0, NewInvalidError("Invalid survey payload")
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		slog.Error("failed to begin transaction", "error", err)
		return 0, NewInternalError("Server database error")
	}
	defer tx.Rollback()

	// Check session
	var completed bool
	err = tx.QueryRowContext(ctx, `
		SELECT survey_completed FROM sessions WHERE session_code = $1
	`, sessionCode).Scan(&completed)

	if errors.Is(err, sql.ErrNoRows) {
		return 0, NewInvalidSessionError("Invalid session code")
	}
	if err != nil {
		slog.Error("failed to query session", "error", err, "session_code", sessionCode)
		return 0, NewInternalError("Server database error")
	}
	if completed {
		return 0, NewAlreadySubmittedError("Survey already submitted")
	}

	// Validate and persist every answer; one bad value aborts the batch
	totalScore := 0
	for questionID, raw := range answers {
		value, ok := coerceAnswerValue(raw)
		if !ok || value < models.AnswerMin || value > models.AnswerMax {
			return 0, NewInvalidError("Invalid answer for " + questionID)
		}
		totalScore += value

		_, err = tx.ExecContext(ctx, `
			INSERT INTO survey_answers (session_code, question_id, answer_value)
			VALUES ($1, $2, $3)
		`, sessionCode, questionID, value)
		if err != nil {
			slog.Error("failed to insert answer", "error", err, "session_code", sessionCode, "question_id", questionID)
			return 0, NewInternalError("Server database error")
		}
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO survey_scores (session_code, total_score)
		VALUES ($1, $2)
	`, sessionCode, totalScore)
	if err != nil {
		slog.Error("failed to insert score", "error", err, "session_code", sessionCode)
		return 0, NewInternalError("Server database error")
	}

	// Conditional update: a concurrent submission that won the race leaves
	// zero rows to flip, which aborts this one as already submitted.
	res, err := tx.ExecContext(ctx, `
		UPDATE sessions SET survey_completed = TRUE
		WHERE session_code = $1 AND survey_completed = FALSE
	`, sessionCode)
	if err != nil {
		slog.Error("failed to flag completion", "error", err, "session_code", sessionCode)
		return 0, NewInternalError("Server database error")
	}
	if n, err := res.RowsAffected(); err != nil || n != 1 {
		return 0, NewAlreadySubmittedError("Survey already submitted")
	}

	if err := tx.Commit(); err != nil {
		slog.Error("failed to commit submission", "error", err, "session_code", sessionCode)
		return 0, NewInternalError("Server database error")
	}

	slog.Info("survey submitted", "session_code", sessionCode, "total_score", totalScore, "answers", len(answers))

	return totalScore, nil
}

// coerceAnswerValue turns a raw JSON answer into an integer. JSON numbers
// and numeric strings are accepted; fractional values and anything else
// are not.
func coerceAnswerValue(raw json.RawMessage) (int, bool) {
	// Unmarshal treats null as a no-op, so reject it before the number path
	if string(raw) == "null" {
		return 0, false
	}

	var f float64
	if err := json.Unmarshal(raw, &f); err == nil {
		n := int(f)
		return n, float64(n) == f
	}

	var str string
	if err := json.Unmarshal(raw, &str); err == nil {
		f, err := strconv.ParseFloat(strings.TrimSpace(str), 64)
		if err != nil {
			return 0, false
		}
		n := int(f)
		return n, float64(n) == f
	}

	return 0, false
}
