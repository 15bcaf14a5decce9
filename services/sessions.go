// Copyright (c) 2025 BOTANIQ.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package services

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/botaniq-vr/server/auth"
	"github.com/botaniq-vr/server/models"
)

// SessionService manages account creation and login against an injected
// database handle.
type SessionService struct {
	db *sql.DB
}

func NewSessionService(db *sql.DB) *SessionService {
	return &SessionService{db: db}
}

// Create registers a new account and issues its session code.
// Fails with a conflict error when the username is already taken.
func (s *SessionService) Create(ctx context.Context, username, password string) (*models.Session, error) {
	if username == "" || password == "" {
		return nil, NewInvalidError("Missing username or password")
	}

	code := auth.GenerateSessionCode()
	hash, err := auth.HashPassword(password)
	if err != nil {
		slog.Error("failed to hash password", "error", err)
		return nil, NewInternalError("Server database error")
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO sessions (session_code, username, password_hash, survey_completed, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`, code, username, hash, false, time.Now())

	if err != nil {
		if isUniqueViolation(err) {
			return nil, NewConflictError("Username already taken")
		}
		slog.Error("failed to insert session", "error", err, "username", username)
		return nil, NewInternalError("Server database error")
	}

	slog.Info("session created", "session_code", code, "username", username)

	return &models.Session{
		SessionCode:     code,
		Username:        username,
		SurveyCompleted: false,
	}, nil
}

// Login authenticates an existing account and returns its session code and
// current completion flag. No side effects.
func (s *SessionService) Login(ctx context.Context, username, password string) (*models.Session, error) {
	if username == "" || password == "" {
		return nil, NewInvalidError("Missing username or password")
	}

	var sess models.Session
	err := s.db.QueryRowContext(ctx, `
		SELECT session_code, password_hash, survey_completed FROM sessions WHERE username = $1
	`, username).Scan(&sess.SessionCode, &sess.PasswordHash, &sess.SurveyCompleted)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, NewNotFoundError("User not found")
	}
	if err != nil {
		slog.Error("failed to query session", "error", err, "username", username)
		return nil, NewInternalError("Server database error")
	}

	if err := auth.CheckPassword(sess.PasswordHash, password); err != nil {
		return nil, NewUnauthorizedError("Incorrect password")
	}

	sess.Username = username
	return &sess, nil
}

// isUniqueViolation matches the unique-violation error text of both
// supported drivers (lib/pq and modernc sqlite).
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "duplicate key value violates unique constraint") ||
		strings.Contains(msg, "UNIQUE constraint failed")
}
