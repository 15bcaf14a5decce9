// Copyright (c) 2025 BOTANIQ.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
// The SQL is restricted to the dialect both Postgres and SQLite accept.
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

const schema = `
-- Sessions (one per account; the session code doubles as the public ID)
CREATE TABLE IF NOT EXISTS sessions (
    session_code TEXT PRIMARY KEY,
    username TEXT NOT NULL UNIQUE,
    password_hash TEXT NOT NULL,
    survey_completed BOOLEAN NOT NULL DEFAULT FALSE,
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_sessions_username ON sessions(username);

-- Survey answers (one row per question per session, written in one transaction)
CREATE TABLE IF NOT EXISTS survey_answers (
    session_code TEXT NOT NULL REFERENCES sessions(session_code) ON DELETE CASCADE,
    question_id TEXT NOT NULL,
    answer_value INTEGER NOT NULL CHECK (answer_value >= 0 AND answer_value <= 5),
    PRIMARY KEY (session_code, question_id)
);

CREATE INDEX IF NOT EXISTS idx_survey_answers_session ON survey_answers(session_code);

-- Survey scores (exactly one per completed session)
CREATE TABLE IF NOT EXISTS survey_scores (
    session_code TEXT PRIMARY KEY REFERENCES sessions(session_code) ON DELETE CASCADE,
    total_score INTEGER NOT NULL
);
`
