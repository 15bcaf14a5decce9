// Copyright (c) 2025 BOTANIQ.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the BOTANIQ API.

# Handler Types

Each handler is a thin struct wrapping a service with an injected database:

  - SessionHandler: Account creation and login
  - SurveyHandler: One-shot survey submission

Handlers are created via constructor functions that accept *sql.DB:

	sessionHandler := handlers.NewSessionHandler(db)

# Session Flow

	POST /api/session/create → CreateSession (201, returns session_code)
	POST /api/session/login  → Login (200, returns session_code + flag)

# Survey Flow

	POST /api/survey/submit → SubmitSurvey (200, returns total_score)

A session submits its survey at most once; repeat attempts are rejected with
400 "Survey already submitted".

# Status Mapping

Handlers translate service error codes into statuses:

	invalid, conflict, invalid_session, already_submitted → 400
	unauthorized, not_found                               → 401
	internal                                              → 500

The response body is always {"success": false, "message": "..."} on failure.
*/
package handlers
