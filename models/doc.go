// Copyright (c) 2025 BOTANIQ.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models contains request, response, and domain types for the API.

# Wire Contract

Every response is a JSON object with a success boolean. Successful session
calls return the session code and completion flag:

	{"success": true, "session_code": "ABCD1234", "survey_completed": false}

Successful survey submissions return the computed score:

	{"success": true, "total_score": 9, "message": "Survey submitted successfully"}

Failures carry success:false plus a message; there is no typed error code on
the wire.

# Domain Types

  - Session: One account with its public session code and completion flag
  - SurveyAnswer: One (session, question, value) row
  - SurveyScore: The per-session total, written alongside its answers

Answers in SubmitSurveyRequest are kept as json.RawMessage so the survey
engine can coerce numbers and numeric strings itself and reject everything
else per question.
*/
package models
