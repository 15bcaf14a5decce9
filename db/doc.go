// Copyright (c) 2025 BOTANIQ.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database schema creation.

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.

# Tables

The schema includes:

  - sessions: Account credentials, session code, completion flag
  - survey_answers: One answer per question per session
  - survey_scores: One total score per completed session

# Relationships

	sessions 1──* survey_answers
	sessions 1──1 survey_scores

All foreign keys use ON DELETE CASCADE. A survey_scores row exists only for
sessions whose survey_completed flag is TRUE; both are written in the same
transaction as the answer rows.

# Constraints

  - sessions.username is UNIQUE (duplicate signups are rejected)
  - sessions.session_code is the primary key (globally unique, immutable)
  - survey_answers.answer_value is CHECK-bounded to [0, 5]
  - (session_code, question_id) is the answer primary key, so a batch can
    hold at most one answer per question
*/
package db
