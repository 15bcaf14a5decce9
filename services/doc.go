// Copyright (c) 2025 BOTANIQ.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package services contains the core business logic, independent of HTTP.

# Services

Each service holds an explicitly injected *sql.DB - there is no ambient
connection state, so tests can substitute an in-memory database:

  - SessionService: account creation (issues the session code) and login
  - SurveyService: the one-shot survey submission transaction

# Submission Transaction

SurveyService.Submit runs as a single atomic transaction:

 1. Read the session row; unknown codes fail as invalid_session
 2. Reject sessions that already completed the survey
 3. Coerce and bound-check every answer ([0,5]); one bad answer aborts all
 4. Insert one answer row per question and one total-score row
 5. Flip survey_completed with a conditional update; zero affected rows
    means a concurrent submission won and this one aborts
 6. Commit; any earlier failure rolls everything back

The conditional update makes exactly-once completion hold without relying
on the datastore's isolation level.

# Errors

Business-rule violations are returned as *ServiceError with a code that the
HTTP boundary maps to a status, and a message that goes into the response
body verbatim. Datastore failures are logged here and surfaced as a generic
internal error so no diagnostic detail leaks to callers.
*/
package services
