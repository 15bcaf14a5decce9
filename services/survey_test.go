// Copyright (c) 2025 BOTANIQ.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package services_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/botaniq-vr/server/services"
	"github.com/botaniq-vr/server/testutil"
)

func rawAnswers(t *testing.T, m map[string]interface{}) map[string]json.RawMessage {
	t.Helper()
	out := make(map[string]json.RawMessage, len(m))
	for k, v := range m {
		b, err := json.Marshal(v)
		if err != nil {
			t.Fatalf("failed to marshal answer %s: %v", k, err)
		}
		out[k] = b
	}
	return out
}

func TestSubmitSurvey(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	svc := services.NewSurveyService(db)
	ctx := context.Background()

	code := testutil.CreateTestSession(t, db, "alice", "pw1", false)

	total, err := svc.Submit(ctx, code, rawAnswers(t, map[string]interface{}{
		"q1": 3, "q2": 5, "q3": 0,
	}))
	if err != nil {
		t.Fatalf("Submit() error = %v", err)
	}
	if total != 8 {
		t.Errorf("Submit() total = %d, want 8", total)
	}

	// All three answers, one score row, and the flag must be persisted
	if n := testutil.CountRows(t, db, "survey_answers", code); n != 3 {
		t.Errorf("expected 3 answer rows, got %d", n)
	}
	if n := testutil.CountRows(t, db, "survey_scores", code); n != 1 {
		t.Errorf("expected 1 score row, got %d", n)
	}

	var storedTotal int
	if err := db.QueryRow(`SELECT total_score FROM survey_scores WHERE session_code = $1`, code).Scan(&storedTotal); err != nil {
		t.Fatal(err)
	}
	if storedTotal != 8 {
		t.Errorf("stored total = %d, want 8", storedTotal)
	}

	var completed bool
	if err := db.QueryRow(`SELECT survey_completed FROM sessions WHERE session_code = $1`, code).Scan(&completed); err != nil {
		t.Fatal(err)
	}
	if !completed {
		t.Error("survey_completed should be true after submission")
	}
}

func TestSubmitSurveyExactlyOnce(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	svc := services.NewSurveyService(db)
	ctx := context.Background()

	code := testutil.CreateTestSession(t, db, "alice", "pw1", false)

	if _, err := svc.Submit(ctx, code, rawAnswers(t, map[string]interface{}{"q1": 5, "q2": 4})); err != nil {
		t.Fatalf("first Submit() error = %v", err)
	}

	_, err := svc.Submit(ctx, code, rawAnswers(t, map[string]interface{}{"q1": 1}))
	if services.CodeOf(err) != services.ErrorAlreadySubmitted {
		t.Fatalf("second Submit() error = %v, want already_submitted", err)
	}

	// The first submission's rows must be untouched
	if n := testutil.CountRows(t, db, "survey_answers", code); n != 2 {
		t.Errorf("expected 2 answer rows from the first submission, got %d", n)
	}
	var storedTotal int
	if err := db.QueryRow(`SELECT total_score FROM survey_scores WHERE session_code = $1`, code).Scan(&storedTotal); err != nil {
		t.Fatal(err)
	}
	if storedTotal != 9 {
		t.Errorf("stored total = %d, want 9 from the first submission", storedTotal)
	}
}

func TestSubmitSurveyRollsBackOnBadAnswer(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	svc := services.NewSurveyService(db)
	ctx := context.Background()

	tests := []struct {
		name    string
		answers map[string]interface{}
	}{
		{"value above range", map[string]interface{}{"q1": 2, "q2": 6}},
		{"negative value", map[string]interface{}{"q1": -1}},
		{"fractional value", map[string]interface{}{"q1": 2.5}},
		{"non-numeric string", map[string]interface{}{"q1": "yes"}},
		{"boolean value", map[string]interface{}{"q1": true}},
		{"null value", map[string]interface{}{"q1": nil}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code := testutil.CreateTestSession(t, db, "user-"+tt.name, "pw", false)

			_, err := svc.Submit(ctx, code, rawAnswers(t, tt.answers))
			if services.CodeOf(err) != services.ErrorInvalid {
				t.Fatalf("Submit() error = %v, want invalid", err)
			}

			// Full-batch atomicity: nothing persists, flag untouched
			if n := testutil.CountRows(t, db, "survey_answers", code); n != 0 {
				t.Errorf("expected 0 answer rows, got %d", n)
			}
			if n := testutil.CountRows(t, db, "survey_scores", code); n != 0 {
				t.Errorf("expected 0 score rows, got %d", n)
			}
			var completed bool
			if err := db.QueryRow(`SELECT survey_completed FROM sessions WHERE session_code = $1`, code).Scan(&completed); err != nil {
				t.Fatal(err)
			}
			if completed {
				t.Error("failed submission must not flip survey_completed")
			}
		})
	}
}

func TestSubmitSurveyCoercion(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	svc := services.NewSurveyService(db)
	ctx := context.Background()

	code := testutil.CreateTestSession(t, db, "alice", "pw1", false)

	// Numeric strings and whole floats coerce the way the front end sends them
	total, err := svc.Submit(ctx, code, rawAnswers(t, map[string]interface{}{
		"q1": "4",
		"q2": 3.0,
		"q3": 0,
	}))
	if err != nil {
		t.Fatalf("Submit() error = %v", err)
	}
	if total != 7 {
		t.Errorf("Submit() total = %d, want 7", total)
	}
}

func TestSubmitSurveyInvalidInputs(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	svc := services.NewSurveyService(db)
	ctx := context.Background()

	t.Run("unknown session code", func(t *testing.T) {
		_, err := svc.Submit(ctx, "NOPE0000", rawAnswers(t, map[string]interface{}{"q1": 3}))
		if services.CodeOf(err) != services.ErrorInvalidSession {
			t.Errorf("Submit() error = %v, want invalid_session", err)
		}
	})

	t.Run("empty answers", func(t *testing.T) {
		code := testutil.CreateTestSession(t, db, "bob", "pw", false)
		_, err := svc.Submit(ctx, code, nil)
		if services.CodeOf(err) != services.ErrorInvalid {
			t.Errorf("Submit() error = %v, want invalid", err)
		}
	})

	t.Run("missing session code", func(t *testing.T) {
		_, err := svc.Submit(ctx, "", rawAnswers(t, map[string]interface{}{"q1": 3}))
		if services.CodeOf(err) != services.ErrorInvalid {
			t.Errorf("Submit() error = %v, want invalid", err)
		}
	})

	t.Run("already completed session", func(t *testing.T) {
		code := testutil.CreateTestSession(t, db, "carol", "pw", true)
		_, err := svc.Submit(ctx, code, rawAnswers(t, map[string]interface{}{"q1": 3}))
		if services.CodeOf(err) != services.ErrorAlreadySubmitted {
			t.Errorf("Submit() error = %v, want already_submitted", err)
		}
	})
}
