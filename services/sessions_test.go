// Copyright (c) 2025 BOTANIQ.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package services_test

import (
	"context"
	"testing"

	"github.com/botaniq-vr/server/services"
	"github.com/botaniq-vr/server/testutil"
)

func TestSessionCreate(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	svc := services.NewSessionService(db)
	ctx := context.Background()

	t.Run("valid signup", func(t *testing.T) {
		sess, err := svc.Create(ctx, "alice", "pw1")
		if err != nil {
			t.Fatalf("Create() error = %v", err)
		}
		if len(sess.SessionCode) != 8 {
			t.Errorf("session code length = %d, want 8", len(sess.SessionCode))
		}
		if sess.SurveyCompleted {
			t.Error("new session should not be marked completed")
		}

		// Stored credential must be a hash, not the plaintext
		var hash string
		if err := db.QueryRow(`SELECT password_hash FROM sessions WHERE username = $1`, "alice").Scan(&hash); err != nil {
			t.Fatalf("failed to read stored session: %v", err)
		}
		if hash == "pw1" {
			t.Error("password stored in plaintext")
		}
	})

	t.Run("duplicate username", func(t *testing.T) {
		_, err := svc.Create(ctx, "alice", "other-pw")
		if services.CodeOf(err) != services.ErrorConflict {
			t.Fatalf("Create() error = %v, want conflict", err)
		}

		// The failed signup must not write anything
		var count int
		if err := db.QueryRow(`SELECT COUNT(*) FROM sessions WHERE username = $1`, "alice").Scan(&count); err != nil {
			t.Fatal(err)
		}
		if count != 1 {
			t.Errorf("expected 1 session row for alice, got %d", count)
		}
	})

	tests := []struct {
		name     string
		username string
		password string
	}{
		{"missing username", "", "pw"},
		{"missing password", "bob", ""},
		{"missing both", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(ctx, tt.username, tt.password)
			if services.CodeOf(err) != services.ErrorInvalid {
				t.Errorf("Create() error = %v, want invalid", err)
			}
		})
	}
}

func TestSessionLogin(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	svc := services.NewSessionService(db)
	ctx := context.Background()

	created, err := svc.Create(ctx, "alice", "pw1")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	t.Run("correct credentials", func(t *testing.T) {
		sess, err := svc.Login(ctx, "alice", "pw1")
		if err != nil {
			t.Fatalf("Login() error = %v", err)
		}
		if sess.SessionCode != created.SessionCode {
			t.Errorf("Login() code = %s, want %s", sess.SessionCode, created.SessionCode)
		}
		if sess.SurveyCompleted {
			t.Error("survey should not be completed yet")
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login(ctx, "alice", "wrong")
		if services.CodeOf(err) != services.ErrorUnauthorized {
			t.Errorf("Login() error = %v, want unauthorized", err)
		}
	})

	t.Run("unknown username", func(t *testing.T) {
		_, err := svc.Login(ctx, "nobody", "pw1")
		if services.CodeOf(err) != services.ErrorNotFound {
			t.Errorf("Login() error = %v, want not_found", err)
		}
	})

	t.Run("missing fields", func(t *testing.T) {
		_, err := svc.Login(ctx, "alice", "")
		if services.CodeOf(err) != services.ErrorInvalid {
			t.Errorf("Login() error = %v, want invalid", err)
		}
	})

	t.Run("login is repeatable", func(t *testing.T) {
		first, err := svc.Login(ctx, "alice", "pw1")
		if err != nil {
			t.Fatal(err)
		}
		second, err := svc.Login(ctx, "alice", "pw1")
		if err != nil {
			t.Fatal(err)
		}
		if first.SessionCode != second.SessionCode {
			t.Error("login should always return the same session code")
		}
	})
}
