// Copyright (c) 2025 BOTANIQ.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	_ "modernc.org/sqlite"

	"github.com/botaniq-vr/server/auth"
	"github.com/botaniq-vr/server/cliparse"
	"github.com/botaniq-vr/server/db"
)

// SetupTestDB opens a fresh in-memory SQLite database with the full schema.
// Each call returns an isolated database; close it when the test ends.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	// A :memory: database lives per connection, so the pool must not grow
	conn.SetMaxOpenConns(1)

	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:         5000,
		DatabaseURL:  ":memory:",
		DatabaseType: "sqlite",
	}
}

// CreateTestSession inserts a session row and returns its session code.
func CreateTestSession(t *testing.T, conn *sql.DB, username, password string, completed bool) string {
	t.Helper()

	code := auth.GenerateSessionCode()
	hash, err := auth.HashPassword(password)
	if err != nil {
		t.Fatalf("Failed to hash test password: %v", err)
	}

	_, err = conn.Exec(`
		INSERT INTO sessions (session_code, username, password_hash, survey_completed, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`, code, username, hash, completed, time.Now())
	if err != nil {
		t.Fatalf("Failed to create test session: %v", err)
	}

	return code
}

// CountRows returns the number of rows in a table for a session code.
func CountRows(t *testing.T, conn *sql.DB, table, sessionCode string) int {
	t.Helper()

	var count int
	err := conn.QueryRow(`SELECT COUNT(*) FROM `+table+` WHERE session_code = $1`, sessionCode).Scan(&count)
	if err != nil {
		t.Fatalf("Failed to count rows in %s: %v", table, err)
	}
	return count
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
