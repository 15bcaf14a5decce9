// Copyright (c) 2025 BOTANIQ.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"
	"path/filepath"

	"github.com/botaniq-vr/server/cliparse"
	"github.com/botaniq-vr/server/handlers"
	"github.com/botaniq-vr/server/middleware"
)

func NewRouter(db *sql.DB, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	sessionHandler := handlers.NewSessionHandler(db)
	surveyHandler := handlers.NewSurveyHandler(db)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Session lifecycle
	mux.HandleFunc("POST /api/session/create", middleware.WithLogging(sessionHandler.CreateSession))
	mux.HandleFunc("POST /api/session/login", middleware.WithLogging(sessionHandler.Login))

	// Survey submission
	mux.HandleFunc("POST /api/survey/submit", middleware.WithLogging(surveyHandler.SubmitSurvey))

	// Front-end pages, served when a static directory is configured
	if cfg.StaticDir != "" {
		mux.HandleFunc("GET /orientation", servePage(cfg.StaticDir, "orientation.html"))
		mux.HandleFunc("GET /survey", servePage(cfg.StaticDir, "survey.html"))
		mux.Handle("GET /", http.FileServer(http.Dir(cfg.StaticDir)))
	} else {
		mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("BOTANIQ API v1"))
		})
	}

	return mux
}

func servePage(dir, name string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, filepath.Join(dir, name))
	}
}
