// Copyright (c) 2025 BOTANIQ.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the BOTANIQ session server.

BOTANIQ hands each participant a short session code at signup; the VR client
uses that code to associate the post-experience survey, whose answers and
total score are persisted exactly once.

# Starting the Server

The server requires a database URL from the environment, a .env file, or a
CLI flag:

	DATABASE_URL=postgres://... go run .

Or with flags:

	go run . -p 5000 -d "postgres://..." -static ./public

# Configuration

Required settings:

  - DATABASE_URL (-d): Connection string

Optional settings:

  - PORT (-p): Server port (default: 5000)
  - DATABASE_TYPE (-t): postgres (default) or sqlite
  - STATIC_DIR (-static): Front-end asset directory

# Architecture

The server uses a handler-based architecture with dependency injection:

  - services: Core logic (session lifecycle, survey submission transaction)
  - handlers: HTTP request handlers over the services
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - models: Request/response types
  - auth: Session code generation and password hashing
  - db: Schema creation
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
