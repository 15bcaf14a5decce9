// Copyright (c) 2025 BOTANIQ.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles server configuration from CLI flags and environment.

# Precedence

CLI flags take priority, then environment variables, then defaults:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Settings

Required:

  - DATABASE_URL (-d): Connection string for the datastore

Optional:

  - PORT (-p): Server port (default: 5000)
  - DATABASE_TYPE (-t): "postgres" (default) or "sqlite"
  - STATIC_DIR (-static): Directory with the front-end pages; when unset
    the server exposes only the JSON API

A .env file in the working directory is loaded by main before parsing, so
all of the above can live there during development.
*/
package cliparse
