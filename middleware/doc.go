// Copyright (c) 2025 BOTANIQ.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP cross-cutting helpers.

# Helpers

  - WithLogging: per-request structured logging (method, path, client IP,
    duration)
  - JSONResponse / ErrorResponse: JSON serialization of the flat
    success/message contract
  - ParseJSONBody: request body decoding
  - CORS: cross-origin headers for the browser front end
  - GetClientIP: X-Forwarded-For / X-Real-IP aware client address

ErrorResponse always emits {"success": false, "message": "..."} so the
front end can branch on the success flag alone.
*/
package middleware
