// Copyright (c) 2025 BOTANIQ.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines route registration using Go 1.22+ method routing.

# Routes

	GET  /health              → liveness probe
	POST /api/session/create  → account signup
	POST /api/session/login   → login
	POST /api/survey/submit   → survey submission

When a static directory is configured, the router also serves the front-end
pages the way the original deployment did:

	GET /            → index.html (plus the rest of the asset tree)
	GET /orientation → orientation.html
	GET /survey      → survey.html

Without one, GET / returns a plain API banner.
*/
package router
