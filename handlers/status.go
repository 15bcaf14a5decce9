// Copyright (c) 2025 BOTANIQ.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"

	"github.com/botaniq-vr/server/middleware"
	"github.com/botaniq-vr/server/services"
)

// statusForError maps service error codes onto the HTTP contract. Duplicate
// usernames deliberately map to 400, not 409, to match the front end.
func statusForError(err error) int {
	switch services.CodeOf(err) {
	case services.ErrorInvalid, services.ErrorConflict,
		services.ErrorInvalidSession, services.ErrorAlreadySubmitted:
		return http.StatusBadRequest
	case services.ErrorUnauthorized, services.ErrorNotFound:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

func fail(w http.ResponseWriter, err error) {
	middleware.ErrorResponse(w, statusForError(err), err.Error())
}
