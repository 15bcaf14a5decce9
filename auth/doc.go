// Copyright (c) 2025 BOTANIQ.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides session code generation and password hashing.

# Session Codes

GenerateSessionCode returns an 8-character uppercase alphanumeric code
derived from a UUID:

	code := auth.GenerateSessionCode() // e.g. "ABCD1234"

The code is a public handle for the VR client handshake, not a security
credential. Collisions are vanishingly unlikely at this scale and are caught
by the sessions primary key constraint if they ever occur.

# Passwords

Passwords are stored as bcrypt hashes:

	hash, err := auth.HashPassword(password)
	err = auth.CheckPassword(hash, candidate) // ErrPasswordMismatch on failure
*/
package auth
