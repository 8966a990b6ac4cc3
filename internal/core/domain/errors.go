package domain

import "errors"

// Sentinel errors shared across services, repositories and the HTTP layer.
// The error handler maps each of these to a fixed status code and message;
// everything else is treated as an internal error.
var (
	// ErrValidation wraps any rejected input; the wrapping message carries
	// the specific reason shown to the client.
	ErrValidation = errors.New("validation failed")

	// ErrEmailTaken is surfaced by the user repository when the unique index
	// on email rejects an insert.
	ErrEmailTaken = errors.New("email already registered")

	// ErrInvalidCredentials covers every login failure: unknown email and
	// wrong password are deliberately indistinguishable.
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrUserNotFound = errors.New("user not found")
	ErrNotFound     = errors.New("not found")

	// Token failures are distinct so clients can tell "log in" (missing)
	// apart from "log in again" (expired) and "rejected" (invalid).
	ErrMissingToken = errors.New("missing token")
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")

	// ErrForbidden is returned when an authenticated account lacks the role
	// an operation requires.
	ErrForbidden = errors.New("forbidden")

	// ErrUploadRejected wraps size and file-type rejections on uploads.
	ErrUploadRejected = errors.New("upload rejected")
)
