package domain

import "errors"

// Sentinel errors returned by services and repositories. Handlers map
// them to HTTP status codes.
var (
	// ErrNotFound means a referenced news article, tag, comment or
	// user does not exist.
	ErrNotFound = errors.New("not found")

	// ErrPermissionDenied means the actor lacks rights for a mutating
	// operation.
	ErrPermissionDenied = errors.New("permission denied")

	// ErrDuplicateTagName means a tag with the same name, or whose
	// name transliterates to an already taken slug, exists.
	ErrDuplicateTagName = errors.New("duplicate tag name")

	// ErrDuplicateUser means the username or email is already taken.
	ErrDuplicateUser = errors.New("duplicate username or email")

	// ErrInvalidStatus means a status value outside draft, published
	// and archived was supplied.
	ErrInvalidStatus = errors.New("invalid status")

	// ErrInvalidCredentials means authentication failed.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrTokenInvalid means a password reset token is unknown, used or
	// expired.
	ErrTokenInvalid = errors.New("reset token invalid or expired")
)
