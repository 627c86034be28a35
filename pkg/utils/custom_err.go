package utils

import "errors"

var (
	ErrDatabaseError = errors.New("database error")

	// Not-found
	ErrNotFound        = errors.New("resource not found")
	ErrAccountNotFound = errors.New("account not found")

	// Validation
	ErrInvalidPage        = errors.New("invalid page parameter")
	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrUsernameTaken      = errors.New("username already taken")
	ErrPasswordMismatch   = errors.New("passwords do not match")
	ErrEmptyTitle         = errors.New("title cannot be empty")
	ErrTitleTooLong       = errors.New("title cannot exceed 255 characters")
	ErrEmptyContent       = errors.New("content cannot be empty")
	ErrPendingApplication = errors.New("a pending application already exists")
	ErrInvalidRole        = errors.New("invalid role")

	// Permission
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrPermissionDenied   = errors.New("permission denied")
	ErrReadersOnly        = errors.New("only readers may do this")
	ErrJournalistRequired = errors.New("a journalist profile is required")
	ErrEditorRequired     = errors.New("an editor profile is required")
	ErrPublisherRequired  = errors.New("a publisher profile is required")
	ErrNotSubscribed      = errors.New("not subscribed to this target")
	ErrWrongPublisher     = errors.New("article belongs to another publisher")
	ErrStaffOnly          = errors.New("staff access required")

	// Reset tokens
	ErrInvalidResetToken = errors.New("invalid or already used reset token")
	ErrResetTokenExpired = errors.New("reset token has expired")
)
