package service

import "errors"

// Sentinel errors the HTTP layer switches on. Everything else is
// treated as an internal failure.
var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrWrongPassword      = errors.New("current password is incorrect")
	ErrResetTokenInvalid  = errors.New("reset token is invalid or expired")
	ErrUnsupportedFile    = errors.New("file type not allowed")
	ErrUploadTooLarge     = errors.New("file exceeds the upload size limit")
)
