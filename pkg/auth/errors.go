package auth

import "errors"

var (
	// ErrInvalidCredentials is returned for every failed login, whatever the cause.
	ErrInvalidCredentials = errors.New("auth.invalid_credentials")
	ErrCredentialNotFound = errors.New("auth.credential_not_found")
	ErrDuplicateIdentity  = errors.New("auth.duplicate_identifier")
	ErrNotAuthenticated   = errors.New("auth.not_authenticated")
	ErrEmptySecret        = errors.New("auth.empty_secret")
)
