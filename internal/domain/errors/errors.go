package errors

import "errors"

var (
	ErrAlreadyExists        = errors.New("already exists")
	ErrNotFound             = errors.New("not found")
	ErrProductNotFound      = errors.New("product not found")
	ErrInvalidInput         = errors.New("invalid input")
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrLinkInactive         = errors.New("download link inactive")
	ErrLinkExpired          = errors.New("download link expired")
	ErrDownloadLimitReached = errors.New("download limit reached")
)
