package services

import "errors"

var (
	ErrNotFound           = errors.New("record not found")
	ErrDuplicateEmail     = errors.New("this email is already registered")
	ErrDuplicateTitle     = errors.New("a post with this title already exists")
	ErrUnknownEmail       = errors.New("there is no account for that email")
	ErrCredentialMismatch = errors.New("incorrect password")
	ErrInvalidGenre       = errors.New("unknown genre")
	ErrEmptyComment       = errors.New("comment text is required")
	ErrNoAuthor           = errors.New("an author is required")
)
