package domain

import "errors"

var (
	ErrNotFound   = errors.New("not found")
	ErrConflict   = errors.New("already exists")
	ErrInvalidID  = errors.New("invalid ID format")
	ErrValidation = errors.New("validation failed")
	ErrUpstream   = errors.New("payment gateway failure")
)
