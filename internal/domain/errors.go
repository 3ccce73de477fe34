package domain

import "errors"

var (
	ErrNotFound      = errors.New("not found")
	ErrInvalidAmount = errors.New("amount must be positive")
)
