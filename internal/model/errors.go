package model

import "errors"

// Common errors used across the application
var (
	ErrUserNotFound  = errors.New("user not found")
	ErrEntryNotFound = errors.New("score entry not found")
)
