package storage

import "errors"

var (
	ErrActivityNotFound  = errors.New("activity not found")
	ErrAlreadyRegistered = errors.New("student already signed up for this activity")
	ErrNotRegistered     = errors.New("student is not signed up for this activity")
)
