package models

import "errors"

// Domain errors that can be returned by stores
var (
	// ErrAccountNotFound indicates the requested account does not exist in the directory
	ErrAccountNotFound = errors.New("account not found")
)
