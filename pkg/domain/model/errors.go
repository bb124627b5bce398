package model

import "github.com/m-mizutani/goerr/v2"

// Sentinel errors for domain operations
var (
	ErrUserNotFound = goerr.New("user not found")
	ErrInvalidRole  = goerr.New("invalid role")
)
