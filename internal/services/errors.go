package services

import "errors"

// Domain conditions callers are expected to branch on. Anything else
// coming out of a service is an infrastructure failure and is passed
// through wrapped, never retried.
var (
	ErrUserNotFound     = errors.New("user not found")
	ErrItemNotFound     = errors.New("game item not found")
	ErrItemUnavailable  = errors.New("game item is not available for purchase")
	ErrPurchaseNotFound = errors.New("purchase not found")
	ErrEmailTaken       = errors.New("email is already registered")
)
