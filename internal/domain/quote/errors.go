package quote

import "errors"

var (
	ErrQuoteNotFound     = errors.New("quote request not found")
	ErrNotParticipant    = errors.New("quote request belongs to someone else")
	ErrInvalidTransition = errors.New("status change not allowed from the current state")
)
