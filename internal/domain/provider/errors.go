package provider

import (
	"errors"
	"fmt"
)

var (
	ErrProviderNotFound     = errors.New("provider not found")
	ErrProfileAlreadyExists = errors.New("provider profile already exists for this user")
	ErrNotProfileOwner      = errors.New("you can only edit your own profile")
	ErrAlreadySubmitted     = errors.New("profile has already been submitted")
	ErrInvalidStep          = errors.New("unknown wizard step")
	ErrServiceAreaNotFound  = errors.New("service area not found")
)

// IncompleteProfileError is returned when a submit attempt falls short of
// the completion threshold. It is a normal negative result, not a fault.
type IncompleteProfileError struct {
	Percentage float64
	Threshold  float64
}

func (e *IncompleteProfileError) Error() string {
	return fmt.Sprintf("profile is %.1f%% complete, %.0f%% required to publish", e.Percentage, e.Threshold)
}
