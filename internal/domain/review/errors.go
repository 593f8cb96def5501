package review

import "errors"

var (
	ErrReviewNotFound  = errors.New("review not found")
	ErrAlreadyReviewed = errors.New("you have already reviewed this provider")
	ErrOwnProfile      = errors.New("you cannot review your own profile")
)
