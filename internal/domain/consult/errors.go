package consult

import "errors"

var (
	ErrRequestNotFound         = errors.New("consultation request not found")
	ErrInvalidStatusTransition = errors.New("invalid consultation status transition")
	ErrInvalidPriority         = errors.New("invalid priority")
	ErrSymptomsRequired        = errors.New("at least one symptom is required")
)
