package patient

import "errors"

var (
	ErrPatientNotFound = errors.New("patient not found")
	ErrIDRequired      = errors.New("health-card id is required")
)
