package triage

import "errors"

var (
	ErrNoSymptoms  = errors.New("at least one symptom is required")
	ErrEmptyEntry  = errors.New("entry cannot be empty")
	ErrInvalidRisk = errors.New("invalid risk level")
)
