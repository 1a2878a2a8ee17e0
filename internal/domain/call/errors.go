package call

import "errors"

var (
	ErrSessionNotFound = errors.New("call session not found")
	ErrSessionEnded    = errors.New("call session has ended")
	ErrNamesRequired   = errors.New("patient and doctor names are required")
)
