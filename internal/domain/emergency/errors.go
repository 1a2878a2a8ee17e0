package emergency

import "errors"

var (
	ErrCaseNotFound       = errors.New("emergency case not found")
	ErrNoUnitSelected     = errors.New("no ambulance selected")
	ErrNoHospitalSelected = errors.New("no hospital selected")
	ErrAlreadyDispatched  = errors.New("ambulance already dispatched for this case")
	ErrAlreadyReserved    = errors.New("bed already reserved for this case")
	ErrUnitUnavailable    = errors.New("ambulance is not available")
	ErrNoBedsAvailable    = errors.New("hospital has no available beds")
)
