package directory

import "errors"

var (
	ErrHospitalNotFound   = errors.New("hospital not found")
	ErrAmbulanceNotFound  = errors.New("ambulance not found")
	ErrDoctorNotFound     = errors.New("doctor not found")
	ErrSpecialistNotFound = errors.New("specialist not found")
)
