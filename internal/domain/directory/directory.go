package directory

import "context"

// OxygenLevel is the reported oxygen supply state of a hospital.
type OxygenLevel string

const (
	OxygenAdequate OxygenLevel = "Adequate"
	OxygenLow      OxygenLevel = "Low"
	OxygenCritical OxygenLevel = "Critical"
)

// Hospital is a resource snapshot for one facility.
// Invariant: 0 <= AvailableBeds <= TotalBeds.
type Hospital struct {
	ID            int         `json:"id"`
	Name          string      `json:"name"`
	Location      string      `json:"location"`
	TotalBeds     int         `json:"total_beds"`
	AvailableBeds int         `json:"available_beds"`
	OxygenLevel   OxygenLevel `json:"oxygen_level"`
	ICUAvailable  int         `json:"icu_available"`
	Contact       string      `json:"contact"`
}

// HasCapacity reports whether at least one bed is free.
func (h *Hospital) HasCapacity() bool {
	return h.AvailableBeds > 0
}

type AmbulanceStatus string

const (
	AmbulanceAvailable AmbulanceStatus = "Available"
	AmbulanceInTransit AmbulanceStatus = "In Transit"
)

type Ambulance struct {
	ID       string          `json:"id"`
	Driver   string          `json:"driver"`
	Phone    string          `json:"phone"`
	Status   AmbulanceStatus `json:"status"`
	Location string          `json:"location"`
}

type Doctor struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Specialization string `json:"specialization"`
	Hospital       string `json:"hospital"`
	Phone          string `json:"phone"`
	Available      bool   `json:"available"`
}

// ScheduleSlot is one display-only entry in a specialist's day schedule.
type ScheduleSlot struct {
	Time        string `json:"time"`
	PatientName string `json:"patient_name,omitempty"`
	Type        string `json:"type"`
	Status      string `json:"status"`
}

type Specialist struct {
	ID             string         `json:"id"`
	Name           string         `json:"name"`
	Specialization string         `json:"specialization"`
	Hospital       string         `json:"hospital"`
	Phone          string         `json:"phone"`
	Available      bool           `json:"available"`
	Schedule       []ScheduleSlot `json:"schedule"`
}

// Store is the read contract over the directory collections. Lookups are
// exact-match on the id as stored; filters are linear scans that preserve
// seed order. Misses resolve to not-found sentinels, never to failures.
type Store interface {
	FindHospital(ctx context.Context, id int) (*Hospital, error)
	FindAmbulance(ctx context.Context, id string) (*Ambulance, error)
	FindDoctor(ctx context.Context, id string) (*Doctor, error)
	FindSpecialist(ctx context.Context, id string) (*Specialist, error)

	Hospitals(ctx context.Context) ([]*Hospital, error)
	Ambulances(ctx context.Context) ([]*Ambulance, error)
	Doctors(ctx context.Context) ([]*Doctor, error)
	Specialists(ctx context.Context) ([]*Specialist, error)

	// FilterAmbulances returns units matching the status in seed order.
	FilterAmbulances(ctx context.Context, status AmbulanceStatus) ([]*Ambulance, error)

	// CommonSymptoms returns the fixed symptom vocabulary for intake forms.
	CommonSymptoms(ctx context.Context) []string
}
