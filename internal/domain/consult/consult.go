package consult

import "time"

type Priority string

const (
	PriorityHigh   Priority = "High"
	PriorityMedium Priority = "Medium"
	PriorityLow    Priority = "Low"
)

func (p Priority) IsValid() bool {
	switch p {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return true
	}
	return false
}

// State transition possibilities:
//
//	pending → accepted
//	pending → declined
type Status string

const (
	StatusPending  Status = "Pending"
	StatusAccepted Status = "Accepted"
	StatusDeclined Status = "Declined"
)

// Request is a specialist referral raised by a general physician, usually
// from a triage suggestion's recommended specialist.
type Request struct {
	ID           string    `json:"id"`
	HealthCardID string    `json:"patient_id"`
	PatientName  string    `json:"patient_name"`
	SpecialistID string    `json:"specialist_id"`
	RequestedBy  string    `json:"requested_by"`
	Priority     Priority  `json:"priority"`
	Symptoms     []string  `json:"symptoms"`
	RequestTime  time.Time `json:"request_time"`
	Status       Status    `json:"status"`

	DecidedAt *time.Time `json:"decided_at,omitempty"`
}

func (r *Request) CanTransitionTo(newStatus Status) bool {
	allowed := map[Status][]Status{
		StatusPending:  {StatusAccepted, StatusDeclined},
		StatusAccepted: {},
		StatusDeclined: {},
	}
	for _, s := range allowed[r.Status] {
		if s == newStatus {
			return true
		}
	}
	return false
}

func (r *Request) Accept(now time.Time) error {
	if !r.CanTransitionTo(StatusAccepted) {
		return ErrInvalidStatusTransition
	}
	r.Status = StatusAccepted
	r.DecidedAt = &now
	return nil
}

func (r *Request) Decline(now time.Time) error {
	if !r.CanTransitionTo(StatusDeclined) {
		return ErrInvalidStatusTransition
	}
	r.Status = StatusDeclined
	r.DecidedAt = &now
	return nil
}
