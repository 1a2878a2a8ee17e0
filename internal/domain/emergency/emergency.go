// Package emergency models ambulance dispatch and hospital-bed reservation
// for one transfer case. The two machines are independent: assigning an
// ambulance and reserving a bed are composed only at the checklist level.
package emergency

import "time"

// Dispatch tracks ambulance selection and assignment for one case.
// Assignment is terminal: once assigned, the selection cannot change, and
// repeating Assign is a no-op.
type Dispatch struct {
	SelectedUnit string     `json:"selected_unit,omitempty"`
	Assigned     bool       `json:"assigned"`
	AssignedAt   *time.Time `json:"assigned_at,omitempty"`
}

// Select picks an ambulance unit. Selecting after assignment is rejected.
func (d *Dispatch) Select(unitID string) error {
	if d.Assigned {
		return ErrAlreadyDispatched
	}
	if unitID == "" {
		return ErrNoUnitSelected
	}
	d.SelectedUnit = unitID
	return nil
}

// Assign dispatches the selected unit. Idempotent once assigned.
func (d *Dispatch) Assign(now time.Time) error {
	if d.Assigned {
		return nil
	}
	if d.SelectedUnit == "" {
		return ErrNoUnitSelected
	}
	d.Assigned = true
	d.AssignedAt = &now
	return nil
}

// Reservation tracks bed reservation for one case, keyed by hospital id.
// Same shape as Dispatch: terminal, idempotent once reserved.
type Reservation struct {
	HospitalID int        `json:"hospital_id,omitempty"`
	Reserved   bool       `json:"reserved"`
	ReservedAt *time.Time `json:"reserved_at,omitempty"`
}

func (r *Reservation) Select(hospitalID int) error {
	if r.Reserved {
		return ErrAlreadyReserved
	}
	if hospitalID <= 0 {
		return ErrNoHospitalSelected
	}
	r.HospitalID = hospitalID
	return nil
}

func (r *Reservation) Reserve(now time.Time) error {
	if r.Reserved {
		return nil
	}
	if r.HospitalID == 0 {
		return ErrNoHospitalSelected
	}
	r.Reserved = true
	r.ReservedAt = &now
	return nil
}

// Case is one emergency transfer: a patient, an ambulance dispatch, and a
// bed reservation. State is in-memory and scoped to the session that
// created it; nothing here persists.
type Case struct {
	ID           string      `json:"id"`
	HealthCardID string      `json:"patient_id"`
	CreatedAt    time.Time   `json:"created_at"`
	Ambulance    Dispatch    `json:"ambulance"`
	Bed          Reservation `json:"bed"`
}

// ChecklistStep is one line of the transfer checklist display.
type ChecklistStep struct {
	Label string `json:"label"`
	Done  bool   `json:"done"`
}

// Checklist projects the case onto the 4-step transfer display. Steps 3 and
// 4 (pickup, admission) have no write path in this system and stay false.
func (c *Case) Checklist() []ChecklistStep {
	return []ChecklistStep{
		{Label: "Ambulance Dispatched", Done: c.Ambulance.Assigned},
		{Label: "Bed Reserved", Done: c.Bed.Reserved},
		{Label: "Patient Picked Up", Done: false},
		{Label: "Hospital Admission", Done: false},
	}
}
