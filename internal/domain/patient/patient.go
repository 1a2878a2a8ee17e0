package patient

import (
	"strings"
)

type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
	GenderOther  Gender = "Other"
)

func (g Gender) IsValid() bool {
	switch g {
	case GenderMale, GenderFemale, GenderOther:
		return true
	}
	return false
}

// HistoryEntry is one past consultation on a patient record. Entries are
// ordered newest first as stored and never modified by this service.
type HistoryEntry struct {
	Date         string `json:"date"`
	Doctor       string `json:"doctor"`
	Diagnosis    string `json:"diagnosis"`
	Prescription string `json:"prescription"`
	FollowUp     string `json:"follow_up"`
}

// Patient is a directory record keyed by health-card id. Records are
// read-only in this service; the write path belongs to the registration
// system upstream.
type Patient struct {
	HealthCardID string `json:"id"`
	Name         string `json:"name"`
	Age          int    `json:"age"`
	Gender       Gender `json:"gender"`
	Village      string `json:"village"`
	District     string `json:"district"`
	State        string `json:"state"`
	Phone        string `json:"phone"`
	BloodGroup   string `json:"blood_group"`

	Allergies         []string `json:"allergies"`
	ChronicConditions []string `json:"chronic_conditions"`

	History []HistoryEntry `json:"history"`
}

// NormalizeID maps caller input onto the stored key convention: health-card
// ids are upper-cased.
func NormalizeID(id string) string {
	return strings.ToUpper(strings.TrimSpace(id))
}

// LastVisit returns the most recent history entry, or nil for a patient with
// no recorded visits.
func (p *Patient) LastVisit() *HistoryEntry {
	if len(p.History) == 0 {
		return nil
	}
	return &p.History[0]
}

// HasAllergy reports whether the named allergy is on record, ignoring case.
func (p *Patient) HasAllergy(name string) bool {
	for _, a := range p.Allergies {
		if strings.EqualFold(a, name) {
			return true
		}
	}
	return false
}

// MatchesQuery reports whether the record matches a search-as-you-type query
// against id or name, ignoring case. An empty query matches everything.
func (p *Patient) MatchesQuery(q string) bool {
	q = strings.ToLower(strings.TrimSpace(q))
	if q == "" {
		return true
	}
	return strings.Contains(strings.ToLower(p.HealthCardID), q) ||
		strings.Contains(strings.ToLower(p.Name), q)
}
