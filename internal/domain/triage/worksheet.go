package triage

import "strings"

// Worksheet is a physician-editable copy of a suggestion. Edits live in the
// view session only and are never written back to the rule table or any
// store.
type Worksheet struct {
	Suggestion
}

// NewWorksheet copies a suggestion into an editable worksheet.
func NewWorksheet(s Suggestion) *Worksheet {
	return &Worksheet{Suggestion: s.clone()}
}

func (w *Worksheet) AddDiagnosis(d string) error {
	d = strings.TrimSpace(d)
	if d == "" {
		return ErrEmptyEntry
	}
	for _, existing := range w.Diagnoses {
		if strings.EqualFold(existing, d) {
			return nil
		}
	}
	w.Diagnoses = append(w.Diagnoses, d)
	return nil
}

func (w *Worksheet) RemoveDiagnosis(d string) {
	w.Diagnoses = remove(w.Diagnoses, d)
}

func (w *Worksheet) AddTest(t string) error {
	t = strings.TrimSpace(t)
	if t == "" {
		return ErrEmptyEntry
	}
	for _, existing := range w.RecommendedTests {
		if strings.EqualFold(existing, t) {
			return nil
		}
	}
	w.RecommendedTests = append(w.RecommendedTests, t)
	return nil
}

func (w *Worksheet) RemoveTest(t string) {
	w.RecommendedTests = remove(w.RecommendedTests, t)
}

func (w *Worksheet) SetRisk(r RiskLevel) error {
	if !r.IsValid() {
		return ErrInvalidRisk
	}
	w.Risk = r
	return nil
}

func (w *Worksheet) SetSpecialist(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return ErrEmptyEntry
	}
	w.RecommendedSpecialist = s
	return nil
}

func remove(items []string, target string) []string {
	out := items[:0]
	for _, it := range items {
		if !strings.EqualFold(it, target) {
			out = append(out, it)
		}
	}
	return out
}
