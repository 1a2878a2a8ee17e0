package triage

import (
	"testing"
)

func TestMatchKnownCombinations(t *testing.T) {
	m := NewMatcher()

	tests := []struct {
		name       string
		symptoms   []string
		risk       RiskLevel
		specialist string
	}{
		{
			name:       "respiratory",
			symptoms:   []string{"Fever", "Cough", "Fatigue"},
			risk:       RiskMedium,
			specialist: "Pulmonologist",
		},
		{
			name:       "migraine",
			symptoms:   []string{"Headache", "Nausea", "Sensitivity to light"},
			risk:       RiskLow,
			specialist: "Neurologist",
		},
		{
			name:       "cardiac",
			symptoms:   []string{"Chest pain", "Shortness of breath", "Dizziness"},
			risk:       RiskHigh,
			specialist: "Cardiologist",
		},
		{
			name:       "gastro",
			symptoms:   []string{"Abdominal pain", "Vomiting", "Diarrhea"},
			risk:       RiskMedium,
			specialist: "Gastroenterologist",
		},
		{
			name:       "dermatology",
			symptoms:   []string{"Rash", "Itching", "Swelling"},
			risk:       RiskMedium,
			specialist: "Dermatologist",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := m.Match(tt.symptoms)
			if got.Risk != tt.risk {
				t.Errorf("Risk = %q, want %q", got.Risk, tt.risk)
			}
			if got.RecommendedSpecialist != tt.specialist {
				t.Errorf("RecommendedSpecialist = %q, want %q", got.RecommendedSpecialist, tt.specialist)
			}
			if len(got.Diagnoses) == 0 || len(got.RecommendedTests) == 0 {
				t.Error("expected non-empty diagnoses and tests")
			}
		})
	}
}

func TestMatchPartialKeyContainment(t *testing.T) {
	m := NewMatcher()

	// A prefix of a rule key matches because the rule key contains the
	// derived key.
	got := m.Match([]string{"Fever", "Cough"})
	if got.RecommendedSpecialist != "Pulmonologist" {
		t.Errorf("prefix match: specialist = %q, want Pulmonologist", got.RecommendedSpecialist)
	}

	// A single symptom that is a substring of a rule key also matches.
	got = m.Match([]string{"Chest pain"})
	if got.Risk != RiskHigh {
		t.Errorf("single symptom: risk = %q, want High", got.Risk)
	}
}

func TestMatchUnknownSymptomsReturnsDefault(t *testing.T) {
	m := NewMatcher()

	got := m.Match([]string{"Hiccups"})
	if got.RecommendedSpecialist != "General Physician" {
		t.Errorf("specialist = %q, want General Physician", got.RecommendedSpecialist)
	}
	if got.Risk != RiskMedium {
		t.Errorf("risk = %q, want Medium", got.Risk)
	}
	if len(got.Diagnoses) != 2 || got.Diagnoses[0] != "Unspecified condition" {
		t.Errorf("unexpected default diagnoses: %v", got.Diagnoses)
	}
}

func TestMatchIsOrderSensitive(t *testing.T) {
	m := NewMatcher()

	inOrder := m.Match([]string{"Fever", "Cough", "Fatigue"})
	reversed := m.Match([]string{"Fatigue", "Cough", "Fever"})

	if inOrder.RecommendedSpecialist != "Pulmonologist" {
		t.Fatalf("in-order match failed: %q", inOrder.RecommendedSpecialist)
	}
	// The reversed key does not appear in any rule key, so the default wins.
	if reversed.RecommendedSpecialist != "General Physician" {
		t.Errorf("reversed order matched %q, want the default", reversed.RecommendedSpecialist)
	}
}

func TestMatchUsesOnlyLeadingSymptoms(t *testing.T) {
	m := NewMatcher()

	got := m.Match([]string{"Fever", "Cough", "Fatigue", "Rash", "Itching"})
	if got.RecommendedSpecialist != "Pulmonologist" {
		t.Errorf("trailing symptoms changed the match: %q", got.RecommendedSpecialist)
	}
}

func TestKey(t *testing.T) {
	tests := []struct {
		symptoms []string
		want     string
	}{
		{[]string{"Fever", "Cough", "Fatigue"}, "fever,cough,fatigue"},
		{[]string{"Fever", "Cough", "Fatigue", "Rash"}, "fever,cough,fatigue"},
		{[]string{"Chest pain"}, "chest pain"},
	}
	for _, tt := range tests {
		if got := Key(tt.symptoms); got != tt.want {
			t.Errorf("Key(%v) = %q, want %q", tt.symptoms, got, tt.want)
		}
	}
}

func TestMatchReturnsIsolatedCopies(t *testing.T) {
	m := NewMatcher()

	first := m.Match([]string{"Rash", "Itching", "Swelling"})
	first.Diagnoses[0] = "mutated"
	first.RecommendedTests = append(first.RecommendedTests, "extra")

	second := m.Match([]string{"Rash", "Itching", "Swelling"})
	if second.Diagnoses[0] == "mutated" {
		t.Error("mutating one result leaked into the rule table")
	}
}

func TestWorksheetEdits(t *testing.T) {
	m := NewMatcher()
	w := NewWorksheet(m.Match([]string{"Fever", "Cough", "Fatigue"}))

	if err := w.AddDiagnosis("Pneumonia"); err != nil {
		t.Fatalf("AddDiagnosis: %v", err)
	}
	// Duplicate adds are ignored, case-insensitively.
	if err := w.AddDiagnosis("pneumonia"); err != nil {
		t.Fatalf("duplicate AddDiagnosis: %v", err)
	}
	count := 0
	for _, d := range w.Diagnoses {
		if d == "Pneumonia" {
			count++
		}
	}
	if count != 1 {
		t.Errorf("Pneumonia appears %d times, want 1", count)
	}

	w.RemoveDiagnosis("PNEUMONIA")
	for _, d := range w.Diagnoses {
		if d == "Pneumonia" {
			t.Error("RemoveDiagnosis did not remove case-insensitively")
		}
	}

	if err := w.AddDiagnosis("   "); err != ErrEmptyEntry {
		t.Errorf("blank diagnosis: err = %v, want ErrEmptyEntry", err)
	}
	if err := w.SetRisk("Critical"); err != ErrInvalidRisk {
		t.Errorf("invalid risk: err = %v, want ErrInvalidRisk", err)
	}
	if err := w.SetRisk(RiskHigh); err != nil {
		t.Fatalf("SetRisk: %v", err)
	}
	if w.Risk != RiskHigh {
		t.Errorf("Risk = %q after SetRisk(High)", w.Risk)
	}
	if err := w.SetSpecialist("Pulmonologist"); err != nil {
		t.Fatalf("SetSpecialist: %v", err)
	}
}

func TestWorksheetDoesNotMutateBase(t *testing.T) {
	m := NewMatcher()
	base := m.Match([]string{"Fever", "Cough", "Fatigue"})
	baseDiagnoses := len(base.Diagnoses)

	w := NewWorksheet(base)
	if err := w.AddDiagnosis("Something else"); err != nil {
		t.Fatalf("AddDiagnosis: %v", err)
	}

	if len(base.Diagnoses) != baseDiagnoses {
		t.Error("worksheet edit mutated the base suggestion")
	}
}
