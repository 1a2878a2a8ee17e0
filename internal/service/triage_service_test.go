package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/MrMKsharma/BHC-Health-Connect/internal/domain/triage"
)

func newTriageServiceForTest(t *testing.T) *TriageService {
	t.Helper()
	log := zap.NewNop()
	auditSvc := NewAuditService(nopAuditRepo{}, nil, log)
	t.Cleanup(auditSvc.Shutdown)
	return NewTriageService(triage.NewMatcher(), auditSvc, log)
}

func TestEvaluateTrimsAndMatches(t *testing.T) {
	svc := newTriageServiceForTest(t)
	claims := gpClaims()

	got, err := svc.Evaluate(context.Background(),
		[]string{"  Chest pain ", "Shortness of breath", "Dizziness"}, "", claims, "10.0.0.1")
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if got.Risk != triage.RiskHigh || got.RecommendedSpecialist != "Cardiologist" {
		t.Errorf("suggestion = %+v", got)
	}
}

func TestEvaluateRejectsEmptySubmissions(t *testing.T) {
	svc := newTriageServiceForTest(t)
	claims := gpClaims()

	for _, symptoms := range [][]string{nil, {}, {"", "   "}} {
		if _, err := svc.Evaluate(context.Background(), symptoms, "", claims, "10.0.0.1"); !errors.Is(err, triage.ErrNoSymptoms) {
			t.Errorf("Evaluate(%v): err = %v, want ErrNoSymptoms", symptoms, err)
		}
	}
}

func TestReviewAppliesEdits(t *testing.T) {
	svc := newTriageServiceForTest(t)

	base := triage.NewMatcher().Match([]string{"Fever", "Cough", "Fatigue"})
	high := triage.RiskHigh
	specialist := "Infectious Disease"

	w, err := svc.Review(base, WorksheetEdits{
		AddDiagnoses: []string{"Tuberculosis"},
		AddTests:     []string{"Sputum culture"},
		Risk:         &high,
		Specialist:   &specialist,
	})
	if err != nil {
		t.Fatalf("Review: %v", err)
	}
	if w.Risk != triage.RiskHigh || w.RecommendedSpecialist != "Infectious Disease" {
		t.Errorf("worksheet = %+v", w.Suggestion)
	}

	found := false
	for _, d := range w.Diagnoses {
		if d == "Tuberculosis" {
			found = true
		}
	}
	if !found {
		t.Error("added diagnosis missing")
	}

	// The base suggestion is untouched by the review.
	for _, d := range base.Diagnoses {
		if d == "Tuberculosis" {
			t.Error("review mutated the base suggestion")
		}
	}
}

func TestReviewRejectsInvalidEdits(t *testing.T) {
	svc := newTriageServiceForTest(t)
	base := triage.NewMatcher().Match([]string{"Hiccups"})

	if _, err := svc.Review(base, WorksheetEdits{AddDiagnoses: []string{"  "}}); !errors.Is(err, triage.ErrEmptyEntry) {
		t.Errorf("blank diagnosis: err = %v, want ErrEmptyEntry", err)
	}

	bad := triage.RiskLevel("Severe")
	if _, err := svc.Review(base, WorksheetEdits{Risk: &bad}); !errors.Is(err, triage.ErrInvalidRisk) {
		t.Errorf("bad risk: err = %v, want ErrInvalidRisk", err)
	}
}
