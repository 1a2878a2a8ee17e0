package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/MrMKsharma/BHC-Health-Connect/internal/domain/consult"
	"github.com/MrMKsharma/BHC-Health-Connect/internal/domain/directory"
	"github.com/MrMKsharma/BHC-Health-Connect/internal/domain/patient"
	"github.com/MrMKsharma/BHC-Health-Connect/internal/domain/triage"
	"github.com/MrMKsharma/BHC-Health-Connect/internal/store/memstore"
)

func newConsultServiceForTest(t *testing.T) *ConsultService {
	t.Helper()
	store := memstore.New(zap.NewNop())
	return NewConsultService(store, store, store, zap.NewNop())
}

func validCreate() CreateRequestCommand {
	return CreateRequestCommand{
		HealthCardID: "bhc0002",
		SpecialistID: "SPEC001",
		RequestedBy:  "gp@bhc.health",
		Priority:     consult.PriorityHigh,
		Symptoms:     []string{"Chest pain", "Dizziness"},
	}
}

func TestCreateConsultRequest(t *testing.T) {
	svc := newConsultServiceForTest(t)
	ctx := context.Background()

	r, err := svc.Create(ctx, validCreate())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if r.Status != consult.StatusPending {
		t.Errorf("new request status = %q", r.Status)
	}
	if r.PatientName != "Priya Singh" {
		t.Errorf("patient name = %q, want Priya Singh (denormalized from the record)", r.PatientName)
	}
	if r.HealthCardID != "BHC0002" {
		t.Errorf("health card id = %q, want normalized BHC0002", r.HealthCardID)
	}
	if r.ID == "" {
		t.Error("request has no id")
	}

	listed, err := svc.ListForSpecialist(ctx, "SPEC001")
	if err != nil {
		t.Fatal(err)
	}
	// Two seeded plus the new one.
	if len(listed) != 3 {
		t.Errorf("requests for SPEC001 = %d, want 3", len(listed))
	}
}

func TestCreateConsultValidation(t *testing.T) {
	svc := newConsultServiceForTest(t)
	ctx := context.Background()

	tests := []struct {
		name   string
		mutate func(*CreateRequestCommand)
		want   error
	}{
		{"bad priority", func(c *CreateRequestCommand) { c.Priority = "Urgent" }, consult.ErrInvalidPriority},
		{"no symptoms", func(c *CreateRequestCommand) { c.Symptoms = []string{" ", ""} }, consult.ErrSymptomsRequired},
		{"unknown patient", func(c *CreateRequestCommand) { c.HealthCardID = "BHC9999" }, patient.ErrPatientNotFound},
		{"unknown specialist", func(c *CreateRequestCommand) { c.SpecialistID = "SPEC999" }, directory.ErrSpecialistNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := validCreate()
			tt.mutate(&cmd)
			if _, err := svc.Create(ctx, cmd); !errors.Is(err, tt.want) {
				t.Errorf("err = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestAcceptAndDeclineTransitions(t *testing.T) {
	svc := newConsultServiceForTest(t)
	ctx := context.Background()

	accepted, err := svc.Accept(ctx, "CONS001")
	if err != nil {
		t.Fatalf("Accept: %v", err)
	}
	if accepted.Status != consult.StatusAccepted {
		t.Errorf("status = %q", accepted.Status)
	}
	if accepted.DecidedAt == nil {
		t.Error("DecidedAt not set")
	}

	// A decided request cannot be re-decided.
	if _, err := svc.Decline(ctx, "CONS001"); !errors.Is(err, consult.ErrInvalidStatusTransition) {
		t.Errorf("decline after accept: err = %v, want ErrInvalidStatusTransition", err)
	}
	if _, err := svc.Accept(ctx, "CONS001"); !errors.Is(err, consult.ErrInvalidStatusTransition) {
		t.Errorf("repeat accept: err = %v, want ErrInvalidStatusTransition", err)
	}

	declined, err := svc.Decline(ctx, "CONS002")
	if err != nil {
		t.Fatalf("Decline: %v", err)
	}
	if declined.Status != consult.StatusDeclined {
		t.Errorf("status = %q", declined.Status)
	}

	if _, err := svc.Accept(ctx, "CONS-missing"); !errors.Is(err, consult.ErrRequestNotFound) {
		t.Errorf("unknown request: err = %v", err)
	}
}

func TestPriorityForRisk(t *testing.T) {
	tests := []struct {
		risk triage.RiskLevel
		want consult.Priority
	}{
		{triage.RiskHigh, consult.PriorityHigh},
		{triage.RiskMedium, consult.PriorityMedium},
		{triage.RiskLow, consult.PriorityLow},
		{"", consult.PriorityMedium},
	}
	for _, tt := range tests {
		if got := PriorityForRisk(tt.risk); got != tt.want {
			t.Errorf("PriorityForRisk(%q) = %q, want %q", tt.risk, got, tt.want)
		}
	}
}
