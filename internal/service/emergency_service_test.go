package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/MrMKsharma/BHC-Health-Connect/internal/domain"
	"github.com/MrMKsharma/BHC-Health-Connect/internal/domain/emergency"
	"github.com/MrMKsharma/BHC-Health-Connect/internal/domain/patient"
	"github.com/MrMKsharma/BHC-Health-Connect/internal/store/memstore"
)

func newEmergencyServiceForTest(t *testing.T) *EmergencyService {
	t.Helper()
	log := zap.NewNop()
	store := memstore.New(log)
	auditSvc := NewAuditService(nopAuditRepo{}, nil, log)
	t.Cleanup(auditSvc.Shutdown)
	return NewEmergencyService(store, store, auditSvc, log)
}

func gpClaims() *domain.Claims {
	return &domain.Claims{
		UserID: uuid.New(),
		Email:  "gp@bhc.health",
		Role:   domain.RoleGeneralPhysician,
	}
}

func TestOpenCaseValidatesPatient(t *testing.T) {
	svc := newEmergencyServiceForTest(t)
	ctx := context.Background()

	c, err := svc.OpenCase(ctx, "bhc0001")
	if err != nil {
		t.Fatalf("OpenCase: %v", err)
	}
	if c.HealthCardID != "BHC0001" {
		t.Errorf("case patient = %q, want normalized BHC0001", c.HealthCardID)
	}
	if c.ID == "" {
		t.Error("case has no id")
	}

	if _, err := svc.OpenCase(ctx, "BHC9999"); !errors.Is(err, patient.ErrPatientNotFound) {
		t.Errorf("unknown patient: err = %v, want ErrPatientNotFound", err)
	}
}

func TestDispatchIdempotency(t *testing.T) {
	svc := newEmergencyServiceForTest(t)
	ctx := context.Background()
	claims := gpClaims()

	c, err := svc.OpenCase(ctx, "BHC0001")
	if err != nil {
		t.Fatal(err)
	}

	first, err := svc.Dispatch(ctx, c.ID, "AMB001", claims, "10.0.0.1")
	if err != nil {
		t.Fatalf("Dispatch: %v", err)
	}
	if !first.Ambulance.Assigned || first.Ambulance.SelectedUnit != "AMB001" {
		t.Fatalf("after dispatch: %+v", first.Ambulance)
	}

	// Repeating with the same unit is a no-op.
	repeat, err := svc.Dispatch(ctx, c.ID, "AMB001", claims, "10.0.0.1")
	if err != nil {
		t.Fatalf("repeat Dispatch: %v", err)
	}
	if !repeat.Ambulance.AssignedAt.Equal(*first.Ambulance.AssignedAt) {
		t.Error("repeat dispatch moved the assignment timestamp")
	}

	// A different unit is a conflict.
	if _, err := svc.Dispatch(ctx, c.ID, "AMB003", claims, "10.0.0.1"); !errors.Is(err, emergency.ErrAlreadyDispatched) {
		t.Errorf("different unit: err = %v, want ErrAlreadyDispatched", err)
	}
}

func TestDispatchRejectsBusyOrUnknownUnits(t *testing.T) {
	svc := newEmergencyServiceForTest(t)
	ctx := context.Background()
	claims := gpClaims()

	c, err := svc.OpenCase(ctx, "BHC0002")
	if err != nil {
		t.Fatal(err)
	}

	// AMB002 is seeded in transit.
	if _, err := svc.Dispatch(ctx, c.ID, "AMB002", claims, "10.0.0.1"); !errors.Is(err, emergency.ErrUnitUnavailable) {
		t.Errorf("in-transit unit: err = %v, want ErrUnitUnavailable", err)
	}
	if _, err := svc.Dispatch(ctx, "no-such-case", "AMB001", claims, "10.0.0.1"); !errors.Is(err, emergency.ErrCaseNotFound) {
		t.Errorf("unknown case: err = %v, want ErrCaseNotFound", err)
	}
}

func TestReserveBedIdempotency(t *testing.T) {
	svc := newEmergencyServiceForTest(t)
	ctx := context.Background()
	claims := gpClaims()

	c, err := svc.OpenCase(ctx, "BHC0001")
	if err != nil {
		t.Fatal(err)
	}

	first, err := svc.ReserveBed(ctx, c.ID, 1, claims, "10.0.0.1")
	if err != nil {
		t.Fatalf("ReserveBed: %v", err)
	}
	if !first.Bed.Reserved || first.Bed.HospitalID != 1 {
		t.Fatalf("after reserve: %+v", first.Bed)
	}

	if _, err := svc.ReserveBed(ctx, c.ID, 1, claims, "10.0.0.1"); err != nil {
		t.Errorf("repeat ReserveBed: %v", err)
	}
	if _, err := svc.ReserveBed(ctx, c.ID, 2, claims, "10.0.0.1"); !errors.Is(err, emergency.ErrAlreadyReserved) {
		t.Errorf("different hospital: err = %v, want ErrAlreadyReserved", err)
	}
}

func TestChecklistReflectsProgress(t *testing.T) {
	svc := newEmergencyServiceForTest(t)
	ctx := context.Background()
	claims := gpClaims()

	c, err := svc.OpenCase(ctx, "BHC0003")
	if err != nil {
		t.Fatal(err)
	}

	if _, err := svc.Dispatch(ctx, c.ID, "AMB001", claims, "10.0.0.1"); err != nil {
		t.Fatal(err)
	}

	steps, err := svc.Checklist(ctx, c.ID)
	if err != nil {
		t.Fatal(err)
	}
	if len(steps) != 4 {
		t.Fatalf("len(steps) = %d, want 4", len(steps))
	}
	if !steps[0].Done {
		t.Error("dispatch step not done after dispatch")
	}
	if steps[1].Done {
		t.Error("bed step done without a reservation")
	}
	if steps[2].Done || steps[3].Done {
		t.Error("pickup/admission steps must stay pending")
	}

	if _, err := svc.Checklist(ctx, "missing"); !errors.Is(err, emergency.ErrCaseNotFound) {
		t.Errorf("unknown case checklist: err = %v", err)
	}
}
