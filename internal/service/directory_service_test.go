package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/MrMKsharma/BHC-Health-Connect/internal/domain"
	"github.com/MrMKsharma/BHC-Health-Connect/internal/domain/patient"
	"github.com/MrMKsharma/BHC-Health-Connect/internal/store/memstore"
)

func newDirectoryServiceForTest(t *testing.T) *DirectoryService {
	t.Helper()
	log := zap.NewNop()
	store := memstore.New(log)
	auditSvc := NewAuditService(nopAuditRepo{}, nil, log)
	t.Cleanup(auditSvc.Shutdown)
	return NewDirectoryService(store, store, auditSvc, log)
}

func TestGetPatientNormalizesInput(t *testing.T) {
	svc := newDirectoryServiceForTest(t)
	claims := gpClaims()

	for _, id := range []string{"BHC0001", "bhc0001", "  bhc0001  "} {
		p, err := svc.GetPatient(context.Background(), id, claims, "10.0.0.1")
		if err != nil {
			t.Errorf("GetPatient(%q): %v", id, err)
			continue
		}
		if p.HealthCardID != "BHC0001" {
			t.Errorf("GetPatient(%q) returned %q", id, p.HealthCardID)
		}
	}

	if _, err := svc.GetPatient(context.Background(), "  ", claims, "10.0.0.1"); !errors.Is(err, patient.ErrIDRequired) {
		t.Errorf("blank id: err = %v, want ErrIDRequired", err)
	}
}

func TestGetPatientRestrictsPatientRole(t *testing.T) {
	svc := newDirectoryServiceForTest(t)
	ctx := context.Background()

	self := &domain.Claims{
		UserID:       uuid.New(),
		Role:         domain.RolePatient,
		HealthCardID: "BHC0001",
	}

	if _, err := svc.GetPatient(ctx, "bhc0001", self, "10.0.0.1"); err != nil {
		t.Errorf("own record: %v", err)
	}
	if _, err := svc.GetPatient(ctx, "BHC0002", self, "10.0.0.1"); !errors.Is(err, ErrForbidden) {
		t.Errorf("other record: err = %v, want ErrForbidden", err)
	}

	// Clinicians read any record.
	if _, err := svc.GetPatient(ctx, "BHC0002", gpClaims(), "10.0.0.1"); err != nil {
		t.Errorf("clinician read: %v", err)
	}
}

func TestAvailableAmbulancesFiltered(t *testing.T) {
	svc := newDirectoryServiceForTest(t)

	units, err := svc.AvailableAmbulances(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	for _, u := range units {
		if u.Status != "Available" {
			t.Errorf("unit %s has status %q", u.ID, u.Status)
		}
	}
	if len(units) != 2 {
		t.Errorf("available units = %d, want 2", len(units))
	}
}
