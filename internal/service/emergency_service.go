package service

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/MrMKsharma/BHC-Health-Connect/internal/domain"
	"github.com/MrMKsharma/BHC-Health-Connect/internal/domain/directory"
	"github.com/MrMKsharma/BHC-Health-Connect/internal/domain/emergency"
	"github.com/MrMKsharma/BHC-Health-Connect/internal/domain/patient"
)

// EmergencyService owns the in-memory registry of transfer cases. Case
// state never persists; a restart clears the board, matching the original
// system's per-session widgets.
type EmergencyService struct {
	patients patient.Repository
	store    directory.Store
	auditSvc *AuditService
	log      *zap.Logger

	mu    sync.Mutex
	cases map[string]*emergency.Case
}

func NewEmergencyService(patients patient.Repository, store directory.Store, auditSvc *AuditService, log *zap.Logger) *EmergencyService {
	return &EmergencyService{
		patients: patients,
		store:    store,
		auditSvc: auditSvc,
		log:      log,
		cases:    make(map[string]*emergency.Case),
	}
}

// OpenCase starts a transfer case for a known patient.
func (s *EmergencyService) OpenCase(ctx context.Context, healthCardID string) (*emergency.Case, error) {
	normalized := patient.NormalizeID(healthCardID)
	if _, err := s.patients.GetByID(ctx, normalized); err != nil {
		return nil, err
	}

	c := &emergency.Case{
		ID:           uuid.New().String(),
		HealthCardID: normalized,
		CreatedAt:    time.Now(),
	}

	s.mu.Lock()
	s.cases[c.ID] = c
	s.mu.Unlock()

	return c, nil
}

func (s *EmergencyService) GetCase(ctx context.Context, caseID string) (*emergency.Case, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.cases[caseID]
	if !ok {
		return nil, emergency.ErrCaseNotFound
	}
	cp := *c
	return &cp, nil
}

// Dispatch selects and assigns an ambulance for the case. Repeating the
// call for an already-dispatched case with the same unit (or no unit) is a
// no-op; naming a different unit is rejected.
func (s *EmergencyService) Dispatch(ctx context.Context, caseID, unitID string, caller *domain.Claims, ip string) (*emergency.Case, error) {
	unit, err := s.store.FindAmbulance(ctx, unitID)
	if err != nil {
		return nil, err
	}
	if unit.Status != directory.AmbulanceAvailable {
		return nil, emergency.ErrUnitUnavailable
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.cases[caseID]
	if !ok {
		return nil, emergency.ErrCaseNotFound
	}

	if c.Ambulance.Assigned {
		if c.Ambulance.SelectedUnit == unitID {
			cp := *c
			return &cp, nil
		}
		return nil, emergency.ErrAlreadyDispatched
	}

	if err := c.Ambulance.Select(unitID); err != nil {
		return nil, err
	}
	if err := c.Ambulance.Assign(time.Now()); err != nil {
		return nil, err
	}

	s.auditSvc.LogAsync(ctx, AuditEntry{
		UserID:       caller.UserID,
		UserRole:     string(caller.Role),
		Action:       string(domain.ActionDispatch),
		ResourceType: "ambulance",
		ResourceID:   unitID,
		IPAddress:    ip,
	})

	s.log.Info("ambulance dispatched",
		zap.String("case_id", caseID),
		zap.String("unit", unitID),
	)

	cp := *c
	return &cp, nil
}

// ReserveBed selects and reserves a bed at the named hospital for the case.
// Same idempotency shape as Dispatch.
func (s *EmergencyService) ReserveBed(ctx context.Context, caseID string, hospitalID int, caller *domain.Claims, ip string) (*emergency.Case, error) {
	hospital, err := s.store.FindHospital(ctx, hospitalID)
	if err != nil {
		return nil, err
	}
	if !hospital.HasCapacity() {
		return nil, emergency.ErrNoBedsAvailable
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.cases[caseID]
	if !ok {
		return nil, emergency.ErrCaseNotFound
	}

	if c.Bed.Reserved {
		if c.Bed.HospitalID == hospitalID {
			cp := *c
			return &cp, nil
		}
		return nil, emergency.ErrAlreadyReserved
	}

	if err := c.Bed.Select(hospitalID); err != nil {
		return nil, err
	}
	if err := c.Bed.Reserve(time.Now()); err != nil {
		return nil, err
	}

	s.auditSvc.LogAsync(ctx, AuditEntry{
		UserID:       caller.UserID,
		UserRole:     string(caller.Role),
		Action:       string(domain.ActionReserve),
		ResourceType: "hospital_bed",
		ResourceID:   hospital.Name,
		IPAddress:    ip,
	})

	s.log.Info("bed reserved",
		zap.String("case_id", caseID),
		zap.Int("hospital_id", hospitalID),
	)

	cp := *c
	return &cp, nil
}

// Checklist projects the case onto the 4-step transfer display.
func (s *EmergencyService) Checklist(ctx context.Context, caseID string) ([]emergency.ChecklistStep, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.cases[caseID]
	if !ok {
		return nil, emergency.ErrCaseNotFound
	}
	return c.Checklist(), nil
}
