package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/MrMKsharma/BHC-Health-Connect/internal/domain"
	"github.com/MrMKsharma/BHC-Health-Connect/internal/domain/directory"
	"github.com/MrMKsharma/BHC-Health-Connect/internal/domain/patient"
)

// DirectoryService serves the read-only collections. Lookup misses are
// sentinel outcomes for callers to map onto "not found", never failures.
type DirectoryService struct {
	patients patient.Repository
	store    directory.Store
	auditSvc *AuditService
	log      *zap.Logger
}

func NewDirectoryService(patients patient.Repository, store directory.Store, auditSvc *AuditService, log *zap.Logger) *DirectoryService {
	return &DirectoryService{patients: patients, store: store, auditSvc: auditSvc, log: log}
}

// GetPatient looks up a record by health-card id. Caller input is
// normalized to the stored upper-case convention before the exact-match
// lookup. Patient-role callers can only read their own record.
func (s *DirectoryService) GetPatient(ctx context.Context, id string, caller *domain.Claims, ip string) (*patient.Patient, error) {
	normalized := patient.NormalizeID(id)
	if normalized == "" {
		return nil, patient.ErrIDRequired
	}

	if caller.Role == domain.RolePatient && caller.HealthCardID != normalized {
		return nil, ErrForbidden
	}

	p, err := s.patients.GetByID(ctx, normalized)
	if err != nil {
		return nil, err
	}

	s.auditSvc.LogAsync(ctx, AuditEntry{
		UserID:       caller.UserID,
		UserRole:     string(caller.Role),
		Action:       string(domain.ActionRead),
		ResourceType: "patient",
		ResourceID:   normalized,
		IPAddress:    ip,
	})

	return p, nil
}

// SearchPatients is the search-as-you-type lookup: linear scan, stable seed
// order, no pagination.
func (s *DirectoryService) SearchPatients(ctx context.Context, query string) ([]*patient.Patient, error) {
	return s.patients.Search(ctx, query)
}

func (s *DirectoryService) Hospitals(ctx context.Context) ([]*directory.Hospital, error) {
	return s.store.Hospitals(ctx)
}

func (s *DirectoryService) Ambulances(ctx context.Context) ([]*directory.Ambulance, error) {
	return s.store.Ambulances(ctx)
}

func (s *DirectoryService) AvailableAmbulances(ctx context.Context) ([]*directory.Ambulance, error) {
	return s.store.FilterAmbulances(ctx, directory.AmbulanceAvailable)
}

func (s *DirectoryService) Doctors(ctx context.Context) ([]*directory.Doctor, error) {
	return s.store.Doctors(ctx)
}

func (s *DirectoryService) Specialists(ctx context.Context) ([]*directory.Specialist, error) {
	return s.store.Specialists(ctx)
}

func (s *DirectoryService) CommonSymptoms(ctx context.Context) []string {
	return s.store.CommonSymptoms(ctx)
}
