package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/MrMKsharma/BHC-Health-Connect/internal/domain/consult"
	"github.com/MrMKsharma/BHC-Health-Connect/internal/domain/directory"
	"github.com/MrMKsharma/BHC-Health-Connect/internal/domain/patient"
	"github.com/MrMKsharma/BHC-Health-Connect/internal/domain/triage"
)

type ConsultService struct {
	store    consult.Store
	patients patient.Repository
	dir      directory.Store
	log      *zap.Logger
}

func NewConsultService(store consult.Store, patients patient.Repository, dir directory.Store, log *zap.Logger) *ConsultService {
	return &ConsultService{store: store, patients: patients, dir: dir, log: log}
}

type CreateRequestCommand struct {
	HealthCardID string
	SpecialistID string
	RequestedBy  string
	Priority     consult.Priority
	Symptoms     []string
}

// Create raises a referral for a specialist. The GP dashboard calls this
// with the specialist recommended by a triage suggestion.
func (s *ConsultService) Create(ctx context.Context, cmd CreateRequestCommand) (*consult.Request, error) {
	if !cmd.Priority.IsValid() {
		return nil, consult.ErrInvalidPriority
	}
	symptoms := make([]string, 0, len(cmd.Symptoms))
	for _, sym := range cmd.Symptoms {
		if t := strings.TrimSpace(sym); t != "" {
			symptoms = append(symptoms, t)
		}
	}
	if len(symptoms) == 0 {
		return nil, consult.ErrSymptomsRequired
	}

	p, err := s.patients.GetByID(ctx, patient.NormalizeID(cmd.HealthCardID))
	if err != nil {
		return nil, err
	}
	if _, err := s.dir.FindSpecialist(ctx, cmd.SpecialistID); err != nil {
		return nil, err
	}

	r := &consult.Request{
		ID:           "CONS-" + uuid.New().String()[:8],
		HealthCardID: p.HealthCardID,
		PatientName:  p.Name,
		SpecialistID: cmd.SpecialistID,
		RequestedBy:  strings.TrimSpace(cmd.RequestedBy),
		Priority:     cmd.Priority,
		Symptoms:     symptoms,
		RequestTime:  time.Now(),
		Status:       consult.StatusPending,
	}

	if err := s.store.CreateConsult(ctx, r); err != nil {
		return nil, err
	}

	s.log.Info("consultation request created",
		zap.String("request_id", r.ID),
		zap.String("specialist_id", r.SpecialistID),
		zap.String("priority", string(r.Priority)),
	)

	return r, nil
}

func (s *ConsultService) ListForSpecialist(ctx context.Context, specialistID string) ([]*consult.Request, error) {
	return s.store.ListForSpecialist(ctx, specialistID)
}

func (s *ConsultService) Accept(ctx context.Context, id string) (*consult.Request, error) {
	return s.decide(ctx, id, func(r *consult.Request) error {
		return r.Accept(time.Now())
	})
}

func (s *ConsultService) Decline(ctx context.Context, id string) (*consult.Request, error) {
	return s.decide(ctx, id, func(r *consult.Request) error {
		return r.Decline(time.Now())
	})
}

func (s *ConsultService) decide(ctx context.Context, id string, transition func(*consult.Request) error) (*consult.Request, error) {
	r, err := s.store.GetConsult(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := transition(r); err != nil {
		return nil, err
	}
	if err := s.store.UpdateConsult(ctx, r); err != nil {
		return nil, err
	}
	return r, nil
}

// PriorityForRisk maps a triage risk level onto a referral priority.
func PriorityForRisk(risk triage.RiskLevel) consult.Priority {
	switch risk {
	case triage.RiskHigh:
		return consult.PriorityHigh
	case triage.RiskLow:
		return consult.PriorityLow
	default:
		return consult.PriorityMedium
	}
}
