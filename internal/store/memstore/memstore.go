// Package memstore serves the directory collections from an in-process
// seed dataset. It satisfies the same read contracts a real storage backend
// would, so consumers never know the difference.
package memstore

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/MrMKsharma/BHC-Health-Connect/internal/domain/consult"
	"github.com/MrMKsharma/BHC-Health-Connect/internal/domain/directory"
	"github.com/MrMKsharma/BHC-Health-Connect/internal/domain/patient"
)

// Store holds every directory collection. The collections themselves are
// read-only after New; only consultation requests carry mutable status.
type Store struct {
	patients    []*patient.Patient
	patientByID map[string]*patient.Patient

	hospitals    []*directory.Hospital
	hospitalByID map[int]*directory.Hospital

	ambulances    []*directory.Ambulance
	ambulanceByID map[string]*directory.Ambulance

	doctors    []*directory.Doctor
	doctorByID map[string]*directory.Doctor

	specialists    []*directory.Specialist
	specialistByID map[string]*directory.Specialist

	symptoms []string

	mu        sync.RWMutex
	consults  []*consult.Request
	consultID map[string]*consult.Request
}

// New builds the store from the seed dataset. Hospital snapshots violating
// the bed invariant are clamped and logged rather than rejected: the seed
// is display data and a broken row should not take the service down.
func New(log *zap.Logger) *Store {
	s := &Store{
		patientByID:    make(map[string]*patient.Patient),
		hospitalByID:   make(map[int]*directory.Hospital),
		ambulanceByID:  make(map[string]*directory.Ambulance),
		doctorByID:     make(map[string]*directory.Doctor),
		specialistByID: make(map[string]*directory.Specialist),
		consultID:      make(map[string]*consult.Request),
	}

	for _, p := range seedPatients() {
		s.patients = append(s.patients, p)
		s.patientByID[p.HealthCardID] = p
	}

	for _, h := range seedHospitals() {
		if h.AvailableBeds < 0 {
			log.Warn("seed hospital has negative available beds, clamping",
				zap.Int("hospital_id", h.ID))
			h.AvailableBeds = 0
		}
		if h.AvailableBeds > h.TotalBeds {
			log.Warn("seed hospital has more available beds than total, clamping",
				zap.Int("hospital_id", h.ID))
			h.AvailableBeds = h.TotalBeds
		}
		s.hospitals = append(s.hospitals, h)
		s.hospitalByID[h.ID] = h
	}

	for _, a := range seedAmbulances() {
		s.ambulances = append(s.ambulances, a)
		s.ambulanceByID[a.ID] = a
	}

	for _, d := range seedDoctors() {
		s.doctors = append(s.doctors, d)
		s.doctorByID[d.ID] = d
	}

	for _, sp := range seedSpecialists() {
		s.specialists = append(s.specialists, sp)
		s.specialistByID[sp.ID] = sp
	}

	for _, c := range seedConsults() {
		s.consults = append(s.consults, c)
		s.consultID[c.ID] = c
	}

	s.symptoms = seedSymptoms()

	return s
}

// --- patient.Repository ---

func (s *Store) GetByID(ctx context.Context, healthCardID string) (*patient.Patient, error) {
	if healthCardID == "" {
		return nil, patient.ErrIDRequired
	}
	p, ok := s.patientByID[healthCardID]
	if !ok {
		return nil, patient.ErrPatientNotFound
	}
	return p, nil
}

func (s *Store) Search(ctx context.Context, query string) ([]*patient.Patient, error) {
	out := make([]*patient.Patient, 0, len(s.patients))
	for _, p := range s.patients {
		if p.MatchesQuery(query) {
			out = append(out, p)
		}
	}
	return out, nil
}

// --- directory.Store ---

func (s *Store) FindHospital(ctx context.Context, id int) (*directory.Hospital, error) {
	h, ok := s.hospitalByID[id]
	if !ok {
		return nil, directory.ErrHospitalNotFound
	}
	return h, nil
}

func (s *Store) FindAmbulance(ctx context.Context, id string) (*directory.Ambulance, error) {
	a, ok := s.ambulanceByID[id]
	if !ok {
		return nil, directory.ErrAmbulanceNotFound
	}
	return a, nil
}

func (s *Store) FindDoctor(ctx context.Context, id string) (*directory.Doctor, error) {
	d, ok := s.doctorByID[id]
	if !ok {
		return nil, directory.ErrDoctorNotFound
	}
	return d, nil
}

func (s *Store) FindSpecialist(ctx context.Context, id string) (*directory.Specialist, error) {
	sp, ok := s.specialistByID[id]
	if !ok {
		return nil, directory.ErrSpecialistNotFound
	}
	return sp, nil
}

func (s *Store) Hospitals(ctx context.Context) ([]*directory.Hospital, error) {
	return s.hospitals, nil
}

func (s *Store) Ambulances(ctx context.Context) ([]*directory.Ambulance, error) {
	return s.ambulances, nil
}

func (s *Store) Doctors(ctx context.Context) ([]*directory.Doctor, error) {
	return s.doctors, nil
}

func (s *Store) Specialists(ctx context.Context) ([]*directory.Specialist, error) {
	return s.specialists, nil
}

func (s *Store) FilterAmbulances(ctx context.Context, status directory.AmbulanceStatus) ([]*directory.Ambulance, error) {
	out := make([]*directory.Ambulance, 0, len(s.ambulances))
	for _, a := range s.ambulances {
		if a.Status == status {
			out = append(out, a)
		}
	}
	return out, nil
}

func (s *Store) CommonSymptoms(ctx context.Context) []string {
	return s.symptoms
}

// --- consult.Store ---

func (s *Store) GetConsult(ctx context.Context, id string) (*consult.Request, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.consultID[id]
	if !ok {
		return nil, consult.ErrRequestNotFound
	}
	cp := *c
	return &cp, nil
}

func (s *Store) ListForSpecialist(ctx context.Context, specialistID string) ([]*consult.Request, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*consult.Request, 0)
	for _, c := range s.consults {
		if c.SpecialistID == specialistID {
			cp := *c
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (s *Store) CreateConsult(ctx context.Context, r *consult.Request) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *r
	s.consults = append(s.consults, &cp)
	s.consultID[cp.ID] = &cp
	return nil
}

func (s *Store) UpdateConsult(ctx context.Context, r *consult.Request) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	existing, ok := s.consultID[r.ID]
	if !ok {
		return consult.ErrRequestNotFound
	}
	*existing = *r
	return nil
}
