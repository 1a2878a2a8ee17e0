package service

import (
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/MrMKsharma/BHC-Health-Connect/internal/domain"
	"github.com/MrMKsharma/BHC-Health-Connect/internal/domain/call"
	"github.com/MrMKsharma/BHC-Health-Connect/pkg/capture"
)

// CallService owns the live call sessions. Shutdown ends every session so
// capture devices are released even on abrupt teardown.
type CallService struct {
	device   capture.Device
	auditSvc *AuditService
	log      *zap.Logger

	mu       sync.Mutex
	sessions map[uuid.UUID]*call.Session
}

func NewCallService(device capture.Device, auditSvc *AuditService, log *zap.Logger) *CallService {
	return &CallService{
		device:   device,
		auditSvc: auditSvc,
		log:      log,
		sessions: make(map[uuid.UUID]*call.Session),
	}
}

// Start creates a session in the idle state. Nothing is acquired yet.
func (s *CallService) Start(ctx context.Context, patientName, doctorName string, caller *domain.Claims, ip string) (*call.Session, error) {
	patientName = strings.TrimSpace(patientName)
	doctorName = strings.TrimSpace(doctorName)
	if patientName == "" || doctorName == "" {
		return nil, call.ErrNamesRequired
	}

	sess := call.NewSession(patientName, doctorName, s.device)

	s.mu.Lock()
	s.sessions[sess.ID] = sess
	s.mu.Unlock()

	s.auditSvc.LogAsync(ctx, AuditEntry{
		UserID:       caller.UserID,
		UserRole:     string(caller.Role),
		Action:       string(domain.ActionCall),
		ResourceType: "call_session",
		ResourceID:   sess.ID.String(),
		IPAddress:    ip,
		Detail:       "started",
	})

	return sess, nil
}

func (s *CallService) get(id uuid.UUID) (*call.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	if !ok {
		return nil, call.ErrSessionNotFound
	}
	return sess, nil
}

func (s *CallService) Get(ctx context.Context, id uuid.UUID) (*call.Session, error) {
	return s.get(id)
}

// Connect attempts device acquisition for the session. A device failure is
// surfaced to the caller and leaves the session retryable.
func (s *CallService) Connect(ctx context.Context, id uuid.UUID) (*call.Session, error) {
	sess, err := s.get(id)
	if err != nil {
		return nil, err
	}
	if err := sess.Connect(ctx); err != nil {
		s.log.Warn("call connect failed",
			zap.String("session_id", id.String()),
			zap.Error(err),
		)
		return sess, err
	}
	return sess, nil
}

type ToggleKind string

const (
	ToggleAudio ToggleKind = "audio"
	ToggleVideo ToggleKind = "video"
)

// Toggle flips the local mute or video flag. The stream stays up.
func (s *CallService) Toggle(ctx context.Context, id uuid.UUID, kind ToggleKind) (bool, error) {
	sess, err := s.get(id)
	if err != nil {
		return false, err
	}
	switch kind {
	case ToggleVideo:
		return sess.ToggleVideo(), nil
	default:
		return sess.ToggleAudio(), nil
	}
}

func (s *CallService) SetNotes(ctx context.Context, id uuid.UUID, notes call.Notes) error {
	sess, err := s.get(id)
	if err != nil {
		return err
	}
	return sess.SetNotes(notes)
}

// End terminates the session and drops it from the registry. The summary
// is all that survives.
func (s *CallService) End(ctx context.Context, id uuid.UUID, caller *domain.Claims, ip string) (*call.Summary, error) {
	s.mu.Lock()
	sess, ok := s.sessions[id]
	if ok {
		delete(s.sessions, id)
	}
	s.mu.Unlock()

	if !ok {
		return nil, call.ErrSessionNotFound
	}

	summary := sess.End()

	s.auditSvc.LogAsync(ctx, AuditEntry{
		UserID:       caller.UserID,
		UserRole:     string(caller.Role),
		Action:       string(domain.ActionCall),
		ResourceType: "call_session",
		ResourceID:   id.String(),
		IPAddress:    ip,
		Detail:       "ended after " + summary.Duration,
	})

	return &summary, nil
}

// Shutdown ends every live session. Called on process teardown so no
// capture device outlives the service.
func (s *CallService) Shutdown() {
	s.mu.Lock()
	sessions := make([]*call.Session, 0, len(s.sessions))
	for id, sess := range s.sessions {
		sessions = append(sessions, sess)
		delete(s.sessions, id)
	}
	s.mu.Unlock()

	for _, sess := range sessions {
		sess.End()
	}

	if len(sessions) > 0 {
		s.log.Info("ended live call sessions on shutdown", zap.Int("count", len(sessions)))
	}
}
