package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/MrMKsharma/BHC-Health-Connect/internal/domain"
	"github.com/MrMKsharma/BHC-Health-Connect/internal/domain/triage"
)

// TriageService runs symptom submissions through the rule-table matcher.
// Results are advisory only and recomputed per submission; nothing here is
// persisted beyond the audit trail.
type TriageService struct {
	matcher  *triage.Matcher
	auditSvc *AuditService
	log      *zap.Logger
}

func NewTriageService(matcher *triage.Matcher, auditSvc *AuditService, log *zap.Logger) *TriageService {
	return &TriageService{matcher: matcher, auditSvc: auditSvc, log: log}
}

// Evaluate matches the reported symptoms against the rule table. Symptom
// order matters: only the first three contribute to the lookup key. Notes
// are carried for the audit trail but do not influence matching.
func (s *TriageService) Evaluate(ctx context.Context, symptoms []string, notes string, caller *domain.Claims, ip string) (triage.Suggestion, error) {
	cleaned := make([]string, 0, len(symptoms))
	for _, sym := range symptoms {
		if t := strings.TrimSpace(sym); t != "" {
			cleaned = append(cleaned, t)
		}
	}
	if len(cleaned) == 0 {
		return triage.Suggestion{}, triage.ErrNoSymptoms
	}

	suggestion := s.matcher.Match(cleaned)

	s.auditSvc.LogAsync(ctx, AuditEntry{
		UserID:       caller.UserID,
		UserRole:     string(caller.Role),
		Action:       string(domain.ActionTriage),
		ResourceType: "triage",
		IPAddress:    ip,
		Detail:       triage.Key(cleaned),
	})

	s.log.Debug("triage evaluated",
		zap.Strings("symptoms", cleaned),
		zap.String("risk", string(suggestion.Risk)),
		zap.String("specialist", suggestion.RecommendedSpecialist),
	)

	return suggestion, nil
}

// WorksheetEdits are the local edits a physician applies to a suggestion.
// The edited copy is returned to the caller and discarded server-side.
type WorksheetEdits struct {
	AddDiagnoses    []string
	RemoveDiagnoses []string
	AddTests        []string
	RemoveTests     []string
	Risk            *triage.RiskLevel
	Specialist      *string
}

// Review applies worksheet edits to a suggestion copy. The rule table and
// all stores are untouched.
func (s *TriageService) Review(base triage.Suggestion, edits WorksheetEdits) (*triage.Worksheet, error) {
	w := triage.NewWorksheet(base)

	for _, d := range edits.AddDiagnoses {
		if err := w.AddDiagnosis(d); err != nil {
			return nil, err
		}
	}
	for _, d := range edits.RemoveDiagnoses {
		w.RemoveDiagnosis(d)
	}
	for _, t := range edits.AddTests {
		if err := w.AddTest(t); err != nil {
			return nil, err
		}
	}
	for _, t := range edits.RemoveTests {
		w.RemoveTest(t)
	}
	if edits.Risk != nil {
		if err := w.SetRisk(*edits.Risk); err != nil {
			return nil, err
		}
	}
	if edits.Specialist != nil {
		if err := w.SetSpecialist(*edits.Specialist); err != nil {
			return nil, err
		}
	}

	return w, nil
}
