package v1

import (
	"github.com/gin-gonic/gin"

	"github.com/MrMKsharma/BHC-Health-Connect/internal/domain/triage"
	"github.com/MrMKsharma/BHC-Health-Connect/internal/service"
	"github.com/MrMKsharma/BHC-Health-Connect/pkg/metrics"
)

type TriageHandler struct {
	triageSvc *service.TriageService
	collector *metrics.Collector
}

func NewTriageHandler(triageSvc *service.TriageService, collector *metrics.Collector) *TriageHandler {
	return &TriageHandler{triageSvc: triageSvc, collector: collector}
}

type evaluateRequest struct {
	Symptoms []string `json:"symptoms" binding:"required"`
	Notes    string   `json:"notes"`
}

func (h *TriageHandler) Evaluate(c *gin.Context) {
	claims := mustClaims(c)
	if claims == nil {
		return
	}

	var req evaluateRequest
	if !bindJSON(c, &req) {
		return
	}

	suggestion, err := h.triageSvc.Evaluate(c.Request.Context(), req.Symptoms, req.Notes, claims, c.ClientIP())
	if err != nil {
		respondServiceError(c, err)
		return
	}

	h.collector.TriageRequests.WithLabelValues(string(suggestion.Risk)).Inc()
	respondOK(c, suggestion)
}

type reviewRequest struct {
	Suggestion      triage.Suggestion `json:"suggestion" binding:"required"`
	AddDiagnoses    []string          `json:"add_diagnoses"`
	RemoveDiagnoses []string          `json:"remove_diagnoses"`
	AddTests        []string          `json:"add_tests"`
	RemoveTests     []string          `json:"remove_tests"`
	Risk            *triage.RiskLevel `json:"risk_level"`
	Specialist      *string           `json:"recommended_specialist"`
}

// Review applies physician edits to a suggestion and returns the edited
// worksheet. Nothing is stored.
func (h *TriageHandler) Review(c *gin.Context) {
	var req reviewRequest
	if !bindJSON(c, &req) {
		return
	}

	w, err := h.triageSvc.Review(req.Suggestion, service.WorksheetEdits{
		AddDiagnoses:    req.AddDiagnoses,
		RemoveDiagnoses: req.RemoveDiagnoses,
		AddTests:        req.AddTests,
		RemoveTests:     req.RemoveTests,
		Risk:            req.Risk,
		Specialist:      req.Specialist,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, w)
}
