package v1

import (
	"github.com/gin-gonic/gin"

	"github.com/MrMKsharma/BHC-Health-Connect/internal/service"
	"github.com/MrMKsharma/BHC-Health-Connect/pkg/metrics"
)

type EmergencyHandler struct {
	emergencySvc *service.EmergencyService
	collector    *metrics.Collector
}

func NewEmergencyHandler(emergencySvc *service.EmergencyService, collector *metrics.Collector) *EmergencyHandler {
	return &EmergencyHandler{emergencySvc: emergencySvc, collector: collector}
}

type openCaseRequest struct {
	HealthCardID string `json:"health_card_id" binding:"required"`
}

func (h *EmergencyHandler) OpenCase(c *gin.Context) {
	var req openCaseRequest
	if !bindJSON(c, &req) {
		return
	}

	cs, err := h.emergencySvc.OpenCase(c.Request.Context(), req.HealthCardID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondCreated(c, cs)
}

func (h *EmergencyHandler) GetCase(c *gin.Context) {
	cs, err := h.emergencySvc.GetCase(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, cs)
}

type dispatchRequest struct {
	UnitID string `json:"unit_id" binding:"required"`
}

func (h *EmergencyHandler) Dispatch(c *gin.Context) {
	claims := mustClaims(c)
	if claims == nil {
		return
	}

	var req dispatchRequest
	if !bindJSON(c, &req) {
		return
	}

	cs, err := h.emergencySvc.Dispatch(c.Request.Context(), c.Param("id"), req.UnitID, claims, c.ClientIP())
	if err != nil {
		respondServiceError(c, err)
		return
	}

	h.collector.DispatchesTotal.Inc()
	respondOK(c, cs)
}

type reserveBedRequest struct {
	HospitalID int `json:"hospital_id" binding:"required"`
}

func (h *EmergencyHandler) ReserveBed(c *gin.Context) {
	claims := mustClaims(c)
	if claims == nil {
		return
	}

	var req reserveBedRequest
	if !bindJSON(c, &req) {
		return
	}

	cs, err := h.emergencySvc.ReserveBed(c.Request.Context(), c.Param("id"), req.HospitalID, claims, c.ClientIP())
	if err != nil {
		respondServiceError(c, err)
		return
	}

	h.collector.ReservationsTotal.Inc()
	respondOK(c, cs)
}

func (h *EmergencyHandler) Checklist(c *gin.Context) {
	steps, err := h.emergencySvc.Checklist(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, steps)
}
