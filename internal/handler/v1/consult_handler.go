package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/MrMKsharma/BHC-Health-Connect/internal/domain/consult"
	"github.com/MrMKsharma/BHC-Health-Connect/internal/service"
)

type ConsultHandler struct {
	consultSvc *service.ConsultService
}

func NewConsultHandler(consultSvc *service.ConsultService) *ConsultHandler {
	return &ConsultHandler{consultSvc: consultSvc}
}

type createConsultRequest struct {
	HealthCardID string   `json:"health_card_id" binding:"required"`
	SpecialistID string   `json:"specialist_id" binding:"required"`
	Priority     string   `json:"priority" binding:"required"`
	Symptoms     []string `json:"symptoms" binding:"required"`
}

func (h *ConsultHandler) Create(c *gin.Context) {
	claims := mustClaims(c)
	if claims == nil {
		return
	}

	var req createConsultRequest
	if !bindJSON(c, &req) {
		return
	}

	r, err := h.consultSvc.Create(c.Request.Context(), service.CreateRequestCommand{
		HealthCardID: req.HealthCardID,
		SpecialistID: req.SpecialistID,
		RequestedBy:  claims.Email,
		Priority:     consult.Priority(req.Priority),
		Symptoms:     req.Symptoms,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondCreated(c, r)
}

func (h *ConsultHandler) ListForSpecialist(c *gin.Context) {
	specialistID := c.Query("specialist_id")
	if specialistID == "" {
		respondError(c, http.StatusBadRequest, "specialist_id query parameter is required")
		return
	}

	requests, err := h.consultSvc.ListForSpecialist(c.Request.Context(), specialistID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, requests)
}

func (h *ConsultHandler) Accept(c *gin.Context) {
	r, err := h.consultSvc.Accept(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, r)
}

func (h *ConsultHandler) Decline(c *gin.Context) {
	r, err := h.consultSvc.Decline(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, r)
}
