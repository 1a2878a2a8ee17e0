package v1

import (
	"github.com/gin-gonic/gin"

	"github.com/MrMKsharma/BHC-Health-Connect/internal/service"
)

type DirectoryHandler struct {
	dirSvc *service.DirectoryService
}

func NewDirectoryHandler(dirSvc *service.DirectoryService) *DirectoryHandler {
	return &DirectoryHandler{dirSvc: dirSvc}
}

func (h *DirectoryHandler) GetPatient(c *gin.Context) {
	claims := mustClaims(c)
	if claims == nil {
		return
	}

	p, err := h.dirSvc.GetPatient(c.Request.Context(), c.Param("id"), claims, c.ClientIP())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, p)
}

func (h *DirectoryHandler) SearchPatients(c *gin.Context) {
	results, err := h.dirSvc.SearchPatients(c.Request.Context(), c.Query("search"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, results)
}

func (h *DirectoryHandler) ListHospitals(c *gin.Context) {
	hospitals, err := h.dirSvc.Hospitals(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, hospitals)
}

func (h *DirectoryHandler) ListAmbulances(c *gin.Context) {
	if c.Query("status") == "available" {
		units, err := h.dirSvc.AvailableAmbulances(c.Request.Context())
		if err != nil {
			respondServiceError(c, err)
			return
		}
		respondOK(c, units)
		return
	}

	units, err := h.dirSvc.Ambulances(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, units)
}

func (h *DirectoryHandler) ListDoctors(c *gin.Context) {
	doctors, err := h.dirSvc.Doctors(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, doctors)
}

func (h *DirectoryHandler) ListSpecialists(c *gin.Context) {
	specialists, err := h.dirSvc.Specialists(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, specialists)
}

func (h *DirectoryHandler) ListSymptoms(c *gin.Context) {
	respondOK(c, h.dirSvc.CommonSymptoms(c.Request.Context()))
}
