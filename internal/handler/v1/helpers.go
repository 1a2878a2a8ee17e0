package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/MrMKsharma/BHC-Health-Connect/internal/domain/call"
	"github.com/MrMKsharma/BHC-Health-Connect/internal/domain/consult"
	"github.com/MrMKsharma/BHC-Health-Connect/internal/domain/directory"
	"github.com/MrMKsharma/BHC-Health-Connect/internal/domain/emergency"
	"github.com/MrMKsharma/BHC-Health-Connect/internal/domain/patient"
	"github.com/MrMKsharma/BHC-Health-Connect/internal/domain/triage"
	"github.com/MrMKsharma/BHC-Health-Connect/internal/service"
	"github.com/MrMKsharma/BHC-Health-Connect/pkg/capture"
)

type APIResponse[T any] struct {
	Data    T      `json:"data"`
	Message string `json:"message,omitempty"`
}

type ErrorResponse struct {
	Error   string            `json:"error"`
	Code    string            `json:"code,omitempty"`
	Details map[string]string `json:"details,omitempty"`
}

type ValidationErrorResponse struct {
	Error  string   `json:"error"`
	Fields []string `json:"fields"`
}

func respondOK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, APIResponse[any]{Data: data})
}

func respondCreated(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, APIResponse[any]{Data: data})
}

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, ErrorResponse{Error: message})
}

func respondServiceError(c *gin.Context, err error) {
	var validErr *service.ValidationError
	if errors.As(err, &validErr) {
		c.JSON(http.StatusBadRequest, ValidationErrorResponse{
			Error:  "validation failed",
			Fields: validErr.Fields,
		})
		return
	}

	switch {
	case errors.Is(err, patient.ErrPatientNotFound),
		errors.Is(err, directory.ErrHospitalNotFound),
		errors.Is(err, directory.ErrAmbulanceNotFound),
		errors.Is(err, directory.ErrDoctorNotFound),
		errors.Is(err, directory.ErrSpecialistNotFound),
		errors.Is(err, emergency.ErrCaseNotFound),
		errors.Is(err, call.ErrSessionNotFound),
		errors.Is(err, consult.ErrRequestNotFound),
		errors.Is(err, service.ErrProfileNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})

	case errors.Is(err, service.ErrEmailTaken),
		errors.Is(err, emergency.ErrAlreadyDispatched),
		errors.Is(err, emergency.ErrAlreadyReserved),
		errors.Is(err, consult.ErrInvalidStatusTransition):
		c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})

	case errors.Is(err, patient.ErrIDRequired),
		errors.Is(err, triage.ErrNoSymptoms),
		errors.Is(err, triage.ErrEmptyEntry),
		errors.Is(err, triage.ErrInvalidRisk),
		errors.Is(err, emergency.ErrNoUnitSelected),
		errors.Is(err, emergency.ErrNoHospitalSelected),
		errors.Is(err, emergency.ErrUnitUnavailable),
		errors.Is(err, emergency.ErrNoBedsAvailable),
		errors.Is(err, call.ErrNamesRequired),
		errors.Is(err, call.ErrSessionEnded),
		errors.Is(err, consult.ErrInvalidPriority),
		errors.Is(err, consult.ErrSymptomsRequired):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})

	case errors.Is(err, capture.ErrPermissionDenied),
		errors.Is(err, capture.ErrNoDevice):
		c.JSON(http.StatusServiceUnavailable, ErrorResponse{
			Error: err.Error(),
			Code:  "DEVICE_UNAVAILABLE",
		})

	case errors.Is(err, service.ErrForbidden):
		c.JSON(http.StatusForbidden, ErrorResponse{Error: "access denied"})

	case errors.Is(err, service.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "invalid credentials"})

	case errors.Is(err, service.ErrAccountInactive):
		c.JSON(http.StatusForbidden, ErrorResponse{Error: err.Error()})

	case errors.Is(err, service.ErrAccountLocked):
		c.JSON(http.StatusTooManyRequests, ErrorResponse{
			Error: "account temporarily locked",
			Code:  "ACCOUNT_LOCKED",
		})

	default:
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
	}
}

func bindJSON(c *gin.Context, obj any) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request: " + err.Error()})
		return false
	}
	return true
}

func parseUUID(c *gin.Context, param string) (uuid.UUID, bool) {
	raw := c.Param(param)
	id, err := uuid.Parse(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid " + param + ": must be a valid UUID"})
		return uuid.Nil, false
	}
	return id, true
}
