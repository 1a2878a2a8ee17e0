package v1

import (
	"github.com/gin-gonic/gin"

	"github.com/MrMKsharma/BHC-Health-Connect/internal/domain"
	"github.com/MrMKsharma/BHC-Health-Connect/internal/service"
	"github.com/MrMKsharma/BHC-Health-Connect/pkg/metrics"
)

type AuthHandler struct {
	authSvc   *service.AuthService
	collector *metrics.Collector
}

func NewAuthHandler(authSvc *service.AuthService, collector *metrics.Collector) *AuthHandler {
	return &AuthHandler{authSvc: authSvc, collector: collector}
}

type signUpRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	Name     string `json:"name" binding:"required"`
	Role     string `json:"role" binding:"required"`
	Phone    string `json:"phone"`
}

func (h *AuthHandler) SignUp(c *gin.Context) {
	var req signUpRequest
	if !bindJSON(c, &req) {
		return
	}

	pair, err := h.authSvc.SignUp(c.Request.Context(), service.SignUpCommand{
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
		Role:     domain.Role(req.Role),
		Phone:    req.Phone,
	}, c.ClientIP())
	if err != nil {
		respondServiceError(c, err)
		return
	}

	h.collector.SignupsTotal.Inc()
	h.collector.SessionEventsTotal.WithLabelValues(string(domain.SessionSignedIn)).Inc()
	respondCreated(c, pair)
}

type signInRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *AuthHandler) SignIn(c *gin.Context) {
	var req signInRequest
	if !bindJSON(c, &req) {
		return
	}

	pair, err := h.authSvc.SignIn(c.Request.Context(), req.Email, req.Password, c.ClientIP())
	if err != nil {
		h.collector.LoginsTotal.WithLabelValues("failure").Inc()
		respondServiceError(c, err)
		return
	}

	h.collector.LoginsTotal.WithLabelValues("success").Inc()
	h.collector.SessionEventsTotal.WithLabelValues(string(domain.SessionSignedIn)).Inc()
	respondOK(c, pair)
}

func (h *AuthHandler) SignOut(c *gin.Context) {
	claims := mustClaims(c)
	if claims == nil {
		return
	}

	h.authSvc.SignOut(c.Request.Context(), claims, c.ClientIP())
	h.collector.SessionEventsTotal.WithLabelValues(string(domain.SessionSignedOut)).Inc()
	respondOK(c, gin.H{"signed_out": true})
}

type refreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

func (h *AuthHandler) Refresh(c *gin.Context) {
	var req refreshRequest
	if !bindJSON(c, &req) {
		return
	}

	pair, err := h.authSvc.Refresh(c.Request.Context(), req.RefreshToken)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	h.collector.SessionEventsTotal.WithLabelValues(string(domain.SessionRefreshed)).Inc()
	respondOK(c, pair)
}

// Me returns the caller's profile row.
func (h *AuthHandler) Me(c *gin.Context) {
	claims := mustClaims(c)
	if claims == nil {
		return
	}

	profile, err := h.authSvc.Profile(c.Request.Context(), claims.UserID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, profile)
}

// Navigation returns the dashboard route and menu for the caller's role.
func (h *AuthHandler) Navigation(c *gin.Context) {
	claims := mustClaims(c)
	if claims == nil {
		return
	}
	respondOK(c, domain.RouteFor(claims.Role))
}
