package v1

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/MrMKsharma/BHC-Health-Connect/internal/config"
	"github.com/MrMKsharma/BHC-Health-Connect/internal/domain"
	"github.com/MrMKsharma/BHC-Health-Connect/pkg/auth"
	"github.com/MrMKsharma/BHC-Health-Connect/pkg/metrics"
)

// Handlers bundles everything RegisterRoutes needs.
type Handlers struct {
	Auth      *AuthHandler
	Directory *DirectoryHandler
	Triage    *TriageHandler
	Emergency *EmergencyHandler
	Call      *CallHandler
	Consult   *ConsultHandler
}

// RegisterRoutes wires the full API surface onto the engine. Role guards:
// triage and referrals are clinician features, emergency resource
// management is for general physicians and admins, and the specialist
// inbox is specialist-only.
func RegisterRoutes(
	engine *gin.Engine,
	cfg *config.Config,
	log *zap.Logger,
	jwtManager *auth.JWTManager,
	collector *metrics.Collector,
	h Handlers,
) {
	engine.Use(
		RequestID(),
		RequestLogger(log),
		Metrics(collector),
		gin.Recovery(),
		cors.New(cors.Config{
			AllowOrigins:  cfg.CORS.AllowedOrigins,
			AllowMethods:  cfg.CORS.AllowedMethods,
			AllowHeaders:  cfg.CORS.AllowedHeaders,
			ExposeHeaders: []string{"X-Request-ID"},
			MaxAge:        cfg.CORS.MaxAge,
		}),
	)

	engine.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "version": cfg.App.Version})
	})
	engine.GET("/metrics", gin.WrapH(metrics.MetricsHandler()))

	api := engine.Group("/api/v1")

	authGroup := api.Group("/auth")
	{
		authGroup.POST("/signup", h.Auth.SignUp)
		authGroup.POST("/login", h.Auth.SignIn)
		authGroup.POST("/refresh", h.Auth.Refresh)

		authGroup.POST("/logout", Authenticated(jwtManager), h.Auth.SignOut)
		authGroup.GET("/me", Authenticated(jwtManager), h.Auth.Me)
	}

	authed := api.Group("", Authenticated(jwtManager))
	{
		authed.GET("/navigation", h.Auth.Navigation)

		authed.GET("/patients", h.Directory.SearchPatients)
		authed.GET("/patients/:id", h.Directory.GetPatient)
		authed.GET("/hospitals", h.Directory.ListHospitals)
		authed.GET("/ambulances", h.Directory.ListAmbulances)
		authed.GET("/doctors", h.Directory.ListDoctors)
		authed.GET("/specialists", h.Directory.ListSpecialists)
		authed.GET("/symptoms", h.Directory.ListSymptoms)
	}

	clinicians := api.Group("", Authenticated(jwtManager),
		RequireRoles(domain.RoleGeneralPhysician, domain.RoleSpecialist))
	{
		clinicians.POST("/triage", h.Triage.Evaluate)
		clinicians.POST("/triage/review", h.Triage.Review)

		clinicians.POST("/calls", h.Call.Start)
		clinicians.GET("/calls/:id", h.Call.Get)
		clinicians.POST("/calls/:id/connect", h.Call.Connect)
		clinicians.POST("/calls/:id/toggle", h.Call.Toggle)
		clinicians.PUT("/calls/:id/notes", h.Call.SetNotes)
		clinicians.POST("/calls/:id/end", h.Call.End)
	}

	emergencyGroup := api.Group("/emergency", Authenticated(jwtManager),
		RequireRoles(domain.RoleGeneralPhysician, domain.RoleAdmin))
	{
		emergencyGroup.POST("/cases", h.Emergency.OpenCase)
		emergencyGroup.GET("/cases/:id", h.Emergency.GetCase)
		emergencyGroup.POST("/cases/:id/dispatch", h.Emergency.Dispatch)
		emergencyGroup.POST("/cases/:id/reserve", h.Emergency.ReserveBed)
		emergencyGroup.GET("/cases/:id/checklist", h.Emergency.Checklist)
	}

	consultGroup := api.Group("/consults", Authenticated(jwtManager))
	{
		consultGroup.POST("", RequireRoles(domain.RoleGeneralPhysician), h.Consult.Create)

		specialistOnly := RequireRoles(domain.RoleSpecialist)
		consultGroup.GET("", specialistOnly, h.Consult.ListForSpecialist)
		consultGroup.POST("/:id/accept", specialistOnly, h.Consult.Accept)
		consultGroup.POST("/:id/decline", specialistOnly, h.Consult.Decline)
	}
}
