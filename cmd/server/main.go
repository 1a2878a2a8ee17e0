package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/MrMKsharma/BHC-Health-Connect/internal/config"
	"github.com/MrMKsharma/BHC-Health-Connect/internal/domain/triage"
	v1 "github.com/MrMKsharma/BHC-Health-Connect/internal/handler/v1"
	"github.com/MrMKsharma/BHC-Health-Connect/internal/repository/postgres"
	"github.com/MrMKsharma/BHC-Health-Connect/internal/service"
	"github.com/MrMKsharma/BHC-Health-Connect/internal/store/memstore"
	"github.com/MrMKsharma/BHC-Health-Connect/pkg/auth"
	"github.com/MrMKsharma/BHC-Health-Connect/pkg/capture"
	"github.com/MrMKsharma/BHC-Health-Connect/pkg/database"
	"github.com/MrMKsharma/BHC-Health-Connect/pkg/logger"
	"github.com/MrMKsharma/BHC-Health-Connect/pkg/metrics"
	"github.com/MrMKsharma/BHC-Health-Connect/pkg/tracer"
)

func main() {
	if err := run(); err != nil {
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		zap.NewExample().Error("failed to load configuration", zap.Error(err))
		return err
	}

	log, err := logger.New(cfg.Log)
	if err != nil {
		zap.NewExample().Error("failed to build logger", zap.Error(err))
		return err
	}
	defer func() { _ = log.Sync() }()

	log.Info("starting server",
		zap.String("app", cfg.App.Name),
		zap.String("version", cfg.App.Version),
		zap.String("environment", cfg.App.Environment),
	)

	tp, err := tracer.Init(cfg.Tracing)
	if err != nil {
		log.Error("failed to initialize tracer", zap.Error(err))
		return err
	}

	db, err := database.Connect(cfg.Database)
	if err != nil {
		log.Error("failed to connect to database", zap.Error(err))
		return err
	}
	if err := database.Migrate(db, log); err != nil {
		log.Error("failed to run migrations", zap.Error(err))
		return err
	}

	collector := metrics.NewCollector("bhc")
	jwtManager := auth.NewJWTManager(cfg.JWT)

	userRepo := postgres.NewUserRepository(db)
	auditRepo := postgres.NewAuditRepository(db)
	store := memstore.New(log)

	hub := service.NewSessionHub(log)
	auditSvc := service.NewAuditService(auditRepo, collector, log)
	authSvc := service.NewAuthService(userRepo, jwtManager, hub, auditSvc, log)
	dirSvc := service.NewDirectoryService(store, store, auditSvc, log)
	triageSvc := service.NewTriageService(triage.NewMatcher(), auditSvc, log)
	emergencySvc := service.NewEmergencyService(store, store, auditSvc, log)
	callSvc := service.NewCallService(&capture.SimulatedDevice{}, auditSvc, log)
	consultSvc := service.NewConsultService(store, store, store, log)

	// Log session lifecycle events so sign-ins are visible without a
	// subscriber-side consumer.
	events, unsubscribe := hub.Subscribe()
	go func() {
		for ev := range events {
			log.Info("session event",
				zap.String("kind", string(ev.Kind)),
				zap.String("user_id", ev.UserID.String()),
				zap.String("role", string(ev.Role)),
			)
		}
	}()

	if cfg.App.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.New()

	v1.RegisterRoutes(engine, cfg, log, jwtManager, collector, v1.Handlers{
		Auth:      v1.NewAuthHandler(authSvc, collector),
		Directory: v1.NewDirectoryHandler(dirSvc),
		Triage:    v1.NewTriageHandler(triageSvc, collector),
		Emergency: v1.NewEmergencyHandler(emergencySvc, collector),
		Call:      v1.NewCallHandler(callSvc, collector),
		Consult:   v1.NewConsultHandler(consultSvc),
	})

	srv := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("listening", zap.String("address", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		log.Error("server error", zap.Error(err))
		return err
	case sig := <-quit:
		log.Info("shutdown signal received", zap.String("signal", sig.String()))
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("http server shutdown failed", zap.Error(err))
	}

	// Teardown order: stop taking requests, end live calls so capture
	// devices release, drain the audit buffer, then close the hub and
	// flush traces.
	callSvc.Shutdown()
	auditSvc.Shutdown()
	unsubscribe()
	hub.Close()

	if err := tp.Shutdown(ctx); err != nil {
		log.Warn("tracer shutdown failed", zap.Error(err))
	}

	log.Info("server stopped")
	return nil
}
