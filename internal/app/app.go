// Package app wires configuration, repositories and services into a runnable console.
package app

import (
	"alcyxob/trainer-console/internal/api"
	"alcyxob/trainer-console/internal/config"
	"alcyxob/trainer-console/internal/idgen"
	"alcyxob/trainer-console/internal/repository/memory"
	"alcyxob/trainer-console/internal/service"
	"alcyxob/trainer-console/internal/storage"
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// App holds the services shared by the HTTP server and the terminal shell.
type App struct {
	Config   *config.Config
	Log      *zap.SugaredLogger
	Services api.Services
}

// New builds the in-memory repositories and services and seeds the configured trainers.
func New(ctx context.Context, cfg *config.Config, log *zap.SugaredLogger) (*App, error) {
	// --- Initialize Storage ---
	var fileStorage storage.FileStorage = storage.Disabled{}
	if cfg.S3.Enabled() {
		s3Storage, err := storage.NewS3Storage(ctx, cfg.S3, log)
		if err != nil {
			return nil, err
		}
		fileStorage = s3Storage
	} else {
		log.Infow("S3 bucket not configured, planner sharing disabled")
	}

	// --- Initialize Repositories ---
	ids := idgen.ObjectIDGenerator{}
	userRepo := memory.NewUserRepository(ids)
	plannerRepo := memory.NewPlannerRepository(ids)
	studentRepo := memory.NewStudentRepository(ids)

	// --- Initialize Services ---
	authService := service.NewAuthService(userRepo, cfg.JWT.Secret, cfg.JWT.Expiration, log)
	plannerService := service.NewPlannerService(plannerRepo, log)
	scheduleService := service.NewScheduleService(plannerRepo, log)

	if err := service.SeedTrainers(ctx, authService, cfg.Auth.Trainers, log); err != nil {
		return nil, err
	}

	return &App{
		Config: cfg,
		Log:    log,
		Services: api.Services{
			Auth:          authService,
			Planners:      plannerService,
			Schedules:     scheduleService,
			Editor:        service.NewEditorService(plannerService, scheduleService, log),
			Students:      service.NewStudentService(studentRepo, log),
			Export:        service.NewExportService(plannerService, fileStorage, cfg.S3.LinkExpiry, log),
			Confirmations: service.NewConfirmationBroker(cfg.Confirmation.TTL, log),
		},
	}, nil
}

// Router returns the gin engine serving the API.
func (a *App) Router() *gin.Engine {
	gin.SetMode(a.Config.Server.Mode)
	router := gin.New()
	router.Use(gin.Recovery())
	api.SetupRoutes(router, a.Config.JWT.Secret, a.Services, a.Log)
	return router
}

// Serve runs the HTTP server until ctx is cancelled, then shuts it down gracefully.
func (a *App) Serve(ctx context.Context) error {
	server := &http.Server{
		Addr:         a.Config.Server.Address,
		Handler:      a.Router(),
		ReadTimeout:  a.Config.Server.ReadTimeout,
		WriteTimeout: a.Config.Server.WriteTimeout,
		IdleTimeout:  120 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		a.Log.Infow("server starting", "address", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	a.Log.Infow("shutting down server")
	// The server has 5 seconds to finish the requests it is currently handling
	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()
	if err := server.Shutdown(ctxShutdown); err != nil {
		return err
	}
	a.Log.Infow("server exited")
	return nil
}
