//POST /user/login          # Login (public)
//POST /user/logout         # Revoke session (auth)
//POST /user/register       # Create staff account (auth, administrator)
//GET  /user/me             # Current account (auth)
//GET  /api/clinicians      # Clinician directory (auth)
//GET  /api/patients        # Role-scoped patient listing (auth)
//POST /api/patients        # Register patient (auth, administrator)
//GET  /api/patients/{id}   # Projected patient view (auth)
//PUT  /api/patients/{id}   # Update patient (auth, role-filtered)
//GET  /api/audit           # Access log (auth, administrator)
//GET  /api/audit/export    # Access log CSV (auth, administrator)

package api

import (
	"fmt"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"golang.org/x/exp/slog"

	"medvault/internal/app/server/api/http/middleware"
	"medvault/internal/app/server/api/http/middleware/auth"
	"medvault/internal/app/server/api/http/middleware/logger"
	"medvault/internal/app/server/config"
	"medvault/internal/crypto"
	"medvault/internal/domain/audit"
	"medvault/internal/domain/patient"
	"medvault/internal/domain/session"
	"medvault/internal/domain/user"
	"medvault/internal/infrastructure/storage/postgres"

	auditAPI "medvault/internal/app/server/api/http/audit"
	healthAPI "medvault/internal/app/server/api/http/health"
	patientAPI "medvault/internal/app/server/api/http/patient"
	userAPI "medvault/internal/app/server/api/http/user"
)

type Handlers struct {
	Health  *healthAPI.Handler
	User    *userAPI.Handler
	Patient *patientAPI.Handler
	Audit   *auditAPI.Handler
}

// New builds a *chi.Mux with every operation registered through huma.
func New(cfg *config.Config, storage *postgres.Storage, log *slog.Logger) (*chi.Mux, error) {
	mux := chi.NewMux()

	humaCfg := huma.DefaultConfig("MedVault API", "1.0.0")
	humaCfg.Components.SecuritySchemes = map[string]*huma.SecurityScheme{
		"bearer": {Type: "http", Scheme: "bearer"},
	}

	API := humachi.New(mux, humaCfg)

	h, err := handlers(cfg, storage, log)
	if err != nil {
		return nil, err
	}
	h.Health.SetupRoutes(API)
	h.User.SetupRoutes(API)
	h.Patient.SetupRoutes(API)
	h.Audit.SetupRoutes(API)

	return mux, nil
}

func handlers(cfg *config.Config, storage *postgres.Storage, log *slog.Logger) (*Handlers, error) {
	pool := storage.Pool()

	userRepo := postgres.NewUserRepository(pool, log)
	userService := user.NewService(userRepo, user.NewAccountValidator(), log)

	sessionRepo := postgres.NewSessionRepository(pool, log)
	sessionService := session.NewService(sessionRepo, log)

	auditRepo := postgres.NewAuditRepository(pool, log)
	auditService := audit.NewService(auditRepo, log)

	codec, err := crypto.NewCodec(cfg.Crypto.Key)
	if err != nil {
		return nil, fmt.Errorf("init field codec: %w", err)
	}

	patientRepo := postgres.NewPatientRepository(pool, log)
	patientService := patient.NewService(patientRepo, codec, auditService, log)

	authMW := auth.New(sessionService, userService, log)
	loggerMW := logger.New(log)
	middlewares := middleware.NewContainer()

	middlewares.Add(loggerMW.Middleware())
	healthHandler := healthAPI.NewHandler(log, middlewares.GetAllAndClear())

	middlewares.Add(loggerMW.Middleware())
	publicMW := middlewares.GetAllAndClear()
	middlewares.Add(authMW.Middleware())
	middlewares.Add(loggerMW.Middleware())
	userHandler := userAPI.NewHandler(userService, sessionService, auditService, log, publicMW, middlewares.GetAllAndClear())

	middlewares.Add(authMW.Middleware())
	middlewares.Add(loggerMW.Middleware())
	patientHandler := patientAPI.NewHandler(patientService, log, middlewares.GetAllAndClear())

	middlewares.Add(authMW.Middleware())
	middlewares.Add(loggerMW.Middleware())
	auditHandler := auditAPI.NewHandler(auditService, log, middlewares.GetAllAndClear())

	return &Handlers{
		Health:  healthHandler,
		User:    userHandler,
		Patient: patientHandler,
		Audit:   auditHandler,
	}, nil
}
