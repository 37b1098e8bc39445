// VaultBoard API surface:
//
//	POST   /api/login        # Log in with the admin password (public)
//	POST   /api/logout       # Revoke the current session (public)
//	GET    /api/health       # Liveness (public)
//	GET    /api/records      # List with filter/sort/stats (session)
//	POST   /api/records      # Create a record (session)
//	PUT    /api/records/{id} # Partial update (session)
//	DELETE /api/records/{id} # Delete, idempotent (session)
package api

import (
	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"golang.org/x/exp/slog"

	authAPI "github.com/thihaaungym/vaultboard/internal/app/server/api/http/auth"
	healthAPI "github.com/thihaaungym/vaultboard/internal/app/server/api/http/health"
	"github.com/thihaaungym/vaultboard/internal/app/server/api/http/middleware"
	authMW "github.com/thihaaungym/vaultboard/internal/app/server/api/http/middleware/auth"
	loggerMW "github.com/thihaaungym/vaultboard/internal/app/server/api/http/middleware/logger"
	recordAPI "github.com/thihaaungym/vaultboard/internal/app/server/api/http/record"
	"github.com/thihaaungym/vaultboard/internal/config"
	authDomain "github.com/thihaaungym/vaultboard/internal/domain/auth"
	"github.com/thihaaungym/vaultboard/internal/domain/record"
	"github.com/thihaaungym/vaultboard/internal/domain/session"
	"github.com/thihaaungym/vaultboard/internal/kv"
)

type Handlers struct {
	Health *healthAPI.Handler
	Auth   *authAPI.Handler
	Record *recordAPI.Handler
}

// New builds a *chi.Mux with every operation registered through huma.
func New(store kv.Store, cfg *config.Config, log *slog.Logger) *chi.Mux {
	mux := chi.NewMux()

	humaConfig := huma.DefaultConfig("VaultBoard API", "1.0.0")
	humaConfig.Components.SecuritySchemes = map[string]*huma.SecurityScheme{
		"session": {Type: "apiKey", In: "cookie", Name: authMW.CookieName},
	}

	API := humachi.New(mux, humaConfig)

	h := handlers(store, cfg, log)
	h.Health.SetupRoutes(API)
	h.Auth.SetupRoutes(API)
	h.Record.SetupRoutes(API)

	return mux
}

func handlers(store kv.Store, cfg *config.Config, log *slog.Logger) *Handlers {
	sessionRepo := session.NewRepository(store, log)
	sessionService := session.NewService(sessionRepo, log)
	authService := authDomain.NewService(cfg.Auth.AdminPassword, sessionService, log)

	gateMW := authMW.New(authService, log)
	logMW := loggerMW.New(log)
	middlewares := middleware.NewContainer()

	middlewares.Add(logMW.Middleware())
	healthHandler := healthAPI.NewHandler(log, middlewares.GetAllAndClear())

	middlewares.Add(logMW.Middleware())
	authHandler := authAPI.NewHandler(authService, log, middlewares.GetAllAndClear())

	recordStore := record.NewStore(store, log)
	recordQuery := record.NewQuery(recordStore, log)
	middlewares.Add(gateMW.Middleware())
	middlewares.Add(logMW.Middleware())
	recordHandler := recordAPI.NewHandler(recordStore, recordQuery, log, middlewares.GetAllAndClear())

	return &Handlers{
		Health: healthHandler,
		Auth:   authHandler,
		Record: recordHandler,
	}
}
