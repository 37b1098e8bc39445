// Package auth is the session gate: every record operation passes through
// it before touching the store.
package auth

import (
	"encoding/json"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	authDomain "github.com/thihaaungym/vaultboard/internal/domain/auth"
)

// CookieName carries the session token between browser and server.
const CookieName = "sess"

type Auth struct {
	auth authDomain.Servicer
	log  *slog.Logger
}

func New(service authDomain.Servicer, log *slog.Logger) *Auth {
	return &Auth{
		auth: service,
		log:  log.With(slog.String("component", "auth_middleware")),
	}
}

// Middleware rejects any request without a live session. The response is
// deliberately uniform: missing, invalid and expired tokens are all the
// same 401 with no further detail.
func (a *Auth) Middleware() func(huma.Context, func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		token := ""
		if cookie, err := huma.ReadCookie(ctx, CookieName); err == nil {
			token = cookie.Value
		}

		ok, err := a.auth.Authenticate(ctx.Context(), token)
		if err != nil {
			a.log.Error("session validation failed", slog.String("error", err.Error()))
			a.reject(ctx)
			return
		}
		if !ok {
			a.reject(ctx)
			return
		}

		next(ctx)
	}
}

func (a *Auth) reject(ctx huma.Context) {
	ctx.SetStatus(http.StatusUnauthorized)
	ctx.SetHeader("Content-Type", "application/json")

	if err := json.NewEncoder(ctx.BodyWriter()).Encode(map[string]any{
		"ok":    false,
		"error": "UNAUTHORIZED",
	}); err != nil {
		a.log.Error("encode 401 body", slog.String("error", err.Error()))
	}
}
