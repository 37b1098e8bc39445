package auth

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	authMW "github.com/thihaaungym/vaultboard/internal/app/server/api/http/middleware/auth"
	authDomain "github.com/thihaaungym/vaultboard/internal/domain/auth"
	"github.com/thihaaungym/vaultboard/internal/domain/session"
)

type Handler struct {
	auth       authDomain.Servicer
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(service authDomain.Servicer, log *slog.Logger, mws huma.Middlewares) *Handler {
	return &Handler{
		auth:       service,
		log:        log,
		middleware: mws,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.loginOp(), h.login)
	huma.Register(api, h.logoutOp(), h.logout)
}

func (h *Handler) login(ctx context.Context, input *loginInput) (*loginOutput, error) {
	token, err := h.auth.Login(ctx, input.Body.Password)
	switch {
	case errors.Is(err, authDomain.ErrNoSecret):
		h.log.Error("login attempted with no admin secret configured")
		return nil, huma.Error500InternalServerError("CONFIG")
	case errors.Is(err, authDomain.ErrInvalidCredential):
		return nil, huma.Error401Unauthorized("INVALID")
	case err != nil:
		h.log.Error("login failed", slog.String("error", err.Error()))
		return nil, huma.Error500InternalServerError("internal error")
	}

	return &loginOutput{
		SetCookie: sessionCookie(token, int(session.TTL.Seconds())),
		Body:      okResponse{OK: true},
	}, nil
}

func (h *Handler) logout(ctx context.Context, input *logoutInput) (*logoutOutput, error) {
	if input.Session != "" {
		if err := h.auth.Logout(ctx, input.Session); err != nil {
			h.log.Error("logout failed", slog.String("error", err.Error()))
			return nil, huma.Error500InternalServerError("internal error")
		}
	}

	return &logoutOutput{
		SetCookie: sessionCookie("", -1),
		Body:      okResponse{OK: true},
	}, nil
}

func sessionCookie(value string, maxAge int) http.Cookie {
	return http.Cookie{
		Name:     authMW.CookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteStrictMode,
	}
}
