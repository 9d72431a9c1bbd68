package auth

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"medvault/internal/domain/session"
	"medvault/internal/domain/user"
)

// Auth resolves the bearer token into a fully-loaded caller (identity plus
// role) before any handler runs. Everything downstream treats the resolved
// role as authoritative.
type Auth struct {
	session session.Servicer
	users   user.Servicer
	log     *slog.Logger
}

func New(session session.Servicer, users user.Servicer, log *slog.Logger) *Auth {
	return &Auth{
		session: session,
		users:   users,
		log:     log.With("component", "auth_middleware"),
	}
}

type contextKey string

const callerKey contextKey = "caller"

// tokenKey keeps the raw bearer token around for logout.
const tokenKey contextKey = "token"

func (a *Auth) Middleware() func(huma.Context, func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		header := ctx.Header("Authorization")

		if len(header) < 7 || header[:7] != "Bearer " {
			a.reject(ctx)
			return
		}
		token := header[7:]

		userID, err := a.session.Validate(ctx.Context(), token)
		if err != nil {
			a.log.Debug("session validation failed", "error", err)
			a.reject(ctx)
			return
		}

		caller, err := a.users.Find(ctx.Context(), userID)
		if err != nil {
			a.log.Error("failed to load caller", "user_id", userID, "error", err)
			a.reject(ctx)
			return
		}

		newCtx := context.WithValue(ctx.Context(), callerKey, caller)
		newCtx = context.WithValue(newCtx, tokenKey, token)
		next(huma.WithContext(ctx, newCtx))
	}
}

func (a *Auth) reject(ctx huma.Context) {
	ctx.SetStatus(http.StatusUnauthorized)
	ctx.SetHeader("Content-Type", "application/json")

	if err := json.NewEncoder(ctx.BodyWriter()).Encode(map[string]string{
		"error": "Unauthorized",
	}); err != nil {
		a.log.Error("failed to encode rejection", "error", err)
	}
}

// GetCaller returns the authenticated caller stored by the middleware.
func GetCaller(ctx context.Context) (user.User, bool) {
	caller, ok := ctx.Value(callerKey).(user.User)
	return caller, ok
}

// GetToken returns the raw bearer token for the current request.
func GetToken(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(tokenKey).(string)
	return token, ok
}
