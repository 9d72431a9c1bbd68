package user

import (
	"context"
	"errors"
	"fmt"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"medvault/internal/app/server/api/http/middleware/auth"
	"medvault/internal/domain/audit"
	"medvault/internal/domain/session"
	"medvault/internal/domain/user"
)

type Handler struct {
	service   user.Servicer
	session   session.Servicer
	audit     audit.Servicer
	log       *slog.Logger
	public    huma.Middlewares
	protected huma.Middlewares
}

func NewHandler(service user.Servicer, sessionSvc session.Servicer, auditSvc audit.Servicer, log *slog.Logger, public, protected huma.Middlewares) *Handler {
	return &Handler{
		service:   service,
		session:   sessionSvc,
		audit:     auditSvc,
		log:       log,
		public:    public,
		protected: protected,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.loginOp(), h.login)
	huma.Register(api, h.logoutOp(), h.logout)
	huma.Register(api, h.registerOp(), h.register)
	huma.Register(api, h.meOp(), h.me)
	huma.Register(api, h.cliniciansOp(), h.clinicians)
}

func (h *Handler) login(ctx context.Context, input *loginInput) (*loginOutput, error) {
	u, err := h.service.Authenticate(ctx, input.Body.Login, input.Body.Password)
	if err != nil {
		return nil, huma.Error401Unauthorized("Invalid credentials")
	}

	token, err := h.session.Create(ctx, u.ID)
	if err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}

	h.audit.Record(ctx, u.ID, audit.ActionUserLogin, "login "+u.Login)

	return &loginOutput{
		Body: LoginResponse{
			Token: token,
			Role:  string(u.Role),
		},
	}, nil
}

func (h *Handler) logout(ctx context.Context, _ *struct{}) (*logoutOutput, error) {
	caller, ok := auth.GetCaller(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	token, ok := auth.GetToken(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	if err := h.session.Revoke(ctx, token); err != nil {
		return nil, fmt.Errorf("revoke session: %w", err)
	}

	h.audit.Record(ctx, caller.ID, audit.ActionUserLogout, "logout "+caller.Login)

	return &logoutOutput{Body: StatusResponse{Status: "Ok"}}, nil
}

func (h *Handler) register(ctx context.Context, input *registerInput) (*registerOutput, error) {
	caller, ok := auth.GetCaller(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}
	if caller.Role != user.RoleAdministrator {
		return nil, huma.Error403Forbidden("role not permitted")
	}

	role, err := user.ParseRole(input.Body.Role)
	if err != nil {
		return nil, huma.Error422UnprocessableEntity("unknown role: " + input.Body.Role)
	}

	userID, err := h.service.Register(ctx, input.Body.Login, input.Body.Password, role)
	if err != nil {
		switch {
		case errors.Is(err, user.ErrLoginTaken):
			return nil, huma.Error409Conflict("login already taken")
		case errors.Is(err, user.ErrInvalidInput):
			return nil, huma.Error422UnprocessableEntity(err.Error())
		}
		return nil, err
	}

	return &registerOutput{
		Body: RegisterResponse{ID: userID, Status: "Ok"},
	}, nil
}

func (h *Handler) me(ctx context.Context, _ *struct{}) (*meOutput, error) {
	caller, ok := auth.GetCaller(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	return &meOutput{Body: toAccount(caller)}, nil
}

func (h *Handler) clinicians(ctx context.Context, _ *struct{}) (*cliniciansOutput, error) {
	if _, ok := auth.GetCaller(ctx); !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	users, err := h.service.ListClinicians(ctx)
	if err != nil {
		return nil, fmt.Errorf("list clinicians: %w", err)
	}

	accounts := make([]Account, 0, len(users))
	for _, u := range users {
		accounts = append(accounts, toAccount(u))
	}

	return &cliniciansOutput{
		Body: CliniciansResponse{Clinicians: accounts},
	}, nil
}
