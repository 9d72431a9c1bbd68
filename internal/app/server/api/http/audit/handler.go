package audit

import (
	"context"
	"fmt"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"medvault/internal/app/server/api/http/middleware/auth"
	"medvault/internal/domain/audit"
	"medvault/internal/domain/user"
)

type Handler struct {
	service    audit.Servicer
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(service audit.Servicer, log *slog.Logger, mws huma.Middlewares) *Handler {
	return &Handler{
		service:    service,
		log:        log,
		middleware: mws,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.listOp(), h.list)
	huma.Register(api, h.exportOp(), h.export)
}

func (h *Handler) list(ctx context.Context, input *listInput) (*listOutput, error) {
	if err := requireAdministrator(ctx); err != nil {
		return nil, err
	}

	entries, err := h.service.List(ctx, input.Limit, input.Offset)
	if err != nil {
		return nil, fmt.Errorf("list audit log: %w", err)
	}

	rows := make([]EntryResponse, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, EntryResponse{
			ID:        e.ID,
			ActorID:   e.ActorID,
			ActorName: e.ActorName,
			Action:    e.Action,
			Details:   e.Details,
			CreatedAt: e.CreatedAt,
		})
	}

	return &listOutput{
		Body: listResponse{Entries: rows, Total: len(rows)},
	}, nil
}

func (h *Handler) export(ctx context.Context, _ *struct{}) (*exportOutput, error) {
	if err := requireAdministrator(ctx); err != nil {
		return nil, err
	}

	data, err := h.service.ExportCSV(ctx)
	if err != nil {
		return nil, fmt.Errorf("export audit log: %w", err)
	}

	return &exportOutput{
		ContentType:        "text/csv",
		ContentDisposition: `attachment; filename="access_log.csv"`,
		Body:               data,
	}, nil
}

func requireAdministrator(ctx context.Context) error {
	caller, ok := auth.GetCaller(ctx)
	if !ok {
		return huma.Error401Unauthorized("Unauthorized")
	}
	if caller.Role != user.RoleAdministrator {
		return huma.Error403Forbidden("role not permitted")
	}
	return nil
}
