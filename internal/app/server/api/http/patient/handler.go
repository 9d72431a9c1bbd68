package patient

import (
	"context"
	"errors"

	"github.com/danielgtaylor/huma/v2"
	"github.com/google/uuid"
	"golang.org/x/exp/slog"

	"medvault/internal/app/server/api/http/middleware/auth"
	"medvault/internal/domain/patient"
)

type Handler struct {
	service    patient.Servicer
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(service patient.Servicer, log *slog.Logger, mws huma.Middlewares) *Handler {
	return &Handler{
		service:    service,
		log:        log,
		middleware: mws,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.listOp(), h.list)
	huma.Register(api, h.createOp(), h.create)
	huma.Register(api, h.findOp(), h.find)
	huma.Register(api, h.updateOp(), h.update)
}

func (h *Handler) list(ctx context.Context, _ *struct{}) (*listOutput, error) {
	caller, ok := auth.GetCaller(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	views, err := h.service.List(ctx, caller)
	if err != nil {
		return nil, mapError(err)
	}

	return &listOutput{
		Body: listResponse{
			Patients: views,
			Total:    len(views),
		},
	}, nil
}

func (h *Handler) find(ctx context.Context, input *findInput) (*viewOutput, error) {
	caller, ok := auth.GetCaller(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	id, err := uuid.Parse(input.ID)
	if err != nil {
		return nil, huma.Error422UnprocessableEntity("invalid patient id")
	}

	view, err := h.service.Get(ctx, caller, id)
	if err != nil {
		return nil, mapError(err)
	}

	return &viewOutput{Body: view}, nil
}

func (h *Handler) create(ctx context.Context, input *createInput) (*viewOutput, error) {
	caller, ok := auth.GetCaller(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	view, err := h.service.Create(ctx, caller, patient.CreateInput{
		Name:                input.Body.Name,
		Diagnosis:           input.Body.Diagnosis,
		Age:                 input.Body.Age,
		Contact:             input.Body.Contact,
		AssignedClinicianID: input.Body.AssignedClinicianID,
		AnonymizedName:      input.Body.AnonymizedName,
		AnonymizedContact:   input.Body.AnonymizedContact,
	})
	if err != nil {
		return nil, mapError(err)
	}

	return &viewOutput{Body: view}, nil
}

func (h *Handler) update(ctx context.Context, input *updateInput) (*viewOutput, error) {
	caller, ok := auth.GetCaller(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	id, err := uuid.Parse(input.ID)
	if err != nil {
		return nil, huma.Error422UnprocessableEntity("invalid patient id")
	}

	view, err := h.service.Update(ctx, caller, id, patient.Change{
		Name:                input.Body.Name,
		Diagnosis:           input.Body.Diagnosis,
		Age:                 input.Body.Age,
		Contact:             input.Body.Contact,
		AssignedClinicianID: input.Body.AssignedClinicianID,
	})
	if err != nil {
		return nil, mapError(err)
	}

	return &viewOutput{Body: view}, nil
}

// mapError translates domain errors into distinguishable HTTP statuses:
// authorization failures and validation failures must never look alike
// to the caller-facing layer.
func mapError(err error) error {
	switch {
	case errors.Is(err, patient.ErrUnauthorized):
		return huma.Error403Forbidden("role not permitted")
	case errors.Is(err, patient.ErrInvalidInput):
		return huma.Error422UnprocessableEntity(err.Error())
	case errors.Is(err, patient.ErrNotFound):
		return huma.Error404NotFound("patient not found")
	default:
		return err
	}
}
