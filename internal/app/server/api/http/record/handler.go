package record

import (
	"context"
	"errors"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"github.com/thihaaungym/vaultboard/internal/domain/record"
)

type Handler struct {
	store      record.Storer
	query      record.Lister
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(store record.Storer, query record.Lister, log *slog.Logger, mws huma.Middlewares) *Handler {
	return &Handler{
		store:      store,
		query:      query,
		log:        log,
		middleware: mws,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.listOp(), h.list)
	huma.Register(api, h.createOp(), h.create)
	huma.Register(api, h.updateOp(), h.update)
	huma.Register(api, h.deleteOp(), h.delete)
}

func (h *Handler) list(ctx context.Context, input *listInput) (*listOutput, error) {
	resp, err := h.query.List(ctx, record.Filter{
		Q:      input.Q,
		Status: record.Status(input.Status),
		Sort:   record.Sort(input.Sort),
	})
	if err != nil {
		h.log.Error("list records", slog.String("error", err.Error()))
		return nil, huma.Error500InternalServerError("internal error")
	}

	return &listOutput{
		Body: listResponse{
			OK:      true,
			Today:   resp.Today,
			Stats:   resp.Stats,
			Records: resp.Records,
		},
	}, nil
}

func (h *Handler) create(ctx context.Context, input *createInput) (*recordOutput, error) {
	rec, err := h.store.Create(ctx, record.CreateRequest{
		Name:      input.Body.Name,
		Email:     input.Body.Email,
		Password:  input.Body.Password,
		StartDate: input.Body.StartDate,
		EndDate:   input.Body.EndDate,
		Unlimited: input.Body.Unlimited,
		Note:      input.Body.Note,
	})
	if err != nil {
		return nil, h.mapError(err)
	}

	return &recordOutput{
		Body: recordResponse{OK: true, Record: rec},
	}, nil
}

func (h *Handler) update(ctx context.Context, input *updateInput) (*recordOutput, error) {
	rec, err := h.store.Update(ctx, input.ID, record.UpdateRequest{
		Name:      input.Body.Name,
		Email:     input.Body.Email,
		Password:  input.Body.Password,
		StartDate: input.Body.StartDate,
		EndDate:   input.Body.EndDate,
		Unlimited: input.Body.Unlimited,
		Note:      input.Body.Note,
	})
	if err != nil {
		return nil, h.mapError(err)
	}

	return &recordOutput{
		Body: recordResponse{OK: true, Record: rec},
	}, nil
}

func (h *Handler) delete(ctx context.Context, input *deleteInput) (*ackOutput, error) {
	if err := h.store.Delete(ctx, input.ID); err != nil {
		return nil, h.mapError(err)
	}

	return &ackOutput{
		Body: ackResponse{OK: true},
	}, nil
}

// mapError turns domain errors into the API's machine-readable kinds.
// Anything unrecognized is a backend failure and stays opaque.
func (h *Handler) mapError(err error) error {
	switch {
	case errors.Is(err, record.ErrInvalidDate):
		return huma.Error400BadRequest("DATE")
	case errors.Is(err, record.ErrInvalidRange):
		return huma.Error400BadRequest("RANGE")
	case errors.Is(err, record.ErrMissingID):
		return huma.Error400BadRequest("NOID")
	case errors.Is(err, record.ErrNotFound):
		return huma.Error404NotFound("NF")
	default:
		h.log.Error("record operation failed", slog.String("error", err.Error()))
		return huma.Error500InternalServerError("internal error")
	}
}
