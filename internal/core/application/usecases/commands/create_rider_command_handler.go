package commands

import (
	"context"
	"time"

	"zapshift/internal/core/domain/model/rider"
)

// CreateRiderCommandHandler registers rider applications in the pending
// state.
type CreateRiderCommandHandler struct {
	uowFactory RiderUoWFactory
}

// NewCreateRiderCommandHandler creates a handler for rider applications.
func NewCreateRiderCommandHandler(uowFactory RiderUoWFactory) CreateRiderCommandHandler {
	return CreateRiderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the rider application command and returns the stored
// rider.
func (h CreateRiderCommandHandler) Handle(
	ctx context.Context, command CreateRiderCommand,
) (*rider.Rider, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}

	newRider, err := rider.NewRider(
		command.RiderID(),
		command.Name(),
		command.Email(),
		command.Phone(),
		command.District(),
		time.Now().UTC(),
	)
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.RiderRepository().Add(ctx, newRider); err != nil {
		return nil, err
	}

	if err := uow.Commit(ctx); err != nil {
		return nil, err
	}

	return newRider, nil
}
