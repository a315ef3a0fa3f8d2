package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"inventory/internal/core/domain/model/kernel"
	"inventory/internal/core/domain/model/location"
	"inventory/internal/core/domain/model/unit"
	"inventory/internal/pkg/errs"
)

// MatchIdentificationCommandHandler handles the identification matching
// workflow. The unit is selected and locked before the numbers are checked,
// so an exhausted scope reports not-found even when a number is a duplicate,
// and two concurrent matches can never claim the same unit.
type MatchIdentificationCommandHandler struct {
	uowFactory IdentificationUoWFactory
}

// NewMatchIdentificationCommandHandler creates a handler for identification matching.
func NewMatchIdentificationCommandHandler(uowFactory IdentificationUoWFactory) MatchIdentificationCommandHandler {
	return MatchIdentificationCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the identification command and returns the matched unit's ID.
// Fails with not-found when no unidentified unit remains in scope, a
// uniqueness conflict when either number is already in use, and a
// configuration error when no workshop location exists.
func (h MatchIdentificationCommandHandler) Handle(
	ctx context.Context,
	cmd MatchIdentificationCommand,
) (kernel.UUID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return kernel.UUID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	unitRepo := uow.UnitRepository()

	matched, err := unitRepo.GetFirstUnidentifiedForUpdate(ctx, cmd.ShipmentID())
	if err != nil {
		return kernel.UUID{}, err
	}

	engineTaken, err := unitRepo.ExistsWithEngineNumber(ctx, cmd.EngineNumber())
	if err != nil {
		return kernel.UUID{}, err
	}
	if engineTaken {
		return kernel.UUID{}, errs.NewUniquenessConflictError("engine_number", cmd.EngineNumber())
	}

	chassisTaken, err := unitRepo.ExistsWithChassisNumber(ctx, cmd.ChassisNumber())
	if err != nil {
		return kernel.UUID{}, err
	}
	if chassisTaken {
		return kernel.UUID{}, errs.NewUniquenessConflictError("chassis_number", cmd.ChassisNumber())
	}

	workshop, err := uow.LocationRepository().GetFirstByType(ctx, location.TypeWorkshop)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return kernel.UUID{}, errs.NewConfigurationMissingErrorWithCause("workshop location", err)
	}
	if err != nil {
		return kernel.UUID{}, err
	}

	now := time.Now().UTC()
	before := matched.Snapshot()
	if err = matched.Identify(cmd.EngineNumber(), cmd.ChassisNumber(), workshop, cmd.UserID(), now); err != nil {
		return kernel.UUID{}, err
	}

	if err = unitRepo.Update(ctx, matched); err != nil {
		return kernel.UUID{}, err
	}

	event, err := unit.NewEvent(
		kernel.NewUUID(),
		matched.ID(),
		unit.EventTypeIdentified,
		&before,
		matched.Snapshot(),
		cmd.UserID(),
		fmt.Sprintf("identified with engine %d and chassis %s", cmd.EngineNumber(), cmd.ChassisNumber()),
		now,
	)
	if err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.EventRepository().Append(ctx, event); err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.UUID{}, err
	}

	return matched.ID(), nil
}
