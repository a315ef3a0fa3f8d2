package queries

import (
	"errors"
	"time"

	"inventory/internal/core/domain/model/kernel"
	"inventory/internal/core/domain/model/transfer"
	"inventory/internal/pkg/errs"
	"inventory/internal/pkg/guard"
)

var ErrGetTransfersQueryIsNotConstructed = errors.New(
	"GetTransfersQuery must be created via NewGetTransfersQuery constructor",
)

// GetTransfersQuery retrieves transfers, newest first, optionally filtered by
// status or unit.
type GetTransfersQuery struct {
	status *transfer.Status
	unitID *kernel.UUID
	limit  int
	offset int

	guard guard.ConstructorGuard
}

// NewGetTransfersQuery creates a transfer listing query. Both filters are
// optional.
func NewGetTransfersQuery(status *transfer.Status, unitID *kernel.UUID, limit, offset int) (GetTransfersQuery, error) {
	if status != nil {
		if err := status.Validate(); err != nil {
			return GetTransfersQuery{}, err
		}
	}
	if unitID != nil {
		if err := unitID.Validate(); err != nil {
			return GetTransfersQuery{}, err
		}
	}
	if limit > maxPageSize {
		return GetTransfersQuery{}, errs.NewValueIsInvalidError("limit")
	}
	if limit <= 0 {
		limit = defaultPageSize
	}
	if offset < 0 {
		return GetTransfersQuery{}, errs.NewValueIsInvalidError("offset")
	}

	return GetTransfersQuery{
		status: status,
		unitID: unitID,
		limit:  limit,
		offset: offset,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetTransfersQuery) Validate() error {
	return q.guard.Validate(ErrGetTransfersQueryIsNotConstructed)
}

// Status returns the optional status filter.
func (q GetTransfersQuery) Status() *transfer.Status {
	return q.status
}

// UnitID returns the optional unit filter.
func (q GetTransfersQuery) UnitID() *kernel.UUID {
	return q.unitID
}

// Limit returns the page size.
func (q GetTransfersQuery) Limit() int {
	return q.limit
}

// Offset returns the page offset.
func (q GetTransfersQuery) Offset() int {
	return q.offset
}

// GetTransfersQueryResponse is the flat read model of one transfer.
type GetTransfersQueryResponse struct {
	ID             kernel.UUID
	UnitID         kernel.UUID
	FromLocationID kernel.UUID
	ToLocationID   kernel.UUID
	ETA            *time.Time
	Status         string
	Reason         string
	CreatedBy      kernel.UUID
	CreatedAt      time.Time
	ReceivedBy     *kernel.UUID
	ReceivedAt     *time.Time
}
