// Package queries contains read-only operations over the inventory store.
// Implements the Query side of the CQRS architecture: handlers read with raw
// SQL and return flat read models, bypassing the aggregates entirely.
package queries

import (
	"errors"
	"time"

	"inventory/internal/core/domain/model/kernel"
	"inventory/internal/core/domain/model/unit"
	"inventory/internal/pkg/errs"
	"inventory/internal/pkg/guard"
)

const (
	defaultPageSize = 50
	maxPageSize     = 500
)

var ErrGetUnitsQueryIsNotConstructed = errors.New(
	"GetUnitsQuery must be created via NewGetUnitsQuery constructor",
)

// GetUnitsFilter narrows a unit listing. Nil fields are not applied.
type GetUnitsFilter struct {
	Status     *unit.Status
	LocationID *kernel.UUID
	ShipmentID *kernel.UUID
	Brand      *string
}

// GetUnitsQuery retrieves a filtered, paginated page of units ordered by
// creation time, oldest first.
type GetUnitsQuery struct {
	filter GetUnitsFilter
	limit  int
	offset int

	guard guard.ConstructorGuard
}

// NewGetUnitsQuery creates a unit listing query.
// A non-positive limit falls back to the default page size; limits above the
// maximum are rejected.
func NewGetUnitsQuery(filter GetUnitsFilter, limit, offset int) (GetUnitsQuery, error) {
	if filter.Status != nil {
		if err := filter.Status.Validate(); err != nil {
			return GetUnitsQuery{}, err
		}
	}
	if limit > maxPageSize {
		return GetUnitsQuery{}, errs.NewValueIsInvalidError("limit")
	}
	if limit <= 0 {
		limit = defaultPageSize
	}
	if offset < 0 {
		return GetUnitsQuery{}, errs.NewValueIsInvalidError("offset")
	}

	return GetUnitsQuery{
		filter: filter,
		limit:  limit,
		offset: offset,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetUnitsQuery) Validate() error {
	return q.guard.Validate(ErrGetUnitsQueryIsNotConstructed)
}

// Filter returns the listing filter.
func (q GetUnitsQuery) Filter() GetUnitsFilter {
	return q.filter
}

// Limit returns the page size.
func (q GetUnitsQuery) Limit() int {
	return q.limit
}

// Offset returns the page offset.
func (q GetUnitsQuery) Offset() int {
	return q.offset
}

// GetUnitsQueryResponse is the flat read model of one unit.
type GetUnitsQueryResponse struct {
	ID               kernel.UUID
	Brand            string
	Model            string
	Color            string
	EngineNumber     *int64
	ChassisNumber    *string
	SupplierInvoice  string
	ShipmentID       kernel.UUID
	LocationID       kernel.UUID
	AssignedBranchID *kernel.UUID
	Status           string
	Notes            string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
