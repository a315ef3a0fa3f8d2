package queries

import (
	"errors"

	"inventory/internal/core/domain/model/kernel"
	"inventory/internal/pkg/guard"
)

var ErrGetInventoryReportQueryIsNotConstructed = errors.New(
	"GetInventoryReportQuery must be created via NewGetInventoryReportQuery constructor",
)

// GetInventoryReportQuery retrieves unit counts per location and status.
type GetInventoryReportQuery struct {
	guard guard.ConstructorGuard
}

// NewGetInventoryReportQuery creates an inventory report query.
func NewGetInventoryReportQuery() (GetInventoryReportQuery, error) {
	return GetInventoryReportQuery{
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetInventoryReportQuery) Validate() error {
	return q.guard.Validate(ErrGetInventoryReportQueryIsNotConstructed)
}

// GetInventoryReportQueryResponse is one row of the report: how many units of
// one status sit at one location.
type GetInventoryReportQueryResponse struct {
	LocationID   kernel.UUID
	LocationName string
	LocationType string
	Status       string
	UnitCount    int64
}
