package queries

import (
	"context"

	"inventory/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetInventoryReportQueryHandler aggregates the unit counts per location and
// status in a single query.
type GetInventoryReportQueryHandler struct {
	db *gorm.DB
}

// NewGetInventoryReportQueryHandler creates a handler for inventory reports.
func NewGetInventoryReportQueryHandler(db *gorm.DB) GetInventoryReportQueryHandler {
	return GetInventoryReportQueryHandler{db: db}
}

// Handle executes the report query. Locations without units do not appear.
func (h GetInventoryReportQueryHandler) Handle(
	ctx context.Context,
	query GetInventoryReportQuery,
) ([]GetInventoryReportQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	report := make([]GetInventoryReportQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			l.id,
			l.name,
			l.location_type,
			u.status,
			COUNT(u.id)
		FROM units u
		JOIN locations l ON l.id = u.location_id
		GROUP BY l.id, l.name, l.location_type, u.status
		ORDER BY l.name, u.status
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetInventoryReportQueryResponse
		var locationID uuid.UUID

		err = rows.Scan(
			&locationID,
			&resp.LocationName,
			&resp.LocationType,
			&resp.Status,
			&resp.UnitCount,
		)
		if err != nil {
			return nil, err
		}

		if resp.LocationID, err = kernel.UUIDFromBytes(locationID[:]); err != nil {
			return nil, err
		}

		report = append(report, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return report, nil
}
