package queries

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"inventory/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetUnitsQueryHandler lists units with raw SQL for read performance.
//
// Example:
//
//	handler := NewGetUnitsQueryHandler(db)
//	status := unit.StatusAvailableAtBranch
//	query, _ := NewGetUnitsQuery(GetUnitsFilter{Status: &status}, 50, 0)
//
//	units, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to list units: %w", err)
//	}
//	fmt.Printf("Found %d available units\n", len(units))
type GetUnitsQueryHandler struct {
	db *gorm.DB
}

// NewGetUnitsQueryHandler creates a handler for unit listing queries.
func NewGetUnitsQueryHandler(db *gorm.DB) GetUnitsQueryHandler {
	return GetUnitsQueryHandler{db: db}
}

// Handle executes the listing query. Results are ordered by creation time so
// pagination is stable while new units arrive.
func (h GetUnitsQueryHandler) Handle(ctx context.Context, query GetUnitsQuery) ([]GetUnitsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	conditions := make([]string, 0, 4)
	args := make([]any, 0, 6)

	filter := query.Filter()
	if filter.Status != nil {
		conditions = append(conditions, "status = ?")
		args = append(args, filter.Status.String())
	}
	if filter.LocationID != nil {
		conditions = append(conditions, "location_id = ?")
		args = append(args, filter.LocationID.Bytes())
	}
	if filter.ShipmentID != nil {
		conditions = append(conditions, "shipment_id = ?")
		args = append(args, filter.ShipmentID.Bytes())
	}
	if filter.Brand != nil {
		conditions = append(conditions, "brand = ?")
		args = append(args, *filter.Brand)
	}

	where := ""
	if len(conditions) > 0 {
		where = "WHERE " + strings.Join(conditions, " AND ")
	}
	args = append(args, query.Limit(), query.Offset())

	units := make([]GetUnitsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(fmt.Sprintf(`
		SELECT
			id,
			brand,
			model,
			color,
			engine_number,
			chassis_number,
			supplier_invoice,
			shipment_id,
			location_id,
			assigned_branch_id,
			status,
			notes,
			created_at,
			updated_at
		FROM units
		%s
		ORDER BY created_at, id
		LIMIT ? OFFSET ?
	`, where), args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetUnitsQueryResponse
		var id, shipmentID, locationID uuid.UUID
		var assignedBranchID uuid.NullUUID
		var engineNumber sql.NullInt64
		var chassisNumber sql.NullString

		err = rows.Scan(
			&id,
			&resp.Brand,
			&resp.Model,
			&resp.Color,
			&engineNumber,
			&chassisNumber,
			&resp.SupplierInvoice,
			&shipmentID,
			&locationID,
			&assignedBranchID,
			&resp.Status,
			&resp.Notes,
			&resp.CreatedAt,
			&resp.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}

		if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if resp.ShipmentID, err = kernel.UUIDFromBytes(shipmentID[:]); err != nil {
			return nil, err
		}
		if resp.LocationID, err = kernel.UUIDFromBytes(locationID[:]); err != nil {
			return nil, err
		}
		if assignedBranchID.Valid {
			branchID, idErr := kernel.UUIDFromBytes(assignedBranchID.UUID[:])
			if idErr != nil {
				return nil, idErr
			}
			resp.AssignedBranchID = &branchID
		}
		if engineNumber.Valid {
			resp.EngineNumber = &engineNumber.Int64
		}
		if chassisNumber.Valid {
			resp.ChassisNumber = &chassisNumber.String
		}

		units = append(units, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return units, nil
}
