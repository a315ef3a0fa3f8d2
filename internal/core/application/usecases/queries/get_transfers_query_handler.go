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

// GetTransfersQueryHandler lists transfers with raw SQL, newest first.
type GetTransfersQueryHandler struct {
	db *gorm.DB
}

// NewGetTransfersQueryHandler creates a handler for transfer listing queries.
func NewGetTransfersQueryHandler(db *gorm.DB) GetTransfersQueryHandler {
	return GetTransfersQueryHandler{db: db}
}

// Handle executes the transfer listing query.
func (h GetTransfersQueryHandler) Handle(
	ctx context.Context,
	query GetTransfersQuery,
) ([]GetTransfersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	conditions := make([]string, 0, 2)
	args := make([]any, 0, 4)

	if query.Status() != nil {
		conditions = append(conditions, "status = ?")
		args = append(args, query.Status().String())
	}
	if query.UnitID() != nil {
		conditions = append(conditions, "unit_id = ?")
		args = append(args, query.UnitID().Bytes())
	}

	where := ""
	if len(conditions) > 0 {
		where = "WHERE " + strings.Join(conditions, " AND ")
	}
	args = append(args, query.Limit(), query.Offset())

	transfers := make([]GetTransfersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(fmt.Sprintf(`
		SELECT
			id,
			unit_id,
			from_location_id,
			to_location_id,
			eta,
			status,
			reason,
			created_by,
			created_at,
			received_by,
			received_at
		FROM transfers
		%s
		ORDER BY created_at DESC, id DESC
		LIMIT ? OFFSET ?
	`, where), args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetTransfersQueryResponse
		var id, unitID, fromID, toID, createdBy uuid.UUID
		var receivedBy uuid.NullUUID
		var eta, receivedAt sql.NullTime

		err = rows.Scan(
			&id,
			&unitID,
			&fromID,
			&toID,
			&eta,
			&resp.Status,
			&resp.Reason,
			&createdBy,
			&resp.CreatedAt,
			&receivedBy,
			&receivedAt,
		)
		if err != nil {
			return nil, err
		}

		if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if resp.UnitID, err = kernel.UUIDFromBytes(unitID[:]); err != nil {
			return nil, err
		}
		if resp.FromLocationID, err = kernel.UUIDFromBytes(fromID[:]); err != nil {
			return nil, err
		}
		if resp.ToLocationID, err = kernel.UUIDFromBytes(toID[:]); err != nil {
			return nil, err
		}
		if resp.CreatedBy, err = kernel.UUIDFromBytes(createdBy[:]); err != nil {
			return nil, err
		}
		if receivedBy.Valid {
			receiver, idErr := kernel.UUIDFromBytes(receivedBy.UUID[:])
			if idErr != nil {
				return nil, idErr
			}
			resp.ReceivedBy = &receiver
		}
		if eta.Valid {
			resp.ETA = &eta.Time
		}
		if receivedAt.Valid {
			resp.ReceivedAt = &receivedAt.Time
		}

		transfers = append(transfers, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return transfers, nil
}
