package queries

import (
	"context"
	"encoding/json"

	"inventory/internal/core/domain/model/kernel"
	"inventory/internal/core/domain/model/unit"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetUnitHistoryQueryHandler reads the audit log of one unit. Snapshots come
// back as the stored JSON documents and are decoded into the read model.
type GetUnitHistoryQueryHandler struct {
	db *gorm.DB
}

// NewGetUnitHistoryQueryHandler creates a handler for audit trail queries.
func NewGetUnitHistoryQueryHandler(db *gorm.DB) GetUnitHistoryQueryHandler {
	return GetUnitHistoryQueryHandler{db: db}
}

// Handle executes the history query. Events come back newest first; an
// unknown unit simply yields an empty trail.
func (h GetUnitHistoryQueryHandler) Handle(
	ctx context.Context,
	query GetUnitHistoryQuery,
) ([]GetUnitHistoryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	events := make([]GetUnitHistoryQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			unit_id,
			event_type,
			before_snapshot,
			after_snapshot,
			user_id,
			reason,
			timestamp
		FROM unit_events
		WHERE unit_id = ?
		ORDER BY timestamp DESC, id DESC
	`, query.UnitID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetUnitHistoryQueryResponse
		var id, unitID, userID uuid.UUID
		var beforeRaw []byte
		var afterRaw []byte

		err = rows.Scan(
			&id,
			&unitID,
			&resp.EventType,
			&beforeRaw,
			&afterRaw,
			&userID,
			&resp.Reason,
			&resp.Timestamp,
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
		if resp.UserID, err = kernel.UUIDFromBytes(userID[:]); err != nil {
			return nil, err
		}

		if len(beforeRaw) > 0 {
			var before unit.Snapshot
			if err = json.Unmarshal(beforeRaw, &before); err != nil {
				return nil, err
			}
			resp.Before = &before
		}
		if err = json.Unmarshal(afterRaw, &resp.After); err != nil {
			return nil, err
		}

		events = append(events, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return events, nil
}
