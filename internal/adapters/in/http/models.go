package http

import "time"

// Error is the JSON body returned for every failed request.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// CreateUnitRequest registers a single unit outside the bulk import flow.
type CreateUnitRequest struct {
	Brand           string `json:"brand"`
	Model           string `json:"model"`
	Color           string `json:"color"`
	SupplierInvoice string `json:"supplier_invoice"`
	ShipmentID      string `json:"shipment_id"`
	Notes           string `json:"notes"`
	CreatedBy       string `json:"created_by"`
}

// CreateUnitResponse carries the identifier of the registered unit.
type CreateUnitResponse struct {
	ID string `json:"id"`
}

// ImportShipmentRequest creates a shipment and all of its units in one call.
// Rows are already parsed; file handling happens upstream.
type ImportShipmentRequest struct {
	BatchCode       string      `json:"batch_code"`
	SupplierInvoice string      `json:"supplier_invoice"`
	Rows            []ImportRow `json:"rows"`
	ImportedBy      string      `json:"imported_by"`
}

// ImportRow is one unit row of an import request.
type ImportRow struct {
	Brand string `json:"brand"`
	Model string `json:"model"`
	Color string `json:"color"`
	Notes string `json:"notes"`
}

// ImportShipmentResponse carries the shipment and created unit identifiers.
type ImportShipmentResponse struct {
	ShipmentID string   `json:"shipment_id"`
	UnitIDs    []string `json:"unit_ids"`
}

// MatchIdentificationRequest binds engine and chassis numbers to the oldest
// unidentified unit, optionally scoped to one shipment.
type MatchIdentificationRequest struct {
	EngineNumber  int64   `json:"engine_number"`
	ChassisNumber string  `json:"chassis_number"`
	ShipmentID    *string `json:"shipment_id"`
	UserID        string  `json:"user_id"`
}

// MatchIdentificationResponse carries the identifier of the matched unit.
type MatchIdentificationResponse struct {
	UnitID string `json:"unit_id"`
}

// InitiateTransferRequest starts a relocation for one unit.
type InitiateTransferRequest struct {
	UnitID         string     `json:"unit_id"`
	FromLocationID string     `json:"from_location_id"`
	ToLocationID   string     `json:"to_location_id"`
	ETA            *time.Time `json:"eta"`
	Reason         string     `json:"reason"`
	CreatedBy      string     `json:"created_by"`
}

// InitiateTransferResponse carries the identifier of the new transfer.
type InitiateTransferResponse struct {
	ID string `json:"id"`
}

// ReceiveTransferRequest completes a relocation at the destination.
type ReceiveTransferRequest struct {
	ReceivedBy string `json:"received_by"`
}

// SellUnitRequest records the sale of a unit at a branch. An absent sold_at
// defaults to the processing time.
type SellUnitRequest struct {
	Receipt      string     `json:"receipt"`
	BranchID     string     `json:"branch_id"`
	CustomerName *string    `json:"customer_name"`
	SoldAt       *time.Time `json:"sold_at"`
	SoldBy       string     `json:"sold_by"`
}

// SellUnitResponse carries the identifier of the sale record.
type SellUnitResponse struct {
	SaleID string `json:"sale_id"`
}

// AdjustUnitRequest updates descriptive fields of a unit. Absent fields stay
// untouched.
type AdjustUnitRequest struct {
	Brand            *string `json:"brand"`
	Model            *string `json:"model"`
	Color            *string `json:"color"`
	Notes            *string `json:"notes"`
	AssignedBranchID *string `json:"assigned_branch_id"`
	Reason           string  `json:"reason"`
	UserID           string  `json:"user_id"`
}

// AddUnitNoteRequest appends a free-text note to a unit.
type AddUnitNoteRequest struct {
	Note   string `json:"note"`
	UserID string `json:"user_id"`
}

// ReservationRequest reserves or releases a unit.
type ReservationRequest struct {
	Reason string `json:"reason"`
	UserID string `json:"user_id"`
}

// Unit is the read model returned by unit listing.
type Unit struct {
	ID               string    `json:"id"`
	Brand            string    `json:"brand"`
	Model            string    `json:"model"`
	Color            string    `json:"color"`
	EngineNumber     *int64    `json:"engine_number"`
	ChassisNumber    *string   `json:"chassis_number"`
	SupplierInvoice  string    `json:"supplier_invoice"`
	ShipmentID       string    `json:"shipment_id"`
	LocationID       string    `json:"location_id"`
	AssignedBranchID *string   `json:"assigned_branch_id"`
	Status           string    `json:"status"`
	Notes            string    `json:"notes"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// UnitEvent is one audit trail entry of a unit.
type UnitEvent struct {
	ID        string    `json:"id"`
	UnitID    string    `json:"unit_id"`
	EventType string    `json:"event_type"`
	Before    any       `json:"before"`
	After     any       `json:"after"`
	UserID    string    `json:"user_id"`
	Reason    string    `json:"reason"`
	Timestamp time.Time `json:"timestamp"`
}

// Transfer is the read model returned by transfer listing.
type Transfer struct {
	ID             string     `json:"id"`
	UnitID         string     `json:"unit_id"`
	FromLocationID string     `json:"from_location_id"`
	ToLocationID   string     `json:"to_location_id"`
	ETA            *time.Time `json:"eta"`
	Status         string     `json:"status"`
	Reason         string     `json:"reason"`
	CreatedBy      string     `json:"created_by"`
	CreatedAt      time.Time  `json:"created_at"`
	ReceivedBy     *string    `json:"received_by"`
	ReceivedAt     *time.Time `json:"received_at"`
}

// InventoryReportRow is one location/status bucket of the inventory report.
type InventoryReportRow struct {
	LocationID   string `json:"location_id"`
	LocationName string `json:"location_name"`
	LocationType string `json:"location_type"`
	Status       string `json:"status"`
	UnitCount    int64  `json:"unit_count"`
}
