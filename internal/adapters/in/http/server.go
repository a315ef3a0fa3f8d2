// Package http is the inbound HTTP adapter. It binds plain request DTOs,
// builds commands and queries, and maps the application error taxonomy onto
// status codes. No business rules live here.
package http

import (
	"net/http"
	"strconv"

	"inventory/internal/core/application/usecases/commands"
	"inventory/internal/core/application/usecases/queries"
	"inventory/internal/core/domain/model/kernel"
	"inventory/internal/core/domain/model/transfer"
	"inventory/internal/core/domain/model/unit"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	createUnitHandler          commands.CreateUnitCommandHandler
	importShipmentHandler      commands.ImportShipmentCommandHandler
	matchIdentificationHandler commands.MatchIdentificationCommandHandler
	initiateTransferHandler    commands.InitiateTransferCommandHandler
	receiveTransferHandler     commands.ReceiveTransferCommandHandler
	sellUnitHandler            commands.SellUnitCommandHandler
	adjustUnitHandler          commands.AdjustUnitCommandHandler
	addUnitNoteHandler         commands.AddUnitNoteCommandHandler
	reserveUnitHandler         commands.ReserveUnitCommandHandler
	releaseUnitHandler         commands.ReleaseUnitCommandHandler

	getUnitsHandler           queries.GetUnitsQueryHandler
	getUnitHistoryHandler     queries.GetUnitHistoryQueryHandler
	getTransfersHandler       queries.GetTransfersQueryHandler
	getInventoryReportHandler queries.GetInventoryReportQueryHandler
}

// NewServer creates an HTTP server with the required command and query handlers.
func NewServer(
	createUnitHandler commands.CreateUnitCommandHandler,
	importShipmentHandler commands.ImportShipmentCommandHandler,
	matchIdentificationHandler commands.MatchIdentificationCommandHandler,
	initiateTransferHandler commands.InitiateTransferCommandHandler,
	receiveTransferHandler commands.ReceiveTransferCommandHandler,
	sellUnitHandler commands.SellUnitCommandHandler,
	adjustUnitHandler commands.AdjustUnitCommandHandler,
	addUnitNoteHandler commands.AddUnitNoteCommandHandler,
	reserveUnitHandler commands.ReserveUnitCommandHandler,
	releaseUnitHandler commands.ReleaseUnitCommandHandler,
	getUnitsHandler queries.GetUnitsQueryHandler,
	getUnitHistoryHandler queries.GetUnitHistoryQueryHandler,
	getTransfersHandler queries.GetTransfersQueryHandler,
	getInventoryReportHandler queries.GetInventoryReportQueryHandler,
) *Server {
	return &Server{
		createUnitHandler:          createUnitHandler,
		importShipmentHandler:      importShipmentHandler,
		matchIdentificationHandler: matchIdentificationHandler,
		initiateTransferHandler:    initiateTransferHandler,
		receiveTransferHandler:     receiveTransferHandler,
		sellUnitHandler:            sellUnitHandler,
		adjustUnitHandler:          adjustUnitHandler,
		addUnitNoteHandler:         addUnitNoteHandler,
		reserveUnitHandler:         reserveUnitHandler,
		releaseUnitHandler:         releaseUnitHandler,
		getUnitsHandler:            getUnitsHandler,
		getUnitHistoryHandler:      getUnitHistoryHandler,
		getTransfersHandler:        getTransfersHandler,
		getInventoryReportHandler:  getInventoryReportHandler,
	}
}

// RegisterRoutes mounts all inventory routes under /api/v1.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/units", s.CreateUnit)
	api.GET("/units", s.GetUnits)
	api.GET("/units/:unitID/history", s.GetUnitHistory)
	api.POST("/units/:unitID/adjust", s.AdjustUnit)
	api.POST("/units/:unitID/notes", s.AddUnitNote)
	api.POST("/units/:unitID/reserve", s.ReserveUnit)
	api.POST("/units/:unitID/release", s.ReleaseUnit)
	api.POST("/units/:unitID/sell", s.SellUnit)

	api.POST("/shipments", s.ImportShipment)
	api.POST("/identifications", s.MatchIdentification)

	api.POST("/transfers", s.InitiateTransfer)
	api.POST("/transfers/:transferID/receive", s.ReceiveTransfer)
	api.GET("/transfers", s.GetTransfers)

	api.GET("/reports/inventory", s.GetInventoryReport)
}

// CreateUnit handles POST /api/v1/units.
func (s *Server) CreateUnit(ctx echo.Context) error {
	var req CreateUnitRequest
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, "Invalid request body")
	}

	shipmentID, err := kernel.UUIDFromString(req.ShipmentID)
	if err != nil {
		return respondBadRequest(ctx, "Invalid shipment_id: "+err.Error())
	}
	createdBy, err := kernel.UUIDFromString(req.CreatedBy)
	if err != nil {
		return respondBadRequest(ctx, "Invalid created_by: "+err.Error())
	}

	unitID := kernel.NewUUID()
	cmd, err := commands.NewCreateUnitCommand(
		unitID, req.Brand, req.Model, req.Color, req.SupplierInvoice,
		shipmentID, req.Notes, createdBy,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.createUnitHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreateUnitResponse{ID: unitID.String()})
}

// ImportShipment handles POST /api/v1/shipments.
func (s *Server) ImportShipment(ctx echo.Context) error {
	var req ImportShipmentRequest
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, "Invalid request body")
	}

	importedBy, err := kernel.UUIDFromString(req.ImportedBy)
	if err != nil {
		return respondBadRequest(ctx, "Invalid imported_by: "+err.Error())
	}

	rows := make([]commands.ImportRow, 0, len(req.Rows))
	for _, row := range req.Rows {
		rows = append(rows, commands.ImportRow{
			Brand: row.Brand,
			Model: row.Model,
			Color: row.Color,
			Notes: row.Notes,
		})
	}

	shipmentID := kernel.NewUUID()
	cmd, err := commands.NewImportShipmentCommand(shipmentID, req.BatchCode, req.SupplierInvoice, rows, importedBy)
	if err != nil {
		return respondError(ctx, err)
	}

	unitIDs, err := s.importShipmentHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	ids := make([]string, 0, len(unitIDs))
	for _, id := range unitIDs {
		ids = append(ids, id.String())
	}

	return ctx.JSON(http.StatusCreated, ImportShipmentResponse{
		ShipmentID: shipmentID.String(),
		UnitIDs:    ids,
	})
}

// MatchIdentification handles POST /api/v1/identifications.
func (s *Server) MatchIdentification(ctx echo.Context) error {
	var req MatchIdentificationRequest
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, "Invalid request body")
	}

	userID, err := kernel.UUIDFromString(req.UserID)
	if err != nil {
		return respondBadRequest(ctx, "Invalid user_id: "+err.Error())
	}

	var shipmentID *kernel.UUID
	if req.ShipmentID != nil {
		id, idErr := kernel.UUIDFromString(*req.ShipmentID)
		if idErr != nil {
			return respondBadRequest(ctx, "Invalid shipment_id: "+idErr.Error())
		}
		shipmentID = &id
	}

	cmd, err := commands.NewMatchIdentificationCommand(req.EngineNumber, req.ChassisNumber, shipmentID, userID)
	if err != nil {
		return respondError(ctx, err)
	}

	unitID, err := s.matchIdentificationHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, MatchIdentificationResponse{UnitID: unitID.String()})
}

// InitiateTransfer handles POST /api/v1/transfers.
func (s *Server) InitiateTransfer(ctx echo.Context) error {
	var req InitiateTransferRequest
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, "Invalid request body")
	}

	unitID, err := kernel.UUIDFromString(req.UnitID)
	if err != nil {
		return respondBadRequest(ctx, "Invalid unit_id: "+err.Error())
	}
	fromLocationID, err := kernel.UUIDFromString(req.FromLocationID)
	if err != nil {
		return respondBadRequest(ctx, "Invalid from_location_id: "+err.Error())
	}
	toLocationID, err := kernel.UUIDFromString(req.ToLocationID)
	if err != nil {
		return respondBadRequest(ctx, "Invalid to_location_id: "+err.Error())
	}
	createdBy, err := kernel.UUIDFromString(req.CreatedBy)
	if err != nil {
		return respondBadRequest(ctx, "Invalid created_by: "+err.Error())
	}

	transferID := kernel.NewUUID()
	cmd, err := commands.NewInitiateTransferCommand(
		transferID, unitID, fromLocationID, toLocationID, req.ETA, req.Reason, createdBy,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.initiateTransferHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, InitiateTransferResponse{ID: transferID.String()})
}

// ReceiveTransfer handles POST /api/v1/transfers/:transferID/receive.
func (s *Server) ReceiveTransfer(ctx echo.Context) error {
	transferID, err := kernel.UUIDFromString(ctx.Param("transferID"))
	if err != nil {
		return respondBadRequest(ctx, "Invalid transfer id: "+err.Error())
	}

	var req ReceiveTransferRequest
	if err = ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, "Invalid request body")
	}

	receivedBy, err := kernel.UUIDFromString(req.ReceivedBy)
	if err != nil {
		return respondBadRequest(ctx, "Invalid received_by: "+err.Error())
	}

	cmd, err := commands.NewReceiveTransferCommand(transferID, receivedBy)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.receiveTransferHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// SellUnit handles POST /api/v1/units/:unitID/sell.
func (s *Server) SellUnit(ctx echo.Context) error {
	unitID, err := kernel.UUIDFromString(ctx.Param("unitID"))
	if err != nil {
		return respondBadRequest(ctx, "Invalid unit id: "+err.Error())
	}

	var req SellUnitRequest
	if err = ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, "Invalid request body")
	}

	soldBy, err := kernel.UUIDFromString(req.SoldBy)
	if err != nil {
		return respondBadRequest(ctx, "Invalid sold_by: "+err.Error())
	}
	branchID, err := kernel.UUIDFromString(req.BranchID)
	if err != nil {
		return respondBadRequest(ctx, "Invalid branch_id: "+err.Error())
	}

	saleID := kernel.NewUUID()
	cmd, err := commands.NewSellUnitCommand(saleID, unitID, req.Receipt, soldBy, branchID, req.CustomerName, req.SoldAt)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.sellUnitHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, SellUnitResponse{SaleID: saleID.String()})
}

// AdjustUnit handles POST /api/v1/units/:unitID/adjust.
func (s *Server) AdjustUnit(ctx echo.Context) error {
	unitID, err := kernel.UUIDFromString(ctx.Param("unitID"))
	if err != nil {
		return respondBadRequest(ctx, "Invalid unit id: "+err.Error())
	}

	var req AdjustUnitRequest
	if err = ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, "Invalid request body")
	}

	userID, err := kernel.UUIDFromString(req.UserID)
	if err != nil {
		return respondBadRequest(ctx, "Invalid user_id: "+err.Error())
	}

	var assignedBranchID *kernel.UUID
	if req.AssignedBranchID != nil {
		id, idErr := kernel.UUIDFromString(*req.AssignedBranchID)
		if idErr != nil {
			return respondBadRequest(ctx, "Invalid assigned_branch_id: "+idErr.Error())
		}
		assignedBranchID = &id
	}

	adjustment := unit.Adjustment{
		Brand:            req.Brand,
		Model:            req.Model,
		Color:            req.Color,
		Notes:            req.Notes,
		AssignedBranchID: assignedBranchID,
	}

	cmd, err := commands.NewAdjustUnitCommand(unitID, adjustment, req.Reason, userID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.adjustUnitHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AddUnitNote handles POST /api/v1/units/:unitID/notes.
func (s *Server) AddUnitNote(ctx echo.Context) error {
	unitID, err := kernel.UUIDFromString(ctx.Param("unitID"))
	if err != nil {
		return respondBadRequest(ctx, "Invalid unit id: "+err.Error())
	}

	var req AddUnitNoteRequest
	if err = ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, "Invalid request body")
	}

	userID, err := kernel.UUIDFromString(req.UserID)
	if err != nil {
		return respondBadRequest(ctx, "Invalid user_id: "+err.Error())
	}

	cmd, err := commands.NewAddUnitNoteCommand(unitID, req.Note, userID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.addUnitNoteHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ReserveUnit handles POST /api/v1/units/:unitID/reserve.
func (s *Server) ReserveUnit(ctx echo.Context) error {
	unitID, err := kernel.UUIDFromString(ctx.Param("unitID"))
	if err != nil {
		return respondBadRequest(ctx, "Invalid unit id: "+err.Error())
	}

	var req ReservationRequest
	if err = ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, "Invalid request body")
	}

	userID, err := kernel.UUIDFromString(req.UserID)
	if err != nil {
		return respondBadRequest(ctx, "Invalid user_id: "+err.Error())
	}

	cmd, err := commands.NewReserveUnitCommand(unitID, req.Reason, userID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.reserveUnitHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ReleaseUnit handles POST /api/v1/units/:unitID/release.
func (s *Server) ReleaseUnit(ctx echo.Context) error {
	unitID, err := kernel.UUIDFromString(ctx.Param("unitID"))
	if err != nil {
		return respondBadRequest(ctx, "Invalid unit id: "+err.Error())
	}

	var req ReservationRequest
	if err = ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, "Invalid request body")
	}

	userID, err := kernel.UUIDFromString(req.UserID)
	if err != nil {
		return respondBadRequest(ctx, "Invalid user_id: "+err.Error())
	}

	cmd, err := commands.NewReleaseUnitCommand(unitID, req.Reason, userID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.releaseUnitHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetUnits handles GET /api/v1/units.
func (s *Server) GetUnits(ctx echo.Context) error {
	var filter queries.GetUnitsFilter

	if raw := ctx.QueryParam("status"); raw != "" {
		status, err := unit.StatusFromString(raw)
		if err != nil {
			return respondBadRequest(ctx, "Invalid status: "+err.Error())
		}
		filter.Status = &status
	}
	if raw := ctx.QueryParam("location_id"); raw != "" {
		id, err := kernel.UUIDFromString(raw)
		if err != nil {
			return respondBadRequest(ctx, "Invalid location_id: "+err.Error())
		}
		filter.LocationID = &id
	}
	if raw := ctx.QueryParam("shipment_id"); raw != "" {
		id, err := kernel.UUIDFromString(raw)
		if err != nil {
			return respondBadRequest(ctx, "Invalid shipment_id: "+err.Error())
		}
		filter.ShipmentID = &id
	}
	if raw := ctx.QueryParam("brand"); raw != "" {
		filter.Brand = &raw
	}

	limit, offset, err := pagination(ctx)
	if err != nil {
		return respondBadRequest(ctx, err.Error())
	}

	query, err := queries.NewGetUnitsQuery(filter, limit, offset)
	if err != nil {
		return respondError(ctx, err)
	}

	units, err := s.getUnitsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]Unit, 0, len(units))
	for _, u := range units {
		var assignedBranchID *string
		if u.AssignedBranchID != nil {
			id := u.AssignedBranchID.String()
			assignedBranchID = &id
		}

		response = append(response, Unit{
			ID:               u.ID.String(),
			Brand:            u.Brand,
			Model:            u.Model,
			Color:            u.Color,
			EngineNumber:     u.EngineNumber,
			ChassisNumber:    u.ChassisNumber,
			SupplierInvoice:  u.SupplierInvoice,
			ShipmentID:       u.ShipmentID.String(),
			LocationID:       u.LocationID.String(),
			AssignedBranchID: assignedBranchID,
			Status:           u.Status,
			Notes:            u.Notes,
			CreatedAt:        u.CreatedAt,
			UpdatedAt:        u.UpdatedAt,
		})
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetUnitHistory handles GET /api/v1/units/:unitID/history.
func (s *Server) GetUnitHistory(ctx echo.Context) error {
	unitID, err := kernel.UUIDFromString(ctx.Param("unitID"))
	if err != nil {
		return respondBadRequest(ctx, "Invalid unit id: "+err.Error())
	}

	query, err := queries.NewGetUnitHistoryQuery(unitID)
	if err != nil {
		return respondError(ctx, err)
	}

	events, err := s.getUnitHistoryHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]UnitEvent, 0, len(events))
	for _, e := range events {
		var before any
		if e.Before != nil {
			before = *e.Before
		}

		response = append(response, UnitEvent{
			ID:        e.ID.String(),
			UnitID:    e.UnitID.String(),
			EventType: e.EventType,
			Before:    before,
			After:     e.After,
			UserID:    e.UserID.String(),
			Reason:    e.Reason,
			Timestamp: e.Timestamp,
		})
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetTransfers handles GET /api/v1/transfers.
func (s *Server) GetTransfers(ctx echo.Context) error {
	var status *transfer.Status
	if raw := ctx.QueryParam("status"); raw != "" {
		parsed, err := transfer.StatusFromString(raw)
		if err != nil {
			return respondBadRequest(ctx, "Invalid status: "+err.Error())
		}
		status = &parsed
	}

	var unitID *kernel.UUID
	if raw := ctx.QueryParam("unit_id"); raw != "" {
		id, err := kernel.UUIDFromString(raw)
		if err != nil {
			return respondBadRequest(ctx, "Invalid unit_id: "+err.Error())
		}
		unitID = &id
	}

	limit, offset, err := pagination(ctx)
	if err != nil {
		return respondBadRequest(ctx, err.Error())
	}

	query, err := queries.NewGetTransfersQuery(status, unitID, limit, offset)
	if err != nil {
		return respondError(ctx, err)
	}

	transfers, err := s.getTransfersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]Transfer, 0, len(transfers))
	for _, t := range transfers {
		var receivedBy *string
		if t.ReceivedBy != nil {
			id := t.ReceivedBy.String()
			receivedBy = &id
		}

		response = append(response, Transfer{
			ID:             t.ID.String(),
			UnitID:         t.UnitID.String(),
			FromLocationID: t.FromLocationID.String(),
			ToLocationID:   t.ToLocationID.String(),
			ETA:            t.ETA,
			Status:         t.Status,
			Reason:         t.Reason,
			CreatedBy:      t.CreatedBy.String(),
			CreatedAt:      t.CreatedAt,
			ReceivedBy:     receivedBy,
			ReceivedAt:     t.ReceivedAt,
		})
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetInventoryReport handles GET /api/v1/reports/inventory.
func (s *Server) GetInventoryReport(ctx echo.Context) error {
	query, err := queries.NewGetInventoryReportQuery()
	if err != nil {
		return respondError(ctx, err)
	}

	report, err := s.getInventoryReportHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]InventoryReportRow, 0, len(report))
	for _, row := range report {
		response = append(response, InventoryReportRow{
			LocationID:   row.LocationID.String(),
			LocationName: row.LocationName,
			LocationType: row.LocationType,
			Status:       row.Status,
			UnitCount:    row.UnitCount,
		})
	}

	return ctx.JSON(http.StatusOK, response)
}

// pagination reads the optional limit and offset query parameters. Zero values
// leave the defaults to the query constructors.
func pagination(ctx echo.Context) (int, int, error) {
	limit := 0
	offset := 0

	if raw := ctx.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return 0, 0, err
		}
		limit = parsed
	}
	if raw := ctx.QueryParam("offset"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return 0, 0, err
		}
		offset = parsed
	}

	return limit, offset, nil
}
