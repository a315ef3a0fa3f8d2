package cmd

import (
	"inventory/internal/adapters/out/postgres"
	"inventory/internal/core/application/usecases/commands"
	"inventory/internal/core/application/usecases/queries"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
	}
}

func (c *CompositionRoot) CreateCreateUnitCommandHandler() commands.CreateUnitCommandHandler {
	var f commands.IntakeUoWFactory = FuncIntakeUoWFactory(func() commands.IntakeUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateUnitCommandHandler(f)
}

func (c *CompositionRoot) CreateImportShipmentCommandHandler() commands.ImportShipmentCommandHandler {
	var f commands.IntakeUoWFactory = FuncIntakeUoWFactory(func() commands.IntakeUoW {
		return c.uowFactory.Create()
	})
	return commands.NewImportShipmentCommandHandler(f)
}

func (c *CompositionRoot) CreateMatchIdentificationCommandHandler() commands.MatchIdentificationCommandHandler {
	var f commands.IdentificationUoWFactory = FuncIdentificationUoWFactory(func() commands.IdentificationUoW {
		return c.uowFactory.Create()
	})
	return commands.NewMatchIdentificationCommandHandler(f)
}

func (c *CompositionRoot) CreateInitiateTransferCommandHandler() commands.InitiateTransferCommandHandler {
	var f commands.TransferUoWFactory = FuncTransferUoWFactory(func() commands.TransferUoW {
		return c.uowFactory.Create()
	})
	return commands.NewInitiateTransferCommandHandler(f)
}

func (c *CompositionRoot) CreateReceiveTransferCommandHandler() commands.ReceiveTransferCommandHandler {
	var f commands.TransferUoWFactory = FuncTransferUoWFactory(func() commands.TransferUoW {
		return c.uowFactory.Create()
	})
	return commands.NewReceiveTransferCommandHandler(f)
}

func (c *CompositionRoot) CreateSellUnitCommandHandler() commands.SellUnitCommandHandler {
	var f commands.SaleUoWFactory = FuncSaleUoWFactory(func() commands.SaleUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSellUnitCommandHandler(f)
}

func (c *CompositionRoot) CreateAdjustUnitCommandHandler() commands.AdjustUnitCommandHandler {
	var f commands.UnitUoWFactory = FuncUnitUoWFactory(func() commands.UnitUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAdjustUnitCommandHandler(f)
}

func (c *CompositionRoot) CreateAddUnitNoteCommandHandler() commands.AddUnitNoteCommandHandler {
	var f commands.UnitUoWFactory = FuncUnitUoWFactory(func() commands.UnitUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAddUnitNoteCommandHandler(f)
}

func (c *CompositionRoot) CreateReserveUnitCommandHandler() commands.ReserveUnitCommandHandler {
	var f commands.UnitUoWFactory = FuncUnitUoWFactory(func() commands.UnitUoW {
		return c.uowFactory.Create()
	})
	return commands.NewReserveUnitCommandHandler(f)
}

func (c *CompositionRoot) CreateReleaseUnitCommandHandler() commands.ReleaseUnitCommandHandler {
	var f commands.UnitUoWFactory = FuncUnitUoWFactory(func() commands.UnitUoW {
		return c.uowFactory.Create()
	})
	return commands.NewReleaseUnitCommandHandler(f)
}

func (c *CompositionRoot) CreateGetUnitsQueryHandler() queries.GetUnitsQueryHandler {
	return queries.NewGetUnitsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetUnitHistoryQueryHandler() queries.GetUnitHistoryQueryHandler {
	return queries.NewGetUnitHistoryQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetTransfersQueryHandler() queries.GetTransfersQueryHandler {
	return queries.NewGetTransfersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetInventoryReportQueryHandler() queries.GetInventoryReportQueryHandler {
	return queries.NewGetInventoryReportQueryHandler(c.gormDB)
}

type FuncUnitUoWFactory func() commands.UnitUoW

func (f FuncUnitUoWFactory) Create() commands.UnitUoW {
	return f()
}

type FuncIntakeUoWFactory func() commands.IntakeUoW

func (f FuncIntakeUoWFactory) Create() commands.IntakeUoW {
	return f()
}

type FuncIdentificationUoWFactory func() commands.IdentificationUoW

func (f FuncIdentificationUoWFactory) Create() commands.IdentificationUoW {
	return f()
}

type FuncTransferUoWFactory func() commands.TransferUoW

func (f FuncTransferUoWFactory) Create() commands.TransferUoW {
	return f()
}

type FuncSaleUoWFactory func() commands.SaleUoW

func (f FuncSaleUoWFactory) Create() commands.SaleUoW {
	return f()
}
