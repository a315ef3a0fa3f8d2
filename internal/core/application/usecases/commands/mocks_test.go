package commands_test

import (
	"context"

	"inventory/internal/core/application/usecases/commands"
	"inventory/internal/core/domain/model/kernel"
	"inventory/internal/core/domain/model/location"
	"inventory/internal/core/domain/model/sale"
	"inventory/internal/core/domain/model/shipment"
	"inventory/internal/core/domain/model/transfer"
	"inventory/internal/core/domain/model/unit"
	"inventory/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockUnitRepository struct{ mock.Mock }

func (m *MockUnitRepository) Add(ctx context.Context, u *unit.Unit) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *MockUnitRepository) Update(ctx context.Context, u *unit.Unit) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *MockUnitRepository) Get(ctx context.Context, id kernel.UUID) (*unit.Unit, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*unit.Unit), args.Error(1)
}

func (m *MockUnitRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*unit.Unit, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*unit.Unit), args.Error(1)
}

func (m *MockUnitRepository) GetFirstUnidentifiedForUpdate(
	ctx context.Context,
	shipmentID *kernel.UUID,
) (*unit.Unit, error) {
	args := m.Called(ctx, shipmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*unit.Unit), args.Error(1)
}

func (m *MockUnitRepository) ExistsWithEngineNumber(ctx context.Context, engineNumber int64) (bool, error) {
	args := m.Called(ctx, engineNumber)
	return args.Bool(0), args.Error(1)
}

func (m *MockUnitRepository) ExistsWithChassisNumber(ctx context.Context, chassisNumber string) (bool, error) {
	args := m.Called(ctx, chassisNumber)
	return args.Bool(0), args.Error(1)
}

type MockEventRepository struct{ mock.Mock }

func (m *MockEventRepository) Append(ctx context.Context, event *unit.Event) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockEventRepository) GetByUnit(ctx context.Context, unitID kernel.UUID) ([]*unit.Event, error) {
	args := m.Called(ctx, unitID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*unit.Event), args.Error(1)
}

type MockSaleRepository struct{ mock.Mock }

func (m *MockSaleRepository) Add(ctx context.Context, s *sale.Sale) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockSaleRepository) GetByUnit(ctx context.Context, unitID kernel.UUID) (*sale.Sale, error) {
	args := m.Called(ctx, unitID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*sale.Sale), args.Error(1)
}

func (m *MockSaleRepository) GetByReceipt(ctx context.Context, receipt string) (*sale.Sale, error) {
	args := m.Called(ctx, receipt)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*sale.Sale), args.Error(1)
}

type MockTransferRepository struct{ mock.Mock }

func (m *MockTransferRepository) Add(ctx context.Context, t *transfer.Transfer) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *MockTransferRepository) Update(ctx context.Context, t *transfer.Transfer) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *MockTransferRepository) Get(ctx context.Context, id kernel.UUID) (*transfer.Transfer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*transfer.Transfer), args.Error(1)
}

func (m *MockTransferRepository) GetActiveByUnit(ctx context.Context, unitID kernel.UUID) (*transfer.Transfer, error) {
	args := m.Called(ctx, unitID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*transfer.Transfer), args.Error(1)
}

type MockLocationRepository struct{ mock.Mock }

func (m *MockLocationRepository) Add(ctx context.Context, l *location.Location) error {
	args := m.Called(ctx, l)
	return args.Error(0)
}

func (m *MockLocationRepository) Update(ctx context.Context, l *location.Location) error {
	args := m.Called(ctx, l)
	return args.Error(0)
}

func (m *MockLocationRepository) Get(ctx context.Context, id kernel.UUID) (*location.Location, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*location.Location), args.Error(1)
}

func (m *MockLocationRepository) GetFirstByType(
	ctx context.Context,
	locType location.Type,
) (*location.Location, error) {
	args := m.Called(ctx, locType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*location.Location), args.Error(1)
}

type MockShipmentRepository struct{ mock.Mock }

func (m *MockShipmentRepository) Add(ctx context.Context, s *shipment.Shipment) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockShipmentRepository) Get(ctx context.Context, id kernel.UUID) (*shipment.Shipment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shipment.Shipment), args.Error(1)
}

func (m *MockShipmentRepository) GetByBatchCode(ctx context.Context, batchCode string) (*shipment.Shipment, error) {
	args := m.Called(ctx, batchCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shipment.Shipment), args.Error(1)
}

// mockTx provides the shared transaction lifecycle expectations for the
// unit of work mocks below.
type mockTx struct{ mock.Mock }

func (m *mockTx) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *mockTx) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *mockTx) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *mockTx) UnitRepository() ports.UnitRepository {
	args := m.Called()
	return args.Get(0).(ports.UnitRepository)
}

func (m *mockTx) EventRepository() ports.EventRepository {
	args := m.Called()
	return args.Get(0).(ports.EventRepository)
}

type MockUnitUoW struct{ mockTx }

type MockUnitUoWFactory struct{ mock.Mock }

func (m *MockUnitUoWFactory) Create() commands.UnitUoW {
	args := m.Called()
	return args.Get(0).(commands.UnitUoW)
}

type MockSaleUoW struct{ mockTx }

func (m *MockSaleUoW) SaleRepository() ports.SaleRepository {
	args := m.Called()
	return args.Get(0).(ports.SaleRepository)
}

type MockSaleUoWFactory struct{ mock.Mock }

func (m *MockSaleUoWFactory) Create() commands.SaleUoW {
	args := m.Called()
	return args.Get(0).(commands.SaleUoW)
}

type MockTransferUoW struct{ mockTx }

func (m *MockTransferUoW) TransferRepository() ports.TransferRepository {
	args := m.Called()
	return args.Get(0).(ports.TransferRepository)
}

func (m *MockTransferUoW) LocationRepository() ports.LocationRepository {
	args := m.Called()
	return args.Get(0).(ports.LocationRepository)
}

type MockTransferUoWFactory struct{ mock.Mock }

func (m *MockTransferUoWFactory) Create() commands.TransferUoW {
	args := m.Called()
	return args.Get(0).(commands.TransferUoW)
}

type MockIdentificationUoW struct{ mockTx }

func (m *MockIdentificationUoW) LocationRepository() ports.LocationRepository {
	args := m.Called()
	return args.Get(0).(ports.LocationRepository)
}

type MockIdentificationUoWFactory struct{ mock.Mock }

func (m *MockIdentificationUoWFactory) Create() commands.IdentificationUoW {
	args := m.Called()
	return args.Get(0).(commands.IdentificationUoW)
}

type MockIntakeUoW struct{ mockTx }

func (m *MockIntakeUoW) LocationRepository() ports.LocationRepository {
	args := m.Called()
	return args.Get(0).(ports.LocationRepository)
}

func (m *MockIntakeUoW) ShipmentRepository() ports.ShipmentRepository {
	args := m.Called()
	return args.Get(0).(ports.ShipmentRepository)
}

type MockIntakeUoWFactory struct{ mock.Mock }

func (m *MockIntakeUoWFactory) Create() commands.IntakeUoW {
	args := m.Called()
	return args.Get(0).(commands.IntakeUoW)
}
