package tests

import (
	"database/sql"
	"testing"

	"emenu-backend/internal/domain"
	"emenu-backend/internal/mocks"
	"emenu-backend/internal/service"

	"github.com/stretchr/testify/assert"
)

func newTableService(t *testing.T) (*service.TableService, *mocks.TableRepository, *mocks.OrderRepository, *mocks.StaffCallRepository, *mocks.PaymentRequestRepository, *mocks.QRGenerator) {
	tables := mocks.NewTableRepository(t)
	orders := mocks.NewOrderRepository(t)
	calls := mocks.NewStaffCallRepository(t)
	payments := mocks.NewPaymentRequestRepository(t)
	qr := mocks.NewQRGenerator(t)
	return service.NewTableService(tables, orders, calls, payments, qr), tables, orders, calls, payments, qr
}

func TestTableService_Create(t *testing.T) {
	t.Run("duplicate_number", func(t *testing.T) {
		svc, tables, _, _, _, _ := newTableService(t)

		tables.On("CreateTable", &domain.Table{TableNumber: "05", TableName: "Window seat"}).
			Return(domain.ErrDuplicate).Once()

		_, err := svc.Create("05", "Window seat")
		assert.ErrorIs(t, err, service.ErrDuplicateTableNumber)
	})

	t.Run("missing_fields", func(t *testing.T) {
		svc, _, _, _, _, _ := newTableService(t)

		_, err := svc.Create("05", "")
		assert.True(t, service.IsValidation(err))
	})
}

func TestTableService_Detail(t *testing.T) {
	svc, tables, orders, calls, payments, _ := newTableService(t)

	tables.On("GetTable", 3).Return(&domain.Table{ID: 3, TableNumber: "05", Status: domain.TableOccupied}, nil).Once()
	orders.On("ListActiveOrdersByTable", 3).Return([]domain.Order{{ID: 7, Status: domain.OrderConfirmed}}, nil).Once()
	calls.On("ListStaffCalls", domain.RequestQuery{Status: domain.CallPending, TableID: 3}).
		Return([]domain.StaffCall{{ID: 4}}, nil).Once()
	payments.On("ListPaymentRequests", domain.RequestQuery{Status: domain.PaymentPending, TableID: 3}).
		Return([]domain.PaymentRequest{}, nil).Once()

	detail, err := svc.Detail(3)
	assert.NoError(t, err)
	assert.Equal(t, "05", detail.TableNumber)
	assert.Len(t, detail.Orders, 1)
	assert.Len(t, detail.StaffCalls, 1)
	assert.Empty(t, detail.PaymentRequests)
}

func TestTableService_Update(t *testing.T) {
	t.Run("status_goes_through_single_path", func(t *testing.T) {
		svc, tables, _, _, _, _ := newTableService(t)

		occupied := domain.TableOccupied
		tables.On("GetTable", 3).Return(&domain.Table{ID: 3, Status: domain.TableAvailable}, nil).Once()
		tables.On("SetTableStatus", 3, domain.TableOccupied).Return(int64(1), nil).Once()

		table, err := svc.Update(3, service.UpdateTableInput{Status: &occupied})
		assert.NoError(t, err)
		assert.Equal(t, domain.TableOccupied, table.Status)
	})

	t.Run("unknown_status_rejected", func(t *testing.T) {
		svc, tables, _, _, _, _ := newTableService(t)

		bogus := "RESERVED"
		_, err := svc.Update(3, service.UpdateTableInput{Status: &bogus})
		assert.True(t, service.IsValidation(err))
		tables.AssertNotCalled(t, "GetTable")
	})
}

func TestTableService_QRCode(t *testing.T) {
	t.Run("cached_bytes_returned_directly", func(t *testing.T) {
		svc, tables, _, _, _, qr := newTableService(t)

		tables.On("GetTable", 3).Return(&domain.Table{ID: 3, TableNumber: "05"}, nil).Once()
		tables.On("GetTableQRCode", 3).Return([]byte("png-bytes"), nil).Once()

		png, err := svc.QRCode(3)
		assert.NoError(t, err)
		assert.Equal(t, []byte("png-bytes"), png)
		qr.AssertNotCalled(t, "Generate")
	})

	t.Run("generated_and_saved_on_miss", func(t *testing.T) {
		svc, tables, _, _, _, qr := newTableService(t)

		tables.On("GetTable", 3).Return(&domain.Table{ID: 3, TableNumber: "05"}, nil).Once()
		tables.On("GetTableQRCode", 3).Return([]byte(nil), nil).Once()
		qr.On("Generate", "05").Return([]byte("fresh-png"), nil).Once()
		tables.On("SaveTableQRCode", 3, []byte("fresh-png")).Return(nil).Once()

		png, err := svc.QRCode(3)
		assert.NoError(t, err)
		assert.Equal(t, []byte("fresh-png"), png)
	})

	t.Run("table_not_found", func(t *testing.T) {
		svc, tables, _, _, _, _ := newTableService(t)

		tables.On("GetTable", 99).Return(nil, sql.ErrNoRows).Once()

		_, err := svc.QRCode(99)
		assert.ErrorIs(t, err, service.ErrTableNotFound)
	})
}
