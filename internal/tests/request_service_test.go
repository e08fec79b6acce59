package tests

import (
	"context"
	"database/sql"
	"testing"

	"emenu-backend/internal/domain"
	"emenu-backend/internal/mocks"
	"emenu-backend/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestStaffCallService_Create(t *testing.T) {
	ctx := context.Background()
	table := &domain.Table{ID: 3, TableNumber: "05", TableName: "Window seat"}

	t.Run("success", func(t *testing.T) {
		calls := mocks.NewStaffCallRepository(t)
		tables := mocks.NewTableRepository(t)
		publisher := mocks.NewEventPublisher(t)
		svc := service.NewStaffCallService(calls, tables, publisher)

		tables.On("GetTableByNumber", "05").Return(table, nil).Once()
		calls.On("CreateStaffCall", mock.MatchedBy(func(c *domain.StaffCall) bool {
			return c.TableID == 3 && c.CustomerName == "Linh" && c.Reason == "Need more napkins"
		})).Return(nil).Once()
		publisher.On("Publish", mock.Anything, mock.MatchedBy(func(ev domain.Event) bool {
			return ev.Type == domain.EventStaffCallCreated && ev.TableNumber == "05"
		})).Return(nil).Once()

		call, err := svc.Create(ctx, "05", "Linh", "Need more napkins")
		assert.NoError(t, err)
		assert.Equal(t, "05", call.Table.TableNumber)
	})

	t.Run("missing_reason", func(t *testing.T) {
		svc := service.NewStaffCallService(mocks.NewStaffCallRepository(t), mocks.NewTableRepository(t), nil)

		_, err := svc.Create(ctx, "05", "Linh", "")
		assert.True(t, service.IsValidation(err))
	})

	t.Run("unknown_table", func(t *testing.T) {
		calls := mocks.NewStaffCallRepository(t)
		tables := mocks.NewTableRepository(t)
		svc := service.NewStaffCallService(calls, tables, nil)

		tables.On("GetTableByNumber", "99").Return(nil, sql.ErrNoRows).Once()

		_, err := svc.Create(ctx, "99", "Linh", "Need help")
		assert.ErrorIs(t, err, service.ErrTableNotFound)
		calls.AssertNotCalled(t, "CreateStaffCall")
	})
}

func TestStaffCallService_UpdateStatus(t *testing.T) {
	ctx := context.Background()

	stored := func() *domain.StaffCall {
		return &domain.StaffCall{
			ID:      4,
			TableID: 3,
			Status:  domain.CallPending,
			Table:   &domain.TableRef{ID: 3, TableNumber: "05"},
		}
	}

	t.Run("acknowledge_leaves_table_untouched", func(t *testing.T) {
		calls := mocks.NewStaffCallRepository(t)
		tables := mocks.NewTableRepository(t)
		publisher := mocks.NewEventPublisher(t)
		svc := service.NewStaffCallService(calls, tables, publisher)

		calls.On("GetStaffCall", 4).Return(stored(), nil).Once()
		calls.On("UpdateStaffCallStatus", 4, domain.CallAcknowledged).Return(int64(1), nil).Once()
		publisher.On("Publish", mock.Anything, mock.Anything).Return(nil).Once()

		call, err := svc.UpdateStatus(ctx, 4, domain.CallAcknowledged)
		assert.NoError(t, err)
		assert.Equal(t, domain.CallAcknowledged, call.Status)
		tables.AssertNotCalled(t, "SetTableStatus")
	})

	t.Run("unknown_status_rejected", func(t *testing.T) {
		calls := mocks.NewStaffCallRepository(t)
		svc := service.NewStaffCallService(calls, mocks.NewTableRepository(t), nil)

		_, err := svc.UpdateStatus(ctx, 4, "SHOUTED")
		assert.True(t, service.IsValidation(err))
		calls.AssertNotCalled(t, "GetStaffCall")
	})
}

func TestPaymentRequestService_UpdateStatus(t *testing.T) {
	ctx := context.Background()

	stored := func() *domain.PaymentRequest {
		return &domain.PaymentRequest{
			ID:            9,
			TableID:       3,
			PaymentMethod: "cash",
			Status:        domain.PaymentProcessing,
			Table:         &domain.TableRef{ID: 3, TableNumber: "05"},
		}
	}

	t.Run("completed_frees_the_table", func(t *testing.T) {
		payments := mocks.NewPaymentRequestRepository(t)
		tables := mocks.NewTableRepository(t)
		publisher := mocks.NewEventPublisher(t)
		svc := service.NewPaymentRequestService(payments, tables, publisher)

		payments.On("GetPaymentRequest", 9).Return(stored(), nil).Once()
		payments.On("UpdatePaymentRequestStatus", 9, domain.PaymentCompleted).Return(int64(1), nil).Once()
		tables.On("SetTableStatus", 3, domain.TableAvailable).Return(int64(1), nil).Once()
		publisher.On("Publish", mock.Anything, mock.MatchedBy(func(ev domain.Event) bool {
			return ev.Type == domain.EventPaymentStatusChanged && ev.Status == domain.PaymentCompleted
		})).Return(nil).Once()

		request, err := svc.UpdateStatus(ctx, 9, domain.PaymentCompleted)
		assert.NoError(t, err)
		assert.Equal(t, domain.PaymentCompleted, request.Status)
	})

	t.Run("processing_does_not_touch_table", func(t *testing.T) {
		payments := mocks.NewPaymentRequestRepository(t)
		tables := mocks.NewTableRepository(t)
		publisher := mocks.NewEventPublisher(t)
		svc := service.NewPaymentRequestService(payments, tables, publisher)

		pending := stored()
		pending.Status = domain.PaymentPending
		payments.On("GetPaymentRequest", 9).Return(pending, nil).Once()
		payments.On("UpdatePaymentRequestStatus", 9, domain.PaymentProcessing).Return(int64(1), nil).Once()
		publisher.On("Publish", mock.Anything, mock.Anything).Return(nil).Once()

		_, err := svc.UpdateStatus(ctx, 9, domain.PaymentProcessing)
		assert.NoError(t, err)
		tables.AssertNotCalled(t, "SetTableStatus")
	})

	t.Run("not_found", func(t *testing.T) {
		payments := mocks.NewPaymentRequestRepository(t)
		svc := service.NewPaymentRequestService(payments, mocks.NewTableRepository(t), nil)

		payments.On("GetPaymentRequest", 99).Return(nil, sql.ErrNoRows).Once()

		_, err := svc.UpdateStatus(ctx, 99, domain.PaymentCompleted)
		assert.ErrorIs(t, err, service.ErrPaymentRequestNotFound)
	})
}

func TestPaymentRequestService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("missing_method", func(t *testing.T) {
		svc := service.NewPaymentRequestService(mocks.NewPaymentRequestRepository(t), mocks.NewTableRepository(t), nil)

		_, err := svc.Create(ctx, "05", "Linh", "")
		assert.True(t, service.IsValidation(err))
	})

	t.Run("success", func(t *testing.T) {
		payments := mocks.NewPaymentRequestRepository(t)
		tables := mocks.NewTableRepository(t)
		svc := service.NewPaymentRequestService(payments, tables, nil)

		tables.On("GetTableByNumber", "05").Return(&domain.Table{ID: 3, TableNumber: "05"}, nil).Once()
		payments.On("CreatePaymentRequest", mock.MatchedBy(func(p *domain.PaymentRequest) bool {
			return p.TableID == 3 && p.PaymentMethod == "card"
		})).Return(nil).Once()

		request, err := svc.Create(ctx, "05", "Linh", "card")
		assert.NoError(t, err)
		assert.Equal(t, "card", request.PaymentMethod)
	})
}
