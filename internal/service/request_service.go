package service

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"time"

	"emenu-backend/internal/domain"
)

type StaffCallService struct {
	calls     StaffCallRepository
	tables    TableRepository
	publisher EventPublisher
}

func NewStaffCallService(calls StaffCallRepository, tables TableRepository, publisher EventPublisher) *StaffCallService {
	return &StaffCallService{calls: calls, tables: tables, publisher: publisher}
}

func (s *StaffCallService) Create(ctx context.Context, tableNumber, customerName, reason string) (*domain.StaffCall, error) {
	if tableNumber == "" || customerName == "" || reason == "" {
		return nil, validationf("table number, customer name, and reason are required")
	}

	table, err := s.tables.GetTableByNumber(tableNumber)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTableNotFound
		}
		return nil, err
	}

	call := &domain.StaffCall{
		TableID:      table.ID,
		CustomerName: customerName,
		Reason:       reason,
	}
	if err := s.calls.CreateStaffCall(call); err != nil {
		return nil, err
	}
	call.Table = &domain.TableRef{ID: table.ID, TableNumber: table.TableNumber, TableName: table.TableName}

	publish(ctx, s.publisher, domain.Event{
		Type:        domain.EventStaffCallCreated,
		EntityID:    call.ID,
		TableID:     table.ID,
		TableNumber: table.TableNumber,
		Status:      call.Status,
	})
	return call, nil
}

func (s *StaffCallService) List(status string, tableID int) ([]domain.StaffCall, error) {
	return s.calls.ListStaffCalls(domain.RequestQuery{Status: status, TableID: tableID})
}

func (s *StaffCallService) ListPending() ([]domain.StaffCall, error) {
	return s.calls.ListPendingStaffCalls()
}

func (s *StaffCallService) ListForTable(tableNumber string) ([]domain.StaffCall, error) {
	table, err := s.tables.GetTableByNumber(tableNumber)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTableNotFound
		}
		return nil, err
	}
	return s.calls.ListStaffCallsByTable(table.ID)
}

// UpdateStatus persists the new status. Unlike payment requests, staff call
// transitions never touch table occupancy.
func (s *StaffCallService) UpdateStatus(ctx context.Context, id int, status string) (*domain.StaffCall, error) {
	if status == "" {
		return nil, validationf("status is required")
	}
	if !domain.ValidStaffCallStatus(status) {
		return nil, validationf("invalid staff call status %q", status)
	}

	call, err := s.calls.GetStaffCall(id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrStaffCallNotFound
		}
		return nil, err
	}

	if _, err := s.calls.UpdateStaffCallStatus(id, status); err != nil {
		return nil, err
	}
	call.Status = status

	publish(ctx, s.publisher, domain.Event{
		Type:        domain.EventStaffCallStatusChanged,
		EntityID:    call.ID,
		TableID:     call.TableID,
		TableNumber: call.Table.TableNumber,
		Status:      status,
	})
	return call, nil
}

func (s *StaffCallService) Delete(id int) error {
	rows, err := s.calls.DeleteStaffCall(id)
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrStaffCallNotFound
	}
	return nil
}

var _ StaffCallServiceInterface = (*StaffCallService)(nil)

type PaymentRequestService struct {
	payments  PaymentRequestRepository
	tables    TableRepository
	publisher EventPublisher
}

func NewPaymentRequestService(payments PaymentRequestRepository, tables TableRepository, publisher EventPublisher) *PaymentRequestService {
	return &PaymentRequestService{payments: payments, tables: tables, publisher: publisher}
}

func (s *PaymentRequestService) Create(ctx context.Context, tableNumber, customerName, paymentMethod string) (*domain.PaymentRequest, error) {
	if tableNumber == "" || customerName == "" || paymentMethod == "" {
		return nil, validationf("table number, customer name, and payment method are required")
	}

	table, err := s.tables.GetTableByNumber(tableNumber)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTableNotFound
		}
		return nil, err
	}

	request := &domain.PaymentRequest{
		TableID:       table.ID,
		CustomerName:  customerName,
		PaymentMethod: paymentMethod,
	}
	if err := s.payments.CreatePaymentRequest(request); err != nil {
		return nil, err
	}
	request.Table = &domain.TableRef{ID: table.ID, TableNumber: table.TableNumber, TableName: table.TableName}

	publish(ctx, s.publisher, domain.Event{
		Type:        domain.EventPaymentRequested,
		EntityID:    request.ID,
		TableID:     table.ID,
		TableNumber: table.TableNumber,
		Status:      request.Status,
	})
	return request, nil
}

func (s *PaymentRequestService) List(status string, tableID int) ([]domain.PaymentRequest, error) {
	return s.payments.ListPaymentRequests(domain.RequestQuery{Status: status, TableID: tableID})
}

func (s *PaymentRequestService) ListPending() ([]domain.PaymentRequest, error) {
	return s.payments.ListPendingPaymentRequests()
}

func (s *PaymentRequestService) ListForTable(tableNumber string) ([]domain.PaymentRequest, error) {
	table, err := s.tables.GetTableByNumber(tableNumber)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTableNotFound
		}
		return nil, err
	}
	return s.payments.ListPaymentRequestsByTable(table.ID)
}

// UpdateStatus persists the new status. Completing a payment is the one path
// that automatically frees the table; the flip is idempotent.
func (s *PaymentRequestService) UpdateStatus(ctx context.Context, id int, status string) (*domain.PaymentRequest, error) {
	if status == "" {
		return nil, validationf("status is required")
	}
	if !domain.ValidPaymentStatus(status) {
		return nil, validationf("invalid payment request status %q", status)
	}

	request, err := s.payments.GetPaymentRequest(id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrPaymentRequestNotFound
		}
		return nil, err
	}

	if _, err := s.payments.UpdatePaymentRequestStatus(id, status); err != nil {
		return nil, err
	}
	request.Status = status

	if status == domain.PaymentCompleted {
		if _, err := s.tables.SetTableStatus(request.TableID, domain.TableAvailable); err != nil {
			return nil, err
		}
	}

	publish(ctx, s.publisher, domain.Event{
		Type:        domain.EventPaymentStatusChanged,
		EntityID:    request.ID,
		TableID:     request.TableID,
		TableNumber: request.Table.TableNumber,
		Status:      status,
	})
	return request, nil
}

func (s *PaymentRequestService) Delete(id int) error {
	rows, err := s.payments.DeletePaymentRequest(id)
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrPaymentRequestNotFound
	}
	return nil
}

var _ PaymentRequestServiceInterface = (*PaymentRequestService)(nil)

func publish(ctx context.Context, p EventPublisher, ev domain.Event) {
	if p == nil {
		return
	}
	ev.Timestamp = time.Now()
	if err := p.Publish(ctx, ev); err != nil {
		log.Printf("[request-service] failed to publish %s event: %v", ev.Type, err)
	}
}
