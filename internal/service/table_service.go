package service

import (
	"database/sql"
	"errors"

	"emenu-backend/internal/domain"
)

// UpdateTableInput is a partial update: nil fields are left untouched.
type UpdateTableInput struct {
	TableName *string `json:"tableName"`
	Status    *string `json:"status"`
}

type TableService struct {
	tables   TableRepository
	orders   OrderRepository
	calls    StaffCallRepository
	payments PaymentRequestRepository
	qr       QRGenerator
}

func NewTableService(tables TableRepository, orders OrderRepository, calls StaffCallRepository, payments PaymentRequestRepository, qr QRGenerator) *TableService {
	return &TableService{
		tables:   tables,
		orders:   orders,
		calls:    calls,
		payments: payments,
		qr:       qr,
	}
}

func (s *TableService) Create(tableNumber, tableName string) (*domain.Table, error) {
	if tableNumber == "" || tableName == "" {
		return nil, validationf("table number and name are required")
	}

	table := &domain.Table{TableNumber: tableNumber, TableName: tableName}
	if err := s.tables.CreateTable(table); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, ErrDuplicateTableNumber
		}
		return nil, err
	}
	return table, nil
}

func (s *TableService) List(status string) ([]domain.Table, error) {
	return s.tables.ListTables(status)
}

func (s *TableService) GetByNumber(number string) (*domain.Table, error) {
	table, err := s.tables.GetTableByNumber(number)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTableNotFound
		}
		return nil, err
	}
	return table, nil
}

// Detail joins the table with its active orders and pending requests, the
// single consolidated view the staff dashboard renders per table.
func (s *TableService) Detail(id int) (*domain.TableDetail, error) {
	table, err := s.tables.GetTable(id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTableNotFound
		}
		return nil, err
	}

	orders, err := s.orders.ListActiveOrdersByTable(id)
	if err != nil {
		return nil, err
	}
	calls, err := s.calls.ListStaffCalls(domain.RequestQuery{Status: domain.CallPending, TableID: id})
	if err != nil {
		return nil, err
	}
	payments, err := s.payments.ListPaymentRequests(domain.RequestQuery{Status: domain.PaymentPending, TableID: id})
	if err != nil {
		return nil, err
	}

	return &domain.TableDetail{
		Table:           *table,
		Orders:          orders,
		StaffCalls:      calls,
		PaymentRequests: payments,
	}, nil
}

func (s *TableService) Update(id int, in UpdateTableInput) (*domain.Table, error) {
	if in.Status != nil && !domain.ValidTableStatus(*in.Status) {
		return nil, validationf("invalid table status %q", *in.Status)
	}

	table, err := s.tables.GetTable(id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTableNotFound
		}
		return nil, err
	}

	if in.TableName != nil && *in.TableName != "" {
		if _, err := s.tables.UpdateTableName(id, *in.TableName); err != nil {
			return nil, err
		}
		table.TableName = *in.TableName
	}
	if in.Status != nil {
		if _, err := s.tables.SetTableStatus(id, *in.Status); err != nil {
			return nil, err
		}
		table.Status = *in.Status
	}

	return table, nil
}

func (s *TableService) Delete(id int) error {
	rows, err := s.tables.DeleteTable(id)
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrTableNotFound
	}
	return nil
}

// QRCode returns the cached PNG for the table, generating and caching it on
// first access (or after the cache was cleared).
func (s *TableService) QRCode(id int) ([]byte, error) {
	table, err := s.tables.GetTable(id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTableNotFound
		}
		return nil, err
	}

	png, err := s.tables.GetTableQRCode(id)
	if err != nil {
		return nil, err
	}
	if len(png) > 0 {
		return png, nil
	}

	png, err = s.qr.Generate(table.TableNumber)
	if err != nil {
		return nil, err
	}
	if err := s.tables.SaveTableQRCode(id, png); err != nil {
		return nil, err
	}
	return png, nil
}

var _ TableServiceInterface = (*TableService)(nil)
