package service

import (
	"errors"
	"fmt"
)

var (
	ErrTableNotFound          = errors.New("table not found")
	ErrOrderNotFound          = errors.New("order not found")
	ErrMenuItemNotFound       = errors.New("menu item not found")
	ErrCategoryNotFound       = errors.New("category not found")
	ErrStaffCallNotFound      = errors.New("staff call not found")
	ErrPaymentRequestNotFound = errors.New("payment request not found")

	ErrDuplicateTableNumber  = errors.New("table number already exists")
	ErrDuplicateCategorySlug = errors.New("category slug already exists")
	ErrOrderNumberExhausted  = errors.New("could not generate a unique order number")
)

// ValidationError carries the message shown to the client for a 400 response.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func validationf(format string, args ...interface{}) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
