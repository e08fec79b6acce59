package domain

import "errors"

// ErrDuplicate marks unique-constraint violations (duplicate table number,
// category slug or order number) regardless of the backing store.
var ErrDuplicate = errors.New("duplicate value")

// ErrInvalidReference marks foreign-key violations, e.g. a menu item pointing
// at a category that does not exist.
var ErrInvalidReference = errors.New("invalid reference")
