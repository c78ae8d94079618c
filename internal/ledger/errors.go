package ledger

import (
	"errors"
	"fmt"
)

// Sentinel errors for absent references. Handlers map these to 404.
var (
	ErrProductNotFound = errors.New("product not found")
	ErrBatchNotFound   = errors.New("incoming batch not found")
	ErrRecordNotFound  = errors.New("inspection record not found")
)

// ValidationError reports invalid or out-of-range input. No mutation has
// happened when it is returned.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

func validationErrorf(format string, args ...interface{}) error {
	return &ValidationError{Reason: fmt.Sprintf(format, args...)}
}

// ConflictError reports a duplicate unique key on catalog create/update.
type ConflictError struct {
	Reason string
}

func (e *ConflictError) Error() string {
	return e.Reason
}
