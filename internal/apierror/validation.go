package apierror

import (
	"errors"
	"fmt"
)

type ValidationError struct {
	RowNumber int
	UserMsg   string
}

type ValidationFn[T any] func(T) error

func NonNegative(f float64) error {
	if f >= 0 {
		return nil
	}

	return errors.New(ErrValueMustBeNonNegative)
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error at row %d: %s", e.RowNumber, e.UserMsg)
}
