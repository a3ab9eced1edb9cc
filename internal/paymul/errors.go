package paymul

import (
	"errors"
	"fmt"
)

var (
	ErrMalformedAccountNumber    = errors.New("malformed account number")
	ErrUnsupportedPaymentType    = errors.New("unsupported payment type")
	ErrMissingBeneficiaryAddress = errors.New("missing beneficiary address")
	ErrMissingBeneficiaryAccount = errors.New("missing beneficiary account")
	ErrInvalidSourceAccount      = errors.New("invalid source account")
	ErrFieldOverflow             = errors.New("field overflow")
	ErrInvalidField              = errors.New("invalid field")
	ErrMixedCurrencies           = errors.New("transactions in a batch must share one currency")
)

// FieldError reports which field failed. It unwraps to the sentinel that
// classifies the failure.
type FieldError struct {
	Field  string
	Value  string
	Reason string
	Err    error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s %q: %s", e.Err, e.Field, e.Value, e.Reason)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

func overflow(field, value string, max int) error {
	return &FieldError{
		Field:  field,
		Value:  value,
		Reason: fmt.Sprintf("must be at most %d characters", max),
		Err:    ErrFieldOverflow,
	}
}

func invalid(field, value, reason string) error {
	return &FieldError{
		Field:  field,
		Value:  value,
		Reason: reason,
		Err:    ErrInvalidField,
	}
}
