package core

import (
	"errors"
)

var (
	ErrEmptyPaymentOrder       = errors.New("payment order has no payment lines")
	ErrSequenceNotFound        = errors.New("sequence not found")
	ErrExecutionDateOutOfRange = errors.New("execution date out of range")
)
