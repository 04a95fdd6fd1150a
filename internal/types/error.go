package types

import (
	"errors"
	"net/http"

	"github.com/meridianlabs-io/staking-rewards-ledger/internal/ledger"
)

type ErrorCode string

func (e ErrorCode) String() string {
	return string(e)
}

const (
	// InternalServiceError is the error code for internal service errors
	InternalServiceError ErrorCode = "INTERNAL_SERVICE_ERROR"
	// ValidationError is the error code for validation errors on request input
	ValidationError ErrorCode = "VALIDATION_ERROR"
	// NotFound is the error code for not found errors
	NotFound ErrorCode = "NOT_FOUND"
	// InvalidAmount is the error code for non-positive deposit amounts
	InvalidAmount ErrorCode = "INVALID_AMOUNT"
	// InvalidTick is the error code for operations submitted at tick 0
	InvalidTick ErrorCode = "INVALID_TICK"
	// NotStaking is the error code for withdrawals without an active stake
	NotStaking ErrorCode = "NOT_STAKING"
	// NothingToClaim is the error code for claims with zero pending reward
	NothingToClaim ErrorCode = "NOTHING_TO_CLAIM"
	// Unauthorized is the error code for distribution requests by a non-admin
	Unauthorized ErrorCode = "UNAUTHORIZED"
)

// Error wraps an underlying error with the taxonomy code and the HTTP status
// it maps to at the API boundary.
type Error struct {
	Err        error
	StatusCode int
	ErrorCode  ErrorCode
}

func (e *Error) Error() string {
	return e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

func NewError(statusCode int, errorCode ErrorCode, err error) *Error {
	return &Error{
		StatusCode: statusCode,
		ErrorCode:  errorCode,
		Err:        err,
	}
}

func NewInternalServiceError(err error) *Error {
	return &Error{
		StatusCode: http.StatusInternalServerError,
		ErrorCode:  InternalServiceError,
		Err:        err,
	}
}

func NewValidationFailedError(err error) *Error {
	return &Error{
		StatusCode: http.StatusBadRequest,
		ErrorCode:  ValidationError,
		Err:        err,
	}
}

// FromLedgerError maps the ledger's pre-condition errors onto taxonomy codes
// and HTTP statuses. Anything the ledger did not classify is an internal
// service error.
func FromLedgerError(err error) *Error {
	switch {
	case errors.Is(err, ledger.ErrInvalidAmount):
		return NewError(http.StatusBadRequest, InvalidAmount, err)
	case errors.Is(err, ledger.ErrInvalidTick):
		return NewError(http.StatusBadRequest, InvalidTick, err)
	case errors.Is(err, ledger.ErrNotStaking):
		return NewError(http.StatusForbidden, NotStaking, err)
	case errors.Is(err, ledger.ErrNothingToClaim):
		return NewError(http.StatusForbidden, NothingToClaim, err)
	case errors.Is(err, ledger.ErrUnauthorized):
		return NewError(http.StatusUnauthorized, Unauthorized, err)
	default:
		return NewInternalServiceError(err)
	}
}
