package error

import (
	"errors"
	"fmt"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeInsufficientBalance    = 4001
	CodeInvalidAmount          = 4002
	CodeInvalidUserID          = 4003
	CodeAmountNotPositive      = 4004
	CodeNoUserSelected         = 4005
	CodeAmountOverflow         = 4006
	CodeMissingField           = 4007
	CodeInvalidTransactionType = 4008
	CodeInvalidLanguage        = 4009
	CodeInvalidRequest         = 4010
	CodeAuthFailure            = 4011
	CodeSessionInvalid         = 4012
	CodeDuplicateUser          = 4090
	CodeUserNotFound           = 4040
	CodeProductNotFound        = 4041
	CodeNotFound               = 4044
	CodeRateLimited            = 4290

	// 5xxx - Server errors
	CodeInternalServer = 5000
	CodeNetworkFailure = 5020
	CodeStorage        = 5030
)

// Base error types
var (
	// ErrValidation is the parent of every input validation failure
	ErrValidation = errors.New("validation error")

	// ErrMissingField is returned when a required field is empty
	ErrMissingField = fmt.Errorf("%w: required field missing", ErrValidation)

	// ErrAmountNotPositive is returned when a transaction amount is zero or negative
	ErrAmountNotPositive = fmt.Errorf("%w: amount must be greater than zero", ErrValidation)

	// ErrNoUserSelected is returned when a transaction is submitted without a user
	ErrNoUserSelected = fmt.Errorf("%w: no user selected", ErrValidation)

	// ErrInvalidAmount is returned when the amount cannot be read as a whole number of currency units
	ErrInvalidAmount = fmt.Errorf("%w: invalid amount format", ErrValidation)

	// ErrNegativeAmount is returned when an initial balance is negative
	ErrNegativeAmount = fmt.Errorf("%w: amount cannot be negative", ErrValidation)

	// ErrInvalidUserID is returned when the user ID is not a positive integer
	ErrInvalidUserID = fmt.Errorf("%w: user ID must be positive", ErrValidation)

	// ErrInvalidTransactionType is returned for anything other than credit or debit
	ErrInvalidTransactionType = fmt.Errorf("%w: invalid transaction type", ErrValidation)

	// ErrInvalidLanguage is returned when an unsupported language tag is requested
	ErrInvalidLanguage = fmt.Errorf("%w: unsupported language", ErrValidation)

	// ErrInvalidRequest is returned when the request format is invalid
	ErrInvalidRequest = fmt.Errorf("%w: invalid request", ErrValidation)

	// ErrAmountOverflow is returned when a credit would push a balance out of range
	ErrAmountOverflow = errors.New("amount is too large and would cause overflow")

	// ErrInsufficientBalance is returned when a debit exceeds the current balance
	ErrInsufficientBalance = errors.New("insufficient balance")

	// ErrAuthFailure is returned for bad credentials
	ErrAuthFailure = errors.New("invalid username or password")

	// ErrSessionInvalid is returned for a malformed or expired session, or a failed verification
	ErrSessionInvalid = errors.New("session is invalid")

	// ErrNetworkFailure is returned when the verification endpoint cannot be reached
	ErrNetworkFailure = errors.New("verification service unreachable")

	// ErrUserNotFound is returned when the requested user doesn't exist
	ErrUserNotFound = errors.New("user not found")

	// ErrProductNotFound is returned when the requested catalog product doesn't exist
	ErrProductNotFound = errors.New("product not found")

	// ErrDuplicateUser is returned when the matric or card number is already registered
	ErrDuplicateUser = errors.New("user already exists")

	// ErrKeyNotFound is returned by key-value stores for an absent key
	ErrKeyNotFound = errors.New("key not found")

	// ErrNotFound is returned when a generic resource is not found
	ErrNotFound = errors.New("resource not found")

	// ErrStorage is returned when the persistence layer fails
	ErrStorage = errors.New("storage error")

	// ErrRateLimited is returned when a client exceeds the login rate
	ErrRateLimited = errors.New("too many requests")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")
)

// Category groups errors into the families surfaced to the user
type Category string

const (
	CategoryValidation          Category = "validation"
	CategoryInsufficientBalance Category = "insufficient_balance"
	CategoryAuthFailure         Category = "auth_failure"
	CategorySessionInvalid      Category = "session_invalid"
	CategoryNetworkFailure      Category = "network_failure"
	CategoryNotFound            Category = "not_found"
	CategoryConflict            Category = "conflict"
	CategoryRateLimited         Category = "rate_limited"
	CategoryInternal            Category = "internal"
)

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrInsufficientBalance):
		return CodeInsufficientBalance
	case errors.Is(err, ErrAmountNotPositive):
		return CodeAmountNotPositive
	case errors.Is(err, ErrNoUserSelected):
		return CodeNoUserSelected
	case errors.Is(err, ErrInvalidAmount), errors.Is(err, ErrNegativeAmount):
		return CodeInvalidAmount
	case errors.Is(err, ErrInvalidUserID):
		return CodeInvalidUserID
	case errors.Is(err, ErrMissingField):
		return CodeMissingField
	case errors.Is(err, ErrInvalidTransactionType):
		return CodeInvalidTransactionType
	case errors.Is(err, ErrInvalidLanguage):
		return CodeInvalidLanguage
	case errors.Is(err, ErrValidation):
		return CodeInvalidRequest
	case errors.Is(err, ErrAmountOverflow):
		return CodeAmountOverflow
	case errors.Is(err, ErrAuthFailure):
		return CodeAuthFailure
	case errors.Is(err, ErrSessionInvalid):
		return CodeSessionInvalid
	case errors.Is(err, ErrNetworkFailure):
		return CodeNetworkFailure
	case errors.Is(err, ErrUserNotFound):
		return CodeUserNotFound
	case errors.Is(err, ErrProductNotFound):
		return CodeProductNotFound
	case errors.Is(err, ErrNotFound), errors.Is(err, ErrKeyNotFound):
		return CodeNotFound
	case errors.Is(err, ErrDuplicateUser):
		return CodeDuplicateUser
	case errors.Is(err, ErrRateLimited):
		return CodeRateLimited
	case errors.Is(err, ErrStorage):
		return CodeStorage
	default:
		return CodeInternalServer
	}
}

// CategoryOf places an error into its user-facing family
func CategoryOf(err error) Category {
	switch {
	case errors.Is(err, ErrInsufficientBalance):
		return CategoryInsufficientBalance
	case errors.Is(err, ErrAmountOverflow), errors.Is(err, ErrValidation):
		return CategoryValidation
	case errors.Is(err, ErrAuthFailure):
		return CategoryAuthFailure
	case errors.Is(err, ErrSessionInvalid):
		return CategorySessionInvalid
	case errors.Is(err, ErrNetworkFailure):
		return CategoryNetworkFailure
	case IsNotFoundError(err):
		return CategoryNotFound
	case errors.Is(err, ErrDuplicateUser):
		return CategoryConflict
	case errors.Is(err, ErrRateLimited):
		return CategoryRateLimited
	default:
		return CategoryInternal
	}
}

// TransactionError represents an error related to ledger processing
type TransactionError struct {
	UserID uint64
	Type   string
	Amount int64
	Reason string
	Err    error
}

// Error implements the error interface for TransactionError
func (e *TransactionError) Error() string {
	return fmt.Sprintf("transaction error (user: %d, type: %s, amount: %d): %s - %v",
		e.UserID, e.Type, e.Amount, e.Reason, e.Err)
}

// Unwrap returns the underlying error
func (e *TransactionError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *TransactionError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "transaction_error",
		"user_id":    e.UserID,
		"type":       e.Type,
		"amount":     e.Amount,
		"reason":     e.Reason,
		"error":      e.Err.Error(),
		"error_code": ErrorCode(e.Err),
	}
}

// NewTransactionError creates a detailed transaction error
func NewTransactionError(userID uint64, txType string, amount int64, reason string, err error) error {
	return &TransactionError{
		UserID: userID,
		Type:   txType,
		Amount: amount,
		Reason: reason,
		Err:    err,
	}
}

// InsufficientBalanceError provides detailed error information for insufficient balance
type InsufficientBalanceError struct {
	UserID      uint64
	Amount      int64
	CurrBalance int64
}

// Error implements the error interface
func (e *InsufficientBalanceError) Error() string {
	return fmt.Sprintf("insufficient balance for user %d: required %d, available %d",
		e.UserID, e.Amount, e.CurrBalance)
}

// Is checks if the target error is an ErrInsufficientBalance
func (e *InsufficientBalanceError) Is(target error) bool {
	return target == ErrInsufficientBalance
}

// LogFields returns a map of fields for structured logging
func (e *InsufficientBalanceError) LogFields() map[string]any {
	return map[string]any{
		"error_type":      "insufficient_balance",
		"user_id":         e.UserID,
		"amount":          e.Amount,
		"current_balance": e.CurrBalance,
		"error_code":      CodeInsufficientBalance,
	}
}

// NewInsufficientBalanceError creates a new detailed insufficient balance error
func NewInsufficientBalanceError(userID uint64, amount, currentBalance int64) error {
	return &InsufficientBalanceError{
		UserID:      userID,
		Amount:      amount,
		CurrBalance: currentBalance,
	}
}

// IsValidationError checks if the error belongs to the validation family
func IsValidationError(err error) bool {
	return errors.Is(err, ErrValidation)
}

// IsInsufficientBalanceError checks if the error is related to insufficient balance
func IsInsufficientBalanceError(err error) bool {
	return errors.Is(err, ErrInsufficientBalance)
}

// IsUserNotFoundError checks if the error is a user not found error
func IsUserNotFoundError(err error) bool {
	return errors.Is(err, ErrUserNotFound)
}

// IsNotFoundError checks if the error is any "not found" type of error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrUserNotFound) ||
		errors.Is(err, ErrProductNotFound) ||
		errors.Is(err, ErrKeyNotFound)
}
