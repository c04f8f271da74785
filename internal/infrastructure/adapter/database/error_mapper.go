package database

import (
	"context"
	"errors"
	"fmt"
	"strings"

	domainErr "github.com/amirhossein-jamali/cardpay-admin/internal/domain/error"
	"gorm.io/gorm"
)

// ErrorMapper maps database errors to domain errors
type ErrorMapper struct{}

// NewErrorMapper creates a new ErrorMapper
func NewErrorMapper() *ErrorMapper {
	return &ErrorMapper{}
}

// MapError maps a database error to a domain error
func (m *ErrorMapper) MapError(err error, operation string) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domainErr.ErrKeyNotFound
	}
	if errors.Is(err, context.Canceled) {
		return err
	}

	errMsg := strings.ToLower(err.Error())

	switch {
	case errors.Is(err, context.DeadlineExceeded) ||
		strings.Contains(errMsg, "timeout") ||
		strings.Contains(errMsg, "deadline exceeded"):
		return fmt.Errorf("%w: %s operation timed out", domainErr.ErrStorage, operation)

	case strings.Contains(errMsg, "connection refused") ||
		strings.Contains(errMsg, "no connection") ||
		strings.Contains(errMsg, "connection reset"):
		return fmt.Errorf("%w: %s: database unavailable", domainErr.ErrStorage, operation)

	default:
		return fmt.Errorf("%w: %s: %v", domainErr.ErrStorage, operation, err)
	}
}
