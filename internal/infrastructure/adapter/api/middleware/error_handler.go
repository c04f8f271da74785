package middleware

import (
	"errors"
	"net/http"

	errs "github.com/amirhossein-jamali/cardpay-admin/internal/domain/error"
	coreport "github.com/amirhossein-jamali/cardpay-admin/internal/domain/port/core"
	"github.com/amirhossein-jamali/cardpay-admin/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

var categoryStatus = map[errs.Category]int{
	errs.CategoryValidation:          http.StatusBadRequest,
	errs.CategoryInsufficientBalance: http.StatusBadRequest,
	errs.CategoryAuthFailure:         http.StatusUnauthorized,
	errs.CategorySessionInvalid:      http.StatusUnauthorized,
	errs.CategoryNetworkFailure:      http.StatusBadGateway,
	errs.CategoryNotFound:            http.StatusNotFound,
	errs.CategoryConflict:            http.StatusConflict,
	errs.CategoryRateLimited:         http.StatusTooManyRequests,
	errs.CategoryInternal:            http.StatusInternalServerError,
}

var categoryMessage = map[errs.Category]string{
	errs.CategoryValidation:          "validationError",
	errs.CategoryInsufficientBalance: "insufficientBalance",
	errs.CategoryAuthFailure:         "loginFailed",
	errs.CategorySessionInvalid:      "sessionExpired",
	errs.CategoryNetworkFailure:      "serviceUnavailable",
	errs.CategoryNotFound:            "notFound",
	errs.CategoryConflict:            "duplicateUser",
	errs.CategoryRateLimited:         "tooManyRequests",
	errs.CategoryInternal:            "unexpectedError",
}

// StatusFor maps an error to its HTTP status code
func StatusFor(err error) int {
	if status, ok := categoryStatus[errs.CategoryOf(err)]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// messageKey picks the dictionary key shown for err. Validation errors the
// forms know about get their own wording.
func messageKey(err error) string {
	switch {
	case errors.Is(err, errs.ErrAmountNotPositive):
		return "amountGreaterThanZero"
	case errors.Is(err, errs.ErrNoUserSelected):
		return "pleaseSelectUser"
	case errors.Is(err, errs.ErrMissingField):
		return "pleaseFillAllFields"
	}
	return categoryMessage[errs.CategoryOf(err)]
}

// RespondError aborts the request with a localized notification for err
func RespondError(c *gin.Context, logger coreport.Logger, err error) {
	category := errs.CategoryOf(err)
	status := StatusFor(err)

	fields := map[string]any{
		"error":      err.Error(),
		"category":   string(category),
		"path":       c.Request.URL.Path,
		"request_id": RequestID(c),
	}
	var detailed interface{ LogFields() map[string]any }
	if errors.As(err, &detailed) {
		for k, v := range detailed.LogFields() {
			fields[k] = v
		}
	}

	if status >= http.StatusInternalServerError {
		logger.Error("Request failed", fields)
	} else {
		logger.Debug("Request rejected", fields)
	}

	c.AbortWithStatusJSON(status, dto.ErrorResponse{
		Code:     errs.ErrorCode(err),
		Category: string(category),
		Message:  Localizer(c).T(messageKey(err)),
	})
}

// ErrorHandler middleware recovers from panics and returns appropriate error responses
func ErrorHandler(logger coreport.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				logger.Error("Panic recovered in API request", map[string]any{
					"error":      err,
					"path":       c.Request.URL.Path,
					"method":     c.Request.Method,
					"client_ip":  c.ClientIP(),
					"request_id": RequestID(c),
					"user_agent": c.Request.UserAgent(),
				})

				c.AbortWithStatusJSON(http.StatusInternalServerError, dto.ErrorResponse{
					Code:     errs.ErrorCode(errs.ErrInternalServer),
					Category: string(errs.CategoryInternal),
					Message:  Localizer(c).T("unexpectedError"),
				})
			}
		}()

		c.Next()
	}
}
