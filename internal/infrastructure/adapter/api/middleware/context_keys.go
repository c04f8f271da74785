package middleware

import (
	"github.com/amirhossein-jamali/cardpay-admin/internal/domain/entity"
	"github.com/amirhossein-jamali/cardpay-admin/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/cardpay-admin/internal/infrastructure/adapter/i18n"
	"github.com/gin-gonic/gin"
)

// Keys under which middleware stores request-scoped values in the gin context
const (
	requestIDKey  = "cardpay.requestID"
	storeKey      = "cardpay.sessionStore"
	localizerKey  = "cardpay.localizer"
	resolutionKey = "cardpay.resolution"
)

// RequestIDHeader carries the request id in both directions
const RequestIDHeader = "X-Request-ID"

// RequestID returns the id assigned by the Logger middleware
func RequestID(c *gin.Context) string {
	return c.GetString(requestIDKey)
}

// SessionStore returns the store scoped to the caller's session.
// It panics when the Session middleware did not run.
func SessionStore(c *gin.Context) persistence.KeyValueStore {
	return c.MustGet(storeKey).(persistence.KeyValueStore)
}

// Localizer returns the caller's localizer, English when the Locale middleware did not run
func Localizer(c *gin.Context) *i18n.Localizer {
	if value, ok := c.Get(localizerKey); ok {
		if localizer, ok := value.(*i18n.Localizer); ok {
			return localizer
		}
	}
	return i18n.NewLocalizer(i18n.English)
}

// CurrentResolution returns the resolution computed by the Guard middleware
func CurrentResolution(c *gin.Context) entity.Resolution {
	if value, ok := c.Get(resolutionKey); ok {
		if res, ok := value.(entity.Resolution); ok {
			return res
		}
	}
	return entity.Resolution{}
}

// CurrentSession returns the authenticated session, or nil
func CurrentSession(c *gin.Context) *entity.Session {
	res := CurrentResolution(c)
	if !res.IsAuthenticated() {
		return nil
	}
	return res.Session
}
