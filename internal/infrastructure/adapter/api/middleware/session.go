package middleware

import (
	"net/http"
	"time"

	coreport "github.com/amirhossein-jamali/cardpay-admin/internal/domain/port/core"
	"github.com/amirhossein-jamali/cardpay-admin/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/cardpay-admin/internal/infrastructure/adapter/storage"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SessionCookie describes the cookie that identifies a client session
type SessionCookie struct {
	Name   string
	MaxAge time.Duration
	Secure bool
}

// Session binds every request to a client session. A missing or malformed
// sid cookie starts a new session. With a janitor, every request also counts
// as session activity.
func Session(
	cookie SessionCookie,
	shared persistence.KeyValueStore,
	sessions *storage.SessionJanitor,
	logger coreport.Logger,
) gin.HandlerFunc {
	return func(c *gin.Context) {
		sid, err := c.Cookie(cookie.Name)
		if _, parseErr := uuid.Parse(sid); err != nil || parseErr != nil {
			sid = uuid.NewString()
		}

		http.SetCookie(c.Writer, &http.Cookie{
			Name:     cookie.Name,
			Value:    sid,
			Path:     "/",
			MaxAge:   int(cookie.MaxAge.Seconds()),
			Secure:   cookie.Secure,
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})

		if sessions == nil {
			c.Set(storeKey, persistence.KeyValueStore(storage.Scoped(shared, sid)))
			c.Next()
			return
		}

		if err := sessions.Touch(c.Request.Context(), sid); err != nil {
			logger.Warn("Failed to record session activity", map[string]any{
				"error":      err.Error(),
				"request_id": RequestID(c),
			})
		}
		c.Set(storeKey, persistence.KeyValueStore(sessions.Scope(sid)))
		c.Next()
	}
}
