package middleware

import (
	"github.com/amirhossein-jamali/cardpay-admin/internal/infrastructure/adapter/i18n"
	"github.com/gin-gonic/gin"
)

// Locale picks the caller's language from the session, then Accept-Language
func Locale(prefs *i18n.Preferences) gin.HandlerFunc {
	return func(c *gin.Context) {
		lang := prefs.Resolve(c.Request.Context(), SessionStore(c), c.GetHeader("Accept-Language"))
		c.Set(localizerKey, i18n.NewLocalizer(lang))
		c.Header("Content-Language", string(lang))
		c.Next()
	}
}
