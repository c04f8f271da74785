package handler

import (
	"net/http"

	errs "github.com/amirhossein-jamali/cardpay-admin/internal/domain/error"
	coreport "github.com/amirhossein-jamali/cardpay-admin/internal/domain/port/core"
	"github.com/amirhossein-jamali/cardpay-admin/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/cardpay-admin/internal/infrastructure/adapter/api/middleware"
	"github.com/amirhossein-jamali/cardpay-admin/internal/infrastructure/adapter/i18n"
	"github.com/gin-gonic/gin"
)

// LanguageHandler switches the UI language of a client session
type LanguageHandler struct {
	preferences *i18n.Preferences
	logger      coreport.Logger
}

// NewLanguageHandler creates a new language handler instance
func NewLanguageHandler(preferences *i18n.Preferences, logger coreport.Logger) *LanguageHandler {
	return &LanguageHandler{
		preferences: preferences,
		logger:      logger,
	}
}

// SetLanguage handles PUT /language
func (h *LanguageHandler) SetLanguage(c *gin.Context) {
	var req dto.LanguageRequest
	if err := c.ShouldBind(&req); err != nil {
		middleware.RespondError(c, h.logger, errs.ErrInvalidRequest)
		return
	}

	lang, err := h.preferences.Set(c.Request.Context(), middleware.SessionStore(c), req.Language)
	if err != nil {
		middleware.RespondError(c, h.logger, err)
		return
	}

	localizer := i18n.NewLocalizer(lang)
	c.Header("Content-Language", string(lang))
	c.JSON(http.StatusOK, dto.LanguageResponse{
		Locale:    string(lang),
		Direction: localizer.Direction(),
		Message:   localizer.T("languageChanged"),
	})
}
