package handler

import (
	"github.com/amirhossein-jamali/cardpay-admin/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/cardpay-admin/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

func view(c *gin.Context, titleKey string) dto.View {
	localizer := middleware.Localizer(c)
	return dto.NewView(string(localizer.Locale), localizer, titleKey)
}

// logQueryParams is the query string of paged log views
type logQueryParams struct {
	Search string `form:"search"`
	Page   int    `form:"page"`
}
