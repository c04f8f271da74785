package handler

import (
	"net/http"

	errs "github.com/amirhossein-jamali/cardpay-admin/internal/domain/error"
	coreport "github.com/amirhossein-jamali/cardpay-admin/internal/domain/port/core"
	"github.com/amirhossein-jamali/cardpay-admin/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/cardpay-admin/internal/domain/usecase/guard"
	"github.com/amirhossein-jamali/cardpay-admin/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/cardpay-admin/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// NavigationHandler serves the root redirect, unknown paths and health checks
type NavigationHandler struct {
	resolvers usecase.SessionResolverFactory
	logger    coreport.Logger
}

// NewNavigationHandler creates a new navigation handler instance
func NewNavigationHandler(resolvers usecase.SessionResolverFactory, logger coreport.Logger) *NavigationHandler {
	return &NavigationHandler{
		resolvers: resolvers,
		logger:    logger,
	}
}

// Index handles GET / by sending the caller to their landing page
func (h *NavigationHandler) Index(c *gin.Context) {
	middleware.Apply(c, guard.Index(middleware.Resolve(c, h.resolvers)))
}

// NotFound answers unknown paths once the guard has let the caller through
func (h *NavigationHandler) NotFound(c *gin.Context) {
	middleware.RespondError(c, h.logger, errs.ErrNotFound)
}

// Healthz handles GET /healthz
func (h *NavigationHandler) Healthz(c *gin.Context) {
	c.JSON(http.StatusOK, dto.StatusResponse{Status: "ok"})
}
