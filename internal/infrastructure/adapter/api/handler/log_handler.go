package handler

import (
	"net/http"

	"github.com/amirhossein-jamali/cardpay-admin/internal/domain/entity"
	errs "github.com/amirhossein-jamali/cardpay-admin/internal/domain/error"
	coreport "github.com/amirhossein-jamali/cardpay-admin/internal/domain/port/core"
	"github.com/amirhossein-jamali/cardpay-admin/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/cardpay-admin/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/cardpay-admin/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// LogHandler serves the transaction log
type LogHandler struct {
	ledgerUseCase usecase.LedgerUseCase
	logger        coreport.Logger
}

// NewLogHandler creates a new log handler instance
func NewLogHandler(ledgerUseCase usecase.LedgerUseCase, logger coreport.Logger) *LogHandler {
	return &LogHandler{
		ledgerUseCase: ledgerUseCase,
		logger:        logger,
	}
}

// ListLogs handles GET /logs?search=&page=
func (h *LogHandler) ListLogs(c *gin.Context) {
	var params logQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		middleware.RespondError(c, h.logger, errs.ErrInvalidRequest)
		return
	}

	query := usecase.LogQuery{Search: params.Search, Page: params.Page}
	if session := middleware.CurrentSession(c); session != nil && session.Role == entity.RoleStudent {
		query.MatricNumber = session.Username
	}

	page, err := h.ledgerUseCase.ListLogs(c.Request.Context(), query)
	if err != nil {
		middleware.RespondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.LogsView{
		View: view(c, "transactionLogs"),
		Logs: dto.NewLogPageDTO(params.Search, page, middleware.Localizer(c)),
	})
}
