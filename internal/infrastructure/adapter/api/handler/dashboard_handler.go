package handler

import (
	"net/http"

	errs "github.com/amirhossein-jamali/cardpay-admin/internal/domain/error"
	coreport "github.com/amirhossein-jamali/cardpay-admin/internal/domain/port/core"
	"github.com/amirhossein-jamali/cardpay-admin/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/cardpay-admin/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/cardpay-admin/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// DashboardHandler renders the landing pages of admins and students
type DashboardHandler struct {
	ledgerUseCase usecase.LedgerUseCase
	userUseCase   usecase.UserUseCase
	logger        coreport.Logger
}

// NewDashboardHandler creates a new dashboard handler instance
func NewDashboardHandler(
	ledgerUseCase usecase.LedgerUseCase,
	userUseCase usecase.UserUseCase,
	logger coreport.Logger,
) *DashboardHandler {
	return &DashboardHandler{
		ledgerUseCase: ledgerUseCase,
		userUseCase:   userUseCase,
		logger:        logger,
	}
}

// Dashboard handles GET /dashboard
func (h *DashboardHandler) Dashboard(c *gin.Context) {
	summary, err := h.ledgerUseCase.Summary(c.Request.Context())
	if err != nil {
		middleware.RespondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewDashboardView(view(c, "dashboardTitle"), summary, middleware.Localizer(c)))
}

// StudentDashboard handles GET /student-dashboard
func (h *DashboardHandler) StudentDashboard(c *gin.Context) {
	session := middleware.CurrentSession(c)
	if session == nil {
		middleware.RespondError(c, h.logger, errs.ErrSessionInvalid)
		return
	}

	var params logQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		middleware.RespondError(c, h.logger, errs.ErrInvalidRequest)
		return
	}

	ctx := c.Request.Context()
	user, err := h.userUseCase.GetUser(ctx, session.ID)
	if err != nil {
		middleware.RespondError(c, h.logger, err)
		return
	}

	page, err := h.ledgerUseCase.ListLogs(ctx, usecase.LogQuery{
		Search:       params.Search,
		Page:         params.Page,
		MatricNumber: user.MatricNumber,
	})
	if err != nil {
		middleware.RespondError(c, h.logger, err)
		return
	}

	localizer := middleware.Localizer(c)
	c.JSON(http.StatusOK, dto.StudentDashboardView{
		View: view(c, "studentDashboard"),
		User: dto.NewUserDTO(user, localizer),
		Logs: dto.NewLogPageDTO(params.Search, page, localizer),
	})
}
