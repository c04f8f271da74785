package handler

import (
	"net/http"
	"strconv"

	"github.com/amirhossein-jamali/cardpay-admin/internal/domain/entity"
	errs "github.com/amirhossein-jamali/cardpay-admin/internal/domain/error"
	coreport "github.com/amirhossein-jamali/cardpay-admin/internal/domain/port/core"
	"github.com/amirhossein-jamali/cardpay-admin/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/cardpay-admin/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/cardpay-admin/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// UserHandler handles user-related HTTP requests
type UserHandler struct {
	userUseCase usecase.UserUseCase
	logger      coreport.Logger
}

// NewUserHandler creates a new user handler instance
func NewUserHandler(
	userUseCase usecase.UserUseCase,
	logger coreport.Logger,
) *UserHandler {
	return &UserHandler{
		userUseCase: userUseCase,
		logger:      logger,
	}
}

// ListUsers handles GET /users?search=
func (h *UserHandler) ListUsers(c *gin.Context) {
	search := c.Query("search")
	users, err := h.userUseCase.ListUsers(c.Request.Context(), search)
	if err != nil {
		middleware.RespondError(c, h.logger, err)
		return
	}

	localizer := middleware.Localizer(c)
	resp := dto.UsersView{
		View:   view(c, "userManagement"),
		Search: search,
		Users:  dto.NewUserDTOs(users, localizer),
	}
	if len(users) == 0 {
		if search != "" {
			resp.EmptyMessage = localizer.T("noUsersMatchSearch")
		} else {
			resp.EmptyMessage = localizer.T("noUsersFound")
		}
	}
	c.JSON(http.StatusOK, resp)
}

// GetUser handles GET /users/:id
func (h *UserHandler) GetUser(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || userID == 0 {
		middleware.RespondError(c, h.logger, errs.ErrInvalidUserID)
		return
	}

	user, err := h.userUseCase.GetUser(c.Request.Context(), userID)
	if err != nil {
		middleware.RespondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.UserResponse{User: dto.NewUserDTO(user, middleware.Localizer(c))})
}

// CreateUser handles POST /users
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.RespondError(c, h.logger, errs.ErrInvalidRequest)
		return
	}

	balance, err := entity.AmountFromDecimal(req.InitialBalance)
	if err != nil {
		middleware.RespondError(c, h.logger, err)
		return
	}

	user, err := h.userUseCase.CreateUser(c.Request.Context(), usecase.CreateUserRequest{
		Name:           req.Name,
		MatricNumber:   req.MatricNumber,
		CardNumber:     req.CardNumber,
		InitialBalance: balance,
		Password:       req.Password,
	})
	if err != nil {
		middleware.RespondError(c, h.logger, err)
		return
	}

	localizer := middleware.Localizer(c)
	c.JSON(http.StatusCreated, dto.UserResponse{
		Message: localizer.T("userCreatedSuccess"),
		User:    dto.NewUserDTO(user, localizer),
	})
}
