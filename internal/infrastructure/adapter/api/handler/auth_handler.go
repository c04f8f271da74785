package handler

import (
	"net/http"

	"github.com/amirhossein-jamali/cardpay-admin/internal/domain/entity"
	errs "github.com/amirhossein-jamali/cardpay-admin/internal/domain/error"
	coreport "github.com/amirhossein-jamali/cardpay-admin/internal/domain/port/core"
	"github.com/amirhossein-jamali/cardpay-admin/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/cardpay-admin/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/cardpay-admin/internal/infrastructure/adapter/api/middleware"
	"github.com/amirhossein-jamali/cardpay-admin/internal/infrastructure/adapter/identity"
	"github.com/gin-gonic/gin"
)

// AuthHandler handles sign in, sign out and token verification
type AuthHandler struct {
	authUseCase usecase.AuthUseCase
	logger      coreport.Logger
}

// NewAuthHandler creates a new auth handler instance
func NewAuthHandler(authUseCase usecase.AuthUseCase, logger coreport.Logger) *AuthHandler {
	return &AuthHandler{
		authUseCase: authUseCase,
		logger:      logger,
	}
}

// LoginPage handles GET /login
func (h *AuthHandler) LoginPage(c *gin.Context) {
	c.JSON(http.StatusOK, dto.LoginView{
		View: view(c, "login"),
		From: c.Query("from"),
	})
}

// Login handles POST /login
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		middleware.RespondError(c, h.logger, errs.ErrInvalidRequest)
		return
	}

	session, err := h.authUseCase.Login(c.Request.Context(), middleware.SessionStore(c), req.Username, req.Password)
	if err != nil {
		middleware.RespondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.LoginResponse{
		Session:  session,
		Redirect: entity.RoleHome(session.Role),
	})
}

// Logout handles POST /logout
func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.authUseCase.Logout(c.Request.Context(), middleware.SessionStore(c)); err != nil {
		middleware.RespondError(c, h.logger, err)
		return
	}
	c.Redirect(http.StatusFound, entity.LoginPath)
}

// Verify handles GET /api/verify
func (h *AuthHandler) Verify(c *gin.Context) {
	who, err := h.authUseCase.VerifyToken(c.Request.Context(), c.GetHeader(identity.TokenHeader))
	if err != nil {
		h.logger.Debug("Token verification failed", map[string]any{
			"error":      err.Error(),
			"request_id": middleware.RequestID(c),
		})
		c.JSON(http.StatusUnauthorized, dto.VerifyResponse{Auth: false})
		return
	}
	c.JSON(http.StatusOK, dto.VerifyResponse{Auth: true, User: who})
}
