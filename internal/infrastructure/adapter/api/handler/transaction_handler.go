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

// TransactionHandler handles transaction-related HTTP requests
type TransactionHandler struct {
	ledgerUseCase usecase.LedgerUseCase
	userUseCase   usecase.UserUseCase
	logger        coreport.Logger
}

// NewTransactionHandler creates a new transaction handler instance
func NewTransactionHandler(
	ledgerUseCase usecase.LedgerUseCase,
	userUseCase usecase.UserUseCase,
	logger coreport.Logger,
) *TransactionHandler {
	return &TransactionHandler{
		ledgerUseCase: ledgerUseCase,
		userUseCase:   userUseCase,
		logger:        logger,
	}
}

// TransactionsPage handles GET /transactions
func (h *TransactionHandler) TransactionsPage(c *gin.Context) {
	users, err := h.userUseCase.ListUsers(c.Request.Context(), "")
	if err != nil {
		middleware.RespondError(c, h.logger, err)
		return
	}

	localizer := middleware.Localizer(c)
	c.JSON(http.StatusOK, dto.TransactionsView{
		View:     view(c, "transactionsTitle"),
		Users:    dto.NewUserDTOs(users, localizer),
		Products: dto.NewProductDTOs(h.ledgerUseCase.Products(), localizer),
	})
}

// ApplyTransaction handles POST /transactions
func (h *TransactionHandler) ApplyTransaction(c *gin.Context) {
	var req dto.TransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.RespondError(c, h.logger, errs.ErrInvalidAmount)
		return
	}

	txType, err := entity.ParseTransactionType(req.Type)
	if err != nil {
		middleware.RespondError(c, h.logger, err)
		return
	}

	amount, err := entity.AmountFromDecimal(req.Amount)
	if err != nil {
		middleware.RespondError(c, h.logger, err)
		return
	}

	result, err := h.ledgerUseCase.ApplyTransaction(c.Request.Context(), req.UserID, txType, amount)
	if err != nil {
		middleware.RespondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewTransactionResponse(result, middleware.Localizer(c)))
}

// PurchaseProduct handles POST /transactions/purchase
func (h *TransactionHandler) PurchaseProduct(c *gin.Context) {
	var req dto.PurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.RespondError(c, h.logger, errs.ErrInvalidRequest)
		return
	}

	result, err := h.ledgerUseCase.PurchaseProduct(c.Request.Context(), req.UserID, req.ProductID)
	if err != nil {
		middleware.RespondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewTransactionResponse(result, middleware.Localizer(c)))
}
