package dto

import (
	"github.com/amirhossein-jamali/cardpay-admin/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// TransactionRequest is the manual transaction form. Amount accepts a JSON
// number or a numeric string.
type TransactionRequest struct {
	UserID uint64          `json:"userId"`
	Type   string          `json:"type"`
	Amount decimal.Decimal `json:"amount"`
}

// PurchaseRequest is the product purchase form
type PurchaseRequest struct {
	UserID    uint64 `json:"userId"`
	ProductID string `json:"productId"`
}

// TransactionResponse reports a committed transaction
type TransactionResponse struct {
	Message string  `json:"message"`
	User    UserDTO `json:"user"`
	Entry   LogDTO  `json:"entry"`
}

// NewTransactionResponse formats a ledger result
func NewTransactionResponse(result *entity.LedgerResult, p Presenter) TransactionResponse {
	return TransactionResponse{
		Message: p.T("transactionSuccess"),
		User:    NewUserDTO(result.User, p),
		Entry:   NewLogDTO(result.Entry, p),
	}
}

// ProductDTO is a catalog item with its display price
type ProductDTO struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Price Money  `json:"price"`
}

// TransactionsView is the transaction form page
type TransactionsView struct {
	View
	Users    []UserDTO    `json:"users"`
	Products []ProductDTO `json:"products"`
}

// NewProductDTOs formats the catalog
func NewProductDTOs(products []entity.Product, p Presenter) []ProductDTO {
	out := make([]ProductDTO, 0, len(products))
	for _, product := range products {
		out = append(out, ProductDTO{ID: product.ID, Name: product.Name, Price: NewMoney(product.Price, p)})
	}
	return out
}
