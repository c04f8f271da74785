package usecase

import (
	"context"

	"github.com/amirhossein-jamali/cardpay-admin/internal/domain/entity"
)

// DefaultPageSize is the number of log entries shown per page
const DefaultPageSize = 5

// LogQuery filters and pages the transaction log
type LogQuery struct {
	Search       string
	Page         int
	PageSize     int
	MatricNumber string
}

// LogPage is one page of the filtered transaction log
type LogPage struct {
	Entries      []*entity.TransactionLog `json:"entries"`
	Page         int                      `json:"page"`
	PageSize     int                      `json:"pageSize"`
	TotalPages   int                      `json:"totalPages"`
	TotalEntries int                      `json:"totalEntries"`
}

// DailyTotals sums one day of ledger activity
type DailyTotals struct {
	Date   string `json:"date"`
	Credit int64  `json:"credit"`
	Debit  int64  `json:"debit"`
}

// Summary is the dashboard overview of the ledger
type Summary struct {
	TotalUsers        int                      `json:"totalUsers"`
	TotalTransactions int                      `json:"totalTransactions"`
	TotalCredit       int64                    `json:"totalCredit"`
	TotalDebit        int64                    `json:"totalDebit"`
	BalanceInSystem   int64                    `json:"balanceInSystem"`
	TransactionsToday int                      `json:"transactionsToday"`
	Recent            []*entity.TransactionLog `json:"recentTransactions"`
	Weekly            []DailyTotals            `json:"weekly"`
}

// LedgerUseCase defines balance changes and ledger reporting
type LedgerUseCase interface {
	// ApplyTransaction credits or debits a user and records the change
	ApplyTransaction(ctx context.Context, userID uint64, txType entity.TransactionType, amount int64) (*entity.LedgerResult, error)

	// PurchaseProduct debits a user by the price of a catalog product
	PurchaseProduct(ctx context.Context, userID uint64, productID string) (*entity.LedgerResult, error)

	// Products returns the product catalog
	Products() []entity.Product

	// ListLogs returns one page of the filtered log, newest first
	ListLogs(ctx context.Context, query LogQuery) (*LogPage, error)

	// Summary aggregates the ledger for the dashboard
	Summary(ctx context.Context) (*Summary, error)
}
