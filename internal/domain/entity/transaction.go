package entity

import (
	"fmt"
	"strings"
	"time"

	errs "github.com/amirhossein-jamali/cardpay-admin/internal/domain/error"
)

// TransactionType is the direction of a balance change
type TransactionType string

// Transaction types
const (
	TypeCredit TransactionType = "credit"
	TypeDebit  TransactionType = "debit"
)

// MaxBalance is the largest balance that survives a JSON round trip as a number
const MaxBalance int64 = 1<<53 - 1

// ParseTransactionType validates a transaction type name
func ParseTransactionType(s string) (TransactionType, error) {
	switch t := TransactionType(strings.ToLower(strings.TrimSpace(s))); t {
	case TypeCredit, TypeDebit:
		return t, nil
	default:
		return "", fmt.Errorf("%w: %q", errs.ErrInvalidTransactionType, s)
	}
}

// TransactionLog is an immutable ledger entry.
// The user fields are a snapshot taken when the entry was created.
type TransactionLog struct {
	ID              int64           `json:"id"`
	UserID          uint64          `json:"userId"`
	UserName        string          `json:"userName"`
	MatricNumber    string          `json:"matricNumber"`
	CardNumber      string          `json:"cardNumber"`
	Type            TransactionType `json:"type"`
	Amount          int64           `json:"amount"`
	PreviousBalance int64           `json:"previousBalance"`
	CurrentBalance  int64           `json:"currentBalance"`
	Timestamp       time.Time       `json:"timestamp"`
	ProductID       string          `json:"productId,omitempty"`
}

// Matches reports whether the entry's user snapshot or type contains term,
// ignoring case. An empty term matches every entry.
func (l *TransactionLog) Matches(term string) bool {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return true
	}
	return strings.Contains(strings.ToLower(l.UserName), term) ||
		strings.Contains(strings.ToLower(l.MatricNumber), term) ||
		strings.Contains(strings.ToLower(l.CardNumber), term) ||
		strings.Contains(string(l.Type), term)
}

// LedgerResult pairs the updated user with the entry describing the change
type LedgerResult struct {
	User  *User
	Entry *TransactionLog
}

// ApplyTransaction validates a balance change and builds both the updated
// user and its log entry. The input user is never modified; nothing is
// produced unless every check passes.
func ApplyTransaction(user *User, txType TransactionType, amount int64, at time.Time, id int64) (*LedgerResult, error) {
	if user == nil {
		return nil, errs.ErrNoUserSelected
	}
	if amount <= 0 {
		return nil, errs.ErrAmountNotPositive
	}

	var newBalance int64
	switch txType {
	case TypeCredit:
		if amount > MaxBalance-user.Balance {
			return nil, errs.NewTransactionError(user.ID, string(txType), amount, "credit exceeds maximum balance", errs.ErrAmountOverflow)
		}
		newBalance = user.Balance + amount
	case TypeDebit:
		if amount > user.Balance {
			return nil, errs.NewInsufficientBalanceError(user.ID, amount, user.Balance)
		}
		newBalance = user.Balance - amount
	default:
		return nil, fmt.Errorf("%w: %q", errs.ErrInvalidTransactionType, txType)
	}

	updated := user.Clone()
	updated.Balance = newBalance

	entry := &TransactionLog{
		ID:              id,
		UserID:          user.ID,
		UserName:        user.Name,
		MatricNumber:    user.MatricNumber,
		CardNumber:      user.CardNumber,
		Type:            txType,
		Amount:          amount,
		PreviousBalance: user.Balance,
		CurrentBalance:  newBalance,
		Timestamp:       at,
	}

	return &LedgerResult{User: updated, Entry: entry}, nil
}

// NextLogID derives a unique, time-based log id that is always greater
// than the newest existing one
func NextLogID(at time.Time, newestID int64) int64 {
	id := at.UnixMilli()
	if id <= newestID {
		id = newestID + 1
	}
	return id
}
