package ledger

import (
	"context"
	"errors"
	"fmt"

	"github.com/amirhossein-jamali/cardpay-admin/internal/domain/entity"
	errs "github.com/amirhossein-jamali/cardpay-admin/internal/domain/error"
)

type loggable interface {
	LogFields() map[string]any
}

// ApplyTransaction credits or debits a user and records the change.
// A rejected transaction writes nothing.
func (s *Service) ApplyTransaction(
	ctx context.Context,
	userID uint64,
	txType entity.TransactionType,
	amount int64,
) (*entity.LedgerResult, error) {
	return s.apply(ctx, userID, txType, amount, "")
}

// PurchaseProduct debits a user by the price of a catalog product
func (s *Service) PurchaseProduct(ctx context.Context, userID uint64, productID string) (*entity.LedgerResult, error) {
	if userID == 0 {
		return nil, errs.ErrNoUserSelected
	}

	product, ok := s.product(productID)
	if !ok {
		return nil, fmt.Errorf("%w: %q", errs.ErrProductNotFound, productID)
	}

	txType, amount := product.Purchase()
	return s.apply(ctx, userID, txType, amount, product.ID)
}

func (s *Service) apply(
	ctx context.Context,
	userID uint64,
	txType entity.TransactionType,
	amount int64,
	productID string,
) (*entity.LedgerResult, error) {
	if userID == 0 {
		return nil, errs.ErrNoUserSelected
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	entries, err := s.logs.List(ctx)
	if err != nil {
		return nil, err
	}
	var newestID int64
	if len(entries) > 0 {
		newestID = entries[0].ID
	}

	now := s.timeProvider.Now()
	result, err := entity.ApplyTransaction(user, txType, amount, now, entity.NextLogID(now, newestID))
	if err != nil {
		fields := map[string]any{
			"userId": userID,
			"type":   string(txType),
			"amount": amount,
			"error":  err.Error(),
		}
		var detailed loggable
		if errors.As(err, &detailed) {
			fields = detailed.LogFields()
		}
		s.logger.Warn("Transaction rejected", fields)
		return nil, err
	}
	result.Entry.ProductID = productID

	if err := s.writer.Commit(ctx, result.User, result.Entry); err != nil {
		s.logger.Error("Failed to commit transaction", map[string]any{
			"userId": userID,
			"logId":  result.Entry.ID,
			"error":  err.Error(),
		})
		return nil, err
	}

	s.logger.Info("Transaction applied", map[string]any{
		"userId":          userID,
		"logId":           result.Entry.ID,
		"type":            string(txType),
		"amount":          amount,
		"previousBalance": result.Entry.PreviousBalance,
		"currentBalance":  result.Entry.CurrentBalance,
		"productId":       productID,
	})

	return result, nil
}
