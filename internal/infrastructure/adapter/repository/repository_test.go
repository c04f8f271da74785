package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/amirhossein-jamali/cardpay-admin/internal/domain/entity"
	errs "github.com/amirhossein-jamali/cardpay-admin/internal/domain/error"
	"github.com/amirhossein-jamali/cardpay-admin/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/cardpay-admin/internal/infrastructure/adapter/storage"
	persistencemocks "github.com/amirhossein-jamali/cardpay-admin/mocks/port/persistence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newUser(name, matric, card string, balance int64) *entity.User {
	return &entity.User{
		Name:         name,
		MatricNumber: matric,
		CardNumber:   card,
		Balance:      balance,
		CreatedAt:    time.Date(2023, 5, 15, 0, 0, 0, 0, time.UTC),
	}
}

func TestUserRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("Empty collection", func(t *testing.T) {
		repo := NewCollections(storage.NewMemoryStore(), logger.NewNoopLogger()).Users()

		users, err := repo.List(ctx)
		require.NoError(t, err)
		assert.Empty(t, users)

		_, err = repo.GetByID(ctx, 1)
		assert.ErrorIs(t, err, errs.ErrUserNotFound)
	})

	t.Run("Create assigns increasing IDs", func(t *testing.T) {
		repo := NewCollections(storage.NewMemoryStore(), logger.NewNoopLogger()).Users()

		first := newUser("John Doe", "MAT123456", "0xAB12CD34", 2500)
		second := newUser("Jane Smith", "MAT654321", "0x12AB34CD", 1800)
		require.NoError(t, repo.Create(ctx, first))
		require.NoError(t, repo.Create(ctx, second))

		assert.Equal(t, uint64(1), first.ID)
		assert.Equal(t, uint64(2), second.ID)

		found, err := repo.GetByID(ctx, 2)
		require.NoError(t, err)
		assert.Equal(t, "Jane Smith", found.Name)

		byMatric, err := repo.GetByMatricNumber(ctx, "mat123456")
		require.NoError(t, err)
		assert.Equal(t, uint64(1), byMatric.ID)
	})

	t.Run("Duplicate matric or card is rejected", func(t *testing.T) {
		repo := NewCollections(storage.NewMemoryStore(), logger.NewNoopLogger()).Users()
		require.NoError(t, repo.Create(ctx, newUser("John Doe", "MAT123456", "0xAB12CD34", 0)))

		err := repo.Create(ctx, newUser("Other", "MAT123456", "0xFFFF", 0))
		assert.ErrorIs(t, err, errs.ErrDuplicateUser)

		err = repo.Create(ctx, newUser("Other", "MAT000000", "0xab12cd34", 0))
		assert.ErrorIs(t, err, errs.ErrDuplicateUser)

		users, err := repo.List(ctx)
		require.NoError(t, err)
		assert.Len(t, users, 1)
	})

	t.Run("Seed only applies once", func(t *testing.T) {
		repo := NewCollections(storage.NewMemoryStore(), logger.NewNoopLogger()).Users()
		seed := []*entity.User{{ID: 1, Name: "John Doe", MatricNumber: "MAT123456", CardNumber: "0xAB12CD34", Balance: 2500}}

		applied, err := repo.Seed(ctx, seed)
		require.NoError(t, err)
		assert.True(t, applied)

		applied, err = repo.Seed(ctx, []*entity.User{})
		require.NoError(t, err)
		assert.False(t, applied)

		users, err := repo.List(ctx)
		require.NoError(t, err)
		assert.Len(t, users, 1)
	})

	t.Run("Corrupt document", func(t *testing.T) {
		store := storage.NewMemoryStore()
		require.NoError(t, store.Set(ctx, entity.KeyAppUsers, []byte("not json")))
		repo := NewCollections(store, logger.NewNoopLogger()).Users()

		_, err := repo.List(ctx)
		assert.ErrorIs(t, err, errs.ErrStorage)
	})
}

func TestLedgerRepositoryCommit(t *testing.T) {
	ctx := context.Background()

	t.Run("Replaces user and prepends entry", func(t *testing.T) {
		collections := NewCollections(storage.NewMemoryStore(), logger.NewNoopLogger())
		user := newUser("John Doe", "MAT123456", "0xAB12CD34", 2500)
		require.NoError(t, collections.Users().Create(ctx, user))

		older := &entity.TransactionLog{ID: 1, UserID: user.ID, Type: entity.TypeCredit, Amount: 10}
		_, err := collections.Logs().Seed(ctx, []*entity.TransactionLog{older})
		require.NoError(t, err)

		updated := user.Clone()
		updated.Balance = 3000
		entry := &entity.TransactionLog{ID: 2, UserID: user.ID, Type: entity.TypeCredit, Amount: 500, PreviousBalance: 2500, CurrentBalance: 3000}

		require.NoError(t, collections.Ledger().Commit(ctx, updated, entry))

		stored, err := collections.Users().GetByID(ctx, user.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(3000), stored.Balance)

		logs, err := collections.Logs().List(ctx)
		require.NoError(t, err)
		require.Len(t, logs, 2)
		assert.Equal(t, int64(2), logs[0].ID)
		assert.Equal(t, int64(1), logs[1].ID)
	})

	t.Run("Unknown user writes nothing", func(t *testing.T) {
		store := persistencemocks.NewMockKeyValueStore(t)
		store.EXPECT().Get(mock.Anything, entity.KeyAppUsers).Return([]byte(`[]`), nil).Once()
		store.EXPECT().Get(mock.Anything, entity.KeyTransactionLogs).Return(nil, errs.ErrKeyNotFound).Once()

		err := NewCollections(store, logger.NewNoopLogger()).Ledger().Commit(ctx, &entity.User{ID: 9}, &entity.TransactionLog{ID: 1})

		assert.ErrorIs(t, err, errs.ErrUserNotFound)
	})

	t.Run("Both documents go in one write", func(t *testing.T) {
		store := persistencemocks.NewMockKeyValueStore(t)
		store.EXPECT().Get(mock.Anything, entity.KeyAppUsers).Return([]byte(`[{"id":1,"balance":100}]`), nil).Once()
		store.EXPECT().Get(mock.Anything, entity.KeyTransactionLogs).Return([]byte(`[]`), nil).Once()
		store.EXPECT().SetMany(mock.Anything, mock.MatchedBy(func(entries map[string][]byte) bool {
			_, hasUsers := entries[entity.KeyAppUsers]
			_, hasLogs := entries[entity.KeyTransactionLogs]
			return len(entries) == 2 && hasUsers && hasLogs
		})).Return(errors.New("disk full")).Once()

		err := NewCollections(store, logger.NewNoopLogger()).Ledger().Commit(ctx, &entity.User{ID: 1, Balance: 50}, &entity.TransactionLog{ID: 1})

		assert.ErrorIs(t, err, errs.ErrStorage)
	})
}
