package user

import (
	"context"
	"time"

	"github.com/amirhossein-jamali/cardpay-admin/internal/domain/entity"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func defaultUsers() []*entity.User {
	return []*entity.User{
		{ID: 1, Name: "John Doe", MatricNumber: "MAT123456", CardNumber: "0xAB12CD34", Balance: 2500, CreatedAt: date(2023, time.May, 15)},
		{ID: 2, Name: "Jane Smith", MatricNumber: "MAT654321", CardNumber: "0x12AB34CD", Balance: 1800, CreatedAt: date(2023, time.May, 20)},
		{ID: 3, Name: "Robert Johnson", MatricNumber: "MAT789012", CardNumber: "0x56EF78GH", Balance: 3200, CreatedAt: date(2023, time.June, 2)},
		{ID: 4, Name: "Emily Davis", MatricNumber: "MAT345678", CardNumber: "0x90IJ12KL", Balance: 950, CreatedAt: date(2023, time.June, 10)},
		{ID: 5, Name: "Michael Brown", MatricNumber: "MAT901234", CardNumber: "0xMN34OP56", Balance: 4100, CreatedAt: date(2023, time.June, 15)},
	}
}

// demoLogs returns sample entries for the default users, newest first
func demoLogs() []*entity.TransactionLog {
	at := func(day, hour, minute, sec int) time.Time {
		return time.Date(2023, time.July, day, hour, minute, sec, 0, time.UTC)
	}
	return []*entity.TransactionLog{
		{ID: 5, UserID: 5, UserName: "Michael Brown", MatricNumber: "MAT901234", CardNumber: "0xMN34OP56", Type: entity.TypeCredit, Amount: 1500, PreviousBalance: 2600, CurrentBalance: 4100, Timestamp: at(21, 9, 10, 15)},
		{ID: 4, UserID: 4, UserName: "Emily Davis", MatricNumber: "MAT345678", CardNumber: "0x90IJ12KL", Type: entity.TypeDebit, Amount: 75, PreviousBalance: 1025, CurrentBalance: 950, Timestamp: at(20, 16, 45, 30)},
		{ID: 3, UserID: 3, UserName: "Robert Johnson", MatricNumber: "MAT789012", CardNumber: "0x56EF78GH", Type: entity.TypeCredit, Amount: 1000, PreviousBalance: 2200, CurrentBalance: 3200, Timestamp: at(20, 16, 5, 11)},
		{ID: 2, UserID: 2, UserName: "Jane Smith", MatricNumber: "MAT654321", CardNumber: "0x12AB34CD", Type: entity.TypeDebit, Amount: 150, PreviousBalance: 1950, CurrentBalance: 1800, Timestamp: at(20, 15, 15, 22)},
		{ID: 1, UserID: 1, UserName: "John Doe", MatricNumber: "MAT123456", CardNumber: "0xAB12CD34", Type: entity.TypeCredit, Amount: 500, PreviousBalance: 2000, CurrentBalance: 2500, Timestamp: at(20, 14, 30, 45)},
	}
}

// SeedDefaultUsers fills collections that have never been written.
// Default users log in with their matric number as password.
func (u *UserUseCase) SeedDefaultUsers(ctx context.Context) error {
	users := defaultUsers()
	for _, user := range users {
		hash, err := u.hasher.Hash(user.MatricNumber)
		if err != nil {
			return err
		}
		user.PasswordHash = hash
	}

	seeded, err := u.userRepo.Seed(ctx, users)
	if err != nil {
		u.logger.Error("Failed to seed users", map[string]any{"error": err.Error()})
		return err
	}
	if seeded {
		u.logger.Info("Default users created", map[string]any{"count": len(users)})
	}

	var entries []*entity.TransactionLog
	if u.demoData {
		entries = demoLogs()
	}
	seeded, err = u.logRepo.Seed(ctx, entries)
	if err != nil {
		u.logger.Error("Failed to seed transaction log", map[string]any{"error": err.Error()})
		return err
	}
	if seeded {
		u.logger.Info("Transaction log initialized", map[string]any{"entries": len(entries)})
	}

	return nil
}
