package ledger

import (
	"context"

	"github.com/amirhossein-jamali/cardpay-admin/internal/domain/entity"
	"github.com/amirhossein-jamali/cardpay-admin/internal/domain/port/usecase"
)

const (
	recentEntries = 5
	summaryDays   = 7
	dateLayout    = "2006-01-02"
)

// Summary aggregates users and the log for the dashboard.
// Days are calendar days in the time provider's location. Totals stop at
// entity.MaxBalance.
func (s *Service) Summary(ctx context.Context) (*usecase.Summary, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, err
	}
	entries, err := s.logs.List(ctx)
	if err != nil {
		return nil, err
	}

	now := s.timeProvider.Now()
	loc := now.Location()
	today := now.Format(dateLayout)

	summary := &usecase.Summary{
		TotalUsers:        len(users),
		TotalTransactions: len(entries),
		Recent:            entries[:min(recentEntries, len(entries))],
		Weekly:            make([]usecase.DailyTotals, summaryDays),
	}

	for _, u := range users {
		summary.BalanceInSystem = entity.AddCapped(summary.BalanceInSystem, u.Balance)
	}

	days := make(map[string]int, summaryDays)
	for i := 0; i < summaryDays; i++ {
		date := now.AddDate(0, 0, i-summaryDays+1).Format(dateLayout)
		summary.Weekly[i].Date = date
		days[date] = i
	}

	for _, entry := range entries {
		date := entry.Timestamp.In(loc).Format(dateLayout)
		if date == today {
			summary.TransactionsToday++
		}

		day, inWeek := days[date]
		switch entry.Type {
		case entity.TypeCredit:
			summary.TotalCredit = entity.AddCapped(summary.TotalCredit, entry.Amount)
			if inWeek {
				summary.Weekly[day].Credit = entity.AddCapped(summary.Weekly[day].Credit, entry.Amount)
			}
		case entity.TypeDebit:
			summary.TotalDebit = entity.AddCapped(summary.TotalDebit, entry.Amount)
			if inWeek {
				summary.Weekly[day].Debit = entity.AddCapped(summary.Weekly[day].Debit, entry.Amount)
			}
		}
	}

	return summary, nil
}
