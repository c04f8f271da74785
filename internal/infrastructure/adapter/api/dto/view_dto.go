package dto

import (
	"time"

	"github.com/amirhossein-jamali/cardpay-admin/internal/domain/entity"
	"github.com/amirhossein-jamali/cardpay-admin/internal/domain/port/usecase"
)

// Presenter is the language configuration a view is rendered with
type Presenter interface {
	T(key string) string
	Direction() string
	FormatCurrency(amount int64) string
}

// View is the header shared by every page
type View struct {
	Locale    string `json:"locale"`
	Direction string `json:"direction"`
	Title     string `json:"title"`
}

// NewView builds the page header with a translated title
func NewView(locale string, p Presenter, titleKey string) View {
	return View{Locale: locale, Direction: p.Direction(), Title: p.T(titleKey)}
}

// Money is an amount together with its display form
type Money struct {
	Amount    int64  `json:"amount"`
	Formatted string `json:"formatted"`
}

// NewMoney formats amount for display
func NewMoney(amount int64, p Presenter) Money {
	return Money{Amount: amount, Formatted: p.FormatCurrency(amount)}
}

// UserDTO is a card holder as shown in tables and forms
type UserDTO struct {
	ID           uint64    `json:"id"`
	Name         string    `json:"name"`
	MatricNumber string    `json:"matricNumber"`
	CardNumber   string    `json:"cardNumber"`
	Balance      Money     `json:"balance"`
	CreatedAt    time.Time `json:"createdAt"`
}

// NewUserDTO hides the password hash and formats the balance
func NewUserDTO(u *entity.User, p Presenter) UserDTO {
	return UserDTO{
		ID:           u.ID,
		Name:         u.Name,
		MatricNumber: u.MatricNumber,
		CardNumber:   u.CardNumber,
		Balance:      NewMoney(u.Balance, p),
		CreatedAt:    u.CreatedAt,
	}
}

// NewUserDTOs converts a user list
func NewUserDTOs(users []*entity.User, p Presenter) []UserDTO {
	out := make([]UserDTO, 0, len(users))
	for _, u := range users {
		out = append(out, NewUserDTO(u, p))
	}
	return out
}

// LogDTO is one transaction log row
type LogDTO struct {
	ID              int64                  `json:"id"`
	UserID          uint64                 `json:"userId"`
	UserName        string                 `json:"userName"`
	MatricNumber    string                 `json:"matricNumber"`
	CardNumber      string                 `json:"cardNumber"`
	Type            entity.TransactionType `json:"type"`
	TypeLabel       string                 `json:"typeLabel"`
	Amount          Money                  `json:"amount"`
	PreviousBalance Money                  `json:"previousBalance"`
	CurrentBalance  Money                  `json:"currentBalance"`
	Timestamp       time.Time              `json:"timestamp"`
	ProductID       string                 `json:"productId,omitempty"`
}

// NewLogDTO formats a log entry
func NewLogDTO(l *entity.TransactionLog, p Presenter) LogDTO {
	return LogDTO{
		ID:              l.ID,
		UserID:          l.UserID,
		UserName:        l.UserName,
		MatricNumber:    l.MatricNumber,
		CardNumber:      l.CardNumber,
		Type:            l.Type,
		TypeLabel:       p.T(string(l.Type)),
		Amount:          NewMoney(l.Amount, p),
		PreviousBalance: NewMoney(l.PreviousBalance, p),
		CurrentBalance:  NewMoney(l.CurrentBalance, p),
		Timestamp:       l.Timestamp,
		ProductID:       l.ProductID,
	}
}

// NewLogDTOs converts a list of log entries
func NewLogDTOs(logs []*entity.TransactionLog, p Presenter) []LogDTO {
	out := make([]LogDTO, 0, len(logs))
	for _, l := range logs {
		out = append(out, NewLogDTO(l, p))
	}
	return out
}

// LogPageDTO is one page of the transaction log
type LogPageDTO struct {
	Search       string   `json:"search"`
	Entries      []LogDTO `json:"entries"`
	Page         int      `json:"page"`
	PageSize     int      `json:"pageSize"`
	TotalPages   int      `json:"totalPages"`
	TotalEntries int      `json:"totalEntries"`
	EmptyMessage string   `json:"emptyMessage,omitempty"`
}

// NewLogPageDTO formats a log page. The empty message depends on whether a
// search was active.
func NewLogPageDTO(search string, page *usecase.LogPage, p Presenter) LogPageDTO {
	out := LogPageDTO{
		Search:       search,
		Entries:      NewLogDTOs(page.Entries, p),
		Page:         page.Page,
		PageSize:     page.PageSize,
		TotalPages:   page.TotalPages,
		TotalEntries: page.TotalEntries,
	}
	if len(page.Entries) == 0 {
		if search != "" {
			out.EmptyMessage = p.T("noTransactionsMatch")
		} else {
			out.EmptyMessage = p.T("noTransactionsFound")
		}
	}
	return out
}

// LogsView is the transaction log page
type LogsView struct {
	View
	Logs LogPageDTO `json:"logs"`
}

// DailyTotalsDTO is one day of the weekly chart
type DailyTotalsDTO struct {
	Date   string `json:"date"`
	Credit Money  `json:"credit"`
	Debit  Money  `json:"debit"`
}

// DashboardStats are the headline figures of the admin dashboard
type DashboardStats struct {
	TotalUsers        int   `json:"totalUsers"`
	TotalTransactions int   `json:"totalTransactions"`
	TotalCredit       Money `json:"totalCredit"`
	TotalDebit        Money `json:"totalDebit"`
	BalanceInSystem   Money `json:"balanceInSystem"`
	TransactionsToday int   `json:"transactionsToday"`
}

// DashboardView is the admin dashboard page
type DashboardView struct {
	View
	Stats  DashboardStats   `json:"stats"`
	Recent []LogDTO         `json:"recentTransactions"`
	Weekly []DailyTotalsDTO `json:"weekly"`
}

// NewDashboardView formats a ledger summary
func NewDashboardView(view View, summary *usecase.Summary, p Presenter) DashboardView {
	weekly := make([]DailyTotalsDTO, 0, len(summary.Weekly))
	for _, day := range summary.Weekly {
		weekly = append(weekly, DailyTotalsDTO{
			Date:   day.Date,
			Credit: NewMoney(day.Credit, p),
			Debit:  NewMoney(day.Debit, p),
		})
	}
	return DashboardView{
		View: view,
		Stats: DashboardStats{
			TotalUsers:        summary.TotalUsers,
			TotalTransactions: summary.TotalTransactions,
			TotalCredit:       NewMoney(summary.TotalCredit, p),
			TotalDebit:        NewMoney(summary.TotalDebit, p),
			BalanceInSystem:   NewMoney(summary.BalanceInSystem, p),
			TransactionsToday: summary.TransactionsToday,
		},
		Recent: NewLogDTOs(summary.Recent, p),
		Weekly: weekly,
	}
}

// StudentDashboardView is a student's own card page
type StudentDashboardView struct {
	View
	User UserDTO    `json:"user"`
	Logs LogPageDTO `json:"logs"`
}
