package ledger

import (
	"context"
	"strings"

	"github.com/amirhossein-jamali/cardpay-admin/internal/domain/entity"
	"github.com/amirhossein-jamali/cardpay-admin/internal/domain/port/usecase"
)

// ListLogs filters the log newest first and returns the requested page.
// Pages start at 1; out of range pages are clamped.
func (s *Service) ListLogs(ctx context.Context, query usecase.LogQuery) (*usecase.LogPage, error) {
	entries, err := s.logs.List(ctx)
	if err != nil {
		return nil, err
	}

	filtered := make([]*entity.TransactionLog, 0, len(entries))
	for _, entry := range entries {
		if query.MatricNumber != "" && !strings.EqualFold(entry.MatricNumber, query.MatricNumber) {
			continue
		}
		if !entry.Matches(query.Search) {
			continue
		}
		filtered = append(filtered, entry)
	}

	pageSize := query.PageSize
	if pageSize <= 0 {
		pageSize = usecase.DefaultPageSize
	}
	totalPages := (len(filtered) + pageSize - 1) / pageSize

	page := query.Page
	if page > totalPages {
		page = totalPages
	}
	if page < 1 {
		page = 1
	}

	start := (page - 1) * pageSize
	end := start + pageSize
	if start > len(filtered) {
		start = len(filtered)
	}
	if end > len(filtered) {
		end = len(filtered)
	}

	return &usecase.LogPage{
		Entries:      filtered[start:end],
		Page:         page,
		PageSize:     pageSize,
		TotalPages:   totalPages,
		TotalEntries: len(filtered),
	}, nil
}
