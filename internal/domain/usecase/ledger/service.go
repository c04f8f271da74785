package ledger

import (
	"sync"

	"github.com/amirhossein-jamali/cardpay-admin/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/cardpay-admin/internal/domain/port/core"
	"github.com/amirhossein-jamali/cardpay-admin/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/cardpay-admin/internal/domain/port/usecase"
)

// Service applies balance changes and reports on the transaction log.
// Balance changes run one at a time so a read-compute-commit cycle never
// interleaves with another.
type Service struct {
	mu sync.Mutex

	users        persistence.UserRepository
	logs         persistence.TransactionLogRepository
	writer       persistence.LedgerWriter
	products     []entity.Product
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

var _ usecase.LedgerUseCase = (*Service)(nil)

// NewService creates a new ledger service
func NewService(
	users persistence.UserRepository,
	logs persistence.TransactionLogRepository,
	writer persistence.LedgerWriter,
	products []entity.Product,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *Service {
	catalog := make([]entity.Product, len(products))
	copy(catalog, products)

	return &Service{
		users:        users,
		logs:         logs,
		writer:       writer,
		products:     catalog,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Products returns a copy of the product catalog
func (s *Service) Products() []entity.Product {
	out := make([]entity.Product, len(s.products))
	copy(out, s.products)
	return out
}

func (s *Service) product(id string) (entity.Product, bool) {
	for _, p := range s.products {
		if p.ID == id {
			return p, true
		}
	}
	return entity.Product{}, false
}
