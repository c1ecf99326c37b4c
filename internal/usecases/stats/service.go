package stats

import (
	"time"

	"github.com/simb2b/sim-backoffice-api/internal/domain"
	"github.com/simb2b/sim-backoffice-api/internal/usecases/dataset"
)

// StatsBuilder cung cấp các danh sách đã gắn số liệu dẫn xuất cho tầng API
type StatsBuilder interface {
	InventoryStats() []domain.InventoryProductStat
	OrderStats() []domain.SaleOrderWithStats
	CustomerStats() []domain.CustomerWithStats
}

type Service struct {
	store *dataset.Store
	now   func() time.Time
}

func NewService(store *dataset.Store) StatsBuilder {
	return &Service{
		store: store,
		now:   time.Now,
	}
}

func (s *Service) InventoryStats() []domain.InventoryProductStat {
	return BuildInventoryStats(s.store.Snapshot())
}

func (s *Service) OrderStats() []domain.SaleOrderWithStats {
	snap := s.store.Snapshot()
	return BuildOrderStats(snap, BuildInventoryStats(snap), s.now())
}

func (s *Service) CustomerStats() []domain.CustomerWithStats {
	snap := s.store.Snapshot()
	orders := BuildOrderStats(snap, BuildInventoryStats(snap), s.now())
	return BuildCustomerStats(snap, orders)
}
