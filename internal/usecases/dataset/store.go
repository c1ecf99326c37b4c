// Package dataset giữ cache trong bộ nhớ của sáu bảng dữ liệu với vòng đời
// rõ ràng: nạp đầy khi đăng nhập, xóa sạch khi đăng xuất. Mọi đột biến đi
// qua một helper lạc quan duy nhất: ghi cache trước, ghi kho ngoài sau,
// lỗi ghi remote chỉ được ghi log (không rollback).
package dataset

import (
	"context"
	"sync"

	"github.com/simb2b/sim-backoffice-api/infrastructure/integrator/supabase"
	"github.com/simb2b/sim-backoffice-api/internal/domain"
	"github.com/simb2b/sim-backoffice-api/pkg/log"
)

type Store struct {
	mu     sync.RWMutex
	client supabase.StoreClient
	data   domain.Collections
	loaded bool
}

func NewStore(client supabase.StoreClient) *Store {
	return &Store{client: client}
}

// Reload đọc lại toàn bộ sáu bảng từ kho ngoài. Nếu bất kỳ bảng nào đọc
// lỗi thì cache giữ nguyên giá trị trước đó (có thể rỗng hoặc cũ).
func (s *Store) Reload(ctx context.Context) error {
	logger := log.ForContext(ctx)

	simTypes, err := s.client.ListSimTypes(ctx)
	if err != nil {
		logger.WithError(err).Error("Tải lại dữ liệu thất bại, giữ cache cũ")
		return err
	}

	packages, err := s.client.ListPackages(ctx)
	if err != nil {
		logger.WithError(err).Error("Tải lại dữ liệu thất bại, giữ cache cũ")
		return err
	}

	customers, err := s.client.ListCustomers(ctx)
	if err != nil {
		logger.WithError(err).Error("Tải lại dữ liệu thất bại, giữ cache cũ")
		return err
	}

	orders, err := s.client.ListOrders(ctx)
	if err != nil {
		logger.WithError(err).Error("Tải lại dữ liệu thất bại, giữ cache cũ")
		return err
	}

	transactions, err := s.client.ListTransactions(ctx)
	if err != nil {
		logger.WithError(err).Error("Tải lại dữ liệu thất bại, giữ cache cũ")
		return err
	}

	dueDateLogs, err := s.client.ListDueDateLogs(ctx)
	if err != nil {
		logger.WithError(err).Error("Tải lại dữ liệu thất bại, giữ cache cũ")
		return err
	}

	s.mu.Lock()
	s.data = domain.Collections{
		SimTypes:     simTypes,
		Packages:     packages,
		Customers:    customers,
		Orders:       orders,
		Transactions: transactions,
		DueDateLogs:  dueDateLogs,
	}
	s.loaded = true
	s.mu.Unlock()

	logger.WithFields(log.Fields{
		"sim_types":    len(simTypes),
		"packages":     len(packages),
		"customers":    len(customers),
		"orders":       len(orders),
		"transactions": len(transactions),
	}).Info("Đã tải lại toàn bộ dữ liệu")

	return nil
}

// Clear xóa sạch cache khi phiên kết thúc
func (s *Store) Clear() {
	s.mu.Lock()
	s.data = domain.Collections{}
	s.loaded = false
	s.mu.Unlock()
}

// Loaded cho biết cache đã được nạp ít nhất một lần kể từ khi đăng nhập chưa
func (s *Store) Loaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded
}

// Snapshot trả về bản sao của cache để pipeline thống kê tính toán trên đó
func (s *Store) Snapshot() domain.Collections {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data.Clone()
}

// FindOrder tìm đơn hàng theo ID trong cache
func (s *Store) FindOrder(id string) (domain.SaleOrder, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, o := range s.data.Orders {
		if o.ID == id {
			return o, true
		}
	}
	return domain.SaleOrder{}, false
}

// FindCustomer tìm khách hàng theo ID trong cache
func (s *Store) FindCustomer(id string) (domain.Customer, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, c := range s.data.Customers {
		if c.ID == id {
			return c, true
		}
	}
	return domain.Customer{}, false
}

// FindTransaction tìm phiếu thu chi theo ID trong cache
func (s *Store) FindTransaction(id string) (domain.Transaction, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, t := range s.data.Transactions {
		if t.ID == id {
			return t, true
		}
	}
	return domain.Transaction{}, false
}

// applyThenWrite là helper đột biến lạc quan dùng chung: cập nhật cache
// trước, sau đó phát lệnh ghi remote; lỗi remote chỉ ghi log chẩn đoán và
// trạng thái cục bộ được giữ nguyên. Cache và kho ngoài vì vậy có thể lệch
// nhau — đây là hành vi chấp nhận của thiết kế, không tự đối soát.
func (s *Store) applyThenWrite(ctx context.Context, op string, local func(*domain.Collections), remote func(context.Context) error) {
	s.mu.Lock()
	local(&s.data)
	s.mu.Unlock()

	s.writeLogged(ctx, op, remote)
}

func (s *Store) writeLogged(ctx context.Context, op string, remote func(context.Context) error) {
	if err := remote(ctx); err != nil {
		log.ForContext(ctx).WithError(err).WithField("op", op).
			Error("Ghi kho ngoài thất bại, giữ trạng thái lạc quan cục bộ")
	}
}
