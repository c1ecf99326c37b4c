package dataset

import (
	"context"

	"github.com/simb2b/sim-backoffice-api/internal/domain"
)

// AddSimType chèn loại SIM mới vào đầu danh sách
func (s *Store) AddSimType(ctx context.Context, simType domain.SimType) {
	s.applyThenWrite(ctx, "add_sim_type",
		func(c *domain.Collections) {
			c.SimTypes = append([]domain.SimType{simType}, c.SimTypes...)
		},
		func(ctx context.Context) error {
			return s.client.InsertSimType(ctx, simType)
		})
}

func (s *Store) DeleteSimType(ctx context.Context, id string) {
	s.applyThenWrite(ctx, "delete_sim_type",
		func(c *domain.Collections) {
			c.SimTypes = removeByID(c.SimTypes, id, func(t domain.SimType) string { return t.ID })
		},
		func(ctx context.Context) error {
			return s.client.DeleteSimType(ctx, id)
		})
}

// AddPackage chèn lô nhập mới vào đầu danh sách
func (s *Store) AddPackage(ctx context.Context, pkg domain.SimPackage) {
	s.applyThenWrite(ctx, "add_package",
		func(c *domain.Collections) {
			c.Packages = append([]domain.SimPackage{pkg}, c.Packages...)
		},
		func(ctx context.Context) error {
			return s.client.InsertPackage(ctx, pkg)
		})
}

func (s *Store) DeletePackage(ctx context.Context, id string) {
	s.applyThenWrite(ctx, "delete_package",
		func(c *domain.Collections) {
			c.Packages = removeByID(c.Packages, id, func(p domain.SimPackage) string { return p.ID })
		},
		func(ctx context.Context) error {
			return s.client.DeletePackage(ctx, id)
		})
}

func (s *Store) AddCustomer(ctx context.Context, customer domain.Customer) {
	s.applyThenWrite(ctx, "add_customer",
		func(c *domain.Collections) {
			c.Customers = append([]domain.Customer{customer}, c.Customers...)
		},
		func(ctx context.Context) error {
			return s.client.InsertCustomer(ctx, customer)
		})
}

func (s *Store) UpdateCustomer(ctx context.Context, customer domain.Customer) {
	s.applyThenWrite(ctx, "update_customer",
		func(c *domain.Collections) {
			for i := range c.Customers {
				if c.Customers[i].ID == customer.ID {
					// Nhãn chỉ được ghi qua luồng gia hạn, giữ nguyên ở đây
					customer.Tags = c.Customers[i].Tags
					c.Customers[i] = customer
					return
				}
			}
		},
		func(ctx context.Context) error {
			return s.client.UpdateCustomer(ctx, customer)
		})
}

func (s *Store) DeleteCustomer(ctx context.Context, id string) {
	s.applyThenWrite(ctx, "delete_customer",
		func(c *domain.Collections) {
			c.Customers = removeByID(c.Customers, id, func(cu domain.Customer) string { return cu.ID })
		},
		func(ctx context.Context) error {
			return s.client.DeleteCustomer(ctx, id)
		})
}

func (s *Store) AddOrder(ctx context.Context, order domain.SaleOrder) {
	s.applyThenWrite(ctx, "add_order",
		func(c *domain.Collections) {
			c.Orders = append([]domain.SaleOrder{order}, c.Orders...)
		},
		func(ctx context.Context) error {
			return s.client.InsertOrder(ctx, order)
		})
}

func (s *Store) DeleteOrder(ctx context.Context, id string) {
	s.applyThenWrite(ctx, "delete_order",
		func(c *domain.Collections) {
			c.Orders = removeByID(c.Orders, id, func(o domain.SaleOrder) string { return o.ID })
		},
		func(ctx context.Context) error {
			return s.client.DeleteOrder(ctx, id)
		})
}

// AddTransaction ghi phiếu thu chi kèm ID người dùng thực hiện
func (s *Store) AddTransaction(ctx context.Context, tx domain.Transaction, userID string) {
	s.applyThenWrite(ctx, "add_transaction",
		func(c *domain.Collections) {
			c.Transactions = append([]domain.Transaction{tx}, c.Transactions...)
		},
		func(ctx context.Context) error {
			return s.client.InsertTransaction(ctx, tx, userID)
		})
}

func (s *Store) DeleteTransaction(ctx context.Context, id string) {
	s.applyThenWrite(ctx, "delete_transaction",
		func(c *domain.Collections) {
			c.Transactions = removeByID(c.Transactions, id, func(t domain.Transaction) string { return t.ID })
		},
		func(ctx context.Context) error {
			return s.client.DeleteTransaction(ctx, id)
		})
}

// ExtendOrderDueDate thực hiện trọn gói nghiệp vụ gia hạn: cập nhật hạn
// thanh toán và tăng bộ đếm trên đơn, ghi đúng một dòng nhật ký, và trộn
// lý do vào nhãn khách hàng. Ba thao tác sửa cache trong cùng một lần giữ
// khóa, sau đó ba lệnh ghi remote phát tuần tự, mỗi lệnh lỗi chỉ ghi log.
func (s *Store) ExtendOrderDueDate(ctx context.Context, logEntry domain.DueDateLog) {
	var (
		dueDateChanges int
		customerID     string
		mergedTags     []string
	)

	s.mu.Lock()
	for i := range s.data.Orders {
		if s.data.Orders[i].ID != logEntry.OrderID {
			continue
		}
		s.data.Orders[i].DueDate = logEntry.NewDate
		s.data.Orders[i].DueDateChanges++
		dueDateChanges = s.data.Orders[i].DueDateChanges
		customerID = s.data.Orders[i].CustomerID
		break
	}
	s.data.DueDateLogs = append([]domain.DueDateLog{logEntry}, s.data.DueDateLogs...)
	if customerID != "" && logEntry.Reason != "" {
		for i := range s.data.Customers {
			if s.data.Customers[i].ID != customerID {
				continue
			}
			mergedTags = domain.MergeReasonTags(s.data.Customers[i].Tags, logEntry.Reason)
			s.data.Customers[i].Tags = mergedTags
			break
		}
	}
	s.mu.Unlock()

	s.writeLogged(ctx, "extend_due_date", func(ctx context.Context) error {
		return s.client.UpdateOrderDueDate(ctx, logEntry.OrderID, logEntry.NewDate, dueDateChanges)
	})
	s.writeLogged(ctx, "extend_due_date", func(ctx context.Context) error {
		return s.client.InsertDueDateLog(ctx, logEntry)
	})
	if mergedTags != nil {
		s.writeLogged(ctx, "extend_due_date", func(ctx context.Context) error {
			return s.client.UpdateCustomerTags(ctx, customerID, mergedTags)
		})
	}
}

func removeByID[T any](items []T, id string, idOf func(T) string) []T {
	out := items[:0]
	for _, item := range items {
		if idOf(item) != id {
			out = append(out, item)
		}
	}
	return out
}
