// Package ordering chứa nghiệp vụ vòng đời đơn bán: tạo đơn (kèm phiếu
// thu tự động khi thanh toán ngay), xóa đơn và gia hạn thanh toán.
package ordering

import (
	"context"
	"time"

	"github.com/simb2b/sim-backoffice-api/internal/domain"
	"github.com/simb2b/sim-backoffice-api/internal/usecases/dataset"
	"github.com/simb2b/sim-backoffice-api/pkg/utils"
)

// CreateOrderInput là dữ liệu tạo đơn đã qua validate ở tầng API
type CreateOrderInput struct {
	Date       string
	CustomerID string
	AgentName  string
	SaleType   domain.CustomerClass
	SimTypeID  string
	Quantity   int
	SalePrice  int64
	DueDate    string
	Note       string
	Settled    bool
	Method     domain.PaymentMethod
}

// ExtendDueDateInput là dữ liệu gia hạn thanh toán cho một đơn
type ExtendDueDateInput struct {
	OrderID string
	NewDate string
	Reason  string
}

type OrderManager interface {
	CreateOrder(ctx context.Context, input CreateOrderInput, userID string) (domain.SaleOrder, error)
	DeleteOrder(ctx context.Context, id string) error
	ExtendDueDate(ctx context.Context, input ExtendDueDateInput) (domain.DueDateLog, error)
}

type Service struct {
	store *dataset.Store
	now   func() time.Time
}

func NewService(store *dataset.Store) OrderManager {
	return &Service{
		store: store,
		now:   time.Now,
	}
}

// CreateOrder tạo đơn bán mới. Đơn sỉ phải gắn khách hàng và lấy tên khách
// làm tên đại lý; đơn lẻ không gắn khách thì hiển thị "Khách lẻ". Đơn
// thanh toán ngay sinh thêm đúng một phiếu thu gắn với đơn, ghi nhận người
// dùng đang đăng nhập; thiếu người dùng thì hủy toàn bộ thao tác.
func (s *Service) CreateOrder(ctx context.Context, input CreateOrderInput, userID string) (domain.SaleOrder, error) {
	if input.Settled && userID == "" {
		return domain.SaleOrder{}, ErrMissingUser
	}

	order := domain.SaleOrder{
		ID:         utils.NewID(),
		Code:       utils.GenerateCode("SO"),
		Date:       input.Date,
		CustomerID: input.CustomerID,
		AgentName:  input.AgentName,
		SaleType:   input.SaleType,
		SimTypeID:  input.SimTypeID,
		Quantity:   input.Quantity,
		SalePrice:  input.SalePrice,
		DueDate:    input.DueDate,
		Note:       input.Note,
		IsFinished: input.Settled,
	}

	if order.Date == "" {
		order.Date = utils.FormatDate(s.now())
	}

	if input.SaleType == domain.Wholesale {
		if input.CustomerID == "" {
			return domain.SaleOrder{}, ErrCustomerRequired
		}
		customer, ok := s.store.FindCustomer(input.CustomerID)
		if !ok {
			return domain.SaleOrder{}, ErrCustomerNotFound
		}
		order.AgentName = customer.Name
	} else if order.AgentName == "" {
		order.AgentName = "Khách lẻ"
	}

	s.store.AddOrder(ctx, order)

	if input.Settled {
		s.store.AddTransaction(ctx, s.settlementTransaction(order, input.Method), userID)
	}

	return order, nil
}

// settlementTransaction dựng phiếu thu tự động cho đơn thanh toán ngay
func (s *Service) settlementTransaction(order domain.SaleOrder, method domain.PaymentMethod) domain.Transaction {
	category := domain.CategoryRetailIncome
	if order.SaleType == domain.Wholesale {
		category = domain.CategoryWholesaleIncome
	}
	if method == "" {
		method = domain.MethodCash
	}

	return domain.Transaction{
		ID:          utils.NewID(),
		Code:        utils.GenerateCode("TX"),
		Date:        order.Date,
		Type:        domain.DirectionIn,
		Category:    category,
		Amount:      int64(order.Quantity) * order.SalePrice,
		Method:      method,
		SaleOrderID: order.ID,
		Note:        "Tự động thu đơn " + order.Code,
	}
}

func (s *Service) DeleteOrder(ctx context.Context, id string) error {
	if _, ok := s.store.FindOrder(id); !ok {
		return ErrOrderNotFound
	}
	s.store.DeleteOrder(ctx, id)
	return nil
}

// ExtendDueDate dời hạn thanh toán của một đơn còn nợ: ghi đúng một dòng
// nhật ký gia hạn và trộn lý do vào nhãn khách hàng.
func (s *Service) ExtendDueDate(ctx context.Context, input ExtendDueDateInput) (domain.DueDateLog, error) {
	order, ok := s.store.FindOrder(input.OrderID)
	if !ok {
		return domain.DueDateLog{}, ErrOrderNotFound
	}

	logEntry := domain.DueDateLog{
		ID:        utils.NewID(),
		OrderID:   order.ID,
		OldDate:   order.DueDate,
		NewDate:   input.NewDate,
		Reason:    input.Reason,
		UpdatedAt: s.now(),
	}

	s.store.ExtendOrderDueDate(ctx, logEntry)

	return logEntry, nil
}
