// Package cashbook chứa nghiệp vụ sổ quỹ thu chi. Phiếu là bản ghi bất
// biến: chỉ tạo và xóa, không sửa.
package cashbook

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/simb2b/sim-backoffice-api/internal/domain"
	"github.com/simb2b/sim-backoffice-api/internal/usecases/dataset"
	"github.com/simb2b/sim-backoffice-api/pkg/utils"
)

var (
	ErrTransactionNotFound = errors.New("không tìm thấy phiếu thu chi")
	ErrMissingUser         = errors.New("thiếu thông tin người dùng đăng nhập")
)

// CreateTransactionInput là dữ liệu tạo phiếu đã qua validate ở tầng API
type CreateTransactionInput struct {
	Date        string
	Type        domain.TransactionDirection
	Category    string
	Amount      int64
	Method      domain.PaymentMethod
	SaleOrderID string
	Note        string
}

type CashbookManager interface {
	CreateTransaction(ctx context.Context, input CreateTransactionInput, userID string) (domain.Transaction, error)
	DeleteTransaction(ctx context.Context, id string) error
}

type Service struct {
	store *dataset.Store
	now   func() time.Time
}

func NewService(store *dataset.Store) CashbookManager {
	return &Service{
		store: store,
		now:   time.Now,
	}
}

// CreateTransaction tạo phiếu thu hoặc chi mới, ghi nhận người dùng đang
// đăng nhập. Thiếu người dùng thì hủy thao tác, không ghi gì.
func (s *Service) CreateTransaction(ctx context.Context, input CreateTransactionInput, userID string) (domain.Transaction, error) {
	if userID == "" {
		return domain.Transaction{}, ErrMissingUser
	}

	tx := domain.Transaction{
		ID:          utils.NewID(),
		Code:        utils.GenerateCode("TX"),
		Date:        input.Date,
		Type:        input.Type,
		Category:    input.Category,
		Amount:      input.Amount,
		Method:      input.Method,
		SaleOrderID: input.SaleOrderID,
		Note:        input.Note,
	}

	if tx.Date == "" {
		tx.Date = utils.FormatDate(s.now())
	}
	if tx.Method == "" {
		tx.Method = domain.MethodCash
	}

	s.store.AddTransaction(ctx, tx, userID)

	return tx, nil
}

func (s *Service) DeleteTransaction(ctx context.Context, id string) error {
	if _, ok := s.store.FindTransaction(id); !ok {
		return ErrTransactionNotFound
	}
	s.store.DeleteTransaction(ctx, id)
	return nil
}
