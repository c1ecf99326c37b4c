package ordering

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/simb2b/sim-backoffice-api/infrastructure/integrator/supabase/mocks"
	"github.com/simb2b/sim-backoffice-api/internal/domain"
	"github.com/simb2b/sim-backoffice-api/internal/usecases/dataset"
	"github.com/simb2b/sim-backoffice-api/pkg/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func init() {
	log.SetupTestLogger()
}

func newTestService(t *testing.T) (*Service, *dataset.Store, *mocks.MockStoreClient) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockClient := mocks.NewMockStoreClient(ctrl)
	store := dataset.NewStore(mockClient)
	service := &Service{
		store: store,
		now:   func() time.Time { return time.Date(2025, 3, 15, 9, 0, 0, 0, time.UTC) },
	}
	return service, store, mockClient
}

func TestService_CreateOrder_BanSi(t *testing.T) {
	service, store, mockClient := newTestService(t)

	mockClient.EXPECT().InsertCustomer(gomock.Any(), gomock.Any()).Return(nil)
	store.AddCustomer(context.Background(), domain.Customer{ID: "c1", Name: "Đại lý Minh"})

	mockClient.EXPECT().InsertOrder(gomock.Any(), gomock.Any()).Return(nil)

	order, err := service.CreateOrder(context.Background(), CreateOrderInput{
		CustomerID: "c1",
		SaleType:   domain.Wholesale,
		SimTypeID:  "st1",
		Quantity:   100,
		SalePrice:  15_000,
		DueDate:    "2025-04-01",
	}, "u1")

	require.NoError(t, err)
	assert.NotEmpty(t, order.ID)
	assert.True(t, strings.HasPrefix(order.Code, "SO-"))
	assert.Equal(t, "Đại lý Minh", order.AgentName)
	// Ngày bán mặc định là hôm nay
	assert.Equal(t, "2025-03-15", order.Date)
	assert.False(t, order.IsFinished)
}

func TestService_CreateOrder_BanSiThieuKhach(t *testing.T) {
	service, _, _ := newTestService(t)

	_, err := service.CreateOrder(context.Background(), CreateOrderInput{
		SaleType:  domain.Wholesale,
		SimTypeID: "st1",
		Quantity:  10,
		SalePrice: 15_000,
	}, "u1")
	assert.ErrorIs(t, err, ErrCustomerRequired)

	_, err = service.CreateOrder(context.Background(), CreateOrderInput{
		CustomerID: "khong-ton-tai",
		SaleType:   domain.Wholesale,
		SimTypeID:  "st1",
		Quantity:   10,
		SalePrice:  15_000,
	}, "u1")
	assert.ErrorIs(t, err, ErrCustomerNotFound)
}

func TestService_CreateOrder_BanLeKhachLe(t *testing.T) {
	service, _, mockClient := newTestService(t)

	mockClient.EXPECT().InsertOrder(gomock.Any(), gomock.Any()).Return(nil)

	order, err := service.CreateOrder(context.Background(), CreateOrderInput{
		SaleType:  domain.Retail,
		SimTypeID: "st1",
		Quantity:  2,
		SalePrice: 50_000,
	}, "u1")

	require.NoError(t, err)
	assert.Equal(t, "Khách lẻ", order.AgentName)
}

func TestService_CreateOrder_ThanhToanNgay(t *testing.T) {
	service, store, mockClient := newTestService(t)

	var inserted domain.Transaction
	mockClient.EXPECT().InsertOrder(gomock.Any(), gomock.Any()).Return(nil)
	mockClient.EXPECT().
		InsertTransaction(gomock.Any(), gomock.Any(), "u1").
		DoAndReturn(func(_ context.Context, tx domain.Transaction, _ string) error {
			inserted = tx
			return nil
		})

	order, err := service.CreateOrder(context.Background(), CreateOrderInput{
		SaleType:  domain.Retail,
		SimTypeID: "st1",
		Quantity:  3,
		SalePrice: 100_000,
		Settled:   true,
	}, "u1")
	require.NoError(t, err)
	assert.True(t, order.IsFinished)

	// Phiếu thu tự động gắn với đơn, đúng số tiền và danh mục bán lẻ
	assert.Equal(t, domain.DirectionIn, inserted.Type)
	assert.Equal(t, domain.CategoryRetailIncome, inserted.Category)
	assert.Equal(t, int64(300_000), inserted.Amount)
	assert.Equal(t, order.ID, inserted.SaleOrderID)
	assert.Equal(t, domain.MethodCash, inserted.Method)
	assert.Equal(t, "Tự động thu đơn "+order.Code, inserted.Note)

	snap := store.Snapshot()
	assert.Len(t, snap.Orders, 1)
	assert.Len(t, snap.Transactions, 1)
}

func TestService_CreateOrder_ThanhToanNgayThieuNguoiDung(t *testing.T) {
	service, store, _ := newTestService(t)

	_, err := service.CreateOrder(context.Background(), CreateOrderInput{
		SaleType:  domain.Retail,
		SimTypeID: "st1",
		Quantity:  1,
		SalePrice: 100_000,
		Settled:   true,
	}, "")

	// Thiếu người dùng đăng nhập: hủy toàn bộ, không ghi gì vào cache
	assert.ErrorIs(t, err, ErrMissingUser)
	snap := store.Snapshot()
	assert.Empty(t, snap.Orders)
	assert.Empty(t, snap.Transactions)
}

func TestService_DeleteOrder(t *testing.T) {
	service, _, mockClient := newTestService(t)

	mockClient.EXPECT().InsertOrder(gomock.Any(), gomock.Any()).Return(nil)
	order, err := service.CreateOrder(context.Background(), CreateOrderInput{
		SaleType:  domain.Retail,
		SimTypeID: "st1",
		Quantity:  1,
		SalePrice: 1,
	}, "u1")
	require.NoError(t, err)

	assert.ErrorIs(t, service.DeleteOrder(context.Background(), "khong-ton-tai"), ErrOrderNotFound)

	mockClient.EXPECT().DeleteOrder(gomock.Any(), order.ID).Return(nil)
	assert.NoError(t, service.DeleteOrder(context.Background(), order.ID))
}

func TestService_ExtendDueDate(t *testing.T) {
	service, store, mockClient := newTestService(t)

	mockClient.EXPECT().InsertCustomer(gomock.Any(), gomock.Any()).Return(nil)
	store.AddCustomer(context.Background(), domain.Customer{ID: "c1", Tags: []string{"hẹn lại"}})

	mockClient.EXPECT().InsertOrder(gomock.Any(), gomock.Any()).Return(nil)
	store.AddOrder(context.Background(), domain.SaleOrder{
		ID:         "o1",
		CustomerID: "c1",
		DueDate:    "2025-03-20",
	})

	mockClient.EXPECT().UpdateOrderDueDate(gomock.Any(), "o1", "2025-04-05", 1).Return(nil)
	mockClient.EXPECT().InsertDueDateLog(gomock.Any(), gomock.Any()).Return(nil)
	mockClient.EXPECT().UpdateCustomerTags(gomock.Any(), "c1", []string{"hẹn lại", "mưa bão"}).Return(nil)

	logEntry, err := service.ExtendDueDate(context.Background(), ExtendDueDateInput{
		OrderID: "o1",
		NewDate: "2025-04-05",
		Reason:  "hẹn lại, mưa bão",
	})
	require.NoError(t, err)

	assert.Equal(t, "2025-03-20", logEntry.OldDate)
	assert.Equal(t, "2025-04-05", logEntry.NewDate)

	snap := store.Snapshot()
	assert.Equal(t, "2025-04-05", snap.Orders[0].DueDate)
	assert.Equal(t, 1, snap.Orders[0].DueDateChanges)
	assert.Len(t, snap.DueDateLogs, 1)
	assert.Equal(t, []string{"hẹn lại", "mưa bão"}, snap.Customers[0].Tags)
}

func TestService_ExtendDueDate_KhongTimThayDon(t *testing.T) {
	service, _, _ := newTestService(t)

	_, err := service.ExtendDueDate(context.Background(), ExtendDueDateInput{
		OrderID: "khong-ton-tai",
		NewDate: "2025-04-05",
	})
	assert.ErrorIs(t, err, ErrOrderNotFound)
}
