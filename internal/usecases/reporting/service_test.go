package reporting

import (
	"context"
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

var testNow = time.Date(2025, 3, 15, 10, 0, 0, 0, time.UTC)

func newTestService(t *testing.T, c domain.Collections) *Service {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockClient := mocks.NewMockStoreClient(ctrl)
	mockClient.EXPECT().ListSimTypes(gomock.Any()).Return(c.SimTypes, nil)
	mockClient.EXPECT().ListPackages(gomock.Any()).Return(c.Packages, nil)
	mockClient.EXPECT().ListCustomers(gomock.Any()).Return(c.Customers, nil)
	mockClient.EXPECT().ListOrders(gomock.Any()).Return(c.Orders, nil)
	mockClient.EXPECT().ListTransactions(gomock.Any()).Return(c.Transactions, nil)
	mockClient.EXPECT().ListDueDateLogs(gomock.Any()).Return(c.DueDateLogs, nil)

	store := dataset.NewStore(mockClient)
	require.NoError(t, store.Reload(context.Background()))

	return &Service{
		store: store,
		now:   func() time.Time { return testNow },
	}
}

func TestService_Dashboard(t *testing.T) {
	service := newTestService(t, domain.Collections{
		SimTypes: []domain.SimType{{ID: "st1", Name: "Vina 4G"}},
		Packages: []domain.SimPackage{
			{ID: "p1", SimTypeID: "st1", Quantity: 1000, TotalImportPrice: 10_000_000},
		},
		Customers: []domain.Customer{{ID: "c1", Name: "Đại lý Minh", Phone: "0901234567"}},
		Orders: []domain.SaleOrder{
			// Trong kỳ, hôm nay: 10 × 20.000 = 200.000, vốn 100.000
			{ID: "o1", Date: "2025-03-15", SaleType: domain.Retail, SimTypeID: "st1", Quantity: 10, SalePrice: 20_000},
			// Trong kỳ, còn nợ, hạn trong tuần: 50 × 15.000 = 750.000, vốn 500.000
			{ID: "o2", Date: "2025-03-14", CustomerID: "c1", SaleType: domain.Wholesale, SimTypeID: "st1", Quantity: 50, SalePrice: 15_000, DueDate: "2025-03-18"},
			// Ngoài kỳ
			{ID: "o3", Date: "2025-02-01", SaleType: domain.Retail, SimTypeID: "st1", Quantity: 100, SalePrice: 20_000},
		},
		Transactions: []domain.Transaction{
			{ID: "t1", Date: "2025-03-15", Type: domain.DirectionIn, Amount: 200_000, SaleOrderID: "o1"},
			{ID: "t2", Date: "2025-03-14", Type: domain.DirectionOut, Amount: 50_000},
			// Ngoài kỳ
			{ID: "t3", Date: "2025-02-01", Type: domain.DirectionIn, Amount: 999_000},
		},
	})

	summary := service.Dashboard("2025-03-14", "2025-03-15")

	assert.Equal(t, int64(150_000), summary.CashBalance)
	assert.Equal(t, int64(750_000), summary.Receivables)
	// Tồn kho không lọc theo kỳ: 1000 − (10 + 50 + 100)
	assert.Equal(t, 840, summary.TotalStock)
	// Lợi nhuận trong kỳ: (200.000 − 100.000) + (750.000 − 500.000)
	assert.Equal(t, int64(350_000), summary.GrossProfit)

	assert.Equal(t, 1, summary.Today.OrderCount)
	assert.Equal(t, int64(200_000), summary.Today.Revenue)
	assert.Equal(t, int64(100_000), summary.Today.Profit)

	require.Len(t, summary.RevenueChart, 2)
	assert.Equal(t, "2025-03-14", summary.RevenueChart[0].Date)
	assert.Equal(t, int64(750_000), summary.RevenueChart[0].Wholesale)
	assert.Equal(t, int64(0), summary.RevenueChart[0].Retail)
	assert.Equal(t, "2025-03-15", summary.RevenueChart[1].Date)
	assert.Equal(t, int64(200_000), summary.RevenueChart[1].Retail)

	require.Len(t, summary.WeeklyDebts, 1)
	assert.Equal(t, "o2", summary.WeeklyDebts[0].ID)

	assert.Contains(t, summary.ReminderMessage, "THÔNG BÁO THU HỒI NỢ TUẦN NÀY (15/03/2025)")
	assert.Contains(t, summary.ReminderMessage, "Đại lý Minh - 0901234567")
	assert.Contains(t, summary.ReminderMessage, "💰 Nợ: 750.000đ")
	assert.Contains(t, summary.ReminderMessage, "📅 Hạn: 18/03/2025")
}

func TestService_Dashboard_BieuDoDuNgay(t *testing.T) {
	service := newTestService(t, domain.Collections{
		SimTypes: []domain.SimType{{ID: "st1"}},
		Orders: []domain.SaleOrder{
			{ID: "o1", Date: "2025-03-02", SaleType: domain.Retail, SimTypeID: "st1", Quantity: 1, SalePrice: 10_000},
		},
	})

	summary := service.Dashboard("2025-03-01", "2025-03-05")

	// Đủ một điểm cho mỗi ngày trong kỳ, ngày không bán có doanh thu 0
	require.Len(t, summary.RevenueChart, 5)
	assert.Equal(t, "2025-03-01", summary.RevenueChart[0].Date)
	assert.Equal(t, int64(0), summary.RevenueChart[0].Total)
	assert.Equal(t, int64(10_000), summary.RevenueChart[1].Total)
}

func TestService_Dashboard_NoQuaHanVanVaoDanhSachTuan(t *testing.T) {
	service := newTestService(t, domain.Collections{
		SimTypes: []domain.SimType{{ID: "st1"}},
		Orders: []domain.SaleOrder{
			// Quá hạn từ tuần trước, vẫn phải nằm trong danh sách nhắc
			{ID: "o1", Date: "2025-03-01", SimTypeID: "st1", Quantity: 1, SalePrice: 100_000, DueDate: "2025-03-10"},
			// Hạn ngoài cửa sổ 7 ngày
			{ID: "o2", Date: "2025-03-01", SimTypeID: "st1", Quantity: 1, SalePrice: 100_000, DueDate: "2025-03-30"},
		},
	})

	summary := service.Dashboard("", "")

	require.Len(t, summary.WeeklyDebts, 1)
	assert.Equal(t, "o1", summary.WeeklyDebts[0].ID)
	assert.True(t, summary.WeeklyDebts[0].IsOverdue)
	// Đơn quá hạn mang biểu tượng đồng hồ
	assert.Contains(t, summary.ReminderMessage, "⏰")
}

func TestService_Dashboard_KhongCoNo(t *testing.T) {
	service := newTestService(t, domain.Collections{})

	summary := service.Dashboard("", "")
	assert.Contains(t, summary.ReminderMessage, "✅ Không có nợ đến hạn trong tuần này.")
}

func TestService_MonthlyCashflow(t *testing.T) {
	service := newTestService(t, domain.Collections{
		SimTypes: []domain.SimType{{ID: "st1"}},
		Packages: []domain.SimPackage{
			// Giá vốn bình quân 10.000/SIM
			{ID: "p1", SimTypeID: "st1", Quantity: 100, TotalImportPrice: 1_000_000},
		},
		Orders: []domain.SaleOrder{
			// Tháng 1: lợi nhuận 10 × (30.000 − 10.000) = 200.000
			{ID: "o1", Date: "2025-01-15", SimTypeID: "st1", Quantity: 10, SalePrice: 30_000},
			// Tháng 3 chỉ có đơn, không có bút toán nào
			{ID: "o2", Date: "2025-03-05", SimTypeID: "st1", Quantity: 5, SalePrice: 30_000},
		},
		Transactions: []domain.Transaction{
			{ID: "t1", Date: "2025-01-10", Type: domain.DirectionIn, Amount: 500_000},
			{ID: "t2", Date: "2025-01-20", Type: domain.DirectionOut, Amount: 200_000},
			{ID: "t3", Date: "2025-02-05", Type: domain.DirectionIn, Amount: 100_000},
		},
	})

	flows := service.MonthlyCashflow("", "")
	require.Len(t, flows, 3)

	assert.Equal(t, "2025-01", flows[0].Month)
	assert.Equal(t, int64(500_000), flows[0].Income)
	assert.Equal(t, int64(200_000), flows[0].Expense)
	// Lợi nhuận theo đơn bán, không phải thu trừ chi
	assert.Equal(t, int64(200_000), flows[0].Profit)

	// Tháng chỉ có bút toán: lợi nhuận 0
	assert.Equal(t, "2025-02", flows[1].Month)
	assert.Equal(t, int64(100_000), flows[1].Income)
	assert.Equal(t, int64(0), flows[1].Profit)

	// Tháng chỉ có đơn vẫn có mặt trong chuỗi
	assert.Equal(t, "2025-03", flows[2].Month)
	assert.Equal(t, int64(0), flows[2].Income)
	assert.Equal(t, int64(100_000), flows[2].Profit)
}

func TestService_MonthlyCashflow_LocTheoKy(t *testing.T) {
	service := newTestService(t, domain.Collections{
		SimTypes: []domain.SimType{{ID: "st1"}},
		Packages: []domain.SimPackage{
			{ID: "p1", SimTypeID: "st1", Quantity: 100, TotalImportPrice: 1_000_000},
		},
		Orders: []domain.SaleOrder{
			{ID: "o1", Date: "2025-01-15", SimTypeID: "st1", Quantity: 10, SalePrice: 30_000},
			{ID: "o2", Date: "2025-03-05", SimTypeID: "st1", Quantity: 5, SalePrice: 30_000},
		},
		Transactions: []domain.Transaction{
			{ID: "t1", Date: "2025-01-10", Type: domain.DirectionIn, Amount: 500_000},
			{ID: "t2", Date: "2025-03-20", Type: domain.DirectionOut, Amount: 50_000},
		},
	})

	flows := service.MonthlyCashflow("2025-03-01", "2025-03-31")
	require.Len(t, flows, 1)

	assert.Equal(t, "2025-03", flows[0].Month)
	assert.Equal(t, int64(50_000), flows[0].Expense)
	assert.Equal(t, int64(100_000), flows[0].Profit)
}

func TestService_OutstandingDebts(t *testing.T) {
	service := newTestService(t, domain.Collections{
		SimTypes: []domain.SimType{{ID: "st1"}},
		Orders: []domain.SaleOrder{
			{ID: "o1", Date: "2025-03-01", SimTypeID: "st1", Quantity: 1, SalePrice: 100_000, DueDate: "2025-04-01"},
			{ID: "o2", Date: "2025-03-01", SimTypeID: "st1", Quantity: 1, SalePrice: 100_000, DueDate: "2025-03-20"},
			{ID: "o3", Date: "2025-03-01", SimTypeID: "st1", Quantity: 1, SalePrice: 100_000},
			// Đã thu đủ, không vào danh sách
			{ID: "o4", Date: "2025-03-01", SimTypeID: "st1", Quantity: 1, SalePrice: 100_000},
		},
		Transactions: []domain.Transaction{
			{ID: "t1", Date: "2025-03-01", Type: domain.DirectionIn, SaleOrderID: "o4", Amount: 100_000},
		},
	})

	debts := service.OutstandingDebts()
	require.Len(t, debts, 3)

	// Hạn gần nhất trước, đơn không có hạn xếp cuối
	assert.Equal(t, "o2", debts[0].ID)
	assert.Equal(t, "o1", debts[1].ID)
	assert.Equal(t, "o3", debts[2].ID)
}

func TestService_ProfitCalendar(t *testing.T) {
	service := newTestService(t, domain.Collections{
		SimTypes: []domain.SimType{{ID: "st1"}},
		Packages: []domain.SimPackage{
			{ID: "p1", SimTypeID: "st1", Quantity: 100, TotalImportPrice: 1_000_000},
		},
		Orders: []domain.SaleOrder{
			{ID: "o1", Date: "2025-02-10", SimTypeID: "st1", Quantity: 5, SalePrice: 30_000},
			{ID: "o2", Date: "2025-02-10", SimTypeID: "st1", Quantity: 2, SalePrice: 30_000},
			{ID: "o3", Date: "2025-03-01", SimTypeID: "st1", Quantity: 1, SalePrice: 30_000},
		},
	})

	calendar := service.ProfitCalendar(2025, time.February)
	require.Len(t, calendar, 28)

	assert.Equal(t, "2025-02-01", calendar[0].Date)
	assert.Equal(t, 0, calendar[0].OrderCount)

	day10 := calendar[9]
	assert.Equal(t, "2025-02-10", day10.Date)
	assert.Equal(t, 2, day10.OrderCount)
	// Giá vốn 10.000/SIM: (150.000 − 50.000) + (60.000 − 20.000)
	assert.Equal(t, int64(140_000), day10.Profit)
}

func TestFormatVND(t *testing.T) {
	assert.Equal(t, "0đ", formatVND(0))
	assert.Equal(t, "999đ", formatVND(999))
	assert.Equal(t, "1.000đ", formatVND(1_000))
	assert.Equal(t, "1.250.000đ", formatVND(1_250_000))
	assert.Equal(t, "-50.000đ", formatVND(-50_000))
}

func TestDisplayDate(t *testing.T) {
	assert.Equal(t, "15/03/2025", displayDate("2025-03-15"))
	assert.Equal(t, "", displayDate(""))
	assert.Equal(t, "khác", displayDate("khác"))
}

func TestInRange(t *testing.T) {
	assert.True(t, inRange("2025-03-15", "", ""))
	assert.True(t, inRange("2025-03-15", "2025-03-15", "2025-03-15"))
	assert.False(t, inRange("2025-03-14", "2025-03-15", ""))
	assert.False(t, inRange("2025-03-16", "", "2025-03-15"))
}
