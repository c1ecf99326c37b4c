// Package reporting tổng hợp số liệu cho màn hình tổng quan và các báo
// cáo: dòng tiền theo tháng, danh sách nợ, lịch lợi nhuận. Mọi con số tính
// lại từ snapshot của cache, không lưu giá trị dẫn xuất.
package reporting

import (
	"fmt"
	"sort"
	"time"

	"github.com/simb2b/sim-backoffice-api/internal/domain"
	"github.com/simb2b/sim-backoffice-api/internal/usecases/dataset"
	"github.com/simb2b/sim-backoffice-api/internal/usecases/stats"
	"github.com/simb2b/sim-backoffice-api/pkg/utils"
)

// Số ngày nhìn trước của danh sách nợ đến hạn trong tuần
const weeklyDebtWindowDays = 7

type Reporter interface {
	Dashboard(startDate, endDate string) domain.DashboardSummary
	MonthlyCashflow(startDate, endDate string) []domain.MonthlyCashflow
	OutstandingDebts() []domain.SaleOrderWithStats
	ProfitCalendar(year int, month time.Month) []domain.CalendarDay
}

type Service struct {
	store *dataset.Store
	now   func() time.Time
}

func NewService(store *dataset.Store) Reporter {
	return &Service{
		store: store,
		now:   time.Now,
	}
}

func inRange(date, startDate, endDate string) bool {
	if startDate != "" && date < startDate {
		return false
	}
	if endDate != "" && date > endDate {
		return false
	}
	return true
}

// Dashboard tính toàn bộ số liệu màn hình tổng quan cho khoảng ngày
// [startDate, endDate]. Tồn kho là số hiện tại, không lọc theo kỳ.
func (s *Service) Dashboard(startDate, endDate string) domain.DashboardSummary {
	snap := s.store.Snapshot()
	now := s.now()
	inventory := stats.BuildInventoryStats(snap)
	orders := stats.BuildOrderStats(snap, inventory, now)

	summary := domain.DashboardSummary{
		StartDate:    startDate,
		EndDate:      endDate,
		RevenueChart: []domain.RevenuePoint{},
		WeeklyDebts:  []domain.SaleOrderWithStats{},
	}

	for _, stat := range inventory {
		summary.TotalStock += stat.CurrentStock
	}

	for _, tx := range snap.Transactions {
		if !inRange(tx.Date, startDate, endDate) {
			continue
		}
		if tx.Type == domain.DirectionIn {
			summary.CashBalance += tx.Amount
		} else {
			summary.CashBalance -= tx.Amount
		}
	}

	today := utils.FormatDate(now)
	revenueByDate := map[string]*domain.RevenuePoint{}

	// Biểu đồ doanh thu có đủ một điểm cho mỗi ngày trong kỳ, kể cả ngày
	// không bán được gì
	if start, err := utils.ParseDate(startDate); err == nil && !start.IsZero() {
		if end, err := utils.ParseDate(endDate); err == nil && !end.IsZero() {
			for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
				date := utils.FormatDate(d)
				revenueByDate[date] = &domain.RevenuePoint{Date: date}
			}
		}
	}

	for _, order := range orders {
		if inRange(order.Date, startDate, endDate) {
			summary.Receivables += order.Remaining
			summary.GrossProfit += order.Profit

			point, ok := revenueByDate[order.Date]
			if !ok {
				point = &domain.RevenuePoint{Date: order.Date}
				revenueByDate[order.Date] = point
			}
			if order.SaleType == domain.Wholesale {
				point.Wholesale += order.TotalAmount
			} else {
				point.Retail += order.TotalAmount
			}
			point.Total += order.TotalAmount
		}

		if order.Date == today {
			summary.Today.OrderCount++
			summary.Today.Revenue += order.TotalAmount
			summary.Today.Profit += order.Profit
		}
	}

	for _, point := range revenueByDate {
		summary.RevenueChart = append(summary.RevenueChart, *point)
	}
	sort.Slice(summary.RevenueChart, func(i, j int) bool {
		return summary.RevenueChart[i].Date < summary.RevenueChart[j].Date
	})

	summary.WeeklyDebts = weeklyDebts(orders, now)
	summary.ReminderMessage = buildReminderMessage(summary.WeeklyDebts, snap.Customers, now)

	return summary
}

// weeklyDebts lọc các đơn còn nợ có hạn thu từ nay đến 7 ngày tới, gồm cả
// đơn đã quá hạn, xếp theo hạn gần nhất trước
func weeklyDebts(orders []domain.SaleOrderWithStats, now time.Time) []domain.SaleOrderWithStats {
	to := utils.FormatDate(now.AddDate(0, 0, weeklyDebtWindowDays))

	debts := []domain.SaleOrderWithStats{}
	for _, order := range orders {
		if order.Remaining <= 0 || order.DueDate == "" {
			continue
		}
		if order.DueDate <= to {
			debts = append(debts, order)
		}
	}

	sort.Slice(debts, func(i, j int) bool {
		return debts[i].DueDate < debts[j].DueDate
	})
	return debts
}

// MonthlyCashflow gộp số liệu theo tháng trong khoảng [startDate, endDate],
// xếp tăng dần: thu chi lấy từ sổ quỹ, lợi nhuận lấy từ đơn bán cùng tháng.
// Tháng chỉ có đơn mà không có bút toán (hoặc ngược lại) vẫn có mặt.
func (s *Service) MonthlyCashflow(startDate, endDate string) []domain.MonthlyCashflow {
	snap := s.store.Snapshot()
	orders := stats.BuildOrderStats(snap, stats.BuildInventoryStats(snap), s.now())

	byMonth := map[string]*domain.MonthlyCashflow{}
	monthFlow := func(month string) *domain.MonthlyCashflow {
		flow, ok := byMonth[month]
		if !ok {
			flow = &domain.MonthlyCashflow{Month: month}
			byMonth[month] = flow
		}
		return flow
	}

	for _, tx := range snap.Transactions {
		if !inRange(tx.Date, startDate, endDate) {
			continue
		}
		month := utils.MonthOf(tx.Date)
		if month == "" {
			continue
		}
		flow := monthFlow(month)
		if tx.Type == domain.DirectionIn {
			flow.Income += tx.Amount
		} else {
			flow.Expense += tx.Amount
		}
	}

	for _, order := range orders {
		if !inRange(order.Date, startDate, endDate) {
			continue
		}
		month := utils.MonthOf(order.Date)
		if month == "" {
			continue
		}
		monthFlow(month).Profit += order.Profit
	}

	result := make([]domain.MonthlyCashflow, 0, len(byMonth))
	for _, flow := range byMonth {
		result = append(result, *flow)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Month < result[j].Month
	})
	return result
}

// OutstandingDebts liệt kê mọi đơn còn nợ, hạn gần nhất trước, đơn không
// có hạn xếp cuối
func (s *Service) OutstandingDebts() []domain.SaleOrderWithStats {
	snap := s.store.Snapshot()
	orders := stats.BuildOrderStats(snap, stats.BuildInventoryStats(snap), s.now())

	debts := []domain.SaleOrderWithStats{}
	for _, order := range orders {
		if order.Remaining > 0 {
			debts = append(debts, order)
		}
	}

	sort.Slice(debts, func(i, j int) bool {
		if debts[i].DueDate == "" {
			return false
		}
		if debts[j].DueDate == "" {
			return true
		}
		return debts[i].DueDate < debts[j].DueDate
	})
	return debts
}

// ProfitCalendar trả về đủ một ô cho mỗi ngày trong tháng, kể cả ngày
// không có đơn
func (s *Service) ProfitCalendar(year int, month time.Month) []domain.CalendarDay {
	snap := s.store.Snapshot()
	orders := stats.BuildOrderStats(snap, stats.BuildInventoryStats(snap), s.now())

	byDate := map[string]*domain.CalendarDay{}
	for _, order := range orders {
		day, ok := byDate[order.Date]
		if !ok {
			day = &domain.CalendarDay{Date: order.Date}
			byDate[order.Date] = day
		}
		day.OrderCount++
		day.Profit += order.Profit
	}

	daysInMonth := time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
	calendar := make([]domain.CalendarDay, 0, daysInMonth)
	for d := 1; d <= daysInMonth; d++ {
		date := fmt.Sprintf("%04d-%02d-%02d", year, month, d)
		if day, ok := byDate[date]; ok {
			calendar = append(calendar, *day)
			continue
		}
		calendar = append(calendar, domain.CalendarDay{Date: date})
	}
	return calendar
}
