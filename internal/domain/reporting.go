package domain

// RevenuePoint là doanh thu một ngày, tách theo kênh bán
type RevenuePoint struct {
	Date      string `json:"date"` // YYYY-MM-DD
	Retail    int64  `json:"retail"`
	Wholesale int64  `json:"wholesale"`
	Total     int64  `json:"total"`
}

// TodaySummary là số liệu nhanh của ngày hiện tại
type TodaySummary struct {
	OrderCount int   `json:"order_count"`
	Revenue    int64 `json:"revenue"`
	Profit     int64 `json:"profit"`
}

// DashboardSummary là toàn bộ số liệu của màn hình tổng quan cho một
// khoảng ngày [StartDate, EndDate]
type DashboardSummary struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`

	CashBalance int64 `json:"cash_balance"` // tổng thu − tổng chi trong kỳ
	Receivables int64 `json:"receivables"`  // tổng nợ còn lại của đơn trong kỳ
	TotalStock  int   `json:"total_stock"`  // tồn kho mọi loại SIM, không lọc theo kỳ
	GrossProfit int64 `json:"gross_profit"`

	Today TodaySummary `json:"today"`

	RevenueChart    []RevenuePoint       `json:"revenue_chart"`
	WeeklyDebts     []SaleOrderWithStats `json:"weekly_debts"` // nợ đến hạn trong 7 ngày tới
	ReminderMessage string               `json:"reminder_message"`
}

// MonthlyCashflow là số liệu một tháng trên biểu đồ dòng tiền: thu chi
// từ sổ quỹ, lợi nhuận từ đơn bán cùng tháng
type MonthlyCashflow struct {
	Month   string `json:"month"` // YYYY-MM
	Income  int64  `json:"income"`
	Expense int64  `json:"expense"`
	Profit  int64  `json:"profit"`
}

// CalendarDay là số liệu một ô trên lịch lợi nhuận tháng
type CalendarDay struct {
	Date       string `json:"date"` // YYYY-MM-DD
	OrderCount int    `json:"order_count"`
	Profit     int64  `json:"profit"`
}
