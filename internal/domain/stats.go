package domain

// InventoryProductStat là tình trạng kho của một loại SIM, suy ra từ toàn bộ
// lô nhập và đơn bán của loại đó. CurrentStock có thể âm, không bị chặn về 0.
type InventoryProductStat struct {
	SimTypeID       string       `json:"sim_type_id"`
	Name            string       `json:"name"`
	TotalImported   int          `json:"total_imported"`
	TotalSold       int          `json:"total_sold"`
	CurrentStock    int          `json:"current_stock"`
	WeightedAvgCost int64        `json:"weighted_avg_cost"` // giá vốn bình quân, làm tròn VNĐ
	Status          StockStatus  `json:"status"`
	Batches         []SimPackage `json:"batches"`
}

// SaleOrderWithStats là đơn hàng kèm tình trạng tài chính tính lại tại thời
// điểm truy vấn. Giá vốn dùng bình quân gia quyền hiện hành, không phải giá
// tại thời điểm bán.
type SaleOrderWithStats struct {
	SaleOrder

	ProductName  string        `json:"product_name"`
	CustomerName string        `json:"customer_name"`
	TotalAmount  int64         `json:"total_amount"`
	Cost         int64         `json:"cost"`
	Profit       int64         `json:"profit"`
	PaidAmount   int64         `json:"paid_amount"`
	Remaining    int64         `json:"remaining"`
	Status       PaymentStatus `json:"status"`
	IsOverdue    bool          `json:"is_overdue"`
	DebtLevel    DebtLevel     `json:"debt_level"`
	LatestReason string        `json:"latest_reason,omitempty"`
}

// CustomerWithStats là khách hàng kèm số liệu tổng hợp trên toàn bộ đơn của họ
type CustomerWithStats struct {
	Customer

	GMV            int64     `json:"gmv"`
	CurrentDebt    int64     `json:"current_debt"`
	NextDueDate    string    `json:"next_due_date,omitempty"` // hạn gần nhất còn nợ
	WorstDebtLevel DebtLevel `json:"worst_debt_level"`
}
