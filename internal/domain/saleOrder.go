package domain

// SaleOrder là một đơn bán SIM. CustomerID rỗng với khách lẻ vãng lai;
// khi đó AgentName giữ tên người mua tự nhập.
type SaleOrder struct {
	ID             string        `json:"id"`
	Code           string        `json:"code"`
	Date           string        `json:"date"` // YYYY-MM-DD
	CustomerID     string        `json:"customer_id,omitempty"`
	AgentName      string        `json:"agent_name"`
	SaleType       CustomerClass `json:"sale_type"`
	SimTypeID      string        `json:"sim_type_id"`
	Quantity       int           `json:"quantity"`
	SalePrice      int64         `json:"sale_price"` // giá bán một đơn vị, VNĐ
	DueDate        string        `json:"due_date"`   // hạn thanh toán, rỗng nếu đã tất toán
	DueDateChanges int           `json:"due_date_changes"`
	Note           string        `json:"note"`
	IsFinished     bool          `json:"is_finished"` // tất toán ngay khi tạo đơn
}
