package domain

// TransactionDirection là chiều của một bút toán thu chi
type TransactionDirection string

const (
	DirectionIn  TransactionDirection = "IN"
	DirectionOut TransactionDirection = "OUT"
)

// PaymentMethod là hình thức thanh toán
type PaymentMethod string

const (
	MethodCash     PaymentMethod = "CASH"
	MethodTransfer PaymentMethod = "TRANSFER"
	MethodCOD      PaymentMethod = "COD"
)

// Các hạng mục thu chi mặc định của sổ quỹ
const (
	CategoryWholesaleIncome = "Thu bán sỉ"
	CategoryRetailIncome    = "Thu bán lẻ"
	CategoryImportExpense   = "Chi nhập SIM"
)

// Transaction là một bút toán trong sổ quỹ. Amount luôn không âm,
// chiều thu/chi nằm ở Type.
type Transaction struct {
	ID          string               `json:"id"`
	Code        string               `json:"code"`
	Date        string               `json:"date"` // YYYY-MM-DD
	Type        TransactionDirection `json:"type"`
	Category    string               `json:"category"`
	Amount      int64                `json:"amount"` // VNĐ
	Method      PaymentMethod        `json:"method"`
	SaleOrderID string               `json:"sale_order_id,omitempty"` // đối soát với đơn hàng
	Note        string               `json:"note"`
}
