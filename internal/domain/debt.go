package domain

// DebtLevel phân loại mức độ rủi ro công nợ của một đơn hàng.
// WARNING tồn tại trong từ vựng hiển thị nhưng hiện không có quy tắc nào
// gán nó.
type DebtLevel string

const (
	DebtNormal   DebtLevel = "NORMAL"
	DebtWarning  DebtLevel = "WARNING"
	DebtOverdue  DebtLevel = "OVERDUE"
	DebtRecovery DebtLevel = "RECOVERY"
)

// thứ tự toàn phần NORMAL < WARNING < OVERDUE < RECOVERY
var debtLevelRank = map[DebtLevel]int{
	DebtNormal:   0,
	DebtWarning:  1,
	DebtOverdue:  2,
	DebtRecovery: 3,
}

// Worse trả về mức nặng hơn giữa hai mức công nợ
func (d DebtLevel) Worse(other DebtLevel) DebtLevel {
	if debtLevelRank[other] > debtLevelRank[d] {
		return other
	}
	return d
}

// PaymentStatus là trạng thái thanh toán của đơn hàng
type PaymentStatus string

const (
	StatusPaid    PaymentStatus = "PAID"
	StatusPartial PaymentStatus = "PARTIAL"
	StatusUnpaid  PaymentStatus = "UNPAID"
)

// StockStatus là trạng thái tồn kho của một loại SIM
type StockStatus string

const (
	StockOK  StockStatus = "OK"
	StockLow StockStatus = "LOW_STOCK"
)
