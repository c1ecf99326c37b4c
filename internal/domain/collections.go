package domain

// Collections là ảnh chụp trong bộ nhớ của sáu bảng dữ liệu. Toàn bộ thống
// kê phái sinh được tính lại từ cấu trúc này mỗi lần truy vấn.
type Collections struct {
	SimTypes     []SimType
	Packages     []SimPackage
	Customers    []Customer
	Orders       []SaleOrder
	Transactions []Transaction
	DueDateLogs  []DueDateLog
}

// Clone sao chép nông các slice để bên đọc không đua với bên ghi cache
func (c Collections) Clone() Collections {
	out := Collections{
		SimTypes:     make([]SimType, len(c.SimTypes)),
		Packages:     make([]SimPackage, len(c.Packages)),
		Customers:    make([]Customer, len(c.Customers)),
		Orders:       make([]SaleOrder, len(c.Orders)),
		Transactions: make([]Transaction, len(c.Transactions)),
		DueDateLogs:  make([]DueDateLog, len(c.DueDateLogs)),
	}

	copy(out.SimTypes, c.SimTypes)
	copy(out.Packages, c.Packages)
	copy(out.Customers, c.Customers)
	copy(out.Orders, c.Orders)
	copy(out.Transactions, c.Transactions)
	copy(out.DueDateLogs, c.DueDateLogs)

	return out
}
