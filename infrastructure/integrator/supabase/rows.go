package supabase

import (
	"time"

	"github.com/simb2b/sim-backoffice-api/internal/domain"
)

// Tên bảng trên kho dữ liệu ngoài
const (
	tableSimTypes     = "sim_types"
	tableSimPackages  = "sim_packages"
	tableCustomers    = "customers"
	tableSaleOrders   = "sale_orders"
	tableTransactions = "transactions"
	tableDueDateLogs  = "due_date_logs"
)

// Các row struct dưới đây là hình dạng bản ghi ở ranh giới với kho ngoài
// (snake_case, trường nullable là con trỏ). Mọi dịch chuyển tên trường giữa
// hai thế giới nằm gọn trong file này.

type simTypeRow struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func (r simTypeRow) toDomain() domain.SimType {
	return domain.SimType{ID: r.ID, Name: r.Name}
}

func simTypeToRow(t domain.SimType) simTypeRow {
	return simTypeRow{ID: t.ID, Name: t.Name}
}

type simPackageRow struct {
	ID               string `json:"id"`
	Code             string `json:"code"`
	Name             string `json:"name"`
	SimTypeID        string `json:"sim_type_id"`
	ImportDate       string `json:"import_date"`
	Quantity         int    `json:"quantity"`
	TotalImportPrice int64  `json:"total_import_price"`
}

func (r simPackageRow) toDomain() domain.SimPackage {
	return domain.SimPackage{
		ID:               r.ID,
		Code:             r.Code,
		Name:             r.Name,
		SimTypeID:        r.SimTypeID,
		ImportDate:       r.ImportDate,
		Quantity:         r.Quantity,
		TotalImportPrice: r.TotalImportPrice,
	}
}

func simPackageToRow(p domain.SimPackage) simPackageRow {
	return simPackageRow{
		ID:               p.ID,
		Code:             p.Code,
		Name:             p.Name,
		SimTypeID:        p.SimTypeID,
		ImportDate:       p.ImportDate,
		Quantity:         p.Quantity,
		TotalImportPrice: p.TotalImportPrice,
	}
}

type customerRow struct {
	ID      string   `json:"id"`
	CID     string   `json:"cid"`
	Name    string   `json:"name"`
	Phone   string   `json:"phone"`
	Email   string   `json:"email"`
	Address string   `json:"address"`
	Type    string   `json:"type"`
	Tags    []string `json:"tags"`
	Note    string   `json:"note"`
}

func (r customerRow) toDomain() domain.Customer {
	return domain.Customer{
		ID:      r.ID,
		CID:     r.CID,
		Name:    r.Name,
		Phone:   r.Phone,
		Email:   r.Email,
		Address: r.Address,
		Type:    domain.CustomerClass(r.Type),
		Tags:    r.Tags,
		Note:    r.Note,
	}
}

// customerToRow không mang theo tags: tags chỉ được ghi qua lệnh cập nhật
// riêng trong luồng gia hạn, giống bản gốc
func customerToRow(c domain.Customer) customerRow {
	return customerRow{
		ID:      c.ID,
		CID:     c.CID,
		Name:    c.Name,
		Phone:   c.Phone,
		Email:   c.Email,
		Address: c.Address,
		Type:    string(c.Type),
		Note:    c.Note,
	}
}

type saleOrderRow struct {
	ID             string  `json:"id"`
	Code           string  `json:"code"`
	Date           string  `json:"date"`
	CustomerID     *string `json:"customer_id"`
	AgentName      string  `json:"agent_name"`
	SaleType       string  `json:"sale_type"`
	SimTypeID      string  `json:"sim_type_id"`
	Quantity       int     `json:"quantity"`
	SalePrice      int64   `json:"sale_price"`
	DueDate        *string `json:"due_date"`
	DueDateChanges int     `json:"due_date_changes"`
	Note           string  `json:"note"`
	IsFinished     bool    `json:"is_finished"`
}

func (r saleOrderRow) toDomain() domain.SaleOrder {
	o := domain.SaleOrder{
		ID:             r.ID,
		Code:           r.Code,
		Date:           r.Date,
		AgentName:      r.AgentName,
		SaleType:       domain.CustomerClass(r.SaleType),
		SimTypeID:      r.SimTypeID,
		Quantity:       r.Quantity,
		SalePrice:      r.SalePrice,
		DueDateChanges: r.DueDateChanges,
		Note:           r.Note,
		IsFinished:     r.IsFinished,
	}
	if r.CustomerID != nil {
		o.CustomerID = *r.CustomerID
	}
	if r.DueDate != nil {
		o.DueDate = *r.DueDate
	}
	return o
}

func saleOrderToRow(o domain.SaleOrder) saleOrderRow {
	row := saleOrderRow{
		ID:             o.ID,
		Code:           o.Code,
		Date:           o.Date,
		AgentName:      o.AgentName,
		SaleType:       string(o.SaleType),
		SimTypeID:      o.SimTypeID,
		Quantity:       o.Quantity,
		SalePrice:      o.SalePrice,
		DueDateChanges: o.DueDateChanges,
		Note:           o.Note,
		IsFinished:     o.IsFinished,
	}
	if o.CustomerID != "" {
		row.CustomerID = &o.CustomerID
	}
	if o.DueDate != "" {
		row.DueDate = &o.DueDate
	}
	return row
}

type transactionRow struct {
	ID          string  `json:"id"`
	Code        string  `json:"code"`
	Date        string  `json:"date"`
	Type        string  `json:"type"`
	Category    string  `json:"category"`
	Amount      int64   `json:"amount"`
	Method      string  `json:"method"`
	SaleOrderID *string `json:"sale_order_id"`
	UserID      *string `json:"user_id,omitempty"`
	Note        string  `json:"note"`
}

func (r transactionRow) toDomain() domain.Transaction {
	tx := domain.Transaction{
		ID:       r.ID,
		Code:     r.Code,
		Date:     r.Date,
		Type:     domain.TransactionDirection(r.Type),
		Category: r.Category,
		Amount:   r.Amount,
		Method:   domain.PaymentMethod(r.Method),
		Note:     r.Note,
	}
	if r.SaleOrderID != nil {
		tx.SaleOrderID = *r.SaleOrderID
	}
	return tx
}

// transactionToRow gắn kèm user_id của người ghi bút toán (bắt buộc ở kho ngoài)
func transactionToRow(tx domain.Transaction, userID string) transactionRow {
	row := transactionRow{
		ID:       tx.ID,
		Code:     tx.Code,
		Date:     tx.Date,
		Type:     string(tx.Type),
		Category: tx.Category,
		Amount:   tx.Amount,
		Method:   string(tx.Method),
		Note:     tx.Note,
	}
	if tx.SaleOrderID != "" {
		row.SaleOrderID = &tx.SaleOrderID
	}
	if userID != "" {
		row.UserID = &userID
	}
	return row
}

type dueDateLogRow struct {
	ID        string    `json:"id"`
	OrderID   string    `json:"order_id"`
	OldDate   string    `json:"old_date"`
	NewDate   string    `json:"new_date"`
	Reason    string    `json:"reason"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (r dueDateLogRow) toDomain() domain.DueDateLog {
	return domain.DueDateLog{
		ID:        r.ID,
		OrderID:   r.OrderID,
		OldDate:   r.OldDate,
		NewDate:   r.NewDate,
		Reason:    r.Reason,
		UpdatedAt: r.UpdatedAt,
	}
}

func dueDateLogToRow(l domain.DueDateLog) dueDateLogRow {
	return dueDateLogRow{
		ID:        l.ID,
		OrderID:   l.OrderID,
		OldDate:   l.OldDate,
		NewDate:   l.NewDate,
		Reason:    l.Reason,
		UpdatedAt: l.UpdatedAt,
	}
}
