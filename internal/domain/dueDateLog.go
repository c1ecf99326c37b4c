package domain

import "time"

// DueDateLog là một dòng nhật ký gia hạn thanh toán, chỉ ghi thêm,
// không bao giờ sửa hay xóa.
type DueDateLog struct {
	ID        string    `json:"id"`
	OrderID   string    `json:"order_id"`
	OldDate   string    `json:"old_date"`
	NewDate   string    `json:"new_date"`
	Reason    string    `json:"reason"`
	UpdatedAt time.Time `json:"updated_at"`
}
