package domain

// SimPackage là một lô SIM nhập kho. Sau khi tạo, lô chỉ có thể bị xóa,
// không chỉnh sửa.
type SimPackage struct {
	ID               string `json:"id"`
	Code             string `json:"code"`
	Name             string `json:"name"`
	SimTypeID        string `json:"sim_type_id"`
	ImportDate       string `json:"import_date"` // YYYY-MM-DD
	Quantity         int    `json:"quantity"`
	TotalImportPrice int64  `json:"total_import_price"` // tổng giá nhập của cả lô, đơn vị VNĐ
}
