// Package domain chứa các cấu trúc dữ liệu nghiệp vụ của ứng dụng
package domain

// SimType là một loại SIM trong danh mục sản phẩm
type SimType struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
