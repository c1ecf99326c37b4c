// Package apiErrors chuẩn hóa lỗi trả về cho client
package apiErrors

import (
	"encoding/json"
	"net/http"
)

// Mã lỗi trả về cho client
const (
	// Lỗi xác thực
	ErrInvalidCredentials = "AUTH_001" // sai email hoặc mật khẩu
	ErrInvalidToken       = "AUTH_002" // token không hợp lệ
	ErrExpiredToken       = "AUTH_003" // token hết hạn
	ErrMissingUser        = "AUTH_004" // thao tác cần người dùng đăng nhập
	ErrSignupFailed       = "AUTH_005" // đăng ký thất bại

	// Lỗi dữ liệu vào
	ErrInvalidRequest      = "VAL_001" // request không đọc được
	ErrMissingRequiredData = "VAL_002" // thiếu trường bắt buộc
	ErrInvalidFormat       = "VAL_003" // sai định dạng dữ liệu

	// Lỗi nghiệp vụ
	ErrRecordNotFound = "BIZ_001" // không tìm thấy bản ghi

	// Lỗi phía server / dịch vụ ngoài
	ErrInternalServer  = "SRV_001" // lỗi nội bộ
	ErrExternalService = "SRV_002" // kho dữ liệu hoặc dịch vụ auth ngoài lỗi
)

var httpStatusMap = map[string]int{
	ErrInvalidCredentials:  http.StatusUnauthorized,
	ErrInvalidToken:        http.StatusUnauthorized,
	ErrExpiredToken:        http.StatusUnauthorized,
	ErrMissingUser:         http.StatusUnauthorized,
	ErrSignupFailed:        http.StatusBadRequest,
	ErrInvalidRequest:      http.StatusBadRequest,
	ErrMissingRequiredData: http.StatusBadRequest,
	ErrInvalidFormat:       http.StatusBadRequest,
	ErrRecordNotFound:      http.StatusNotFound,
	ErrInternalServer:      http.StatusInternalServerError,
	ErrExternalService:     http.StatusBadGateway,
}

// APIError là body lỗi chuẩn của API
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message,omitempty"`
	Details any    `json:"details,omitempty"`
}

// WriteError ghi lỗi chuẩn hóa ra response HTTP
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	status, exists := httpStatusMap[code]
	if !exists {
		status = http.StatusInternalServerError
	}

	apiErr := APIError{
		Code:    code,
		Message: message,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(apiErr)
}
