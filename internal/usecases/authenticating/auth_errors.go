package authenticating

import "errors"

var (
	ErrInvalidCredentials  = errors.New("sai email hoặc mật khẩu")
	ErrInvalidToken        = errors.New("token không hợp lệ")
	ErrExpiredToken        = errors.New("token đã hết hạn")
	ErrMissingRequiredData = errors.New("thiếu dữ liệu bắt buộc")
	ErrAuthService         = errors.New("dịch vụ xác thực ngoài gặp lỗi")
)
