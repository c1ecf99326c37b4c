// Package handler chứa các HTTP handler của API. Handler chỉ decode,
// validate, gọi usecase và viết response; nghiệp vụ nằm ở tầng usecases.
package handler

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/simb2b/sim-backoffice-api/internal/domain"
	"github.com/simb2b/sim-backoffice-api/pkg/middleware"
)

var validate = validator.New()

// currentUserID lấy ID người dùng từ claims do middleware xác thực gắn vào
// context; chuỗi rỗng nghĩa là không có người dùng đăng nhập
func currentUserID(r *http.Request) string {
	claims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
	if !ok {
		return ""
	}
	return claims.Subject
}
