package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/simb2b/sim-backoffice-api/internal/usecases/authenticating"
)

type contextKey string

// ContextKeyUser là khóa context chứa claims của người dùng đã xác thực
const ContextKeyUser contextKey = "user"

// các đường dẫn không yêu cầu token
var publicPaths = map[string]bool{
	"/healthcheck":     true,
	"/v1/auth/login":   true,
	"/v1/auth/signup":  true,
	"/v1/auth/refresh": true, // token hết hạn mới cần làm mới
}

// AuthMiddleware kiểm tra Bearer token trên mọi route ngoài danh sách công khai
func AuthMiddleware(authService authenticating.Authenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if publicPaths[r.URL.Path] || r.Method == http.MethodOptions {
				next.ServeHTTP(w, r)
				return
			}

			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				http.Error(w, "Thiếu header Authorization", http.StatusUnauthorized)
				return
			}

			tokenString := strings.TrimPrefix(authHeader, "Bearer ")
			if tokenString == authHeader {
				http.Error(w, "Yêu cầu Bearer token", http.StatusUnauthorized)
				return
			}

			claims, err := authService.ValidateToken(tokenString)
			if err != nil {
				http.Error(w, "Token không hợp lệ", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), ContextKeyUser, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
