package domain

import "github.com/golang-jwt/jwt/v5"

// AuthUser là người dùng đã xác thực trả về từ dịch vụ auth bên ngoài
type AuthUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// Session là phiên đăng nhập do dịch vụ auth cấp
type Session struct {
	AccessToken  string   `json:"access_token"`
	RefreshToken string   `json:"refresh_token"`
	TokenType    string   `json:"token_type"`
	ExpiresIn    int      `json:"expires_in"`
	User         AuthUser `json:"user"`
}

// Claims là payload của access token (HS256) do dịch vụ auth phát hành.
// Subject là ID người dùng.
type Claims struct {
	jwt.RegisteredClaims

	Email string `json:"email"`
	Role  string `json:"role"`
}
