// Package authenticating ủy quyền toàn bộ xác thực cho dịch vụ auth bên
// ngoài: ứng dụng không lưu mật khẩu, chỉ kiểm tra access token do dịch vụ
// đó phát hành và phát lại sự kiện thay đổi phiên cho các bên đăng ký.
package authenticating

import (
	"context"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
	"github.com/simb2b/sim-backoffice-api/infrastructure/integrator/supabase"
	"github.com/simb2b/sim-backoffice-api/internal/config"
	"github.com/simb2b/sim-backoffice-api/internal/domain"
)

type Authenticator interface {
	SignIn(ctx context.Context, email, password string) (*domain.Session, error)
	SignUp(ctx context.Context, email, password string) (*domain.Session, error)
	SignOut(ctx context.Context, accessToken string) error
	Refresh(ctx context.Context, refreshToken string) (*domain.Session, error)
	CurrentUser(ctx context.Context, accessToken string) (*domain.AuthUser, error)
	ValidateToken(tokenString string) (*domain.Claims, error)

	// Subscribe đăng ký nhận sự kiện thay đổi phiên. Không an toàn khi gọi
	// song song với các thao tác khác; đăng ký hết ở bước khởi động.
	Subscribe(l Listener)
}

type Service struct {
	authClient supabase.AuthClient
	jwtSecret  []byte
	listeners  []Listener
}

func NewService(authClient supabase.AuthClient, cfg *config.Config) Authenticator {
	return &Service{
		authClient: authClient,
		jwtSecret:  []byte(cfg.Supabase.JWTSecret),
	}
}

func (s *Service) Subscribe(l Listener) {
	s.listeners = append(s.listeners, l)
}

func (s *Service) emit(ctx context.Context, event AuthEvent) {
	for _, l := range s.listeners {
		l(ctx, event)
	}
}

func (s *Service) SignIn(ctx context.Context, email, password string) (*domain.Session, error) {
	if email == "" || password == "" {
		return nil, ErrMissingRequiredData
	}

	session, err := s.authClient.SignIn(ctx, email, password)
	if err != nil {
		logrus.WithError(err).Warn("Đăng nhập thất bại")
		return nil, ErrInvalidCredentials
	}

	s.emit(ctx, EventSignedIn)
	return session, nil
}

func (s *Service) SignUp(ctx context.Context, email, password string) (*domain.Session, error) {
	if email == "" || password == "" {
		return nil, ErrMissingRequiredData
	}

	session, err := s.authClient.SignUp(ctx, email, password)
	if err != nil {
		logrus.WithError(err).Error("Đăng ký thất bại")
		return nil, ErrAuthService
	}

	return session, nil
}

func (s *Service) SignOut(ctx context.Context, accessToken string) error {
	if err := s.authClient.SignOut(ctx, accessToken); err != nil {
		// vẫn phát sự kiện để cache được xóa, phiên phía client coi như kết thúc
		logrus.WithError(err).Warn("Thu hồi phiên trên dịch vụ auth thất bại")
	}

	s.emit(ctx, EventSignedOut)
	return nil
}

func (s *Service) Refresh(ctx context.Context, refreshToken string) (*domain.Session, error) {
	if refreshToken == "" {
		return nil, ErrMissingRequiredData
	}

	session, err := s.authClient.Refresh(ctx, refreshToken)
	if err != nil {
		logrus.WithError(err).Warn("Làm mới phiên thất bại")
		return nil, ErrInvalidToken
	}

	s.emit(ctx, EventTokenRefreshed)
	return session, nil
}

func (s *Service) CurrentUser(ctx context.Context, accessToken string) (*domain.AuthUser, error) {
	user, err := s.authClient.GetUser(ctx, accessToken)
	if err != nil {
		return nil, ErrInvalidToken
	}
	return user, nil
}

// ValidateToken kiểm tra chữ ký HS256, hạn và audience của access token
func (s *Service) ValidateToken(tokenString string) (*domain.Claims, error) {
	claims := &domain.Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.jwtSecret, nil
	}, jwt.WithAudience("authenticated"))
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
