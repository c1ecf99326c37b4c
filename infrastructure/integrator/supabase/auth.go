package supabase

import (
	"context"
	"net/http"
	"net/url"

	"github.com/pkg/errors"
	"github.com/simb2b/sim-backoffice-api/internal/config"
	"github.com/simb2b/sim-backoffice-api/internal/domain"
)

type authClient struct {
	rest *restClient
}

// NewAuthClient tạo client tới dịch vụ auth bên ngoài
func NewAuthClient(cfg *config.Config) AuthClient {
	return &authClient{rest: newRestClient(cfg)}
}

type credentialsPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type refreshPayload struct {
	RefreshToken string `json:"refresh_token"`
}

// SignIn đăng nhập bằng email/mật khẩu (grant type password)
func (c *authClient) SignIn(ctx context.Context, email, password string) (*domain.Session, error) {
	query := url.Values{}
	query.Set("grant_type", "password")

	var session domain.Session
	err := c.rest.doAuth(ctx, http.MethodPost, "/auth/v1/token", query, "",
		credentialsPayload{Email: email, Password: password}, &session)
	if err != nil {
		return nil, errors.WithMessage(err, "đăng nhập")
	}
	return &session, nil
}

// SignUp đăng ký tài khoản mới
func (c *authClient) SignUp(ctx context.Context, email, password string) (*domain.Session, error) {
	var session domain.Session
	err := c.rest.doAuth(ctx, http.MethodPost, "/auth/v1/signup", nil, "",
		credentialsPayload{Email: email, Password: password}, &session)
	if err != nil {
		return nil, errors.WithMessage(err, "đăng ký")
	}
	return &session, nil
}

// SignOut thu hồi phiên của access token hiện tại
func (c *authClient) SignOut(ctx context.Context, accessToken string) error {
	err := c.rest.doAuth(ctx, http.MethodPost, "/auth/v1/logout", nil, accessToken, nil, nil)
	return errors.WithMessage(err, "đăng xuất")
}

// Refresh đổi refresh token lấy phiên mới
func (c *authClient) Refresh(ctx context.Context, refreshToken string) (*domain.Session, error) {
	query := url.Values{}
	query.Set("grant_type", "refresh_token")

	var session domain.Session
	err := c.rest.doAuth(ctx, http.MethodPost, "/auth/v1/token", query, "",
		refreshPayload{RefreshToken: refreshToken}, &session)
	if err != nil {
		return nil, errors.WithMessage(err, "làm mới phiên")
	}
	return &session, nil
}

// GetUser tra cứu người dùng của một access token
func (c *authClient) GetUser(ctx context.Context, accessToken string) (*domain.AuthUser, error) {
	var user domain.AuthUser
	err := c.rest.doAuth(ctx, http.MethodGet, "/auth/v1/user", nil, accessToken, nil, &user)
	if err != nil {
		return nil, errors.WithMessage(err, "tra cứu phiên hiện tại")
	}
	return &user, nil
}

// doAuth giống do nhưng cho phép thay Bearer bằng token của người dùng
// (apikey vẫn là key của ứng dụng)
func (c *restClient) doAuth(ctx context.Context, method, path string, query url.Values, userToken string, body any, into any) error {
	if userToken == "" {
		return c.do(ctx, method, path, query, body, into)
	}

	reqURL := c.baseURL + path
	if len(query) > 0 {
		reqURL += "?" + query.Encode()
	}

	req, err := newJSONRequest(ctx, method, reqURL, body)
	if err != nil {
		return err
	}
	req.Header.Set("apikey", c.apiKey)
	req.Header.Set("Authorization", "Bearer "+userToken)

	return c.send(req, into)
}
