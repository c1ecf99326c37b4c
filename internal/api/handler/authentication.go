package handler

import (
	"net/http"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/simb2b/sim-backoffice-api/internal/usecases/authenticating"
	"github.com/simb2b/sim-backoffice-api/pkg/apiErrors"
	"github.com/simb2b/sim-backoffice-api/pkg/utils"
)

type CredentialsRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

func Login(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CredentialsRequest
		if err := utils.DecodeJSON(r, &req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Định dạng request không hợp lệ", nil)
			return
		}
		if err := validate.Struct(req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Thiếu email hoặc mật khẩu", err.Error())
			return
		}

		session, err := service.SignIn(r.Context(), req.Email, req.Password)
		if err != nil {
			handleAuthError(w, err)
			return
		}

		utils.WriteJSON(w, http.StatusOK, session)
	}
}

func Signup(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CredentialsRequest
		if err := utils.DecodeJSON(r, &req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Định dạng request không hợp lệ", nil)
			return
		}
		if err := validate.Struct(req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Thiếu email hoặc mật khẩu", err.Error())
			return
		}

		session, err := service.SignUp(r.Context(), req.Email, req.Password)
		if err != nil {
			handleAuthError(w, err)
			return
		}

		utils.WriteJSON(w, http.StatusCreated, session)
	}
}

func Logout(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := service.SignOut(r.Context(), bearerToken(r)); err != nil {
			logrus.WithError(err).Warn("Đăng xuất không trọn vẹn")
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func Refresh(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RefreshRequest
		if err := utils.DecodeJSON(r, &req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Định dạng request không hợp lệ", nil)
			return
		}
		if err := validate.Struct(req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Thiếu refresh token", err.Error())
			return
		}

		session, err := service.Refresh(r.Context(), req.RefreshToken)
		if err != nil {
			handleAuthError(w, err)
			return
		}

		utils.WriteJSON(w, http.StatusOK, session)
	}
}

// GetMe trả về thông tin người dùng gắn với access token hiện tại
func GetMe(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, err := service.CurrentUser(r.Context(), bearerToken(r))
		if err != nil {
			handleAuthError(w, err)
			return
		}

		utils.WriteJSON(w, http.StatusOK, user)
	}
}

func bearerToken(r *http.Request) string {
	return strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
}

func handleAuthError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, authenticating.ErrInvalidCredentials):
		apiErrors.WriteError(w, apiErrors.ErrInvalidCredentials, "Email hoặc mật khẩu không đúng", nil)

	case errors.Is(err, authenticating.ErrMissingRequiredData):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Thiếu dữ liệu bắt buộc", nil)

	case errors.Is(err, authenticating.ErrInvalidToken), errors.Is(err, authenticating.ErrExpiredToken):
		apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Phiên đăng nhập không hợp lệ", nil)

	default:
		logrus.WithError(err).Error("Lỗi dịch vụ xác thực")
		apiErrors.WriteError(w, apiErrors.ErrExternalService, "Dịch vụ xác thực gặp sự cố", nil)
	}
}
