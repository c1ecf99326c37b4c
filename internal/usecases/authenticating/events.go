package authenticating

import "context"

// AuthEvent là sự kiện thay đổi trạng thái phiên, phát cho các bên đăng ký
// (kho dữ liệu trong bộ nhớ dùng nó để tải lại hoặc xóa cache).
type AuthEvent string

const (
	EventSignedIn       AuthEvent = "SIGNED_IN"
	EventTokenRefreshed AuthEvent = "TOKEN_REFRESHED"
	EventSignedOut      AuthEvent = "SIGNED_OUT"
)

// Listener nhận thông báo thay đổi trạng thái phiên
type Listener func(ctx context.Context, event AuthEvent)
