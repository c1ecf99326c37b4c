package ordering

import "github.com/pkg/errors"

var (
	ErrOrderNotFound    = errors.New("không tìm thấy đơn hàng")
	ErrCustomerNotFound = errors.New("không tìm thấy khách hàng")
	ErrCustomerRequired = errors.New("đơn bán sỉ phải gắn khách hàng")
	ErrMissingUser      = errors.New("thiếu thông tin người dùng đăng nhập")
)
