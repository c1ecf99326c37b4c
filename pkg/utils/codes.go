package utils

import (
	"fmt"
	"hash/fnv"
	"strings"

	"github.com/google/uuid"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

// bảng ký tự không gây nhầm lẫn khi đọc mã trên hóa đơn
const codeAlphabet = "0123456789ABCDEFGHJKMNPQRSTVWXYZ"

// NewID sinh định danh bản ghi mới (client tự cấp ID khi insert vào kho ngoài)
func NewID() string {
	return uuid.New().String()
}

// GenerateCode sinh mã hiển thị cho người dùng, ví dụ SO-7FK2Q9MX, TX-01HG5D2K
func GenerateCode(prefix string) string {
	suffix := gonanoid.MustGenerate(codeAlphabet, 8)
	return fmt.Sprintf("%s-%s", strings.ToUpper(prefix), suffix)
}

// GenerateCID sinh mã khách hàng ổn định từ thông tin liên hệ, ví dụ KH-4K7Q2M
func GenerateCID(name, phone, email string) string {
	h := fnv.New32a()
	h.Write([]byte(name + "|" + phone + "|" + email))
	sum := h.Sum32()

	suffix := make([]byte, 6)
	for i := range suffix {
		suffix[i] = codeAlphabet[sum%uint32(len(codeAlphabet))]
		sum /= uint32(len(codeAlphabet))
	}
	return "KH-" + string(suffix)
}
