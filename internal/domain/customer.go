package domain

import "strings"

// CustomerClass phân loại khách hàng / đơn hàng theo kênh bán
type CustomerClass string

const (
	Wholesale CustomerClass = "WHOLESALE" // bán sỉ (đại lý)
	Retail    CustomerClass = "RETAIL"    // bán lẻ
)

// Customer là một khách hàng trong sổ CRM
type Customer struct {
	ID      string        `json:"id"`
	CID     string        `json:"cid"` // mã khách hàng hiển thị
	Name    string        `json:"name"`
	Phone   string        `json:"phone"`
	Email   string        `json:"email"`
	Address string        `json:"address"`
	Type    CustomerClass `json:"type"`
	Tags    []string      `json:"tags,omitempty"`
	Note    string        `json:"note"`
}

// MergeReasonTags gộp lý do gia hạn (chuỗi phân tách bằng dấu phẩy) vào tập
// thẻ hiện có của khách: tách, cắt khoảng trắng, loại trùng. Thứ tự thẻ cũ
// được giữ nguyên, thẻ mới nối vào cuối.
func MergeReasonTags(tags []string, reason string) []string {
	merged := make([]string, 0, len(tags))
	seen := make(map[string]bool, len(tags))

	for _, t := range tags {
		if t == "" || seen[t] {
			continue
		}
		seen[t] = true
		merged = append(merged, t)
	}

	for _, piece := range strings.Split(reason, ",") {
		tag := strings.TrimSpace(piece)
		if tag == "" || seen[tag] {
			continue
		}
		seen[tag] = true
		merged = append(merged, tag)
	}

	return merged
}
