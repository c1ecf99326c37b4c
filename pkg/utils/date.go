package utils

import "time"

// DateLayout là định dạng ngày dùng xuyên suốt ứng dụng (khớp kiểu date
// của kho dữ liệu ngoài)
const DateLayout = "2006-01-02"

// ParseDate đọc một chuỗi YYYY-MM-DD; chuỗi rỗng trả về zero time
func ParseDate(dateStr string) (time.Time, error) {
	if dateStr == "" {
		return time.Time{}, nil
	}
	return time.Parse(DateLayout, dateStr)
}

// FormatDate trả về chuỗi YYYY-MM-DD của một mốc thời gian
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// Today trả về ngày hiện tại dạng YYYY-MM-DD
func Today() string {
	return FormatDate(time.Now())
}

// AddDays cộng n ngày vào một chuỗi ngày YYYY-MM-DD
func AddDays(dateStr string, days int) (string, error) {
	t, err := ParseDate(dateStr)
	if err != nil {
		return "", err
	}
	return FormatDate(t.AddDate(0, 0, days)), nil
}

// MonthOf trả về phần YYYY-MM của một chuỗi ngày YYYY-MM-DD
func MonthOf(dateStr string) string {
	if len(dateStr) < 7 {
		return dateStr
	}
	return dateStr[:7]
}
