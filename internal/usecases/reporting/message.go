package reporting

import (
	"fmt"
	"strings"
	"time"

	"github.com/simb2b/sim-backoffice-api/internal/domain"
)

const messageSeparator = "----------------------------"

// buildReminderMessage dựng tin nhắn nhắc nợ tuần để dán vào Zalo. Mỗi đơn
// một khối gồm biểu tượng theo mức nợ, tên và số điện thoại khách, số còn
// nợ và hạn thu.
func buildReminderMessage(debts []domain.SaleOrderWithStats, customers []domain.Customer, now time.Time) string {
	phoneByID := make(map[string]string, len(customers))
	for _, c := range customers {
		phoneByID[c.ID] = c.Phone
	}

	var b strings.Builder
	fmt.Fprintf(&b, "📋 THÔNG BÁO THU HỒI NỢ TUẦN NÀY (%s)\n%s\n", displayDate(now.Format("2006-01-02")), messageSeparator)

	if len(debts) == 0 {
		b.WriteString("✅ Không có nợ đến hạn trong tuần này.")
	} else {
		blocks := make([]string, 0, len(debts))
		for _, order := range debts {
			phone := phoneByID[order.CustomerID]
			if phone == "" {
				phone = "N/A"
			}
			blocks = append(blocks, fmt.Sprintf("%s %s - %s\n💰 Nợ: %s\n📅 Hạn: %s\n",
				debtIcon(order), order.CustomerName, phone,
				formatVND(order.Remaining), displayDate(order.DueDate)))
		}
		b.WriteString(strings.Join(blocks, "\n"))
	}

	fmt.Fprintf(&b, "\n%s\n👉 Nhân viên phụ trách vui lòng kiểm tra và đôn đốc!", messageSeparator)
	return b.String()
}

func debtIcon(order domain.SaleOrderWithStats) string {
	switch {
	case order.DebtLevel == domain.DebtRecovery:
		return "🚨"
	case order.DebtLevel == domain.DebtWarning:
		return "⚠️"
	case order.IsOverdue:
		return "⏰"
	default:
		return "📅"
	}
}

// formatVND viết số tiền với dấu chấm ngăn cách hàng nghìn, ví dụ 1.250.000đ
func formatVND(amount int64) string {
	negative := amount < 0
	if negative {
		amount = -amount
	}

	digits := fmt.Sprintf("%d", amount)
	var b strings.Builder
	if negative {
		b.WriteByte('-')
	}
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(d)
	}
	b.WriteString("đ")
	return b.String()
}

// displayDate đổi YYYY-MM-DD sang dạng hiển thị DD/MM/YYYY
func displayDate(dateStr string) string {
	if len(dateStr) != 10 {
		return dateStr
	}
	return dateStr[8:10] + "/" + dateStr[5:7] + "/" + dateStr[0:4]
}
