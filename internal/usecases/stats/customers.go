package stats

import (
	"github.com/simb2b/sim-backoffice-api/internal/domain"
)

// BuildCustomerStats gộp số liệu đơn hàng về từng khách: tổng doanh số,
// công nợ hiện tại, hạn thu gần nhất trong các đơn còn nợ và mức nợ xấu
// nhất. Khách chưa có đơn nào vẫn xuất hiện với số liệu bằng không.
func BuildCustomerStats(c domain.Collections, orders []domain.SaleOrderWithStats) []domain.CustomerWithStats {
	result := make([]domain.CustomerWithStats, 0, len(c.Customers))

	for _, customer := range c.Customers {
		stat := domain.CustomerWithStats{
			Customer:       customer,
			WorstDebtLevel: domain.DebtNormal,
		}

		for _, order := range orders {
			if order.CustomerID != customer.ID {
				continue
			}
			stat.GMV += order.TotalAmount
			stat.CurrentDebt += order.Remaining

			if order.Remaining > 0 && order.DueDate != "" {
				if stat.NextDueDate == "" || order.DueDate < stat.NextDueDate {
					stat.NextDueDate = order.DueDate
				}
			}
			stat.WorstDebtLevel = stat.WorstDebtLevel.Worse(order.DebtLevel)
		}

		result = append(result, stat)
	}

	return result
}
