package stats

import (
	"time"

	"github.com/simb2b/sim-backoffice-api/internal/domain"
	"github.com/simb2b/sim-backoffice-api/pkg/utils"
)

// Tên hiển thị cho đơn bán lẻ không gắn khách hàng
const retailCustomerName = "Khách lẻ"

// BuildOrderStats tính các trường dẫn xuất cho từng đơn: thành tiền, giá
// vốn (theo giá bình quân gia quyền hiện tại, không chốt tại thời điểm
// bán), lợi nhuận, số đã thu, còn lại và mức nợ.
func BuildOrderStats(c domain.Collections, inventory []domain.InventoryProductStat, now time.Time) []domain.SaleOrderWithStats {
	avgCostByType := make(map[string]int64, len(inventory))
	nameByType := make(map[string]string, len(inventory))
	for _, stat := range inventory {
		avgCostByType[stat.SimTypeID] = stat.WeightedAvgCost
		nameByType[stat.SimTypeID] = stat.Name
	}

	customerByID := make(map[string]domain.Customer, len(c.Customers))
	for _, customer := range c.Customers {
		customerByID[customer.ID] = customer
	}

	paidByOrder := make(map[string]int64)
	for _, tx := range c.Transactions {
		if tx.SaleOrderID != "" && tx.Type == domain.DirectionIn {
			paidByOrder[tx.SaleOrderID] += tx.Amount
		}
	}

	today := utils.FormatDate(now)
	result := make([]domain.SaleOrderWithStats, 0, len(c.Orders))

	for _, order := range c.Orders {
		stat := domain.SaleOrderWithStats{
			SaleOrder:   order,
			ProductName: nameByType[order.SimTypeID],
		}

		if customer, ok := customerByID[order.CustomerID]; ok {
			stat.CustomerName = customer.Name
		} else if order.AgentName != "" {
			stat.CustomerName = order.AgentName
		} else {
			stat.CustomerName = retailCustomerName
		}

		quantity := int64(order.Quantity)
		stat.TotalAmount = quantity * order.SalePrice
		stat.Cost = quantity * avgCostByType[order.SimTypeID]
		stat.Profit = stat.TotalAmount - stat.Cost

		stat.PaidAmount = paidByOrder[order.ID]
		stat.Remaining = stat.TotalAmount - stat.PaidAmount
		if stat.Remaining < 0 {
			stat.Remaining = 0
		}

		switch {
		case stat.Remaining == 0:
			stat.Status = domain.StatusPaid
		case stat.PaidAmount > 0:
			stat.Status = domain.StatusPartial
		default:
			stat.Status = domain.StatusUnpaid
		}

		pastDue := order.DueDate != "" && order.DueDate <= today
		stat.DebtLevel = debtLevelOf(stat.Remaining, order.DueDateChanges, pastDue)
		// Đơn RECOVERY tính là quá hạn kể cả khi hạn còn ở tương lai
		stat.IsOverdue = stat.DebtLevel == domain.DebtOverdue || stat.DebtLevel == domain.DebtRecovery
		stat.LatestReason = latestReason(c.DueDateLogs, order.ID)

		result = append(result, stat)
	}

	return result
}

// debtLevelOf xếp mức nợ của một đơn. Đơn đã thu đủ luôn là NORMAL bất kể
// lịch sử gia hạn. WARNING có trong thang mức nhưng hiện không quy tắc nào
// gán ra nó.
func debtLevelOf(remaining int64, dueDateChanges int, pastDue bool) domain.DebtLevel {
	if remaining <= 0 {
		return domain.DebtNormal
	}
	if dueDateChanges >= 3 {
		return domain.DebtRecovery
	}
	if pastDue {
		return domain.DebtOverdue
	}
	return domain.DebtNormal
}

// latestReason lấy lý do của lần gia hạn gần nhất theo thời điểm ghi
func latestReason(logs []domain.DueDateLog, orderID string) string {
	var (
		reason string
		latest time.Time
		found  bool
	)
	for _, l := range logs {
		if l.OrderID != orderID {
			continue
		}
		if !found || l.UpdatedAt.After(latest) {
			reason = l.Reason
			latest = l.UpdatedAt
			found = true
		}
	}
	return reason
}
