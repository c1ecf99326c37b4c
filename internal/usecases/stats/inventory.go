// Package stats là pipeline thống kê dẫn xuất: mọi con số (tồn kho, giá
// vốn, công nợ, mức nợ) đều tính lại từ snapshot của cache mỗi lần gọi,
// không lưu trữ giá trị dẫn xuất nào.
package stats

import (
	"github.com/shopspring/decimal"
	"github.com/simb2b/sim-backoffice-api/internal/domain"
)

// Ngưỡng cảnh báo tồn kho thấp
const lowStockThreshold = 20

// BuildInventoryStats gộp các lô nhập theo loại SIM và tính giá vốn bình
// quân gia quyền: round(tổng tiền nhập / tổng số lượng nhập). Tồn kho hiện
// tại có thể âm khi bán vượt số đã nhập.
func BuildInventoryStats(c domain.Collections) []domain.InventoryProductStat {
	stats := make([]domain.InventoryProductStat, 0, len(c.SimTypes))

	for _, simType := range c.SimTypes {
		stat := domain.InventoryProductStat{
			SimTypeID: simType.ID,
			Name:      simType.Name,
			Batches:   []domain.SimPackage{},
		}

		var totalImportPrice int64
		for _, pkg := range c.Packages {
			if pkg.SimTypeID != simType.ID {
				continue
			}
			stat.Batches = append(stat.Batches, pkg)
			stat.TotalImported += pkg.Quantity
			totalImportPrice += pkg.TotalImportPrice
		}

		for _, order := range c.Orders {
			if order.SimTypeID == simType.ID {
				stat.TotalSold += order.Quantity
			}
		}

		stat.CurrentStock = stat.TotalImported - stat.TotalSold
		if stat.TotalImported > 0 {
			stat.WeightedAvgCost = decimal.NewFromInt(totalImportPrice).
				DivRound(decimal.NewFromInt(int64(stat.TotalImported)), 0).
				IntPart()
		}

		stat.Status = domain.StockOK
		if stat.CurrentStock <= lowStockThreshold {
			stat.Status = domain.StockLow
		}

		stats = append(stats, stat)
	}

	return stats
}
