package supabase

import (
	"context"

	"github.com/simb2b/sim-backoffice-api/internal/domain"
)

func (c *storeClient) ListOrders(ctx context.Context) ([]domain.SaleOrder, error) {
	var rows []saleOrderRow
	if err := c.selectAll(ctx, tableSaleOrders, &rows); err != nil {
		return nil, tableError(tableSaleOrders, err)
	}

	orders := make([]domain.SaleOrder, 0, len(rows))
	for _, row := range rows {
		orders = append(orders, row.toDomain())
	}
	return orders, nil
}

func (c *storeClient) InsertOrder(ctx context.Context, o domain.SaleOrder) error {
	return tableError(tableSaleOrders, c.insertOne(ctx, tableSaleOrders, saleOrderToRow(o)))
}

// UpdateOrderDueDate ghi hạn mới và số lần gia hạn đã tính sẵn ở phía gọi
func (c *storeClient) UpdateOrderDueDate(ctx context.Context, id string, dueDate string, changes int) error {
	patch := map[string]any{
		"due_date":         dueDate,
		"due_date_changes": changes,
	}
	return tableError(tableSaleOrders, c.updateByID(ctx, tableSaleOrders, id, patch))
}

func (c *storeClient) DeleteOrder(ctx context.Context, id string) error {
	return tableError(tableSaleOrders, c.deleteByID(ctx, tableSaleOrders, id))
}
