package supabase

import (
	"context"

	"github.com/simb2b/sim-backoffice-api/internal/domain"
)

func (c *storeClient) ListCustomers(ctx context.Context) ([]domain.Customer, error) {
	var rows []customerRow
	if err := c.selectAll(ctx, tableCustomers, &rows); err != nil {
		return nil, tableError(tableCustomers, err)
	}

	customers := make([]domain.Customer, 0, len(rows))
	for _, row := range rows {
		customers = append(customers, row.toDomain())
	}
	return customers, nil
}

func (c *storeClient) InsertCustomer(ctx context.Context, customer domain.Customer) error {
	return tableError(tableCustomers, c.insertOne(ctx, tableCustomers, customerToRow(customer)))
}

// UpdateCustomer ghi đè các trường hồ sơ; tags không nằm trong patch này
func (c *storeClient) UpdateCustomer(ctx context.Context, customer domain.Customer) error {
	patch := map[string]any{
		"cid":     customer.CID,
		"name":    customer.Name,
		"phone":   customer.Phone,
		"email":   customer.Email,
		"address": customer.Address,
		"type":    string(customer.Type),
		"note":    customer.Note,
	}
	return tableError(tableCustomers, c.updateByID(ctx, tableCustomers, customer.ID, patch))
}

func (c *storeClient) UpdateCustomerTags(ctx context.Context, id string, tags []string) error {
	patch := map[string]any{"tags": tags}
	return tableError(tableCustomers, c.updateByID(ctx, tableCustomers, id, patch))
}

func (c *storeClient) DeleteCustomer(ctx context.Context, id string) error {
	return tableError(tableCustomers, c.deleteByID(ctx, tableCustomers, id))
}
