package supabase

import (
	"context"

	"github.com/simb2b/sim-backoffice-api/internal/domain"
)

func (c *storeClient) ListTransactions(ctx context.Context) ([]domain.Transaction, error) {
	var rows []transactionRow
	if err := c.selectAll(ctx, tableTransactions, &rows); err != nil {
		return nil, tableError(tableTransactions, err)
	}

	transactions := make([]domain.Transaction, 0, len(rows))
	for _, row := range rows {
		transactions = append(transactions, row.toDomain())
	}
	return transactions, nil
}

func (c *storeClient) InsertTransaction(ctx context.Context, tx domain.Transaction, userID string) error {
	return tableError(tableTransactions, c.insertOne(ctx, tableTransactions, transactionToRow(tx, userID)))
}

func (c *storeClient) DeleteTransaction(ctx context.Context, id string) error {
	return tableError(tableTransactions, c.deleteByID(ctx, tableTransactions, id))
}
