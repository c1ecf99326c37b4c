package supabase

import (
	"context"

	"github.com/simb2b/sim-backoffice-api/internal/domain"
)

func (c *storeClient) ListSimTypes(ctx context.Context) ([]domain.SimType, error) {
	var rows []simTypeRow
	if err := c.selectAll(ctx, tableSimTypes, &rows); err != nil {
		return nil, tableError(tableSimTypes, err)
	}

	types := make([]domain.SimType, 0, len(rows))
	for _, row := range rows {
		types = append(types, row.toDomain())
	}
	return types, nil
}

func (c *storeClient) InsertSimType(ctx context.Context, t domain.SimType) error {
	return tableError(tableSimTypes, c.insertOne(ctx, tableSimTypes, simTypeToRow(t)))
}

func (c *storeClient) DeleteSimType(ctx context.Context, id string) error {
	return tableError(tableSimTypes, c.deleteByID(ctx, tableSimTypes, id))
}
