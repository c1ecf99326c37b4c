package supabase

import (
	"context"

	"github.com/simb2b/sim-backoffice-api/internal/domain"
)

func (c *storeClient) ListPackages(ctx context.Context) ([]domain.SimPackage, error) {
	var rows []simPackageRow
	if err := c.selectAll(ctx, tableSimPackages, &rows); err != nil {
		return nil, tableError(tableSimPackages, err)
	}

	packages := make([]domain.SimPackage, 0, len(rows))
	for _, row := range rows {
		packages = append(packages, row.toDomain())
	}
	return packages, nil
}

func (c *storeClient) InsertPackage(ctx context.Context, pkg domain.SimPackage) error {
	return tableError(tableSimPackages, c.insertOne(ctx, tableSimPackages, simPackageToRow(pkg)))
}

func (c *storeClient) DeletePackage(ctx context.Context, id string) error {
	return tableError(tableSimPackages, c.deleteByID(ctx, tableSimPackages, id))
}
