package supabase

import (
	"context"

	"github.com/simb2b/sim-backoffice-api/internal/domain"
)

func (c *storeClient) ListDueDateLogs(ctx context.Context) ([]domain.DueDateLog, error) {
	var rows []dueDateLogRow
	if err := c.selectAll(ctx, tableDueDateLogs, &rows); err != nil {
		return nil, tableError(tableDueDateLogs, err)
	}

	logs := make([]domain.DueDateLog, 0, len(rows))
	for _, row := range rows {
		logs = append(logs, row.toDomain())
	}
	return logs, nil
}

func (c *storeClient) InsertDueDateLog(ctx context.Context, l domain.DueDateLog) error {
	return tableError(tableDueDateLogs, c.insertOne(ctx, tableDueDateLogs, dueDateLogToRow(l)))
}
