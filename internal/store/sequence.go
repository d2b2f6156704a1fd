package store

import (
	"context"
	"fmt"
)

// nextOrderIndex computes the next 1-based position for a child row within
// its parent scope. Indices only grow; deleting a row leaves a gap rather
// than triggering any rebalancing.
//
// The read-max-then-insert pattern assumes inserts for a given parent are
// not concurrent. The UNIQUE(parent, order_index) constraints in the schema
// turn a lost race into a constraint error rather than a duplicate position.
func nextOrderIndex(ctx context.Context, q querier, table, parentColumn, parentID string) (int, error) {
	query := fmt.Sprintf("SELECT COALESCE(MAX(order_index), 0) FROM %s WHERE %s = ?", table, parentColumn)
	var current int
	if err := q.QueryRowContext(ctx, query, parentID).Scan(&current); err != nil {
		return 0, fmt.Errorf("next order index for %s: %w", table, err)
	}
	return current + 1, nil
}
