package sqlite

import (
	"fmt"
	"strings"

	repo "financial-agent/internal/watchlist/repository"
)

var allowedOrderBy = map[string]bool{
	"added_at ASC":  true,
	"added_at DESC": true,
	"symbol ASC":    true,
}

// buildGetOneQuery builds WHERE clause + args for GetOneItem.
// All non-empty fields are applied as AND conditions.
func (r *implRepository) buildGetOneQuery(opt repo.GetOneItemOptions) (string, []any) {
	var conditions []string
	var args []any

	if opt.ID != "" {
		conditions = append(conditions, "id = ?")
		args = append(args, opt.ID)
	}
	if opt.UserID != 0 {
		conditions = append(conditions, "user_id = ?")
		args = append(args, opt.UserID)
	}
	if opt.Symbol != "" {
		conditions = append(conditions, "symbol = ?")
		args = append(args, opt.Symbol)
	}

	if len(conditions) == 0 {
		return "1=1", args
	}
	return strings.Join(conditions, " AND "), args
}

// buildListQuery builds the WHERE + ORDER clause for ListItems.
func (r *implRepository) buildListQuery(opt repo.ListItemsOptions) (string, []any) {
	var parts []string
	var args []any

	if opt.UserID != 0 {
		parts = append(parts, "WHERE user_id = ?")
		args = append(args, opt.UserID)
	}

	orderBy := opt.OrderBy
	if !allowedOrderBy[orderBy] {
		orderBy = "added_at ASC"
	}
	parts = append(parts, fmt.Sprintf("ORDER BY %s, rowid ASC", orderBy))

	return strings.Join(parts, " "), args
}
