package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/mattn/go-sqlite3"

	"financial-agent/internal/watchlist"
	repo "financial-agent/internal/watchlist/repository"
)

const itemColumns = `id, user_id, symbol, notes, added_at`

// CreateItem inserts a new item row and returns the stored entity.
// A (user, symbol) pair that already exists yields watchlist.ErrDuplicateSymbol.
func (r *implRepository) CreateItem(ctx context.Context, opt repo.CreateItemOptions) (watchlist.Item, error) {
	const query = `INSERT INTO watchlist_items (` + itemColumns + `) VALUES (?, ?, ?, ?, ?)`

	_, err := r.db.ExecContext(ctx, query, opt.ID, opt.UserID, opt.Symbol, opt.Notes, opt.AddedAt.UTC())
	if err != nil {
		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique {
			return watchlist.Item{}, watchlist.ErrDuplicateSymbol
		}
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateItem"), err)
		return watchlist.Item{}, repo.ErrFailedToInsert
	}

	return watchlist.Item{
		ID:      opt.ID,
		UserID:  opt.UserID,
		Symbol:  opt.Symbol,
		Notes:   opt.Notes,
		AddedAt: opt.AddedAt.UTC(),
	}, nil
}

// GetOneItem retrieves a single item by the provided filters (AND condition).
// Returns a zero-value Item (ID == "") when not found.
func (r *implRepository) GetOneItem(ctx context.Context, opt repo.GetOneItemOptions) (watchlist.Item, error) {
	mods, args := r.buildGetOneQuery(opt)
	query := fmt.Sprintf("SELECT %s FROM watchlist_items WHERE %s LIMIT 1", itemColumns, mods)

	item, err := scanItem(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return watchlist.Item{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneItem"), err)
		return watchlist.Item{}, repo.ErrFailedToGet
	}
	return item, nil
}

// ListItems returns every item of a user, oldest first by default.
func (r *implRepository) ListItems(ctx context.Context, opt repo.ListItemsOptions) ([]watchlist.Item, error) {
	mods, args := r.buildListQuery(opt)
	query := fmt.Sprintf("SELECT %s FROM watchlist_items %s", itemColumns, mods)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListItems"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var items []watchlist.Item
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListItems"), err)
			return nil, repo.ErrFailedToList
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListItems"), err)
		return nil, repo.ErrFailedToList
	}
	return items, nil
}

// DeleteItem removes an item by ID.
func (r *implRepository) DeleteItem(ctx context.Context, id string) error {
	const query = `DELETE FROM watchlist_items WHERE id = ?`
	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteItem"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanItem(s scanner) (watchlist.Item, error) {
	var item watchlist.Item
	err := s.Scan(&item.ID, &item.UserID, &item.Symbol, &item.Notes, &item.AddedAt)
	return item, err
}
