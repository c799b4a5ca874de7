// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/danielhkuo/orderdesk/models"
)

// querier is satisfied by both *sql.DB and *sql.Tx
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

const itemColumns = `id, section_id, title, body, link_url, active, display_order, created_at, updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanItem(row rowScanner) (models.Item, error) {
	var it models.Item
	err := row.Scan(
		&it.ID, &it.SectionID, &it.Title, &it.Body, &it.LinkURL,
		&it.Active, &it.DisplayOrder, &it.CreatedAt, &it.UpdatedAt,
	)
	return it, err
}

func sectionExists(ctx context.Context, q querier, sectionID string) (bool, error) {
	var one int
	err := q.QueryRowContext(ctx, "SELECT 1 FROM section WHERE id = $1", sectionID).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to query section: %w", err)
	}
	return true, nil
}

// lockSection takes the section's row lock for the rest of tx and reports
// whether the section exists. Every transaction that reads display orders and
// writes them back locks first, so writers to one section run one at a time
// on PostgreSQL as well as SQLite.
func lockSection(ctx context.Context, tx *sql.Tx, sectionID string) (bool, error) {
	res, err := tx.ExecContext(ctx, "UPDATE section SET id = id WHERE id = $1", sectionID)
	if err != nil {
		return false, fmt.Errorf("failed to lock section: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to lock section: %w", err)
	}
	return n > 0, nil
}

func getItem(ctx context.Context, q querier, itemID string) (models.Item, error) {
	row := q.QueryRowContext(ctx, "SELECT "+itemColumns+" FROM item WHERE id = $1", itemID)
	return scanItem(row)
}

// listItems returns a section's items in display order
func listItems(ctx context.Context, q querier, sectionID string) ([]models.Item, error) {
	rows, err := q.QueryContext(ctx, `
		SELECT `+itemColumns+`
		FROM item
		WHERE section_id = $1
		ORDER BY display_order, created_at, id
	`, sectionID)
	if err != nil {
		return nil, fmt.Errorf("failed to query items: %w", err)
	}
	defer rows.Close()

	items := []models.Item{}
	for rows.Next() {
		it, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan item: %w", err)
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate items: %w", err)
	}
	return items, nil
}

// writePositions sets each item's display_order to its index, touching only
// rows whose order changes. items is updated in place.
func writePositions(ctx context.Context, q querier, items []models.Item, now time.Time) (int, error) {
	changed := 0
	for i := range items {
		if items[i].DisplayOrder == i {
			continue
		}
		_, err := q.ExecContext(ctx, `
			UPDATE item
			SET display_order = $1, updated_at = $2
			WHERE id = $3
		`, i, now, items[i].ID)
		if err != nil {
			return changed, fmt.Errorf("failed to update display order of %s: %w", items[i].ID, err)
		}
		items[i].DisplayOrder = i
		items[i].UpdatedAt = now
		changed++
	}
	return changed, nil
}

// withAge fills the humanized age shown in the admin table
func withAge(items []models.Item) []models.Item {
	for i := range items {
		items[i].Age = humanize.Time(items[i].UpdatedAt)
	}
	return items
}
