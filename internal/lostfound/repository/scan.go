// Package repository provides the PostgreSQL and MySQL lost-and-found stores.
package repository

import (
	"database/sql"

	apperrors "github.com/allisson/campus/internal/errors"
	"github.com/allisson/campus/internal/lostfound/domain"
)

const lostItemSelect = `SELECT id, item, location, description, status, reporter_email, created_at
	FROM lost_items ORDER BY created_at DESC`

func collectLostItems(rows *sql.Rows, err error) ([]*domain.LostItem, error) {
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list lost items")
	}
	defer func() {
		_ = rows.Close()
	}()

	items := make([]*domain.LostItem, 0)
	for rows.Next() {
		var item domain.LostItem
		if err := rows.Scan(
			&item.ID,
			&item.Item,
			&item.Location,
			&item.Description,
			&item.Status,
			&item.ReporterEmail,
			&item.CreatedAt,
		); err != nil {
			return nil, apperrors.Wrap(err, "failed to scan lost item row")
		}
		items = append(items, &item)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "error iterating lost item rows")
	}
	return items, nil
}
