// Package repository provides the PostgreSQL and MySQL resource stores.
package repository

import (
	"database/sql"
	"errors"

	apperrors "github.com/allisson/campus/internal/errors"
	"github.com/allisson/campus/internal/resource/domain"
)

const resourceSelect = `SELECT r.id, r.title, r.description, r.category, r.file_url, r.file_type, r.file_size,
		r.download_count, r.uploader_id, COALESCE(u.name, ''), r.created_at, r.updated_at
	FROM resources r LEFT JOIN users u ON u.id = r.uploader_id`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanResource(row rowScanner) (*domain.Resource, error) {
	var r domain.Resource
	err := row.Scan(
		&r.ID,
		&r.Title,
		&r.Description,
		&r.Category,
		&r.FileURL,
		&r.FileType,
		&r.FileSize,
		&r.DownloadCount,
		&r.UploaderID,
		&r.UploaderName,
		&r.CreatedAt,
		&r.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &r, nil
}

func getResource(row rowScanner) (*domain.Resource, error) {
	resource, err := scanResource(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrResourceNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get resource")
	}
	return resource, nil
}

func collectResources(rows *sql.Rows, err error) ([]*domain.Resource, error) {
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list resources")
	}
	defer func() {
		_ = rows.Close()
	}()

	resources := make([]*domain.Resource, 0)
	for rows.Next() {
		resource, err := scanResource(rows)
		if err != nil {
			return nil, apperrors.Wrap(err, "failed to scan resource row")
		}
		resources = append(resources, resource)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "error iterating resource rows")
	}
	return resources, nil
}

func expectOneRow(result sql.Result, err error, failure string) error {
	if err != nil {
		return apperrors.Wrap(err, failure)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to get rows affected")
	}
	if affected == 0 {
		return domain.ErrResourceNotFound
	}
	return nil
}
