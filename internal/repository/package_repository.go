package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/ShirinKhan1/system-design/internal/models"
)

// PackageRepository persists shipment packages in PostgreSQL.
type PackageRepository struct {
	db *sql.DB
}

func NewPackageRepository(db *sql.DB) *PackageRepository {
	return &PackageRepository{db: db}
}

func (r *PackageRepository) Insert(ctx context.Context, pkg *models.Package) error {
	query := `
		INSERT INTO packages (user_id, height, width, length, weight)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	err := r.db.QueryRowContext(ctx, query,
		pkg.UserID, pkg.Height, pkg.Width, pkg.Length, pkg.Weight,
	).Scan(&pkg.ID)
	if err != nil {
		return fmt.Errorf("failed to insert package: %w", err)
	}
	return nil
}

func (r *PackageRepository) List(ctx context.Context) ([]models.Package, error) {
	query := `
		SELECT id, user_id, height, width, length, weight
		FROM packages
		ORDER BY id
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list packages: %w", err)
	}
	defer rows.Close()

	var packages []models.Package
	for rows.Next() {
		var pkg models.Package
		if err := rows.Scan(&pkg.ID, &pkg.UserID, &pkg.Height, &pkg.Width, &pkg.Length, &pkg.Weight); err != nil {
			return nil, fmt.Errorf("failed to scan package: %w", err)
		}
		packages = append(packages, pkg)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list packages: %w", err)
	}
	return packages, nil
}
