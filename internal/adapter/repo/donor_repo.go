package repo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"hoperaise/internal/domain"
	"hoperaise/internal/infra"
	"hoperaise/internal/sqlinline"
)

// DonorRepositoryPG implements DonorRepository using PostgreSQL.
type DonorRepositoryPG struct {
	sql infra.SQLExecutor
}

// NewDonorRepository creates a new donor repo.
func NewDonorRepository(sql infra.SQLExecutor) *DonorRepositoryPG {
	return &DonorRepositoryPG{sql: sql}
}

func (r *DonorRepositoryPG) GetByID(ctx context.Context, id int64) (*domain.Donor, error) {
	var donor domain.Donor
	err := r.sql.QueryRow(ctx, sqlinline.QGetDonor, id).
		Scan(&donor.ID, &donor.Name, &donor.Email, &donor.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &donor, nil
}

func (r *DonorRepositoryPG) List(ctx context.Context) ([]domain.Donor, error) {
	rows, err := r.sql.Query(ctx, sqlinline.QListDonors)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.Donor
	for rows.Next() {
		var donor domain.Donor
		if err := rows.Scan(&donor.ID, &donor.Name, &donor.Email, &donor.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, donor)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *DonorRepositoryPG) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.sql.QueryRow(ctx, sqlinline.QCountDonors).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

var _ domain.DonorRepository = (*DonorRepositoryPG)(nil)
