package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"hoperaise/internal/domain"
	"hoperaise/internal/infra"
	"hoperaise/internal/sqlinline"
)

// DonationRepositoryPG implements DonationRepository using PostgreSQL.
type DonationRepositoryPG struct {
	sql infra.SQLExecutor
	tx  infra.TxBeginner
}

// NewDonationRepository creates a new donation repo.
func NewDonationRepository(sql infra.SQLExecutor, tx infra.TxBeginner) *DonationRepositoryPG {
	return &DonationRepositoryPG{sql: sql, tx: tx}
}

// Create inserts the donation and adds its amount to the campaign total in
// one transaction. The campaign update is an atomic in-place increment, so
// the collected amount stays equal to the sum of donation rows even when
// donations to the same campaign commit concurrently.
func (r *DonationRepositoryPG) Create(ctx context.Context, donation *domain.Donation) (*domain.Donation, error) {
	tx, err := r.tx.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin donation transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	var collected float64
	err = tx.QueryRow(ctx, sqlinline.QAddToCampaignTotal, donation.CampaignID, donation.Amount).Scan(&collected)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("update campaign total: %w", err)
	}

	created := *donation
	err = tx.QueryRow(ctx, sqlinline.QInsertDonation,
		donation.DonorID, donation.CampaignID, donation.Amount, donation.Message,
	).Scan(&created.ID, &created.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("insert donation: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit donation: %w", err)
	}

	if donation.Campaign != nil {
		campaign := *donation.Campaign
		campaign.CollectedAmount = collected
		created.Campaign = &campaign
	}
	return &created, nil
}

// GetByID returns one donation with its donor and campaign dereferenced.
func (r *DonationRepositoryPG) GetByID(ctx context.Context, id int64) (*domain.Donation, error) {
	row := r.sql.QueryRow(ctx, sqlinline.QGetDonation, id)
	donation, err := scanDonation(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return donation, nil
}

// ListByDonor returns all donations made by the given donor.
func (r *DonationRepositoryPG) ListByDonor(ctx context.Context, donorID int64) ([]domain.Donation, error) {
	return r.list(ctx, sqlinline.QListDonationsByDonor, donorID)
}

// ListByCampaign returns all donations made to the given campaign.
func (r *DonationRepositoryPG) ListByCampaign(ctx context.Context, campaignID int64) ([]domain.Donation, error) {
	return r.list(ctx, sqlinline.QListDonationsByCampaign, campaignID)
}

// TotalByDonor sums the donor's donation amounts, zero when there are none.
func (r *DonationRepositoryPG) TotalByDonor(ctx context.Context, donorID int64) (float64, error) {
	var total float64
	if err := r.sql.QueryRow(ctx, sqlinline.QTotalByDonor, donorID).Scan(&total); err != nil {
		return 0, err
	}
	return total, nil
}

func (r *DonationRepositoryPG) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.sql.QueryRow(ctx, sqlinline.QCountDonations).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func (r *DonationRepositoryPG) GrandTotal(ctx context.Context) (float64, error) {
	var total float64
	if err := r.sql.QueryRow(ctx, sqlinline.QGrandTotalDonated).Scan(&total); err != nil {
		return 0, err
	}
	return total, nil
}

func (r *DonationRepositoryPG) list(ctx context.Context, query string, id int64) ([]domain.Donation, error) {
	rows, err := r.sql.Query(ctx, query, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.Donation
	for rows.Next() {
		donation, err := scanDonation(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *donation)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

func scanDonation(row pgx.Row) (*domain.Donation, error) {
	var (
		donation domain.Donation
		donor    domain.Donor
		campaign domain.Campaign
	)
	err := row.Scan(
		&donation.ID, &donation.DonorID, &donation.CampaignID,
		&donation.Amount, &donation.Message, &donation.CreatedAt,
		&donor.Name, &donor.Email, &donor.CreatedAt,
		&campaign.Title, &campaign.Description, &campaign.GoalAmount,
		&campaign.CollectedAmount, &campaign.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	donor.ID = donation.DonorID
	campaign.ID = donation.CampaignID
	donation.Donor = &donor
	donation.Campaign = &campaign
	return &donation, nil
}

var _ domain.DonationRepository = (*DonationRepositoryPG)(nil)
