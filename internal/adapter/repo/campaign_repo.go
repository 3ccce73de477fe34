package repo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"hoperaise/internal/domain"
	"hoperaise/internal/infra"
	"hoperaise/internal/sqlinline"
)

// CampaignRepositoryPG implements CampaignRepository using PostgreSQL.
type CampaignRepositoryPG struct {
	sql infra.SQLExecutor
}

// NewCampaignRepository creates a new campaign repo.
func NewCampaignRepository(sql infra.SQLExecutor) *CampaignRepositoryPG {
	return &CampaignRepositoryPG{sql: sql}
}

func (r *CampaignRepositoryPG) GetByID(ctx context.Context, id int64) (*domain.Campaign, error) {
	var campaign domain.Campaign
	err := r.sql.QueryRow(ctx, sqlinline.QGetCampaign, id).Scan(
		&campaign.ID, &campaign.Title, &campaign.Description,
		&campaign.GoalAmount, &campaign.CollectedAmount, &campaign.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &campaign, nil
}

func (r *CampaignRepositoryPG) List(ctx context.Context) ([]domain.Campaign, error) {
	rows, err := r.sql.Query(ctx, sqlinline.QListCampaigns)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.Campaign
	for rows.Next() {
		var campaign domain.Campaign
		err := rows.Scan(
			&campaign.ID, &campaign.Title, &campaign.Description,
			&campaign.GoalAmount, &campaign.CollectedAmount, &campaign.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		items = append(items, campaign)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *CampaignRepositoryPG) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.sql.QueryRow(ctx, sqlinline.QCountCampaigns).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

var _ domain.CampaignRepository = (*CampaignRepositoryPG)(nil)
