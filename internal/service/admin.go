package service

import (
	"context"
	"fmt"

	"hoperaise/internal/domain"
)

// PlatformStats summarizes the stored records for the admin dashboard.
type PlatformStats struct {
	DonorCount    int64   `json:"donor_count"`
	CampaignCount int64   `json:"campaign_count"`
	DonationCount int64   `json:"donation_count"`
	TotalDonated  float64 `json:"total_donated"`
}

// AdminService exposes the read-only listings used by the admin dashboard.
type AdminService struct {
	donors    domain.DonorRepository
	campaigns domain.CampaignRepository
	donations domain.DonationRepository
}

func NewAdminService(
	donors domain.DonorRepository,
	campaigns domain.CampaignRepository,
	donations domain.DonationRepository,
) *AdminService {
	return &AdminService{donors: donors, campaigns: campaigns, donations: donations}
}

func (s *AdminService) Donors(ctx context.Context) ([]domain.Donor, error) {
	items, err := s.donors.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list donors: %w", err)
	}
	if items == nil {
		items = []domain.Donor{}
	}
	return items, nil
}

func (s *AdminService) Campaigns(ctx context.Context) ([]domain.Campaign, error) {
	items, err := s.campaigns.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list campaigns: %w", err)
	}
	if items == nil {
		items = []domain.Campaign{}
	}
	return items, nil
}

func (s *AdminService) Stats(ctx context.Context) (*PlatformStats, error) {
	stats := &PlatformStats{}
	var err error
	if stats.DonorCount, err = s.donors.Count(ctx); err != nil {
		return nil, fmt.Errorf("count donors: %w", err)
	}
	if stats.CampaignCount, err = s.campaigns.Count(ctx); err != nil {
		return nil, fmt.Errorf("count campaigns: %w", err)
	}
	if stats.DonationCount, err = s.donations.Count(ctx); err != nil {
		return nil, fmt.Errorf("count donations: %w", err)
	}
	if stats.TotalDonated, err = s.donations.GrandTotal(ctx); err != nil {
		return nil, fmt.Errorf("sum donations: %w", err)
	}
	return stats, nil
}
