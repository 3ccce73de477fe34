package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"hoperaise/internal/domain"
)

// DonationService records donations and serves the read paths. Recording
// validates the donor and campaign references and the amount before any
// state is touched, so a failed call leaves nothing behind.
type DonationService struct {
	donations domain.DonationRepository
	donors    domain.DonorRepository
	campaigns domain.CampaignRepository
	logger    zerolog.Logger
}

func NewDonationService(
	donations domain.DonationRepository,
	donors domain.DonorRepository,
	campaigns domain.CampaignRepository,
	logger zerolog.Logger,
) *DonationService {
	return &DonationService{
		donations: donations,
		donors:    donors,
		campaigns: campaigns,
		logger:    logger,
	}
}

// Record creates a donation and adds its amount to the campaign's collected
// total. The returned donation carries its assigned id, server-side creation
// time, and the donor and campaign dereferenced, with the campaign total as
// of this donation.
func (s *DonationService) Record(ctx context.Context, donorID, campaignID int64, amount float64, message string) (*domain.Donation, error) {
	if amount <= 0 {
		return nil, domain.ErrInvalidAmount
	}

	donor, err := s.donors.GetByID(ctx, donorID)
	if err != nil {
		return nil, fmt.Errorf("donor %d: %w", donorID, err)
	}
	campaign, err := s.campaigns.GetByID(ctx, campaignID)
	if err != nil {
		return nil, fmt.Errorf("campaign %d: %w", campaignID, err)
	}

	created, err := s.donations.Create(ctx, &domain.Donation{
		DonorID:    donorID,
		CampaignID: campaignID,
		Amount:     amount,
		Message:    message,
		Donor:      donor,
		Campaign:   campaign,
	})
	if err != nil {
		return nil, fmt.Errorf("record donation: %w", err)
	}

	s.logger.Info().
		Int64("donation_id", created.ID).
		Int64("donor_id", donorID).
		Int64("campaign_id", campaignID).
		Float64("amount", amount).
		Msg("donation recorded")
	return created, nil
}

// Get returns one donation with its donor and campaign populated.
func (s *DonationService) Get(ctx context.Context, id int64) (*domain.Donation, error) {
	donation, err := s.donations.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("donation %d: %w", id, err)
	}
	return donation, nil
}

// ListByDonor returns the donor's donations, empty when there are none.
func (s *DonationService) ListByDonor(ctx context.Context, donorID int64) ([]domain.Donation, error) {
	items, err := s.donations.ListByDonor(ctx, donorID)
	if err != nil {
		return nil, fmt.Errorf("list donations by donor %d: %w", donorID, err)
	}
	if items == nil {
		items = []domain.Donation{}
	}
	return items, nil
}

// ListByCampaign returns the campaign's donations, empty when there are none.
func (s *DonationService) ListByCampaign(ctx context.Context, campaignID int64) ([]domain.Donation, error) {
	items, err := s.donations.ListByCampaign(ctx, campaignID)
	if err != nil {
		return nil, fmt.Errorf("list donations by campaign %d: %w", campaignID, err)
	}
	if items == nil {
		items = []domain.Donation{}
	}
	return items, nil
}

// TotalByDonor returns the sum the donor has given, zero for an unknown or
// inactive donor.
func (s *DonationService) TotalByDonor(ctx context.Context, donorID int64) (float64, error) {
	total, err := s.donations.TotalByDonor(ctx, donorID)
	if err != nil {
		return 0, fmt.Errorf("total donated by donor %d: %w", donorID, err)
	}
	return total, nil
}
