package handlers_test

import (
	"context"
	"time"

	"hoperaise/internal/domain"
)

type stubDonors struct {
	donor *domain.Donor
	list  []domain.Donor
	count int64
	err   error
}

func (s *stubDonors) GetByID(context.Context, int64) (*domain.Donor, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.donor, nil
}

func (s *stubDonors) List(context.Context) ([]domain.Donor, error) { return s.list, nil }

func (s *stubDonors) Count(context.Context) (int64, error) { return s.count, nil }

type stubCampaigns struct {
	campaign *domain.Campaign
	list     []domain.Campaign
	count    int64
	err      error
}

func (s *stubCampaigns) GetByID(context.Context, int64) (*domain.Campaign, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.campaign, nil
}

func (s *stubCampaigns) List(context.Context) ([]domain.Campaign, error) { return s.list, nil }

func (s *stubCampaigns) Count(context.Context) (int64, error) { return s.count, nil }

type stubDonations struct {
	byID        map[int64]*domain.Donation
	byDonor     []domain.Donation
	byCampaign  []domain.Donation
	total       float64
	count       int64
	grand       float64
	createCalls int
}

func (s *stubDonations) Create(_ context.Context, donation *domain.Donation) (*domain.Donation, error) {
	s.createCalls++
	created := *donation
	created.ID = 7
	created.CreatedAt = time.Now()
	if donation.Campaign != nil {
		campaign := *donation.Campaign
		campaign.CollectedAmount += donation.Amount
		created.Campaign = &campaign
	}
	return &created, nil
}

func (s *stubDonations) GetByID(_ context.Context, id int64) (*domain.Donation, error) {
	if d, ok := s.byID[id]; ok {
		return d, nil
	}
	return nil, domain.ErrNotFound
}

func (s *stubDonations) ListByDonor(context.Context, int64) ([]domain.Donation, error) {
	return s.byDonor, nil
}

func (s *stubDonations) ListByCampaign(context.Context, int64) ([]domain.Donation, error) {
	return s.byCampaign, nil
}

func (s *stubDonations) TotalByDonor(context.Context, int64) (float64, error) { return s.total, nil }

func (s *stubDonations) Count(context.Context) (int64, error) { return s.count, nil }

func (s *stubDonations) GrandTotal(context.Context) (float64, error) { return s.grand, nil }
