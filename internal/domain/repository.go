package domain

import "context"

// DonorRepository provides read access to donor records.
type DonorRepository interface {
	GetByID(ctx context.Context, id int64) (*Donor, error)
	List(ctx context.Context) ([]Donor, error)
	Count(ctx context.Context) (int64, error)
}

// CampaignRepository provides read access to campaign records. The campaign
// aggregate itself is updated inside DonationRepository.Create.
type CampaignRepository interface {
	GetByID(ctx context.Context, id int64) (*Campaign, error)
	List(ctx context.Context) ([]Campaign, error)
	Count(ctx context.Context) (int64, error)
}

// DonationRepository handles donation persistence. Create must add the amount
// to the campaign total and insert the donation row in a single transaction,
// so the campaign aggregate stays equal to the sum of its donations under
// concurrent writers.
type DonationRepository interface {
	Create(ctx context.Context, donation *Donation) (*Donation, error)
	GetByID(ctx context.Context, id int64) (*Donation, error)
	ListByDonor(ctx context.Context, donorID int64) ([]Donation, error)
	ListByCampaign(ctx context.Context, campaignID int64) ([]Donation, error)
	TotalByDonor(ctx context.Context, donorID int64) (float64, error)
	Count(ctx context.Context) (int64, error)
	GrandTotal(ctx context.Context) (float64, error)
}
