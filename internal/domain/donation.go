package domain

import "time"

// Donor is an account that makes donations. Donor records are owned by the
// account subsystem; this module only reads them.
type Donor struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// Campaign is a fundraising effort with a running collected total. The
// collected amount is maintained by the donation recorder; everything else is
// owned by the campaign subsystem.
type Campaign struct {
	ID              int64     `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	GoalAmount      float64   `json:"goal_amount"`
	CollectedAmount float64   `json:"collected_amount"`
	CreatedAt       time.Time `json:"created_at"`
}

// Donation records one donor contributing an amount to one campaign.
// Donations are append-only: once created they are never updated or deleted.
type Donation struct {
	ID         int64     `json:"id"`
	DonorID    int64     `json:"donor_id"`
	CampaignID int64     `json:"campaign_id"`
	Amount     float64   `json:"amount"`
	Message    string    `json:"message"`
	CreatedAt  time.Time `json:"created_at"`

	Donor    *Donor    `json:"donor,omitempty"`
	Campaign *Campaign `json:"campaign,omitempty"`
}
