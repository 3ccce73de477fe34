package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"hoperaise/internal/domain"
	"hoperaise/internal/receipt"
)

type donationRequest struct {
	DonorID    int64   `json:"donorId"`
	CampaignID int64   `json:"campaignId"`
	Amount     float64 `json:"amount"`
	Message    string  `json:"message"`
}

// DonationPing answers the liveness probe used by the frontend.
func (a *App) DonationPing(w http.ResponseWriter, r *http.Request) {
	a.text(w, http.StatusOK, "donation service is alive")
}

// DonationsAdd records a donation against a campaign.
func (a *App) DonationsAdd(w http.ResponseWriter, r *http.Request) {
	var req donationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.text(w, http.StatusBadRequest, "invalid payload")
		return
	}

	donation, err := a.Donations.Record(r.Context(), req.DonorID, req.CampaignID, req.Amount, req.Message)
	switch {
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrInvalidAmount):
		a.text(w, http.StatusBadRequest, err.Error())
	case err != nil:
		a.Logger.Error().Err(err).Msg("record donation failed")
		a.text(w, http.StatusInternalServerError, "Error recording donation")
	default:
		a.json(w, http.StatusOK, donation)
	}
}

// DonationsByDonor lists the donor's own donations.
func (a *App) DonationsByDonor(w http.ResponseWriter, r *http.Request) {
	donorID, ok := a.pathID(w, r, "donorId")
	if !ok {
		return
	}
	items, err := a.Donations.ListByDonor(r.Context(), donorID)
	if err != nil {
		a.Logger.Error().Err(err).Msg("list donations by donor failed")
		a.text(w, http.StatusInternalServerError, "Error loading donations")
		return
	}
	a.json(w, http.StatusOK, items)
}

// DonationsByCampaign lists all donations made to a campaign.
func (a *App) DonationsByCampaign(w http.ResponseWriter, r *http.Request) {
	campaignID, ok := a.pathID(w, r, "campaignId")
	if !ok {
		return
	}
	items, err := a.Donations.ListByCampaign(r.Context(), campaignID)
	if err != nil {
		a.Logger.Error().Err(err).Msg("list donations by campaign failed")
		a.text(w, http.StatusInternalServerError, "Error loading donations")
		return
	}
	a.json(w, http.StatusOK, items)
}

// DonationSummary returns the donor's lifetime total as a bare number.
func (a *App) DonationSummary(w http.ResponseWriter, r *http.Request) {
	donorID, ok := a.pathID(w, r, "donorId")
	if !ok {
		return
	}
	total, err := a.Donations.TotalByDonor(r.Context(), donorID)
	if err != nil {
		a.Logger.Error().Err(err).Msg("donor summary failed")
		a.text(w, http.StatusInternalServerError, "Error loading summary")
		return
	}
	a.json(w, http.StatusOK, total)
}

// DonationReceipt regenerates and streams the PDF receipt for one donation.
func (a *App) DonationReceipt(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "donationId"), 10, 64)
	if err != nil {
		a.text(w, http.StatusNotFound, "Donation not found")
		return
	}

	donation, err := a.Donations.Get(r.Context(), id)
	if errors.Is(err, domain.ErrNotFound) {
		a.text(w, http.StatusNotFound, "Donation not found")
		return
	}
	if err != nil {
		a.Logger.Error().Err(err).Msg("load donation for receipt failed")
		a.text(w, http.StatusInternalServerError, "Error generating receipt")
		return
	}

	pdf, err := receipt.Render(donation)
	if err != nil {
		a.Logger.Error().Err(err).Int64("donation_id", id).Msg("render receipt failed")
		a.text(w, http.StatusInternalServerError, "Error generating receipt")
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=donation_receipt_%d.pdf", donation.ID))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(pdf)
}

func (a *App) pathID(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil {
		a.text(w, http.StatusBadRequest, "invalid "+name)
		return 0, false
	}
	return id, true
}
