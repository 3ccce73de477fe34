package handlers

import "net/http"

// AdminDonors lists every registered donor.
func (a *App) AdminDonors(w http.ResponseWriter, r *http.Request) {
	items, err := a.Admin.Donors(r.Context())
	if err != nil {
		a.Logger.Error().Err(err).Msg("list donors failed")
		a.text(w, http.StatusInternalServerError, "Error loading donors")
		return
	}
	a.json(w, http.StatusOK, items)
}

// AdminCampaigns lists every campaign with its running total.
func (a *App) AdminCampaigns(w http.ResponseWriter, r *http.Request) {
	items, err := a.Admin.Campaigns(r.Context())
	if err != nil {
		a.Logger.Error().Err(err).Msg("list campaigns failed")
		a.text(w, http.StatusInternalServerError, "Error loading campaigns")
		return
	}
	a.json(w, http.StatusOK, items)
}

// AdminStats returns record counts and the grand total donated.
func (a *App) AdminStats(w http.ResponseWriter, r *http.Request) {
	stats, err := a.Admin.Stats(r.Context())
	if err != nil {
		a.Logger.Error().Err(err).Msg("platform stats failed")
		a.text(w, http.StatusInternalServerError, "Error loading stats")
		return
	}
	a.json(w, http.StatusOK, stats)
}
