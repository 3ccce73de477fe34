package httpapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"hoperaise/internal/http/handlers"
	"hoperaise/internal/infra"
	"hoperaise/internal/middleware"
)

func NewRouter(app *handlers.App, cfg *infra.Config, logger zerolog.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(
		middleware.RequestID,
		chimw.RealIP,
		chimw.Recoverer,
		middleware.Logger(logger),
		middleware.CORS(cfg.CORSAllowedOrigins),
	)

	// Health
	r.Get("/v1/healthz", app.Health)

	r.Route("/donation", func(r chi.Router) {
		r.Get("/ping", app.DonationPing)
		r.With(middleware.RateLimit(cfg.RateLimitPerMin, time.Minute)).
			Post("/add", app.DonationsAdd)
		r.Get("/by-donor/{donorId}", app.DonationsByDonor)
		r.Get("/summary/{donorId}", app.DonationSummary)
		r.Get("/by-campaign/{campaignId}", app.DonationsByCampaign)
		r.Get("/receipt/{donationId}", app.DonationReceipt)
	})

	r.Route("/admin", func(r chi.Router) {
		r.Get("/donors", app.AdminDonors)
		r.Get("/campaigns", app.AdminCampaigns)
		r.Get("/stats", app.AdminStats)
	})

	return r
}
