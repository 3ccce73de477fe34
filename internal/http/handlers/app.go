package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"

	"hoperaise/internal/service"
)

// App bundles the services the HTTP handlers depend on.
type App struct {
	Donations *service.DonationService
	Admin     *service.AdminService
	Logger    zerolog.Logger
}

func NewApp(donations *service.DonationService, admin *service.AdminService, logger zerolog.Logger) *App {
	return &App{Donations: donations, Admin: admin, Logger: logger}
}

func (a *App) json(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func (a *App) text(w http.ResponseWriter, code int, msg string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(code)
	_, _ = w.Write([]byte(msg))
}
