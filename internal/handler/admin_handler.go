package handler

import (
	"errors"
	"net/http"
	"time"

	"agri-works/internal/model"
	"agri-works/internal/service"

	"github.com/rs/zerolog"
)

// Authenticator exchanges the admin password for a token.
type Authenticator interface {
	Login(password string) (string, time.Time, error)
}

// LoginRequest is the body of POST /api/admin/login.
type LoginRequest struct {
	Password string `json:"password"`
}

// LoginResponse carries the admin bearer token.
type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// AdminHandler handles admin login and the dashboard.
type AdminHandler struct {
	auth      Authenticator
	dashboard service.DashboardService
	logger    zerolog.Logger
}

// NewAdminHandler creates a new admin handler.
func NewAdminHandler(auth Authenticator, dashboard service.DashboardService, logger zerolog.Logger) *AdminHandler {
	return &AdminHandler{
		auth:      auth,
		dashboard: dashboard,
		logger:    logger.With().Str("handler", "admin").Logger(),
	}
}

// Login handles POST /api/admin/login requests.
func (h *AdminHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeValidationError(w, err, h.logger)
		return
	}
	if req.Password == "" {
		writeError(w, http.StatusBadRequest, "password is required", h.logger)
		return
	}

	token, expiresAt, err := h.auth.Login(req.Password)
	if err != nil {
		if errors.Is(err, model.ErrInvalidPassword) {
			h.logger.Warn().Str("remote_addr", r.RemoteAddr).Msg("admin login rejected")
			writeJSON(w, http.StatusUnauthorized, ErrorResponse{Error: "invalid password"})
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to sign in", h.logger)
		return
	}

	h.logger.Info().Time("expires_at", expiresAt).Msg("admin signed in")
	writeJSON(w, http.StatusOK, LoginResponse{Token: token, ExpiresAt: expiresAt})
}

// Dashboard handles GET /api/admin/dashboard requests.
func (h *AdminHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.dashboard.Stats(r.Context()))
}
