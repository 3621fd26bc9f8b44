package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/preston-bernstein/football-admin-service/internal/app/auth"
	"github.com/preston-bernstein/football-admin-service/internal/backend"
	"github.com/preston-bernstein/football-admin-service/internal/envelope"
	"github.com/preston-bernstein/football-admin-service/internal/logging"
	"github.com/preston-bernstein/football-admin-service/internal/roles"
)

// AuthBackend is the sign-in slice of the API client.
type AuthBackend interface {
	Login(ctx context.Context, email, password string) envelope.Response[backend.LoginResult]
	VerifyOTP(ctx context.Context, email, code string) envelope.Response[backend.Session]
	ResendOTP(ctx context.Context, email string) envelope.Response[backend.Ack]
	Profile(ctx context.Context) envelope.Response[roles.User]
}

// AuthHandler proxies the sign-in flow, checking the OTP boxes before the
// code is forwarded.
type AuthHandler struct {
	backend AuthBackend
	logger  *slog.Logger
}

func NewAuthHandler(b AuthBackend, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{backend: b, logger: logger}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type otpRequest struct {
	Email string `json:"email"`
	// Either the joined code or one entry per box.
	OTP    string   `json:"otp,omitempty"`
	Digits []string `json:"digits,omitempty"`
}

type emailRequest struct {
	Email string `json:"email"`
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if !decodeBody(w, r, &req, h.logger) {
		return
	}
	email := strings.TrimSpace(req.Email)
	if email == "" || req.Password == "" {
		writeError(w, r, http.StatusBadRequest, "email and password are required", h.logger)
		return
	}
	respond(w, r, http.StatusOK, h.backend.Login(r.Context(), email, req.Password), h.logger)
}

// VerifyOTP rejects incomplete or non-numeric codes locally; only a fully
// filled set of boxes reaches the backend.
func (h *AuthHandler) VerifyOTP(w http.ResponseWriter, r *http.Request) {
	var req otpRequest
	if !decodeBody(w, r, &req, h.logger) {
		return
	}
	email := strings.TrimSpace(req.Email)
	if email == "" {
		writeError(w, r, http.StatusBadRequest, "email is required", h.logger)
		return
	}

	otp, err := otpFromRequest(req)
	if err == nil && !otp.CanSubmit() {
		err = auth.ErrIncomplete
	}
	if err != nil {
		logging.Debug(loggerFromContext(r, h.logger), "otp rejected locally", slog.Any("err", err))
		writeError(w, r, http.StatusBadRequest, otpMessage(err), h.logger)
		return
	}
	respond(w, r, http.StatusOK, h.backend.VerifyOTP(r.Context(), email, otp.Code()), h.logger)
}

func (h *AuthHandler) ResendOTP(w http.ResponseWriter, r *http.Request) {
	var req emailRequest
	if !decodeBody(w, r, &req, h.logger) {
		return
	}
	email := strings.TrimSpace(req.Email)
	if email == "" {
		writeError(w, r, http.StatusBadRequest, "email is required", h.logger)
		return
	}
	respond(w, r, http.StatusOK, h.backend.ResendOTP(r.Context(), email), h.logger)
}

// Profile returns the signed-in account.
func (h *AuthHandler) Profile(w http.ResponseWriter, r *http.Request) {
	respond(w, r, http.StatusOK, h.backend.Profile(r.Context()), h.logger)
}

func otpFromRequest(req otpRequest) (auth.OTP, error) {
	if len(req.Digits) == 0 {
		return auth.ParseOTP(req.OTP)
	}
	if len(req.Digits) != auth.OTPLength {
		return auth.OTP{}, auth.ErrIncomplete
	}
	var otp auth.OTP
	for i, d := range req.Digits {
		if err := otp.Set(i, d); err != nil {
			return auth.OTP{}, err
		}
	}
	return otp, nil
}

func otpMessage(err error) string {
	if errors.Is(err, auth.ErrNotDigit) {
		return "The code may only contain digits."
	}
	return "Enter all 4 digits of the code."
}
