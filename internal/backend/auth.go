package backend

import (
	"context"
	"net/http"

	"github.com/preston-bernstein/football-admin-service/internal/envelope"
	"github.com/preston-bernstein/football-admin-service/internal/roles"
)

// LoginResult is returned after credentials are accepted; an OTP is then required.
type LoginResult struct {
	Email       string `json:"email"`
	OTPRequired bool   `json:"otpRequired"`
}

// Session is issued once the OTP is verified.
type Session struct {
	Token string     `json:"token"`
	User  roles.User `json:"user"`
}

func (c *Client) Login(ctx context.Context, email, password string) envelope.Response[LoginResult] {
	return call[LoginResult](ctx, c, request{
		op:     "auth.login",
		method: http.MethodPost,
		path:   "/auth/login",
		body:   map[string]string{"email": email, "password": password},
	})
}

func (c *Client) VerifyOTP(ctx context.Context, email, code string) envelope.Response[Session] {
	return call[Session](ctx, c, request{
		op:     "auth.verify_otp",
		method: http.MethodPost,
		path:   "/auth/verify-otp",
		body:   map[string]string{"email": email, "otp": code},
	})
}

func (c *Client) ResendOTP(ctx context.Context, email string) envelope.Response[Ack] {
	return call[Ack](ctx, c, request{
		op:     "auth.resend_otp",
		method: http.MethodPost,
		path:   "/auth/resend-otp",
		body:   map[string]string{"email": email},
	})
}

// Profile returns the user behind the credentials carried in ctx.
func (c *Client) Profile(ctx context.Context) envelope.Response[roles.User] {
	return call[roles.User](ctx, c, request{
		op:     "auth.profile",
		method: http.MethodGet,
		path:   "/auth/profile",
	})
}
