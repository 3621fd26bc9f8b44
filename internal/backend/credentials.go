package backend

import (
	"context"
	"net/http"
	"strings"
)

// Credentials are forwarded verbatim to the backend on every request.
type Credentials struct {
	Token   string
	Cookies []*http.Cookie
}

type credentialsKey struct{}

// WithCredentials attaches the caller's bearer token and cookies to ctx.
func WithCredentials(ctx context.Context, creds Credentials) context.Context {
	return context.WithValue(ctx, credentialsKey{}, creds)
}

// CredentialsFrom returns credentials stored by WithCredentials.
func CredentialsFrom(ctx context.Context) Credentials {
	if ctx == nil {
		return Credentials{}
	}
	creds, _ := ctx.Value(credentialsKey{}).(Credentials)
	return creds
}

// CredentialsFromRequest extracts a bearer token and cookies from an inbound request.
func CredentialsFromRequest(r *http.Request) Credentials {
	if r == nil {
		return Credentials{}
	}
	var token string
	if auth := r.Header.Get("Authorization"); len(auth) > 7 && strings.EqualFold(auth[:7], "bearer ") {
		token = strings.TrimSpace(auth[7:])
	}
	return Credentials{Token: token, Cookies: r.Cookies()}
}

func (c Credentials) apply(req *http.Request) {
	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}
	for _, cookie := range c.Cookies {
		req.AddCookie(cookie)
	}
}
