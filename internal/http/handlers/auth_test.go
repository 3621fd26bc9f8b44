package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/preston-bernstein/football-admin-service/internal/backend"
	"github.com/preston-bernstein/football-admin-service/internal/testutil"
)

func TestLoginForwardsCredentials(t *testing.T) {
	fb, client := newTestClient(t)
	fb.Reply(http.MethodPost, "/auth/login", "OTP sent", map[string]any{"email": "ada@uni.edu", "otpRequired": true})
	h := NewAuthHandler(client, nil)

	rr := call(h.Login, http.MethodPost, "/auth/login", `{"email":" ada@uni.edu ","password":"pw"}`, nil)

	testutil.AssertStatus(t, rr, http.StatusOK)
	resp := decodeEnvelope[backend.LoginResult](t, rr)
	if !resp.Data.OTPRequired || resp.Message != "OTP sent" {
		t.Fatalf("unexpected login body %+v", resp)
	}
	last, _ := fb.Last()
	var sent map[string]string
	if err := json.Unmarshal(last.Body, &sent); err != nil {
		t.Fatalf("decode forwarded body: %v", err)
	}
	if sent["email"] != "ada@uni.edu" {
		t.Fatalf("expected trimmed email, got %q", sent["email"])
	}
}

func TestLoginRequiresEmailAndPassword(t *testing.T) {
	fb, client := newTestClient(t)
	h := NewAuthHandler(client, nil)

	rr := call(h.Login, http.MethodPost, "/auth/login", `{"email":"ada@uni.edu"}`, nil)

	expectFailure(t, rr, http.StatusBadRequest, "email and password are required")
	if len(fb.Requests()) != 0 {
		t.Fatalf("expected no backend call")
	}
}

func TestLoginBackendFailure(t *testing.T) {
	fb, client := newTestClient(t)
	fb.Fail(http.MethodPost, "/auth/login", http.StatusOK, "Invalid credentials")
	h := NewAuthHandler(client, nil)

	rr := call(h.Login, http.MethodPost, "/auth/login", `{"email":"ada@uni.edu","password":"bad"}`, nil)

	expectFailure(t, rr, http.StatusBadRequest, "Invalid credentials")
}

func TestVerifyOTPValidatesBoxesLocally(t *testing.T) {
	cases := []struct {
		name    string
		body    string
		message string
	}{
		{name: "short code", body: `{"email":"a@b.c","otp":"12"}`, message: "Enter all 4 digits of the code."},
		{name: "letters", body: `{"email":"a@b.c","otp":"12a4"}`, message: "The code may only contain digits."},
		{name: "empty box", body: `{"email":"a@b.c","digits":["1","2","","4"]}`, message: "Enter all 4 digits of the code."},
		{name: "too few boxes", body: `{"email":"a@b.c","digits":["1","2"]}`, message: "Enter all 4 digits of the code."},
		{name: "missing email", body: `{"otp":"1234"}`, message: "email is required"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			fb, client := newTestClient(t)
			h := NewAuthHandler(client, nil)

			rr := call(h.VerifyOTP, http.MethodPost, "/auth/otp/verify", tc.body, nil)

			expectFailure(t, rr, http.StatusBadRequest, tc.message)
			if len(fb.Requests()) != 0 {
				t.Fatalf("expected no backend call for %s", tc.name)
			}
		})
	}
}

func TestVerifyOTPKeepsLastTypedDigitPerBox(t *testing.T) {
	fb, client := newTestClient(t)
	fb.Reply(http.MethodPost, "/auth/verify-otp", "Welcome", map[string]any{
		"token": "tok",
		"user":  map[string]any{"id": "u1", "role": "admin"},
	})
	h := NewAuthHandler(client, nil)

	rr := call(h.VerifyOTP, http.MethodPost, "/auth/otp/verify", `{"email":"a@b.c","digits":["91","2","3","4"]}`, nil)

	testutil.AssertStatus(t, rr, http.StatusOK)
	resp := decodeEnvelope[backend.Session](t, rr)
	if resp.Data.Token != "tok" || resp.Data.User.ID != "u1" {
		t.Fatalf("unexpected session %+v", resp.Data)
	}
	last, _ := fb.Last()
	var sent map[string]string
	if err := json.Unmarshal(last.Body, &sent); err != nil {
		t.Fatalf("decode forwarded body: %v", err)
	}
	if sent["otp"] != "1234" {
		t.Fatalf("expected code 1234 to be forwarded, got %s", last.Body)
	}
}

func TestResendOTP(t *testing.T) {
	fb, client := newTestClient(t)
	fb.Reply(http.MethodPost, "/auth/resend-otp", "Code resent", nil)
	h := NewAuthHandler(client, nil)

	expectFailure(t, call(h.ResendOTP, http.MethodPost, "/auth/otp/resend", `{"email":" "}`, nil), http.StatusBadRequest, "email is required")

	rr := call(h.ResendOTP, http.MethodPost, "/auth/otp/resend", `{"email":"a@b.c"}`, nil)
	testutil.AssertStatus(t, rr, http.StatusOK)
	if resp := decodeEnvelope[backend.Ack](t, rr); resp.Message != "Code resent" {
		t.Fatalf("unexpected message %q", resp.Message)
	}
}
