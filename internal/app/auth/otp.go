// Package auth models the one-time-password entry used after login.
package auth

import (
	"errors"
	"strings"
)

// OTPLength is the number of digit boxes.
const OTPLength = 4

var (
	ErrBoxOutOfRange = errors.New("otp box out of range")
	ErrNotDigit      = errors.New("otp accepts digits only")
	ErrIncomplete    = errors.New("otp is incomplete")
)

// OTP is the state of the digit boxes and which box has focus.
type OTP struct {
	digits [OTPLength]string
	focus  int
}

// Set writes into box i. Only the last typed character is kept and focus
// advances to the next box (staying on the last one). An empty value clears
// the box without moving focus.
func (o *OTP) Set(i int, value string) error {
	if i < 0 || i >= OTPLength {
		return ErrBoxOutOfRange
	}
	if value == "" {
		o.digits[i] = ""
		o.focus = i
		return nil
	}
	last := value[len(value)-1:]
	if !isDigit(last) {
		return ErrNotDigit
	}
	o.digits[i] = last
	o.focus = min(i+1, OTPLength-1)
	return nil
}

// Backspace clears box i; on an already empty box it clears and focuses the previous one.
func (o *OTP) Backspace(i int) error {
	if i < 0 || i >= OTPLength {
		return ErrBoxOutOfRange
	}
	if o.digits[i] != "" {
		o.digits[i] = ""
		o.focus = i
		return nil
	}
	if i > 0 {
		o.digits[i-1] = ""
		o.focus = i - 1
	}
	return nil
}

// Paste distributes the leading digits of value across the boxes from the first.
func (o *OTP) Paste(value string) error {
	var digits []string
	for _, r := range value {
		s := string(r)
		if strings.TrimSpace(s) == "" {
			continue
		}
		if !isDigit(s) {
			return ErrNotDigit
		}
		digits = append(digits, s)
	}
	if len(digits) == 0 {
		return ErrIncomplete
	}
	o.Reset()
	for i := 0; i < OTPLength && i < len(digits); i++ {
		o.digits[i] = digits[i]
	}
	o.focus = min(len(digits), OTPLength-1)
	return nil
}

func (o *OTP) Reset() {
	*o = OTP{}
}

// Digit returns the content of box i.
func (o *OTP) Digit(i int) string {
	if i < 0 || i >= OTPLength {
		return ""
	}
	return o.digits[i]
}

// Focus returns the index of the focused box.
func (o *OTP) Focus() int { return o.focus }

// CanSubmit is false while any box is empty.
func (o *OTP) CanSubmit() bool {
	for _, d := range o.digits {
		if d == "" {
			return false
		}
	}
	return true
}

// Code joins the boxes; it is only complete when CanSubmit is true.
func (o *OTP) Code() string {
	return strings.Join(o.digits[:], "")
}

// ParseOTP builds a filled OTP from a submitted code.
func ParseOTP(code string) (OTP, error) {
	var o OTP
	code = strings.TrimSpace(code)
	if len(code) != OTPLength {
		return o, ErrIncomplete
	}
	if err := o.Paste(code); err != nil {
		return OTP{}, err
	}
	return o, nil
}

func isDigit(s string) bool {
	return len(s) == 1 && s[0] >= '0' && s[0] <= '9'
}
