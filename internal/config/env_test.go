package config

import (
	"testing"
	"time"
)

func TestDurationEnvOrDefault(t *testing.T) {
	cases := []struct {
		val      string
		expected time.Duration
	}{
		{"", time.Minute},
		{"45s", 45 * time.Second},
		{"2m", 2 * time.Minute},
		{"0s", time.Minute},
		{"-5s", time.Minute},
		{"not-a-duration", time.Minute},
	}

	for _, tc := range cases {
		t.Setenv("DURATION_TEST", tc.val)
		if got := durationEnvOrDefault("DURATION_TEST", time.Minute); got != tc.expected {
			t.Fatalf("expected %s for %q, got %s", tc.expected, tc.val, got)
		}
	}
}
