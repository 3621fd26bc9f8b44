package metrics

import "testing"

func TestMetricAttributeKeys(t *testing.T) {
	keys := map[string]string{
		"method":    AttrMethod,
		"path":      AttrPath,
		"status":    AttrStatus,
		"operation": AttrOperation,
		"vote_kind": AttrVoteKind,
	}
	for want, got := range keys {
		if got != want {
			t.Fatalf("attribute key changed: expected %q, got %q", want, got)
		}
	}
}
