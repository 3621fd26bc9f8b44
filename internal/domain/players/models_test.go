package players

import (
	"reflect"
	"testing"
)

func TestPlayerJSONTags(t *testing.T) {
	type fieldCheck struct {
		name string
		tag  string
	}
	playerType := reflect.TypeOf(Player{})
	fields := []fieldCheck{
		{"ID", "id"},
		{"Name", "name"},
		{"Position", "position"},
		{"JerseyNumber", "jerseyNumber"},
		{"TeamID", "teamId,omitempty"},
	}
	for _, fc := range fields {
		f, ok := playerType.FieldByName(fc.name)
		if !ok {
			t.Fatalf("missing field %s", fc.name)
		}
		if tag := f.Tag.Get("json"); tag != fc.tag {
			t.Fatalf("field %s expected tag %s, got %s", fc.name, fc.tag, tag)
		}
	}
}

func TestParsePosition(t *testing.T) {
	cases := map[string]Position{
		"gk":   PositionGoalkeeper,
		"DEF":  PositionDefender,
		" mid": PositionMidfielder,
		"Fwd":  PositionForward,
	}
	for input, want := range cases {
		got, err := ParsePosition(input)
		if err != nil || got != want {
			t.Fatalf("position %q expected %s, got %s (%v)", input, want, got, err)
		}
	}
	if _, err := ParsePosition("striker"); err == nil {
		t.Fatal("expected unknown position to be rejected")
	}
}
