package fixtures

import (
	"context"
	"testing"
	"time"

	domain "github.com/preston-bernstein/football-admin-service/internal/domain/fixtures"
	"github.com/preston-bernstein/football-admin-service/internal/envelope"
)

type stubCreator struct {
	resp  envelope.Response[domain.Fixture]
	calls []domain.NewFixture
}

func (s *stubCreator) CreateFixture(_ context.Context, d domain.NewFixture) envelope.Response[domain.Fixture] {
	s.calls = append(s.calls, d)
	return s.resp
}

func validDraft() Draft {
	return Draft{
		HomeTeamID:    "eng",
		AwayTeamID:    "law",
		CompetitionID: "league",
		ScheduledAt:   time.Date(2026, 3, 1, 15, 0, 0, 0, time.UTC),
		Venue:         "Main Bowl",
	}
}

func TestIdenticalTeamsDisableSubmit(t *testing.T) {
	d := validDraft()
	if !d.CanSubmit() {
		t.Fatalf("expected valid draft to be submittable")
	}
	d.AwayTeamID = d.HomeTeamID
	if d.CanSubmit() {
		t.Fatalf("expected identical teams to disable submit")
	}
	if err := d.Validate(); err != ErrSameTeams {
		t.Fatalf("expected ErrSameTeams, got %v", err)
	}
	d.AwayTeamID = " eng "
	if d.CanSubmit() {
		t.Fatalf("expected whitespace-padded duplicate to be rejected")
	}
}

func TestValidateReportsFirstMissingField(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Draft)
		want   error
	}{
		{"home", func(d *Draft) { d.HomeTeamID = "" }, ErrHomeTeamRequired},
		{"away", func(d *Draft) { d.AwayTeamID = " " }, ErrAwayTeamRequired},
		{"competition", func(d *Draft) { d.CompetitionID = "" }, ErrCompetitionRequired},
		{"date", func(d *Draft) { d.ScheduledAt = time.Time{} }, ErrDateRequired},
		{"venue", func(d *Draft) { d.Venue = "" }, ErrVenueRequired},
		{"home before away", func(d *Draft) { d.HomeTeamID, d.AwayTeamID = "", "" }, ErrHomeTeamRequired},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d := validDraft()
			tc.mutate(&d)
			if err := d.Validate(); err != tc.want {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestSubmitSuccessClearsDraft(t *testing.T) {
	backend := &stubCreator{resp: envelope.OK("Fixture created", domain.Fixture{ID: "f9"})}
	c := NewCreator(backend, nil)

	f, n := c.Submit(context.Background(), "admin-1", validDraft())
	if !n.OK() || f.ID != "f9" {
		t.Fatalf("unexpected result %+v %+v", f, n)
	}
	if len(backend.calls) != 1 || backend.calls[0].Venue != "Main Bowl" {
		t.Fatalf("unexpected payload %+v", backend.calls)
	}
	if c.Draft("admin-1") != (Draft{}) {
		t.Fatalf("expected draft cleared, got %+v", c.Draft("admin-1"))
	}
}

func TestSubmitFailureRetainsDraft(t *testing.T) {
	backend := &stubCreator{resp: envelope.Failure[domain.Fixture]("Team already has a fixture that day")}
	c := NewCreator(backend, nil)

	_, n := c.Submit(context.Background(), "admin-1", validDraft())
	if n.OK() || n.Message != "Team already has a fixture that day" {
		t.Fatalf("expected error notice, got %+v", n)
	}
	if c.Draft("admin-1") != validDraft() {
		t.Fatalf("expected draft retained")
	}
}

func TestSubmitInvalidDraftSkipsBackend(t *testing.T) {
	backend := &stubCreator{}
	c := NewCreator(backend, nil)
	d := validDraft()
	d.AwayTeamID = d.HomeTeamID

	if _, n := c.Submit(context.Background(), "admin-1", d); n.OK() {
		t.Fatalf("expected validation failure")
	}
	if len(backend.calls) != 0 {
		t.Fatalf("expected no backend call")
	}
}

func TestDraftsAreKeptPerAdmin(t *testing.T) {
	backend := &stubCreator{resp: envelope.OK("Fixture created", domain.Fixture{ID: "f9"})}
	c := NewCreator(backend, nil)
	mine := validDraft()
	theirs := validDraft()
	theirs.Venue = "Annex Pitch"

	c.SetDraft("admin-a", mine)
	c.SetDraft("admin-b", theirs)
	if got := c.Draft("admin-b"); got.Venue != "Annex Pitch" {
		t.Fatalf("expected admin b's own draft, got %+v", got)
	}

	if _, n := c.Submit(context.Background(), "admin-a", mine); !n.OK() {
		t.Fatalf("expected submit to succeed, got %+v", n)
	}
	if c.Draft("admin-a") != (Draft{}) {
		t.Fatalf("expected admin a's draft cleared")
	}
	if c.Draft("admin-b") != theirs {
		t.Fatalf("expected admin b's draft untouched, got %+v", c.Draft("admin-b"))
	}
}
