// Package filter derives filtered views of fetched lists. Predicates never
// reorder or copy-modify elements: Apply keeps a subset in source order.
package filter

import (
	"strings"

	"github.com/preston-bernstein/football-admin-service/internal/domain/fixtures"
)

// All is the sentinel selector meaning "no filtering on this field".
const All = "all"

// Predicate reports whether an item belongs in the filtered view.
type Predicate[T any] func(T) bool

// Searchable is implemented by entries that expose text for substring search.
type Searchable interface {
	SearchFields() []string
}

// Apply returns the items satisfying every predicate. Nil predicates are skipped.
func Apply[T any](items []T, preds ...Predicate[T]) []T {
	out := make([]T, 0, len(items))
next:
	for _, item := range items {
		for _, p := range preds {
			if p != nil && !p(item) {
				continue next
			}
		}
		out = append(out, item)
	}
	return out
}

// Contains is a case-insensitive substring match; an empty needle matches.
func Contains(haystack, needle string) bool {
	needle = strings.TrimSpace(needle)
	if needle == "" {
		return true
	}
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

// Search matches items where any search field contains query.
func Search[T Searchable](query string) Predicate[T] {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil
	}
	return func(item T) bool {
		for _, field := range item.SearchFields() {
			if Contains(field, query) {
				return true
			}
		}
		return false
	}
}

// Equal matches items whose key equals want, ignoring case. Empty or All disables it.
func Equal[T any](key func(T) string, want string) Predicate[T] {
	want = strings.TrimSpace(want)
	if want == "" || strings.EqualFold(want, All) {
		return nil
	}
	return func(item T) bool {
		return strings.EqualFold(key(item), want)
	}
}

// FixtureStatus filters fixtures by lifecycle status.
func FixtureStatus(status string) Predicate[fixtures.Fixture] {
	return Equal(func(f fixtures.Fixture) string { return string(f.Status) }, status)
}

// FixtureType filters fixtures by competition type.
func FixtureType(kind string) Predicate[fixtures.Fixture] {
	return Equal(func(f fixtures.Fixture) string { return f.Type }, kind)
}

// FixtureSearch matches team names, venue or competition.
func FixtureSearch(query string) Predicate[fixtures.Fixture] {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil
	}
	return func(f fixtures.Fixture) bool {
		return Contains(f.HomeTeam.Name, query) ||
			Contains(f.AwayTeam.Name, query) ||
			Contains(f.HomeTeam.ShortName, query) ||
			Contains(f.AwayTeam.ShortName, query) ||
			Contains(f.Venue, query) ||
			Contains(f.Competition, query)
	}
}

// Fixtures applies the status, type and search selectors in one pass.
func Fixtures(list []fixtures.Fixture, status, kind, query string) []fixtures.Fixture {
	return Apply(list, FixtureStatus(status), FixtureType(kind), FixtureSearch(query))
}
