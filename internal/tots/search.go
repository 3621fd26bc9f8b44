package tots

import (
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/preston-bernstein/football-admin-service/internal/domain/tots"
)

// SearchCandidates ranks candidates whose name fuzzily matches query, closest
// first; candidates whose team name contains query follow. An empty query
// returns the input unchanged.
func SearchCandidates(candidates []tots.Candidate, query string) []tots.Candidate {
	query = strings.TrimSpace(query)
	if query == "" {
		return candidates
	}

	names := make([]string, len(candidates))
	for i, c := range candidates {
		names[i] = c.Name
	}
	ranks := fuzzy.RankFindNormalizedFold(query, names)
	sort.Stable(ranks)

	out := make([]tots.Candidate, 0, len(ranks))
	seen := make(map[int]struct{}, len(ranks))
	for _, r := range ranks {
		seen[r.OriginalIndex] = struct{}{}
		out = append(out, candidates[r.OriginalIndex])
	}

	lower := strings.ToLower(query)
	for i, c := range candidates {
		if _, ok := seen[i]; ok {
			continue
		}
		if strings.Contains(strings.ToLower(c.TeamName), lower) {
			out = append(out, c)
		}
	}
	return out
}

// ClosestCandidate returns the candidate whose name has the smallest edit
// distance to name, or false when candidates is empty.
func ClosestCandidate(candidates []tots.Candidate, name string) (tots.Candidate, bool) {
	best, bestDistance := -1, 0
	target := strings.ToLower(strings.TrimSpace(name))
	for i, c := range candidates {
		d := fuzzy.LevenshteinDistance(target, strings.ToLower(c.Name))
		if best < 0 || d < bestDistance {
			best, bestDistance = i, d
		}
	}
	if best < 0 {
		return tots.Candidate{}, false
	}
	return candidates[best], true
}
