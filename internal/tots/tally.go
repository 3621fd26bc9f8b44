package tots

import (
	"sort"
	"strings"
	"time"

	"github.com/preston-bernstein/football-admin-service/internal/domain/players"
	"github.com/preston-bernstein/football-admin-service/internal/domain/tots"
)

// Tally counts votes per candidate and picks the team by Formation. Ranking is
// total votes, then admin votes, then name. Candidates without votes appear in
// the tally but never in the team.
func Tally(sessionID string, candidates []tots.Candidate, votes []tots.Vote, now time.Time) tots.Results {
	index := make(map[string]int, len(candidates))
	tally := make([]tots.Result, 0, len(candidates))
	for _, c := range candidates {
		if _, dup := index[c.PlayerID]; dup {
			continue
		}
		index[c.PlayerID] = len(tally)
		tally = append(tally, tots.Result{
			Position: c.Position,
			PlayerID: c.PlayerID,
			Name:     c.Name,
			TeamName: c.TeamName,
		})
	}

	for _, v := range votes {
		for _, id := range v.PlayerIDs {
			i, ok := index[id]
			if !ok {
				continue
			}
			if v.Admin {
				tally[i].AdminVotes++
			} else {
				tally[i].Votes++
			}
		}
	}

	order := positionOrder()
	sort.SliceStable(tally, func(i, j int) bool {
		a, b := tally[i], tally[j]
		if order[a.Position] != order[b.Position] {
			return order[a.Position] < order[b.Position]
		}
		if ta, tb := a.Votes+a.AdminVotes, b.Votes+b.AdminVotes; ta != tb {
			return ta > tb
		}
		if a.AdminVotes != b.AdminVotes {
			return a.AdminVotes > b.AdminVotes
		}
		return strings.ToLower(a.Name) < strings.ToLower(b.Name)
	})

	team := make([]tots.Result, 0, 11)
	picked := make(map[players.Position]int, len(Formation))
	for _, r := range tally {
		if r.Votes+r.AdminVotes == 0 || picked[r.Position] >= Formation[r.Position] {
			continue
		}
		picked[r.Position]++
		team = append(team, r)
	}

	return tots.Results{
		SessionID:   sessionID,
		FinalizedAt: now.UTC(),
		TotalVotes:  len(votes),
		Team:        team,
		Tally:       tally,
	}
}

func positionOrder() map[players.Position]int {
	order := make(map[players.Position]int, len(players.Positions))
	for i, p := range players.Positions {
		order[p] = i
	}
	return order
}
