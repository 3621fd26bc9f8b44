package roster

import (
	"github.com/preston-bernstein/football-admin-service/internal/domain/players"
	"github.com/preston-bernstein/football-admin-service/internal/filter"
)

// ByPosition narrows a player roster to one position; "" or "all" keeps everyone.
func ByPosition(position string) filter.Predicate[players.Player] {
	return filter.Equal(func(p players.Player) string { return string(p.Position) }, position)
}

// ByTeam narrows a player roster to one team.
func ByTeam(teamID string) filter.Predicate[players.Player] {
	return filter.Equal(func(p players.Player) string { return p.TeamID }, teamID)
}
