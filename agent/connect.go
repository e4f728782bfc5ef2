package agent

import (
	"railbot/game"
	"railbot/meta"
)

// PlanConnections walks the towns in ascending id order and requests the
// first unsatisfied desire of each, capped at one new connection per town
// and MAX_BUILDS per turn. Spreading the build budget across towns beats
// exhausting one town's desires.
//
// A desire already covered by an active connection in either direction is
// skipped, as is a desire whose target town does not resolve.
func PlanConnections(gs *game.GameState) []BuildRequest {
	var builds []BuildRequest
	for _, town := range gs.Towns {
		if len(builds) >= meta.MAX_BUILDS {
			break
		}
		tile := gs.Grid.Tile(town.Coord)
		requested := 0
		for _, targetID := range town.DesiredConnections {
			if requested >= meta.MAX_BUILDS_PER_TOWN {
				break
			}
			target := gs.TownByID(targetID)
			if target == nil {
				continue
			}
			if connected(tile.ActiveConnections, town.ID, targetID) {
				continue
			}
			builds = append(builds, BuildRequest{
				FromTown: town.ID,
				ToTown:   targetID,
				From:     town.Coord,
				To:       target.Coord,
			})
			requested++
		}
	}
	return builds
}

func connected(conns []game.Connection, a, b int) bool {
	for _, c := range conns {
		if c.Links(a, b) {
			return true
		}
	}
	return false
}
