package agent

import (
	"railbot/game"
	"railbot/meta"
	"railbot/utils"
)

// SelectDisruption picks at most one region to disrupt: the lowest-id
// region that is not inked, holds no town, and contains at least one
// opposing track. First qualifying match wins; there is no ranking pass, so
// identical snapshots always yield the same target at O(tiles) cost.
//
// Town-bearing regions are never attacked, and neutral tracks (owner 2)
// never qualify a region: disrupting them spends the point without
// pressuring the opponent.
func SelectDisruption(gs *game.GameState) *DisruptPlan {
	opponent := 1 - gs.MyID
	for _, id := range utils.SortedKeys(gs.Regions) {
		region := gs.Regions[id]
		if !region.Disruptable() || region.HasTown {
			continue
		}
		for _, coord := range region.Coords {
			if gs.Grid.Tile(coord).IsOwnedBy(opponent) {
				return &DisruptPlan{
					RegionID:   id,
					PredictInk: region.Instability+1 >= meta.INK_THRESHOLD,
				}
			}
		}
	}
	return nil
}
