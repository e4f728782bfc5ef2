package agent

import "railbot/game"

// DisruptPlan is the Disruption Selector's output: the target region and
// whether this disruption is predicted to ink it out. The prediction only
// feeds the diagnostic message, never the decision.
type DisruptPlan struct {
	RegionID   int
	PredictInk bool
}

// BuildRequest asks the engine to route a track path between two towns. The
// engine computes the tile-by-tile route and its cost; we only pick the
// endpoints.
type BuildRequest struct {
	FromTown int
	ToTown   int
	From     game.Coord
	To       game.Coord
}

// Decision is one turn's output. The empty decision is an explicit variant:
// the emitter renders it as WAIT rather than treating it as an incidental
// empty list.
type Decision struct {
	Disrupt *DisruptPlan
	Builds  []BuildRequest
}

func (d Decision) Empty() bool {
	return d.Disrupt == nil && len(d.Builds) == 0
}

// Decide runs the disruption selector and the connection builder on the
// current state. Both are pure functions of the snapshot.
func Decide(gs *game.GameState) Decision {
	return Decision{
		Disrupt: SelectDisruption(gs),
		Builds:  PlanConnections(gs),
	}
}
