package game

// Town is a fixed node on the grid. DesiredConnections lists the town ids
// this town wants a railway link to, in the engine's declared order; it is
// static input and never mutated here.
type Town struct {
	ID                 int
	Coord              Coord
	DesiredConnections []int
}
