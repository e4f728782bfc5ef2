package game

// Region is a group of tiles sharing an engine-assigned region id. Coords
// and HasTown are fixed at initialization; Instability and Inked are
// overwritten every turn.
type Region struct {
	ID          int
	Instability int
	Inked       bool
	Coords      []Coord
	HasTown     bool
}

// Disruptable reports whether the region can still take disruption.
func (r *Region) Disruptable() bool {
	return !r.Inked
}
