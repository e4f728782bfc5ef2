package game

// Terrain codes as assigned by the engine.
type Terrain int

const (
	Plains   Terrain = iota // 0
	River                   // 1
	Mountain                // 2
	POI                     // 3
)

// Track ownership values reported per tile. Player tracks carry the player
// id (0 or 1) directly.
const (
	NoOwner      = -1
	NeutralOwner = 2
)

// Tile is one cell of the grid. RegionID and Terrain are fixed at
// initialization; the remaining fields are overwritten every turn.
type Tile struct {
	RegionID          int
	Terrain           Terrain
	TracksOwner       int
	Inked             bool
	Instability       int
	ActiveConnections []Connection
}

func (t *Tile) HasTrack() bool {
	return t.TracksOwner != NoOwner
}

func (t *Tile) IsOwnedBy(player int) bool {
	return t.TracksOwner == player
}

func (t *Tile) IsNeutralTrack() bool {
	return t.TracksOwner == NeutralOwner
}

// PaintCost returns the paint points the engine charges to place tracks on
// the given terrain.
func PaintCost(t Terrain) int {
	switch t {
	case River:
		return 2
	case Mountain, POI:
		return 3
	default:
		return 1
	}
}
