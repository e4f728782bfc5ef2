package game

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/slices"

	"railbot/utils"
)

// Grid owns every Tile. Tiles[y][x], row-major as the engine streams them.
type Grid struct {
	Width  int
	Height int
	Tiles  [][]Tile
}

// Tile returns the tile at c. The coordinate must be in bounds; external
// callers go through GameState.TileAt instead.
func (g *Grid) Tile(c Coord) *Tile {
	return &g.Tiles[c.Y][c.X]
}

func (g *Grid) InBounds(c Coord) bool {
	return c.X >= 0 && c.X < g.Width && c.Y >= 0 && c.Y < g.Height
}

// TileInit is one tile of the initialization snapshot.
type TileInit struct {
	RegionID int
	Terrain  Terrain
}

// TileUpdate is one tile of a per-turn snapshot, in the same row-major
// order as initialization.
type TileUpdate struct {
	TracksOwner    int
	Instability    int
	Inked          bool
	RawConnections string
}

// TurnUpdate is one full per-turn snapshot.
type TurnUpdate struct {
	MyScore  int
	FoeScore int
	Tiles    []TileUpdate
}

// ConfigError reports invalid initialization data. Fatal: no turn can be
// computed on an invalid model.
type ConfigError struct {
	Reason string
}

func (e *ConfigError) Error() string {
	return "invalid configuration: " + e.Reason
}

// LookupError reports a query on a coordinate outside the grid. Callers are
// expected to validate coordinates before querying.
type LookupError struct {
	Coord Coord
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("coordinate %s out of bounds", e.Coord)
}

// GameState holds the long-lived model: grid, region registry, towns, and
// the running scores. It is built once from the first snapshot and mutated
// in place every turn; it is owned by the turn loop and passed explicitly
// into the selectors, never read through package globals.
type GameState struct {
	MyID     int
	Grid     *Grid
	Regions  map[int]*Region
	Towns    []*Town
	MyScore  int
	FoeScore int

	townIDs []int // ascending, parallel to Towns
}

// NewGameState builds the grid and derives the region registry from the
// initialization snapshot. Regions are grouped by declared id equality, not
// geometric adjacency: the engine's region ids are authoritative, and a
// flood fill could silently diverge from them.
func NewGameState(myID, width, height int, tiles []TileInit, towns []*Town) (*GameState, error) {
	if width <= 0 || height <= 0 {
		return nil, &ConfigError{Reason: fmt.Sprintf("grid size %dx%d", width, height)}
	}
	if len(tiles) != width*height {
		return nil, &ConfigError{Reason: fmt.Sprintf("expected %d tiles, got %d", width*height, len(tiles))}
	}

	grid := &Grid{
		Width:  width,
		Height: height,
		Tiles:  make([][]Tile, height),
	}
	regions := make(map[int]*Region)
	i := 0
	for y := 0; y < height; y++ {
		grid.Tiles[y] = make([]Tile, width)
		for x := 0; x < width; x++ {
			init := tiles[i]
			i++
			grid.Tiles[y][x] = Tile{
				RegionID:    init.RegionID,
				Terrain:     init.Terrain,
				TracksOwner: NoOwner,
			}
			region, ok := regions[init.RegionID]
			if !ok {
				region = &Region{ID: init.RegionID}
				regions[init.RegionID] = region
			}
			region.Coords = append(region.Coords, Coord{X: x, Y: y})
		}
	}

	gs := &GameState{
		MyID:    myID,
		Grid:    grid,
		Regions: regions,
		Towns:   slices.Clone(towns),
	}
	slices.SortFunc(gs.Towns, func(a, b *Town) int { return a.ID - b.ID })
	for _, town := range gs.Towns {
		if !grid.InBounds(town.Coord) {
			return nil, &ConfigError{Reason: fmt.Sprintf("town %d at %s outside %dx%d grid", town.ID, town.Coord, width, height)}
		}
		regions[grid.Tile(town.Coord).RegionID].HasTown = true
		gs.townIDs = append(gs.townIDs, town.ID)
	}
	return gs, nil
}

// ApplyTurn overwrites the mutable tile and region fields from a per-turn
// snapshot. A malformed connection token drops only itself; the rest of the
// update still applies. Inked is sticky: the engine never revives a region,
// so a stale frame cannot un-ink one here either.
func (gs *GameState) ApplyTurn(u TurnUpdate) error {
	if len(u.Tiles) != gs.Grid.Width*gs.Grid.Height {
		return fmt.Errorf("turn snapshot has %d tiles, want %d", len(u.Tiles), gs.Grid.Width*gs.Grid.Height)
	}
	gs.MyScore = u.MyScore
	gs.FoeScore = u.FoeScore
	i := 0
	for y := 0; y < gs.Grid.Height; y++ {
		for x := 0; x < gs.Grid.Width; x++ {
			update := u.Tiles[i]
			i++
			conns, dropped := ParseConnections(update.RawConnections)
			for _, token := range dropped {
				log.Warn().Str("token", token).Int("x", x).Int("y", y).Msg("dropping malformed connection token")
			}
			tile := &gs.Grid.Tiles[y][x]
			tile.TracksOwner = update.TracksOwner
			tile.Instability = update.Instability
			tile.Inked = update.Inked
			tile.ActiveConnections = conns

			region := gs.Regions[tile.RegionID]
			region.Inked = region.Inked || update.Inked
			if region.Inked {
				// Instability never resets below the ink threshold once a
				// region is out.
				region.Instability = max(region.Instability, update.Instability)
			} else {
				region.Instability = update.Instability
			}
		}
	}
	return nil
}

// TileAt returns the tile at c, or a LookupError out of bounds.
func (gs *GameState) TileAt(c Coord) (*Tile, error) {
	if !gs.Grid.InBounds(c) {
		return nil, &LookupError{Coord: c}
	}
	return gs.Grid.Tile(c), nil
}

// RegionAt returns the region owning c, or a LookupError out of bounds.
func (gs *GameState) RegionAt(c Coord) (*Region, error) {
	tile, err := gs.TileAt(c)
	if err != nil {
		return nil, err
	}
	return gs.Regions[tile.RegionID], nil
}

// TownByID returns the town with the given id, or nil.
func (gs *GameState) TownByID(id int) *Town {
	idx := utils.FindIndex(gs.townIDs, id)
	if idx < 0 {
		return nil
	}
	return gs.Towns[idx]
}

// CountTracks tallies the tracks inside a region by ownership, from this
// player's perspective.
func (gs *GameState) CountTracks(r *Region) (mine, foe, neutral int) {
	for _, c := range r.Coords {
		tile := gs.Grid.Tile(c)
		switch {
		case tile.IsOwnedBy(gs.MyID):
			mine++
		case tile.IsOwnedBy(1 - gs.MyID):
			foe++
		case tile.IsNeutralTrack():
			neutral++
		}
	}
	return mine, foe, neutral
}
